package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"soberania-mesh/phiguard/pkg/archive"
	"soberania-mesh/phiguard/pkg/patterns"
	"soberania-mesh/phiguard/pkg/server"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the guard HTTP server",
	Long: `Run starts the guard as a long-lived HTTP service.

The server scores inbound and outbound messages, exposes node status and
lockdown controls, and serves Prometheus metrics when enabled. State is
restored from the configured store on startup and saved after every
scored message.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := setupLogging(cfg); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	d, err := buildGuard(cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if d.archive != nil {
		scheduler := archive.NewScheduler(d.archive)
		if err := scheduler.Start(ctx); err != nil {
			return fmt.Errorf("failed to start archive scheduler: %w", err)
		}
		defer scheduler.Stop()
	}

	if cfg.Patterns.Watch {
		watcher, err := patterns.NewPackWatcher(cfg.Patterns.PackPath, cfg.Patterns.DebounceInterval, slog.Default())
		if err != nil {
			return fmt.Errorf("failed to create pattern pack watcher: %w", err)
		}
		go func() {
			if err := watcher.Watch(ctx, d.guard.SwapLibrary); err != nil {
				slog.Error("pattern pack watcher exited", "error", err)
			}
		}()
		defer watcher.Stop()
	}

	slog.Info("guard starting",
		"node_id", d.guard.NodeID(),
		"primary_language", cfg.Node.PrimaryLanguage,
		"state_backend", cfg.State.Backend,
		"archive_enabled", cfg.Archive.Enabled,
	)

	return server.New(&cfg.Server, d.guard, d.collector).Start(ctx)
}
