package main

import (
	"fmt"

	"soberania-mesh/phiguard/pkg/archive"
	"soberania-mesh/phiguard/pkg/config"
	"soberania-mesh/phiguard/pkg/guard"
	"soberania-mesh/phiguard/pkg/patterns"
	"soberania-mesh/phiguard/pkg/storage"
	"soberania-mesh/phiguard/pkg/telemetry/logging"
	"soberania-mesh/phiguard/pkg/telemetry/metrics"
)

// loadConfig returns the configuration from --config, or full defaults when
// no file was given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

// setupLogging installs the configured logger as the process default.
// --verbose forces debug level.
func setupLogging(cfg *config.Config) error {
	logCfg := cfg.Telemetry.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(&logCfg)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)
	return nil
}

// deps bundles the wired guard and everything that needs closing.
type deps struct {
	guard     *guard.Guard
	library   *patterns.Library
	store     storage.Store
	archive   *archive.SQLiteArchive
	collector *metrics.Collector
}

// buildGuard wires a guard from the configuration: pattern library (with
// optional extension pack), state store, analysis archive and metrics.
func buildGuard(cfg *config.Config) (*deps, error) {
	lib, err := patterns.CompileFile(cfg.Patterns.PackPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build pattern library: %w", err)
	}

	d := &deps{library: lib}

	switch cfg.State.Backend {
	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.State.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open state store: %w", err)
		}
		d.store = store
	default:
		d.store = storage.NewMemoryStore()
	}

	if cfg.Archive.Enabled {
		arch, err := archive.NewSQLiteArchive(&archive.Config{
			Path:          cfg.Archive.Path,
			RetentionDays: cfg.Archive.RetentionDays,
			PruneSchedule: cfg.Archive.PruneSchedule,
		})
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("failed to open analysis archive: %w", err)
		}
		d.archive = arch
	}

	if cfg.Telemetry.Metrics.Enabled {
		d.collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	primary, err := patterns.ParseLanguage(cfg.Node.PrimaryLanguage)
	if err != nil {
		d.Close()
		return nil, err
	}

	opts := []guard.Option{
		guard.WithLibrary(lib),
		guard.WithStore(d.store),
	}
	if d.archive != nil {
		opts = append(opts, guard.WithRecorder(d.archive))
	}
	if d.collector != nil {
		opts = append(opts, guard.WithMetrics(d.collector))
	}

	d.guard = guard.New(guard.Config{
		NodeID:          cfg.Node.ID,
		PrimaryLanguage: primary,
	}, opts...)

	return d, nil
}

// Close releases everything buildGuard opened.
func (d *deps) Close() {
	if d.archive != nil {
		d.archive.Close()
	}
	if d.store != nil {
		d.store.Close()
	}
}
