package config

import (
	"fmt"
	"net"

	"github.com/robfig/cron/v3"

	"soberania-mesh/phiguard/pkg/patterns"
)

// Validate checks the configuration for inconsistencies that would make the
// node unusable. It collects nothing; the first problem found is returned.
func Validate(cfg *Config) error {
	lang, err := patterns.ParseLanguage(cfg.Node.PrimaryLanguage)
	if err != nil {
		return fmt.Errorf("node.primary_language: %w", err)
	}
	if !lang.Concrete() {
		return fmt.Errorf("node.primary_language must be concrete, got %q", cfg.Node.PrimaryLanguage)
	}

	switch cfg.State.Backend {
	case "memory":
	case "sqlite":
		if cfg.State.Path == "" {
			return fmt.Errorf("state.path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("state.backend must be %q or %q, got %q", "memory", "sqlite", cfg.State.Backend)
	}

	if cfg.Archive.Enabled {
		if cfg.Archive.Path == "" {
			return fmt.Errorf("archive.path is required when archive is enabled")
		}
		if cfg.Archive.RetentionDays < 0 {
			return fmt.Errorf("archive.retention_days cannot be negative")
		}
		if cfg.Archive.PruneSchedule != "" {
			if _, err := cron.ParseStandard(cfg.Archive.PruneSchedule); err != nil {
				return fmt.Errorf("archive.prune_schedule: %w", err)
			}
		}
	}

	if cfg.Patterns.Watch && cfg.Patterns.PackPath == "" {
		return fmt.Errorf("patterns.watch requires patterns.pack_path")
	}

	if _, _, err := net.SplitHostPort(cfg.Server.ListenAddress); err != nil {
		return fmt.Errorf("server.listen_address: %w", err)
	}

	return nil
}
