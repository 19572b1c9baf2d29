package config

import "time"

// ApplyDefaults fills unset fields with their default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Node.PrimaryLanguage == "" {
		cfg.Node.PrimaryLanguage = "es"
	}

	if cfg.State.Backend == "" {
		cfg.State.Backend = "memory"
	}
	if cfg.State.Backend == "sqlite" && cfg.State.Path == "" {
		cfg.State.Path = "data/phiguard.db"
	}

	if cfg.Archive.Enabled {
		if cfg.Archive.Path == "" {
			cfg.Archive.Path = "data/archive.db"
		}
		if cfg.Archive.RetentionDays == 0 {
			cfg.Archive.RetentionDays = 90
		}
		if cfg.Archive.PruneSchedule == "" {
			cfg.Archive.PruneSchedule = "0 3 * * *"
		}
	}

	if cfg.Patterns.DebounceInterval == 0 {
		cfg.Patterns.DebounceInterval = 100 * time.Millisecond
	}

	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = "127.0.0.1:7341"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 120 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15 * time.Second
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = "info"
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = "json"
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = "phiguard"
	}
}

// Default returns a fully defaulted configuration, as used when no config
// file is supplied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
