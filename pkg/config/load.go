package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration from a YAML file, applies defaults and
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides applies PHIGUARD_SECTION_FIELD environment variables on
// top of the file-based configuration.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("PHIGUARD_NODE_ID"); val != "" {
		cfg.Node.ID = val
	}
	if val := os.Getenv("PHIGUARD_NODE_PRIMARY_LANGUAGE"); val != "" {
		cfg.Node.PrimaryLanguage = val
	}

	if val := os.Getenv("PHIGUARD_STATE_BACKEND"); val != "" {
		cfg.State.Backend = val
	}
	if val := os.Getenv("PHIGUARD_STATE_PATH"); val != "" {
		cfg.State.Path = val
	}

	if val := os.Getenv("PHIGUARD_ARCHIVE_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Archive.Enabled = b
		}
	}
	if val := os.Getenv("PHIGUARD_ARCHIVE_PATH"); val != "" {
		cfg.Archive.Path = val
	}
	if val := os.Getenv("PHIGUARD_ARCHIVE_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Archive.RetentionDays = i
		}
	}

	if val := os.Getenv("PHIGUARD_PATTERNS_PACK_PATH"); val != "" {
		cfg.Patterns.PackPath = val
	}
	if val := os.Getenv("PHIGUARD_PATTERNS_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Patterns.Watch = b
		}
	}

	if val := os.Getenv("PHIGUARD_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("PHIGUARD_SERVER_SHUTDOWN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}

	if val := os.Getenv("PHIGUARD_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("PHIGUARD_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("PHIGUARD_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
}
