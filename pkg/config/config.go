package config

import (
	"time"

	"soberania-mesh/phiguard/pkg/telemetry/logging"
	"soberania-mesh/phiguard/pkg/telemetry/metrics"
)

// Config is the root configuration for a PhiGuard node.
type Config struct {
	// Node identifies this guard instance.
	Node NodeConfig `yaml:"node"`

	// State configures guard state persistence.
	State StateConfig `yaml:"state"`

	// Archive configures the durable analysis trail.
	Archive ArchiveConfig `yaml:"archive"`

	// Patterns configures the optional pattern extension pack.
	Patterns PatternsConfig `yaml:"patterns"`

	// Server configures the HTTP API.
	Server ServerConfig `yaml:"server"`

	// Telemetry configures logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// NodeConfig identifies the guard.
type NodeConfig struct {
	// ID is the node identity used for persistence and archive rows.
	// Empty generates a UUID at startup.
	ID string `yaml:"id"`

	// PrimaryLanguage is the default language for counter-speech:
	// "es", "en" or "pt". Default: "es".
	PrimaryLanguage string `yaml:"primary_language"`
}

// StateConfig configures guard state persistence.
type StateConfig struct {
	// Backend selects the store: "memory" (no durability) or "sqlite".
	// Default: "memory".
	Backend string `yaml:"backend"`

	// Path is the SQLite database file when Backend is "sqlite".
	Path string `yaml:"path"`
}

// ArchiveConfig configures the analysis archive.
type ArchiveConfig struct {
	// Enabled toggles archiving of per-message analyses.
	Enabled bool `yaml:"enabled"`

	// Path is the archive SQLite database file.
	Path string `yaml:"path"`

	// RetentionDays is how many days of records to keep; 0 keeps forever.
	// Default: 90.
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is a cron expression for scheduled pruning.
	// Default: "0 3 * * *" (daily at 3 AM). Empty disables scheduling.
	PruneSchedule string `yaml:"prune_schedule"`
}

// PatternsConfig configures the optional extension pack.
type PatternsConfig struct {
	// PackPath points at a YAML extension pack layered over the built-in
	// tables. Empty uses the built-ins only.
	PackPath string `yaml:"pack_path"`

	// Watch reloads the pack on file changes. Requires PackPath.
	Watch bool `yaml:"watch"`

	// DebounceInterval is the reload debounce. Default: 100ms.
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	// ListenAddress is "host:port". Default: "127.0.0.1:7341".
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout bounds reading an entire request. Default: 10s.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout bounds writing a response. Default: 10s.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout bounds keep-alive idle connections. Default: 120s.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown. Default: 15s.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// TelemetryConfig configures observability.
type TelemetryConfig struct {
	Logging logging.Config `yaml:"logging"`
	Metrics metrics.Config `yaml:"metrics"`
}
