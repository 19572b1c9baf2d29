package archive

import (
	"context"
	"time"
)

// Record is one archived guard analysis.
type Record struct {
	// ID is a generated unique identifier for the record.
	ID string `json:"id"`

	// NodeID is the guard identity that produced the analysis.
	NodeID string `json:"node_id"`

	// Direction is "inbound" or "outbound".
	Direction string `json:"direction"`

	// Language is the resolved message language ("es", "en", "pt").
	Language string `json:"language"`

	// Signals maps category name to signal strength for this message.
	Signals map[string]float64 `json:"signals"`

	// Flags are the composite flags raised by this message alone.
	Flags []string `json:"flags"`

	// RiskDelta is the capped per-message risk increase.
	RiskDelta float64 `json:"risk_delta"`

	// Level is the bilateral intervention level after this message.
	Level string `json:"level"`

	// Handoff reports whether this message met the hand-off condition.
	Handoff bool `json:"handoff"`

	// Timestamp is when the message was processed.
	Timestamp time.Time `json:"timestamp"`
}

// Recorder is the write-side interface the guard uses.
type Recorder interface {
	// Record appends one analysis record.
	Record(ctx context.Context, rec *Record) error

	// Close releases resources held by the recorder.
	Close() error
}

// Config configures the archive.
type Config struct {
	// Path is the SQLite database file path.
	Path string

	// RetentionDays is how many days of records to keep.
	// 0 keeps records forever.
	RetentionDays int

	// PruneSchedule is a cron expression for scheduled pruning,
	// e.g. "0 3 * * *" for daily at 3 AM. Empty disables the scheduler.
	PruneSchedule string
}
