package guard

import (
	"time"

	"soberania-mesh/phiguard/pkg/patterns"
)

// Level is the bilateral intervention level.
type Level string

const (
	LevelLow      Level = "LOW"
	LevelModerate Level = "MODERATE"
	LevelHigh     Level = "HIGH"
	LevelCritical Level = "CRITICAL"
)

// Result is the outcome of processing one message.
type Result struct {
	// Direction and Language are the resolved message attributes.
	Direction Direction         `json:"direction"`
	Language  patterns.Language `json:"language"`

	// Signals maps category to strength for this message; only categories
	// with strength > 0 are present.
	Signals map[patterns.Category]float64 `json:"signals"`

	// Flags are the composite flags raised by this message alone; the
	// channel keeps the cumulative set.
	Flags []string `json:"flags"`

	// Channel is the updated state of the channel this message hit.
	Channel ChannelVerdict `json:"channel"`

	// Bilateral combines both channels: max risk, min safety.
	Bilateral BilateralVerdict `json:"bilateral"`

	// Level is derived from the bilateral risk.
	Level Level `json:"level"`

	// Handoff reports whether this message met the hand-off condition.
	Handoff bool `json:"handoff"`

	// Lockdown mirrors the explicit lockdown toggle.
	Lockdown bool `json:"lockdown"`

	// StateSaved is false when a configured persistence write failed for
	// this update; processing still completed.
	StateSaved bool `json:"state_saved"`

	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata"`
}

// ChannelVerdict is the channel-level slice of a Result.
type ChannelVerdict struct {
	Risk     float64 `json:"risk"`
	Safety   float64 `json:"safety"`
	Velocity float64 `json:"velocity"`
}

// BilateralVerdict is the combined view of both channels.
type BilateralVerdict struct {
	Risk   float64 `json:"risk"`
	Safety float64 `json:"safety"`
}

// Status is the full guard state report.
type Status struct {
	NodeID           string          `json:"node_id"`
	SessionDuration  time.Duration   `json:"session_duration"`
	TotalMessages    int             `json:"total_messages"`
	Inbound          ChannelStatus   `json:"inbound"`
	Outbound         ChannelStatus   `json:"outbound"`
	Bilateral        BilateralStatus `json:"bilateral"`
	HandoffTriggered bool            `json:"handoff_triggered"`
	LockdownActive   bool            `json:"lockdown_active"`
}

// ChannelStatus summarizes one channel.
type ChannelStatus struct {
	Risk   float64  `json:"risk"`
	Safety float64  `json:"safety"`
	Turns  int      `json:"turns"`
	Flags  []string `json:"flags"`
}

// BilateralStatus summarizes the combined channels.
type BilateralStatus struct {
	Risk   float64 `json:"risk"`
	Safety float64 `json:"safety"`
	Level  Level   `json:"level"`
}

// LockdownReceipt acknowledges a lockdown state transition.
type LockdownReceipt struct {
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}
