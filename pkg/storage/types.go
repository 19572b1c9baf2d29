package storage

import (
	"context"
	"time"
)

// Store defines the interface for guard state persistence.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save persists the state document for its node identity.
	// An existing document for the same node is overwritten.
	Save(ctx context.Context, doc *StateDocument) error

	// Load retrieves the state document for a node identity.
	// Returns nil with no error when no document exists.
	Load(ctx context.Context, nodeID string) (*StateDocument, error)

	// Delete removes the state document for a node identity.
	// No-op when no document exists.
	Delete(ctx context.Context, nodeID string) error

	// Close releases any resources held by the store.
	Close() error
}

// StateDocument is the durable representation of guard state.
type StateDocument struct {
	// NodeID is the identity the state belongs to.
	NodeID string `json:"node_id"`

	// Inbound and Outbound carry the per-channel state that must survive a
	// restart.
	Inbound  ChannelDocument `json:"inbound"`
	Outbound ChannelDocument `json:"outbound"`

	// HandoffTriggered is the session-sticky hand-off marker.
	HandoffTriggered bool `json:"handoff_triggered"`

	// LockdownActive is the explicit lockdown toggle.
	LockdownActive bool `json:"lockdown_active"`

	// SavedAt is when this document was written.
	SavedAt time.Time `json:"saved_at"`
}

// ChannelDocument is the persisted slice of one channel's state.
type ChannelDocument struct {
	Risk      float64  `json:"risk"`
	Safety    float64  `json:"safety"`
	Flags     []string `json:"flags"`
	TurnCount int      `json:"turn_count"`
}
