package storage

import (
	"context"
	"sync"
)

// MemoryStore implements Store with an in-process map. All data is lost when
// the process exits; it exists for tests and for running with persistence
// disabled.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*StateDocument
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]*StateDocument)}
}

// Save stores a copy of doc keyed by its node identity.
func (m *MemoryStore) Save(_ context.Context, doc *StateDocument) error {
	cp := copyDocument(doc)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.NodeID] = cp
	return nil
}

// Load returns a copy of the stored document, or nil when absent.
func (m *MemoryStore) Load(_ context.Context, nodeID string) (*StateDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[nodeID]
	if !ok {
		return nil, nil
	}
	return copyDocument(doc), nil
}

// Delete removes the document for nodeID.
func (m *MemoryStore) Delete(_ context.Context, nodeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, nodeID)
	return nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error { return nil }

func copyDocument(doc *StateDocument) *StateDocument {
	cp := *doc
	cp.Inbound.Flags = append([]string(nil), doc.Inbound.Flags...)
	cp.Outbound.Flags = append([]string(nil), doc.Outbound.Flags...)
	return &cp
}
