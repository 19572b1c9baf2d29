// Package storage persists guard state across process restarts.
//
// The persisted document is intentionally small: per-channel risk, safety,
// cumulative flags and turn count, plus the two session-sticky booleans.
// Message history is not persisted here; the archive package keeps the
// durable per-message trail.
//
// Two backends are provided:
//
//   - MemoryStore: no durability, used in tests and when persistence is
//     disabled.
//   - SQLiteStore: durable single-file storage (pure-Go driver), one row per
//     node identity, last write wins.
package storage
