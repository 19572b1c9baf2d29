package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteStore implements Store using a single-file SQLite database.
// It keeps one row per node identity; Save is an upsert and the last write
// wins. WAL mode is enabled so the synchronous per-message save does not
// block readers such as the status CLI.
type SQLiteStore struct {
	db *sql.DB

	saveStmt   *sql.Stmt
	loadStmt   *sql.Stmt
	deleteStmt *sql.Stmt
}

// SQLiteStoreConfig configures the SQLite store.
type SQLiteStoreConfig struct {
	// Path is the database file path.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds.
	BusyTimeout time.Duration
}

// NewSQLiteStore opens (creating if needed) the guard state database at path
// with default settings.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	return NewSQLiteStoreWithConfig(SQLiteStoreConfig{Path: path})
}

// NewSQLiteStoreWithConfig opens the guard state database with custom
// configuration.
func NewSQLiteStoreWithConfig(cfg SQLiteStoreConfig) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.Path, int(cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStore{db: db}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS guard_states (
		node_id           TEXT PRIMARY KEY,
		inbound           TEXT NOT NULL,
		outbound          TEXT NOT NULL,
		handoff_triggered INTEGER NOT NULL,
		lockdown_active   INTEGER NOT NULL,
		saved_at          INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_guard_states_saved_at ON guard_states(saved_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.saveStmt, err = s.db.Prepare(`
		INSERT INTO guard_states (node_id, inbound, outbound, handoff_triggered, lockdown_active, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (node_id) DO UPDATE SET
			inbound = excluded.inbound,
			outbound = excluded.outbound,
			handoff_triggered = excluded.handoff_triggered,
			lockdown_active = excluded.lockdown_active,
			saved_at = excluded.saved_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare save statement: %w", err)
	}

	s.loadStmt, err = s.db.Prepare(`
		SELECT inbound, outbound, handoff_triggered, lockdown_active, saved_at
		FROM guard_states WHERE node_id = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare load statement: %w", err)
	}

	s.deleteStmt, err = s.db.Prepare(`DELETE FROM guard_states WHERE node_id = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare delete statement: %w", err)
	}

	return nil
}

// Save upserts the state document for its node identity.
func (s *SQLiteStore) Save(ctx context.Context, doc *StateDocument) error {
	inbound, err := json.Marshal(doc.Inbound)
	if err != nil {
		return fmt.Errorf("failed to marshal inbound channel: %w", err)
	}
	outbound, err := json.Marshal(doc.Outbound)
	if err != nil {
		return fmt.Errorf("failed to marshal outbound channel: %w", err)
	}

	savedAt := doc.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err = s.saveStmt.ExecContext(ctx,
		doc.NodeID,
		string(inbound),
		string(outbound),
		boolToInt(doc.HandoffTriggered),
		boolToInt(doc.LockdownActive),
		savedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save state for node %q: %w", doc.NodeID, err)
	}
	return nil
}

// Load returns the state document for nodeID, or nil when no row exists.
// A row whose channel payloads fail to decode is reported as an error;
// the caller decides whether to fall back to fresh defaults.
func (s *SQLiteStore) Load(ctx context.Context, nodeID string) (*StateDocument, error) {
	var (
		inbound, outbound string
		handoff, lockdown int
		savedAtMillis     int64
	)

	row := s.loadStmt.QueryRowContext(ctx, nodeID)
	err := row.Scan(&inbound, &outbound, &handoff, &lockdown, &savedAtMillis)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state for node %q: %w", nodeID, err)
	}

	doc := &StateDocument{
		NodeID:           nodeID,
		HandoffTriggered: handoff != 0,
		LockdownActive:   lockdown != 0,
		SavedAt:          time.UnixMilli(savedAtMillis),
	}
	if err := json.Unmarshal([]byte(inbound), &doc.Inbound); err != nil {
		return nil, fmt.Errorf("corrupt inbound channel for node %q: %w", nodeID, err)
	}
	if err := json.Unmarshal([]byte(outbound), &doc.Outbound); err != nil {
		return nil, fmt.Errorf("corrupt outbound channel for node %q: %w", nodeID, err)
	}

	return doc, nil
}

// Delete removes the state document for nodeID.
func (s *SQLiteStore) Delete(ctx context.Context, nodeID string) error {
	if _, err := s.deleteStmt.ExecContext(ctx, nodeID); err != nil {
		return fmt.Errorf("failed to delete state for node %q: %w", nodeID, err)
	}
	return nil
}

// Close closes the prepared statements and the database.
func (s *SQLiteStore) Close() error {
	for _, stmt := range []*sql.Stmt{s.saveStmt, s.loadStmt, s.deleteStmt} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
