package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteArchive implements Recorder backed by a SQLite database.
type SQLiteArchive struct {
	db     *sql.DB
	config *Config
	logger *slog.Logger

	insertStmt *sql.Stmt
}

// NewSQLiteArchive opens (creating if needed) the analysis archive at
// cfg.Path.
func NewSQLiteArchive(cfg *Config) (*SQLiteArchive, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, fmt.Errorf("archive path cannot be empty")
	}

	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}

	a := &SQLiteArchive{
		db:     db,
		config: cfg,
		logger: slog.Default().With("component", "archive"),
	}

	if err := a.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	a.logger.Info("analysis archive opened",
		"path", cfg.Path,
		"retention_days", cfg.RetentionDays,
	)

	return a, nil
}

func (a *SQLiteArchive) initialize() error {
	if _, err := a.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id         TEXT PRIMARY KEY,
		node_id    TEXT NOT NULL,
		direction  TEXT NOT NULL,
		language   TEXT NOT NULL,
		signals    TEXT NOT NULL,
		flags      TEXT NOT NULL,
		risk_delta REAL NOT NULL,
		level      TEXT NOT NULL,
		handoff    INTEGER NOT NULL,
		timestamp  INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_timestamp ON analyses(timestamp);
	CREATE INDEX IF NOT EXISTS idx_analyses_node ON analyses(node_id, timestamp);
	`
	if _, err := a.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create archive schema: %w", err)
	}

	stmt, err := a.db.Prepare(`
		INSERT INTO analyses (id, node_id, direction, language, signals, flags, risk_delta, level, handoff, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	a.insertStmt = stmt

	return nil
}

// Record appends one analysis record. A missing ID is filled in.
func (a *SQLiteArchive) Record(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	signals, err := json.Marshal(rec.Signals)
	if err != nil {
		return fmt.Errorf("failed to marshal signals: %w", err)
	}
	flags, err := json.Marshal(rec.Flags)
	if err != nil {
		return fmt.Errorf("failed to marshal flags: %w", err)
	}

	_, err = a.insertStmt.ExecContext(ctx,
		rec.ID,
		rec.NodeID,
		rec.Direction,
		rec.Language,
		string(signals),
		string(flags),
		rec.RiskDelta,
		rec.Level,
		boolToInt(rec.Handoff),
		rec.Timestamp.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis record: %w", err)
	}
	return nil
}

// Prune deletes records older than the retention period. It returns the
// number of rows removed. With RetentionDays == 0 it is a no-op.
func (a *SQLiteArchive) Prune(ctx context.Context) (int64, error) {
	if a.config.RetentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().AddDate(0, 0, -a.config.RetentionDays)
	res, err := a.db.ExecContext(ctx,
		`DELETE FROM analyses WHERE timestamp < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to prune archive: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		a.logger.Info("archive pruned",
			"deleted", deleted,
			"cutoff", cutoff.Format(time.RFC3339),
		)
	}
	return deleted, nil
}

// CountForNode returns the number of archived records for one node.
func (a *SQLiteArchive) CountForNode(ctx context.Context, nodeID string) (int64, error) {
	var n int64
	err := a.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM analyses WHERE node_id = ?`, nodeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count archive records: %w", err)
	}
	return n, nil
}

// Close closes the insert statement and the database.
func (a *SQLiteArchive) Close() error {
	if a.insertStmt != nil {
		a.insertStmt.Close()
	}
	return a.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
