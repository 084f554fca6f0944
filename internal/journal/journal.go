package journal

import (
	"database/sql"
	_ "embed"
	"fmt"
	"sync/atomic"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema (commands, plans, responses)
const currentSchemaVersion = 1

// Journal provides durable append-only storage for protocol traffic.
// Uses SQLite with WAL mode for concurrent read access.
type Journal struct {
	db    *sql.DB
	clock clock
	now   func() time.Time
}

// Open creates or opens a journal database at the given path and
// applies pragmas and migrations. The writing session's logical clock
// resumes from the highest recorded sequence number.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
//
// Open is idempotent.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect journal: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY instead of retrying around it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	j := &Journal{db: db, now: time.Now}

	var last sql.NullInt64
	if err := db.QueryRow("SELECT MAX(seq) FROM commands").Scan(&last); err != nil {
		db.Close()
		return nil, fmt.Errorf("resume clock: %w", err)
	}
	if last.Valid {
		j.clock.seq.Store(last.Int64)
	}
	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// clock stamps appended commands with a strictly increasing sequence
// number, so replay order never depends on wall-clock races.
type clock struct {
	seq atomic.Int64
}

func (c *clock) next() int64 { return c.seq.Add(1) }

// LastSeq returns the most recently issued sequence number.
func (j *Journal) LastSeq() int64 {
	return j.clock.seq.Load()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

// applySchema creates tables if they don't exist and runs migrations.
// Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	// Future migrations slot in here keyed on version.
	if version < currentSchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
	}
	return nil
}
