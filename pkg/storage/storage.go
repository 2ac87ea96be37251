// Package storage persists the app's three durable records (settings, tasks,
// wellness) as independently-keyed JSON documents. The stores write through
// after every mutation, so a Load immediately after any Save — including
// across a process restart — observes the committed state.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Record keys. Each store owns exactly one record.
const (
	KeySettings = "settings"
	KeyTasks    = "tasks"
	KeyWellness = "wellness"
)

// ErrNoRecord is returned by Load when the key has never been saved.
var ErrNoRecord = errors.New("no record")

// Records is the contract for durable keyed-record persistence.
type Records interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// SQLite is a Records implementation over a single key-value table in the
// local database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a SQLite records store.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// EnsureTable creates the records table if it doesn't exist.
func (s *SQLite) EnsureTable(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS records (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure records table: %w", err)
	}
	return nil
}

// Load returns the stored value for key, or ErrNoRecord.
func (s *SQLite) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("load record %s: %w", key, err)
	}
	return value, nil
}

// Save upserts the value for key. The write is committed before Save returns.
func (s *SQLite) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save record %s: %w", key, err)
	}
	return nil
}
