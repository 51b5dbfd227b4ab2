// Package store persists the board's station selection in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/tafel/internal/logging"
	"github.com/javiermolinar/tafel/internal/station"
)

// SelectionKey is the well-known key the selection is stored under.
const SelectionKey = "wien-tafel-station"

// SQLite is a key/value settings store.
type SQLite struct {
	db *sql.DB
}

// New opens the database at path and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Open creates the parent directory of path if needed and opens the store.
func Open(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	st, err := New(path)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return st, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Put stores value under key, replacing any previous value.
func (s *SQLite) Put(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key. The bool is false when the key
// has no value.
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying %s: %w", key, err)
	}
	return value, true, nil
}

// SaveSelection persists sel under SelectionKey.
func (s *SQLite) SaveSelection(ctx context.Context, sel station.Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("encoding selection: %w", err)
	}
	return s.Put(ctx, SelectionKey, string(data))
}

// LoadSelection returns the saved selection. Missing, unreadable or
// malformed data is reported as absent.
func (s *SQLite) LoadSelection(ctx context.Context) (station.Selection, bool) {
	raw, ok, err := s.Get(ctx, SelectionKey)
	if err != nil {
		logging.Error("loading selection", err)
		return station.Selection{}, false
	}
	if !ok {
		return station.Selection{}, false
	}
	return DecodeSelection(raw)
}

// savedSelection allows telling missing fields from zero values.
type savedSelection struct {
	Name     string `json:"name"`
	RBL      int    `json:"rblId"`
	Platform *int   `json:"gleisNum"`
	Terminus *bool  `json:"atTerminus"`
}

// DecodeSelection parses a stored selection. It requires a name and an RBL;
// the platform defaults to 1 and the terminus flag to false.
func DecodeSelection(raw string) (station.Selection, bool) {
	var saved savedSelection
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		logging.Error("decoding selection", err)
		return station.Selection{}, false
	}
	if saved.Name == "" || saved.RBL == 0 {
		return station.Selection{}, false
	}

	sel := station.Selection{Name: saved.Name, RBL: saved.RBL, Platform: 1}
	if saved.Platform != nil {
		sel.Platform = *saved.Platform
	}
	if saved.Terminus != nil {
		sel.Terminus = *saved.Terminus
	}
	return sel, true
}
