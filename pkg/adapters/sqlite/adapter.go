// Package sqlite provides a core.Adapter backed by a single SQLite
// database file. It suits setups where the state directory lives on a
// filesystem with unreliable rename semantics, or where one file is easier
// to back up than a directory.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/introspection"
	_ "modernc.org/sqlite"

	"github.com/aretw0/peat/pkg/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);`

// Adapter implements core.Adapter on a kv table.
type Adapter struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Config holds the configuration for the sqlite adapter.
type Config struct {
	Path   string
	Logger *slog.Logger
}

// New opens (creating if necessary) the database at config.Path and applies
// the schema.
func New(config Config) (*Adapter, error) {
	if config.Path == "" {
		return nil, errors.New("sqlite adapter requires a database path")
	}

	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	if config.Logger != nil {
		config.Logger.Debug("sqlite adapter ready", "path", config.Path)
	}

	return &Adapter{db: db, path: config.Path, logger: config.Logger}, nil
}

// Load retrieves the bytes stored under key.
func (a *Adapter) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := a.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", core.ErrKeyNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return value, nil
}

// Save persists data under key, replacing any previous value.
func (a *Adapter) Save(ctx context.Context, key string, data []byte) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, data, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// AdapterState exposes internal state for observability.
type AdapterState struct {
	Path string `json:"path"`
	Keys int    `json:"keys"`
}

// State implements introspection.Introspectable.
func (a *Adapter) State() any {
	keys := 0
	_ = a.db.QueryRow("SELECT COUNT(*) FROM kv").Scan(&keys)
	return AdapterState{Path: a.path, Keys: keys}
}

// ComponentType implements introspection.Component.
func (a *Adapter) ComponentType() string {
	return "sqlite"
}

var _ core.Adapter = (*Adapter)(nil)
var _ introspection.Introspectable = (*Adapter)(nil)
var _ introspection.Component = (*Adapter)(nil)
