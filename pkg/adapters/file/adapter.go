package file

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/aretw0/peat/pkg/core"
)

// Adapter implements core.Adapter on a flat directory: one JSON file per
// key. Writes go through an atomic rename so readers never observe a
// half-written file, and an interrupted write leaves the previous value
// intact.
type Adapter struct {
	Dir    string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the file adapter.
type Config struct {
	Dir      string
	ReadOnly bool
	Logger   *slog.Logger
}

// New creates a new directory-backed adapter.
func New(config Config) *Adapter {
	return &Adapter{
		Dir:    config.Dir,
		config: config,
	}
}

// Initialize ensures the backing directory exists.
func (a *Adapter) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	return nil
}

// Load retrieves the raw bytes stored under key.
func (a *Adapter) Load(ctx context.Context, key string) ([]byte, error) {
	path, err := a.pathFor(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrKeyNotFound, key)
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Save persists data under key, replacing any previous value.
func (a *Adapter) Save(ctx context.Context, key string, data []byte) error {
	if a.config.ReadOnly {
		return core.ErrReadOnly
	}

	path, err := a.pathFor(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// pathFor maps a key to its file. Keys are plain identifiers; anything that
// could escape the state directory is rejected.
func (a *Adapter) pathFor(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key: %q", key)
	}
	return filepath.Join(a.Dir, key+".json"), nil
}

// keyFor maps a file path back to its key. The second return is false for
// paths that do not correspond to a key, such as the temporary files the
// atomic rename leaves behind mid-write.
func (a *Adapter) keyFor(path string) (string, bool) {
	base := filepath.Base(path)
	key, ok := strings.CutSuffix(base, ".json")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
