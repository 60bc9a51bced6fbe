package peat

import (
	"context"
	"log/slog"

	"github.com/aretw0/peat/internal/platform"
	"github.com/aretw0/peat/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Note is a public alias for the note entity.
type Note = core.Note

// Patch is a public alias for partial note updates.
type Patch = core.Patch

// Theme is a public alias for the color theme.
type Theme = core.Theme

// Event is a public alias for storage change events.
type Event = core.Event

// Store is a public alias for the note store.
type Store = core.Store

// Adapter is a public alias for the storage contract.
type Adapter = core.Adapter

// Themes.
const (
	ThemeLight = core.ThemeLight
	ThemeDark  = core.ThemeDark
)

// Built-in backend names, for use with WithBackend.
const (
	BackendFile   = platform.BackendFile
	BackendSQLite = platform.BackendSQLite
	BackendMemory = platform.BackendMemory
)

// --- Configuration ---

// Option defines a functional option for configuring the store.
type Option = platform.Option

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithAdapter injects a custom storage adapter.
func WithAdapter(a core.Adapter) Option {
	return platform.WithAdapter(a)
}

// WithBackend selects a built-in backend by name ("file", "sqlite", "memory").
func WithBackend(name string) Option {
	return platform.WithBackend(name)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithForceTemp forces the state directory into a temporary location (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the sandbox mechanism when running via `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// Open loads the notebook rooted at stateDir and returns a ready Store.
// An empty stateDir means the platform default location.
func Open(ctx context.Context, stateDir string, opts ...Option) (*core.Store, error) {
	return platform.Open(ctx, stateDir, opts...)
}

// --- Helpers ---

// Pointer helpers for building patches inline.
var String = core.String

// NextSelection decides which note to select after a deletion.
func NextSelection(notes []Note, deletedIndex int) (string, bool) {
	return core.NextSelection(notes, deletedIndex)
}

// --- Safety & Utils ---

// DefaultStateDir returns the platform default state directory.
func DefaultStateDir() string {
	return platform.DefaultStateDir()
}

// ResolveStateDir determines the actual state directory based on safety rules.
func ResolveStateDir(userDir string, forceTemp bool) string {
	return platform.ResolveStateDir(userDir, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
