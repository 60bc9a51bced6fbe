package platform

import (
	"log/slog"

	"github.com/aretw0/peat/pkg/core"
)

// options holds the internal configuration assembled by Open.
type options struct {
	adapter  core.Adapter
	backend  string
	logger   *slog.Logger
	readOnly bool

	forceTemp bool
	devSafety bool
}

// Option defines a functional option for configuring the store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		backend:   BackendFile,
		devSafety: true,
	}
}

// Built-in backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAdapter injects a custom storage adapter (e.g. a mock, or a backend
// from another module). If provided, the built-in backends are skipped and
// the state directory argument is ignored.
func WithAdapter(a core.Adapter) Option {
	return func(o *options) {
		o.adapter = a
	}
}

// WithBackend selects a built-in backend by name ("file", "sqlite",
// "memory"). Defaults to "file".
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithReadOnly enables read-only mode: every write returns ErrReadOnly,
// which the store logs and swallows. Useful for inspecting state without
// any chance of touching it.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithForceTemp forces the state directory into a temporary location
// (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox mechanism when running via `go run`.
// By default (true), state is re-rooted into a temporary directory so
// development runs never touch real notes.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
