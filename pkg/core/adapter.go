package core

import "context"

// Storage keys. Each key is persisted independently: writing one never
// touches the other.
const (
	// KeyNotes holds the full note collection as a JSON array.
	KeyNotes = "notes"

	// KeyTheme holds the persisted theme preference as a JSON string.
	KeyTheme = "theme"
)

// Adapter defines the contract for persisting opaque values under string
// keys. Adhering to this interface keeps the core independent of the
// underlying storage mechanism (filesystem, SQLite, memory).
//
// Implementations must return ErrKeyNotFound from Load for keys that were
// never saved, and must treat Save as a full replacement of the key's value.
type Adapter interface {
	// Load retrieves the raw bytes stored under key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save persists data under key, replacing any previous value.
	Save(ctx context.Context, key string, data []byte) error
}

// Watchable defines an interface for adapters that can observe external
// changes to their backing storage. The pattern is a doublestar glob
// matched against key names; "*" watches everything.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
