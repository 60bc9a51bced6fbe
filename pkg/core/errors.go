package core

import "errors"

// Common errors.
var (
	// ErrKeyNotFound is returned by Adapter.Load when the key has never
	// been saved. Callers treat it as "use the default", not as a failure.
	ErrKeyNotFound = errors.New("key not found")

	// ErrReadOnly is returned by Adapter.Save when the adapter was opened
	// in read-only mode.
	ErrReadOnly = errors.New("adapter is in read-only mode")
)
