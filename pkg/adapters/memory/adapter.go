// Package memory provides a volatile core.Adapter for tests and throwaway
// sessions: state lives for the lifetime of the process and is never
// written anywhere.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/peat/pkg/core"
)

// Adapter implements core.Adapter over a plain map.
//
// FailSaves and FailLoads inject faults for tests that exercise the
// store's swallow-and-continue policy. They apply to every key.
type Adapter struct {
	FailSaves error
	FailLoads error

	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty in-memory adapter.
func New() *Adapter {
	return &Adapter{data: make(map[string][]byte)}
}

// Load retrieves the bytes stored under key.
func (a *Adapter) Load(ctx context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.FailLoads != nil {
		return nil, a.FailLoads
	}

	data, ok := a.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrKeyNotFound, key)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save stores a copy of data under key.
func (a *Adapter) Save(ctx context.Context, key string, data []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.FailSaves != nil {
		return a.FailSaves
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	a.data[key] = stored
	return nil
}

// AdapterState exposes internal state for observability.
type AdapterState struct {
	Keys int `json:"keys"`
}

// State implements introspection.Introspectable.
func (a *Adapter) State() any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return AdapterState{Keys: len(a.data)}
}

// ComponentType implements introspection.Component.
func (a *Adapter) ComponentType() string {
	return "memory"
}

var _ core.Adapter = (*Adapter)(nil)
var _ introspection.Introspectable = (*Adapter)(nil)
var _ introspection.Component = (*Adapter)(nil)
