package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes       int    `json:"notes"`
	Theme       string `json:"theme"`
	SelectedID  string `json:"selected_id"`
	Query       string `json:"query"`
	AdapterType string `json:"adapter_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	adapterType := "unknown"
	if s.adapter != nil {
		adapterType = "adapter"
		if comp, ok := s.adapter.(introspection.Component); ok {
			adapterType = comp.ComponentType()
		}
	}

	return StoreState{
		Notes:       len(s.notes),
		Theme:       string(s.theme),
		SelectedID:  s.selected,
		Query:       s.query,
		AdapterType: adapterType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
