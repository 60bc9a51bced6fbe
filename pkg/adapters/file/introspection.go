package file

import (
	"github.com/aretw0/introspection"
)

// AdapterState exposes internal state for observability.
type AdapterState struct {
	Dir           string `json:"dir"`
	ReadOnly      bool   `json:"read_only"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (a *Adapter) State() any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return AdapterState{
		Dir:           a.Dir,
		ReadOnly:      a.config.ReadOnly,
		WatcherActive: a.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (a *Adapter) ComponentType() string {
	return "file"
}

var _ introspection.Introspectable = (*Adapter)(nil)
var _ introspection.Component = (*Adapter)(nil)

func (a *Adapter) setWatcherActive(active bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.watcherActive = active
}
