package core

import "fmt"

// EventType represents the kind of change observed in backing storage.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an externally observed change to a storage key. Adapters
// that implement Watchable emit one per settled change, so interactive
// frontends can refresh state another process wrote.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp in milliseconds
}

// String implements lifecycle.Event so adapter watch loops can hand events
// straight to lifecycle-managed consumers.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Key)
}
