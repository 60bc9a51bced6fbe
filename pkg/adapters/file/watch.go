package file

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/peat/pkg/core"
)

// Watch observes external changes to the state directory and emits one
// event per settled change whose key matches pattern. The channel closes
// when ctx is cancelled. Bursts on the same key (editors, atomic renames)
// collapse into a single event.
func (a *Adapter) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	if err := a.Initialize(ctx); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(a.Dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", a.Dir, err)
	}

	events := make(chan core.Event)
	deb := newDebouncer(50 * time.Millisecond)
	a.setWatcherActive(true)

	emit := func(e core.Event) {
		defer func() {
			// Recover from panic if channel was closed (watcher stopping).
			_ = recover()
		}()
		select {
		case events <- e:
		case <-ctx.Done():
		}
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer a.setWatcherActive(false)
		defer watcher.Close()
		defer close(events)

		err := a.watchLoop(ctx, watcher, pattern, deb, emit)

		// Stop accepting new events and wait for in-flight timers before
		// the deferred close tears the channel down.
		deb.stopAndWait(5 * time.Second)
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		if a.config.Logger != nil {
			a.config.Logger.Error("watcher terminated", "error", err)
		}
	}))

	return events, nil
}

func (a *Adapter) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, deb *debouncer, emit func(core.Event)) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			a.processEvent(event, pattern, deb, emit)

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if a.config.Logger != nil {
				a.config.Logger.Error("fsnotify error", "error", wErr)
			}
		}
	}
}

func (a *Adapter) processEvent(event fsnotify.Event, pattern string, deb *debouncer, emit func(core.Event)) {
	if a.config.Logger != nil {
		a.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	key, ok := a.keyFor(event.Name)
	if !ok {
		return
	}
	if match, err := doublestar.Match(pattern, key); err != nil || !match {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	deb.add(core.Event{
		Type:      eType,
		Key:       key,
		Timestamp: time.Now().UnixMilli(),
	}, emit)
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		// Chmod and friends carry no content change.
		return ""
	}
}
