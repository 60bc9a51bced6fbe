package file

import (
	"sync"
	"time"

	"github.com/aretw0/peat/pkg/core"
)

// debouncer collapses event bursts per key: the first event on a key opens
// a window, and when it elapses the latest event seen for that key is
// emitted. Atomic renames and chatty editors produce several filesystem
// events for what a user perceives as one change.
type debouncer struct {
	window time.Duration

	mu      sync.Mutex
	pending map[string]core.Event
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window:  window,
		pending: make(map[string]core.Event),
		timers:  make(map[string]*time.Timer),
	}
}

// add schedules emit for the event's key. Later events on the same key
// within the window replace the pending one.
func (d *debouncer) add(e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending[e.Key] = e
	if _, open := d.timers[e.Key]; open {
		return
	}

	key := e.Key
	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.window, func() {
		defer d.wg.Done()

		d.mu.Lock()
		pe, ok := d.pending[key]
		delete(d.pending, key)
		delete(d.timers, key)
		stopped := d.stopped
		d.mu.Unlock()

		if ok && !stopped {
			emit(pe)
		}
	})
}

// stopAndWait rejects further events and waits for in-flight timers to
// finish, up to timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
