package core

import (
	"context"
	"errors"
	"io"
	"iter"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the canonical note collection together with the transient
// session state: the current selection and the active search query. It is
// the only component that mutates notes; presentation layers call its
// operations and re-read derived state afterwards.
//
// Every mutation persists the affected key through the adapter before
// returning. Persistence failures are logged and swallowed: the in-memory
// collection remains authoritative for the rest of the session.
type Store struct {
	mu      sync.RWMutex
	adapter Adapter
	logger  *slog.Logger

	notes    []Note
	theme    Theme
	selected string
	query    string
}

// NewStore loads persisted state through the adapter and returns a ready
// Store. Missing or corrupt state falls back to defaults: an empty
// collection and the light theme. When the loaded collection is non-empty,
// the first note becomes selected so the frontend has something to show.
func NewStore(ctx context.Context, adapter Adapter, logger *slog.Logger) *Store {
	s := &Store{
		adapter: adapter,
		logger:  logger,
		theme:   DefaultTheme,
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	notes := LoadJSON(ctx, s.adapter, KeyNotes, []Note{}, s.logger)
	for _, n := range notes {
		if !n.valid() {
			if s.logger != nil {
				s.logger.Warn("discarding note collection with malformed record", "id", n.ID)
			}
			notes = []Note{}
			break
		}
	}

	theme := LoadJSON(ctx, s.adapter, KeyTheme, DefaultTheme, s.logger)
	if !theme.Valid() {
		theme = DefaultTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
	s.theme = theme
	if s.indexLocked(s.selected) < 0 {
		s.selected = ""
	}
	if s.selected == "" && len(s.notes) > 0 {
		s.selected = s.notes[0].ID
	}
}

// Reload re-reads notes and theme from the adapter, replacing in-memory
// state with whatever another process last wrote. The search query is kept;
// the selection is kept when its note still exists, otherwise it moves to
// the first note.
func (s *Store) Reload(ctx context.Context) {
	s.load(ctx)
}

// Create inserts a new untitled, empty note at the front of the collection,
// selects it, and returns its ID. IDs are random UUIDs; both timestamps are
// set to the same instant.
func (s *Store) Create(ctx context.Context) string {
	now := time.Now().UnixMilli()
	n := Note{
		ID:        uuid.NewString(),
		Title:     DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.notes = append([]Note{n}, s.notes...)
	s.selected = n.ID
	snapshot := slices.Clone(s.notes)
	s.mu.Unlock()

	SaveJSON(ctx, s.adapter, KeyNotes, snapshot, s.logger)
	return n.ID
}

// Update merges patch into the note with the given ID and stamps its
// UpdatedAt. The note keeps its position in the collection. Unknown IDs are
// a silent no-op.
func (s *Store) Update(ctx context.Context, id string, patch Patch) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	n := &s.notes[i]
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	n.UpdatedAt = time.Now().UnixMilli()
	snapshot := slices.Clone(s.notes)
	s.mu.Unlock()

	SaveJSON(ctx, s.adapter, KeyNotes, snapshot, s.logger)
}

// Delete removes the note with the given ID. Unknown IDs are a silent
// no-op. Delete never touches the selection: callers decide what to select
// next, usually via NextSelection.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	snapshot := slices.Clone(s.notes)
	s.mu.Unlock()

	SaveJSON(ctx, s.adapter, KeyNotes, snapshot, s.logger)
}

// List returns the notes matching query, newest-created first. The sequence
// is lazy and restartable: each range starts from a fresh snapshot, so
// mutations made between iterations are visible on the next one.
func (s *Store) List(query string) iter.Seq[Note] {
	return func(yield func(Note) bool) {
		s.mu.RLock()
		snapshot := slices.Clone(s.notes)
		s.mu.RUnlock()

		for _, n := range snapshot {
			if !n.Matches(query) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Notes returns a copy of the full, unfiltered collection in display order.
func (s *Store) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

// Get returns the note with the given ID.
func (s *Store) Get(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.notes[i], true
	}
	return Note{}, false
}

// Len returns the number of notes in the collection, ignoring any query.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Index returns the position of the note with the given ID in the
// unfiltered collection, or -1.
func (s *Store) Index(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked(id)
}

func (s *Store) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}

// Select marks the note with the given ID as selected. An empty ID clears
// the selection; unknown IDs are ignored.
func (s *Store) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		s.selected = ""
		return
	}
	if s.indexLocked(id) >= 0 {
		s.selected = id
	}
}

// ClearSelection drops the current selection.
func (s *Store) ClearSelection() {
	s.Select("")
}

// Selected returns the currently selected note, if any.
func (s *Store) Selected() (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(s.selected); i >= 0 {
		return s.notes[i], true
	}
	return Note{}, false
}

// SelectedID returns the ID of the selected note, or "".
func (s *Store) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SetQuery replaces the active search query. The query only affects List;
// it is never persisted.
func (s *Store) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
}

// Query returns the active search query.
func (s *Store) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Theme returns the active theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme switches to the given theme and persists the preference under
// its own key, leaving the note collection untouched. Invalid themes are
// ignored.
func (s *Store) SetTheme(ctx context.Context, t Theme) {
	if !t.Valid() {
		return
	}
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()

	SaveJSON(ctx, s.adapter, KeyTheme, t, s.logger)
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) Theme {
	s.mu.Lock()
	s.theme = s.theme.Other()
	t := s.theme
	s.mu.Unlock()

	SaveJSON(ctx, s.adapter, KeyTheme, t, s.logger)
	return t
}

// Import appends foreign notes to the collection in a single batch,
// persisting once at the end. Notes whose ID already exists are skipped;
// notes without an ID get a fresh one; missing timestamps are filled with
// the import instant. Returns the number of notes added.
func (s *Store) Import(ctx context.Context, notes []Note) int {
	now := time.Now().UnixMilli()

	s.mu.Lock()
	added := 0
	for _, n := range notes {
		if n.ID != "" && s.indexLocked(n.ID) >= 0 {
			continue
		}
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if n.CreatedAt <= 0 {
			n.CreatedAt = now
		}
		if n.UpdatedAt < n.CreatedAt {
			n.UpdatedAt = n.CreatedAt
		}
		s.notes = append(s.notes, n)
		added++
	}
	if added == 0 {
		s.mu.Unlock()
		return 0
	}
	if s.selected == "" && len(s.notes) > 0 {
		s.selected = s.notes[0].ID
	}
	snapshot := slices.Clone(s.notes)
	s.mu.Unlock()

	SaveJSON(ctx, s.adapter, KeyNotes, snapshot, s.logger)
	return added
}

// Watch observes external changes to backing storage if the adapter
// supports it.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.adapter.(Watchable)
	if !ok {
		return nil, errors.New("adapter does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// Close releases adapter resources, if the adapter holds any.
func (s *Store) Close() error {
	if c, ok := s.adapter.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
