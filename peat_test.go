package peat_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/peat"
)

// setupNotebook opens a file backed store in a scratch directory.
func setupNotebook(t *testing.T) (string, *peat.Store, context.Context, context.CancelFunc) {
	t.Helper()
	tmp := t.TempDir()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

	store, err := peat.Open(ctx, tmp)
	require.NoError(t, err)

	return tmp, store, ctx, cancel
}

func TestNotebook_EndToEnd(t *testing.T) {
	// 1. Setup
	tmp, store, ctx, cancel := setupNotebook(t)
	defer cancel()

	// 2. Author a note
	id := store.Create(ctx)
	store.Update(ctx, id, peat.Patch{
		Title:   peat.String("Groceries"),
		Content: peat.String("milk\neggs"),
	})
	store.ToggleTheme(ctx)
	require.NoError(t, store.Close())

	// 3. A fresh process sees the same state
	reopened, err := peat.Open(ctx, tmp)
	require.NoError(t, err)
	defer reopened.Close()

	n, ok := reopened.Get(id)
	require.True(t, ok, "note should survive a reopen")
	assert.Equal(t, "Groceries", n.Title)
	assert.Equal(t, "milk\neggs", n.Content)
	assert.Equal(t, peat.ThemeDark, reopened.Theme())
	assert.Equal(t, id, reopened.SelectedID(), "first note is selected on start")
}

func TestWatch_ExternalModification(t *testing.T) {
	// 1. Setup
	tmp, store, ctx, cancel := setupNotebook(t)
	defer cancel()
	defer store.Close()

	events, err := store.Watch(ctx, "*")
	require.NoError(t, err, "file backend should support watching")
	require.NotNil(t, events)

	// Give the watcher a beat to arm.
	time.Sleep(100 * time.Millisecond)

	// 2. Another process flips the theme behind our back
	themePath := filepath.Join(tmp, "theme.json")
	require.NoError(t, os.WriteFile(themePath, []byte(`"dark"`), 0644))

	// 3. The change surfaces as an event
	select {
	case event, ok := <-events:
		require.True(t, ok, "event channel closed early")
		assert.Equal(t, "theme", event.Key)
		assert.NotEmpty(t, string(event.Type))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a storage event")
	}

	// 4. Reloading picks the new value up
	store.Reload(ctx)
	assert.Equal(t, peat.ThemeDark, store.Theme())
}

func TestWatch_StopsOnCancel(t *testing.T) {
	tmp := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	store, err := peat.Open(ctx, tmp)
	require.NoError(t, err)
	defer store.Close()

	events, err := store.Watch(ctx, "*")
	require.NoError(t, err)

	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return // closed, as expected
			}
		case <-deadline:
			t.Fatal("event channel did not close after cancellation")
		}
	}
}
