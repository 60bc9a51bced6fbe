package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"log/slog"

	"github.com/aretw0/peat"
	"github.com/aretw0/peat/pkg/adapters/file"
	"github.com/aretw0/peat/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadOnlyMode ensures that ReadOnly mode effectively blocks all write
// operations while the in-memory session stays fully usable: mutations
// apply to the live collection and are silently not persisted.
func TestReadOnlyMode(t *testing.T) {
	// 1. Setup a clean temp environment with existing state
	tempDir := t.TempDir()
	existingID := prepareNotebook(t, tempDir)

	before, err := os.ReadFile(filepath.Join(tempDir, "notes.json"))
	require.NoError(t, err)

	ctx := context.Background()

	// 2. Open in Read-Only Mode
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store, err := peat.Open(ctx, tempDir, peat.WithReadOnly(true), peat.WithLogger(logger))
	require.NoError(t, err)
	defer store.Close()

	// 3. Verify Reading Works
	n, ok := store.Get(existingID)
	require.True(t, ok)
	assert.Equal(t, "original content", n.Content)

	// 4. Mutations apply in memory: availability over durability
	newID := store.Create(ctx)
	store.Update(ctx, newID, peat.Patch{Title: peat.String("forbidden")})
	assert.Equal(t, 2, store.Len())

	store.Delete(ctx, existingID)
	_, ok = store.Get(existingID)
	assert.False(t, ok, "delete should apply to the session")

	// 5. But nothing reached disk
	after, err := os.ReadFile(filepath.Join(tempDir, "notes.json"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "state on disk should be untouched in ReadOnly mode")

	// 6. The adapter itself reports the sentinel
	adapter := file.New(file.Config{Dir: tempDir, ReadOnly: true})
	err = adapter.Save(ctx, core.KeyNotes, []byte("[]"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrReadOnly), "Expected ErrReadOnly, got: %v", err)

	// 7. A fresh writable open still sees the original state
	reopened, err := peat.Open(ctx, tempDir)
	require.NoError(t, err)
	defer reopened.Close()
	_, ok = reopened.Get(existingID)
	assert.True(t, ok, "original note should have survived the read-only session")
}

func prepareNotebook(t *testing.T, dir string) string {
	t.Helper()
	ctx := context.Background()

	store, err := peat.Open(ctx, dir)
	require.NoError(t, err)
	defer store.Close()

	id := store.Create(ctx)
	store.Update(ctx, id, peat.Patch{
		Title:   peat.String("existing"),
		Content: peat.String("original content"),
	})
	return id
}
