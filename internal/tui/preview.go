package tui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/peat/pkg/core"
)

// renderedPreview is one cached glamour render together with the inputs it
// was produced from.
type renderedPreview struct {
	updatedAt int64
	theme     core.Theme
	width     int
	output    string
}

// previewCache memoizes glamour output per note. Rendering markdown is the
// most expensive thing the UI does, and the result only changes when the
// note, the theme, or the pane width does.
type previewCache struct {
	mu      sync.Mutex
	entries map[string]renderedPreview
}

func newPreviewCache() *previewCache {
	return &previewCache{entries: make(map[string]renderedPreview)}
}

// get retrieves a cached render if it is still fresh for the given inputs.
func (c *previewCache) get(n core.Note, theme core.Theme, width int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[n.ID]
	if !ok {
		return "", false
	}
	if entry.updatedAt != n.UpdatedAt || entry.theme != theme || entry.width != width {
		return "", false
	}
	return entry.output, true
}

func (c *previewCache) set(n core.Note, theme core.Theme, width int, output string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[n.ID] = renderedPreview{
		updatedAt: n.UpdatedAt,
		theme:     theme,
		width:     width,
		output:    output,
	}
}

func (c *previewCache) forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
}

// render returns the note as styled terminal markdown, consulting the cache
// first. Renders include the title as a top-level heading so the preview
// reads like the exported document.
func (c *previewCache) render(n core.Note, theme core.Theme, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	if out, ok := c.get(n, theme, width); ok {
		return out, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build renderer: %w", err)
	}

	doc := "# " + n.Title + "\n\n" + n.Content
	out, err := r.Render(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render note: %w", err)
	}

	c.set(n, theme, width, out)
	return out, nil
}
