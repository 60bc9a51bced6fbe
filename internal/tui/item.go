package tui

import (
	"strings"

	"github.com/aretw0/peat/pkg/core"
)

// noteItem adapts a note to the bubbles list contract.
type noteItem struct {
	note core.Note
}

func (i noteItem) Title() string { return displayTitle(i.note.Title) }

func (i noteItem) Description() string {
	desc := "edited " + i.note.Updated().Format("Jan 2 15:04")
	if line := firstLine(i.note.Content); line != "" {
		desc += " · " + line
	}
	return desc
}

// FilterValue satisfies list.Item. The list's own filtering stays disabled;
// matching happens in the store so search covers content as well as titles.
func (i noteItem) FilterValue() string { return i.note.Title }

// displayTitle substitutes a visible label for blank titles.
func displayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// firstLine returns the first non-blank content line with markdown heading
// markers stripped, for use as a one line summary.
func firstLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "# "))
		if line != "" {
			return line
		}
	}
	return ""
}
