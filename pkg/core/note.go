package core

import (
	"strings"
	"time"
)

// DefaultTitle is the title given to freshly created notes.
const DefaultTitle = "Untitled"

// Note is the central entity of the domain: a titled block of free-form
// text with creation and update timestamps.
//
// Timestamps are milliseconds since the Unix epoch, matching the persisted
// representation exactly. ID and CreatedAt are immutable after creation.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Created returns the creation timestamp as a time.Time.
func (n Note) Created() time.Time {
	return time.UnixMilli(n.CreatedAt)
}

// Updated returns the last-modification timestamp as a time.Time.
func (n Note) Updated() time.Time {
	return time.UnixMilli(n.UpdatedAt)
}

// Matches reports whether the note's title or content contains the trimmed
// query, case-insensitively. An empty (or all-whitespace) query matches
// every note.
func (n Note) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// valid reports whether a persisted record carries the required fields.
// Records without an ID (hand-edited or truncated payloads) are not
// addressable: every operation identifies notes by ID.
func (n Note) valid() bool {
	return n.ID != "" && n.CreatedAt >= 0 && n.UpdatedAt >= n.CreatedAt
}

// Patch describes a partial update to a note. Nil fields are left untouched.
type Patch struct {
	Title   *string
	Content *string
}

// String returns a pointer to s, for building patches inline.
func String(s string) *string {
	return &s
}
