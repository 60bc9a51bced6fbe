// Package frontmatter converts notes to and from Markdown documents with a
// YAML frontmatter header. This is the interchange format for export and
// import: the body is the note content, the header carries identity and
// timestamps.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/peat/pkg/core"
)

// header is the YAML frontmatter schema. Timestamps are RFC 3339 so the
// files stay readable and survive hand edits.
type header struct {
	ID      string `yaml:"id,omitempty"`
	Title   string `yaml:"title"`
	Created string `yaml:"created,omitempty"`
	Updated string `yaml:"updated,omitempty"`
}

// Render serializes a note to Markdown with frontmatter.
func Render(n core.Note) ([]byte, error) {
	h := header{
		ID:    n.ID,
		Title: n.Title,
	}
	if n.CreatedAt > 0 {
		h.Created = time.UnixMilli(n.CreatedAt).UTC().Format(time.RFC3339Nano)
	}
	if n.UpdatedAt > 0 {
		h.Updated = time.UnixMilli(n.UpdatedAt).UTC().Format(time.RFC3339Nano)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(h); err != nil {
		return nil, err
	}
	encoder.Close()
	buf.WriteString("---\n")
	buf.WriteString(n.Content)

	return buf.Bytes(), nil
}

// Parse reads a stream and decodes it into a Note. Documents without a
// frontmatter block become a note whose content is the whole document;
// Import fills in whatever identity is missing.
func Parse(r io.Reader) (core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Note{}, err
	}

	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return core.Note{Content: string(data)}, nil
	}

	rest := data[3:]
	parts := bytes.SplitN(rest, []byte("---"), 2)
	if len(parts) == 1 {
		return core.Note{}, errors.New("frontmatter started but no closing delimiter found")
	}

	var h header
	if err := yaml.Unmarshal(parts[0], &h); err != nil {
		return core.Note{}, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	content := strings.TrimPrefix(string(parts[1]), "\n")
	content = strings.TrimPrefix(content, "\r\n")

	return core.Note{
		ID:        h.ID,
		Title:     h.Title,
		Content:   content,
		CreatedAt: parseTime(h.Created),
		UpdatedAt: parseTime(h.Updated),
	}, nil
}

func parseTime(s string) int64 {
	if s == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}
