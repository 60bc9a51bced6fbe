package frontmatter_test

import (
	"strings"
	"testing"

	"github.com/aretw0/peat/pkg/core"
	"github.com/aretw0/peat/pkg/frontmatter"
)

func TestRoundTrip(t *testing.T) {
	want := core.Note{
		ID:        "8a5e61f2-0b2d-4f5e-9a3c-1d2e3f4a5b6c",
		Title:     "Groceries",
		Content:   "- Milk\n- Eggs\n",
		CreatedAt: 1700000000123,
		UpdatedAt: 1700000060456,
	}

	data, err := frontmatter.Render(want)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	got, err := frontmatter.Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestParse_PlainMarkdown(t *testing.T) {
	raw := "# Just a heading\n\nNo frontmatter here.\n"

	n, err := frontmatter.Parse(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n.Content != raw {
		t.Errorf("expected whole document as content, got %q", n.Content)
	}
	if n.ID != "" || n.Title != "" {
		t.Errorf("expected empty identity, got id=%q title=%q", n.ID, n.Title)
	}
}

func TestParse_WindowsLineEndings(t *testing.T) {
	raw := "---\r\ntitle: CRLF\r\n---\r\nbody\r\n"

	n, err := frontmatter.Parse(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n.Title != "CRLF" {
		t.Errorf("expected title 'CRLF', got %q", n.Title)
	}
	if !strings.HasPrefix(n.Content, "body") {
		t.Errorf("unexpected content %q", n.Content)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Run("Unclosed Frontmatter", func(t *testing.T) {
		_, err := frontmatter.Parse(strings.NewReader("---\ntitle: dangling\n"))
		if err == nil {
			t.Error("expected error for missing closing delimiter")
		}
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		_, err := frontmatter.Parse(strings.NewReader("---\n\t{bad\n---\nbody"))
		if err == nil {
			t.Error("expected error for malformed header")
		}
	})
}

func TestParse_IgnoresMissingTimestamps(t *testing.T) {
	raw := "---\ntitle: Minimal\n---\nbody"

	n, err := frontmatter.Parse(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n.CreatedAt != 0 || n.UpdatedAt != 0 {
		t.Errorf("expected zero timestamps, got %d/%d", n.CreatedAt, n.UpdatedAt)
	}
}
