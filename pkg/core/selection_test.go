package core_test

import (
	"testing"

	"github.com/aretw0/peat/pkg/core"
)

func TestNextSelection(t *testing.T) {
	notes := func(ids ...string) []core.Note {
		out := make([]core.Note, len(ids))
		for i, id := range ids {
			out[i] = core.Note{ID: id}
		}
		return out
	}

	cases := []struct {
		name         string
		after        []core.Note
		deletedIndex int
		want         string
		ok           bool
	}{
		{"middle falls back to predecessor", notes("c", "a"), 1, "c", true},
		{"first falls back to new first", notes("b", "a"), 0, "b", true},
		{"last falls back to predecessor", notes("c", "b"), 2, "b", true},
		{"single remaining note", notes("a"), 0, "a", true},
		{"empty collection selects nothing", notes(), 0, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := core.NextSelection(tc.after, tc.deletedIndex)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
