package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/peat"
)

// resolveNote finds the note a command line reference points at. Exact IDs
// win, then exact titles, then unambiguous ID prefixes.
func resolveNote(store *peat.Store, ref string) (peat.Note, error) {
	if n, ok := store.Get(ref); ok {
		return n, nil
	}

	var byTitle []peat.Note
	var byPrefix []peat.Note
	for _, n := range store.Notes() {
		if n.Title == ref {
			byTitle = append(byTitle, n)
		}
		if strings.HasPrefix(n.ID, ref) {
			byPrefix = append(byPrefix, n)
		}
	}

	if len(byTitle) == 1 {
		return byTitle[0], nil
	}
	if len(byTitle) > 1 {
		return peat.Note{}, fmt.Errorf("title %q matches %d notes, use an ID", ref, len(byTitle))
	}
	if len(byPrefix) == 1 {
		return byPrefix[0], nil
	}
	if len(byPrefix) > 1 {
		return peat.Note{}, fmt.Errorf("prefix %q matches %d notes", ref, len(byPrefix))
	}
	return peat.Note{}, fmt.Errorf("no note matches %q", ref)
}
