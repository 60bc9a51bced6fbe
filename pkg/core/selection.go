package core

// NextSelection decides which note to select after a deletion, given the
// collection as it looks after the delete and the index the removed note
// occupied before it.
//
// The policy follows reading order: prefer the note that sat immediately
// before the deleted one; when the first note was deleted, fall back to the
// new first note. The second return is false when the collection is empty
// and nothing can be selected.
func NextSelection(notes []Note, deletedIndex int) (string, bool) {
	if len(notes) == 0 {
		return "", false
	}
	if deletedIndex > 0 && deletedIndex-1 < len(notes) {
		return notes[deletedIndex-1].ID, true
	}
	return notes[0].ID, true
}
