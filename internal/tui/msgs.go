package tui

import "github.com/aretw0/peat/pkg/core"

// storageEventMsg is delivered when the persistence layer reports an
// external change to the state directory.
type storageEventMsg core.Event

// editorFinishedMsg carries the result of an external editor session.
// path is the scratch file holding the edited content.
type editorFinishedMsg struct {
	id   string
	path string
	err  error
}

// clipboardResultMsg reports whether a copy to the system clipboard worked.
type clipboardResultMsg struct {
	err error
}
