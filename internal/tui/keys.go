package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap collects every binding the notebook understands. Which ones are
// active depends on the focused pane; help renders only the relevant set.
type keyMap struct {
	New       key.Binding
	Edit      key.Binding
	Title     key.Binding
	Delete    key.Binding
	Search    key.Binding
	Preview   key.Binding
	Yank      key.Binding
	External  key.Binding
	Theme     key.Binding
	Back      key.Binding
	Confirm   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "edit"),
		),
		Title: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy note"),
		),
		External: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "open in $EDITOR"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "light/dark"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap for the list pane.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Search, k.Delete, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Edit, k.Title, k.Delete},
		{k.Search, k.Preview, k.Yank, k.External},
		{k.Theme, k.Back, k.Quit},
	}
}
