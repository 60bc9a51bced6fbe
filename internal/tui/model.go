// Package tui implements the interactive two pane notebook: a note list on
// the left, the selected note's editor on the right. All state changes go
// through the store; the model only holds presentation state (focus, pane
// sizes, pending confirmations).
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/peat/pkg/core"
)

// focus names the pane or prompt currently receiving keys.
type focus int

const (
	focusList focus = iota
	focusSearch
	focusTitle
	focusEditor
	focusPreview
	focusConfirm
)

// Config assembles the dependencies for the interactive notebook.
type Config struct {
	Store  *core.Store
	Logger *slog.Logger
	Editor string            // external editor command; $VISUAL/$EDITOR used when empty
	Events <-chan core.Event // optional storage change feed
}

// Model is the bubbletea model for the notebook.
type Model struct {
	store  *core.Store
	logger *slog.Logger
	editor string
	events <-chan core.Event
	ctx    context.Context

	keys    keyMap
	styles  Styles
	help    help.Model
	list    list.Model
	search  textinput.Model
	title   textinput.Model
	content textarea.Model
	preview viewport.Model
	cache   *previewCache

	focus             focus
	width, height     int
	listWidthCached   int
	editorWidthCached int
	ready             bool
	status            string
	statusIsErr       bool
	pendingDelete     string
	editingID         string // note bound to the content editor
}

// New builds a ready to run model around an already opened store.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := Model{
		store:  cfg.Store,
		logger: logger,
		editor: cfg.Editor,
		events: cfg.Events,
		ctx:    context.Background(),
		keys:   defaultKeyMap(),
		cache:  newPreviewCache(),
	}
	m.styles = newStyles(cfg.Store.Theme())

	l := list.New([]list.Item{}, m.styles.delegate(), 0, 0)
	l.Title = "Notes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	m.list = l

	si := textinput.New()
	si.Placeholder = "search title and content"
	si.Prompt = "/ "
	si.CharLimit = 120
	m.search = si

	ti := textinput.New()
	ti.Placeholder = core.DefaultTitle
	ti.CharLimit = 200
	m.title = ti

	ta := textarea.New()
	ta.Placeholder = "Start writing..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	m.content = ta

	m.help = help.New()
	m.preview = viewport.New(0, 0)

	m.refreshList()
	m.syncEditor()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenStorage())
}

// listenStorage waits for the next change reported by the adapter. The
// returned command re-arms itself from the Update handler.
func (m Model) listenStorage() tea.Cmd {
	ch := m.events
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return storageEventMsg(e)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case storageEventMsg:
		m.store.Reload(m.ctx)
		m.styles = newStyles(m.store.Theme())
		m.list.SetDelegate(m.styles.delegate())
		m.refreshList()
		m.syncEditor()
		m.setStatus("reloaded: external "+strings.ToLower(string(msg.Type))+" of "+msg.Key, false)
		return m, m.listenStorage()

	case editorFinishedMsg:
		return m.finishExternalEdit(msg)

	case clipboardResultMsg:
		if msg.err != nil {
			m.setStatus("copy failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("copied note to clipboard", false)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.focus {
		case focusList:
			return m.updateList(msg)
		case focusSearch:
			return m.updateSearch(msg)
		case focusTitle:
			return m.updateTitle(msg)
		case focusEditor:
			return m.updateEditor(msg)
		case focusPreview:
			return m.updatePreview(msg)
		case focusConfirm:
			return m.updateConfirm(msg)
		}
	}

	// Everything else (cursor blinks and the like) goes to the focused
	// component.
	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusEditor:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.New):
		m.store.Create(m.ctx)
		if m.store.Query() != "" {
			m.store.SetQuery("")
			m.search.SetValue("")
		}
		m.refreshList()
		m.syncEditor()
		m.focus = focusTitle
		m.title.SetValue("")
		m.setStatus("created note", false)
		return m, m.title.Focus()

	case key.Matches(msg, m.keys.Edit):
		if _, ok := m.store.Selected(); !ok {
			return m, nil
		}
		m.focus = focusEditor
		return m, m.content.Focus()

	case key.Matches(msg, m.keys.Title):
		n, ok := m.store.Selected()
		if !ok {
			return m, nil
		}
		m.focus = focusTitle
		m.title.SetValue(n.Title)
		m.title.CursorEnd()
		return m, m.title.Focus()

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		m.search.SetValue(m.store.Query())
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Delete):
		n, ok := m.store.Selected()
		if !ok {
			return m, nil
		}
		m.pendingDelete = n.ID
		m.focus = focusConfirm
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		return m.openPreview()

	case key.Matches(msg, m.keys.Yank):
		return m, m.yankSelected()

	case key.Matches(msg, m.keys.External):
		return m.openExternalEditor()

	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.syncSelection()
	m.syncEditor()
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.focus = focusList
		if q := m.store.Query(); q != "" {
			m.setStatus(fmt.Sprintf("search %q: %d of %d notes", q, len(m.list.Items()), m.store.Len()), false)
		}
		return m, nil
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.store.SetQuery("")
		m.refreshList()
		m.focus = focusList
		m.setStatus("cleared search", false)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.store.Query() {
		m.store.SetQuery(q)
		m.refreshList()
	}
	return m, cmd
}

func (m Model) updateTitle(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.title.Blur()
		m.focus = focusEditor
		return m, m.content.Focus()
	case "esc":
		m.title.Blur()
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	before := m.title.Value()
	m.title, cmd = m.title.Update(msg)
	if v := m.title.Value(); v != before {
		m.store.Update(m.ctx, m.editingID, core.Patch{Title: core.String(v)})
		m.refreshList()
	}
	return m, cmd
}

func (m Model) updateEditor(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.content.Blur()
		m.focus = focusList
		return m, nil
	case "ctrl+t":
		n, ok := m.store.Selected()
		if !ok {
			return m, nil
		}
		m.content.Blur()
		m.focus = focusTitle
		m.title.SetValue(n.Title)
		m.title.CursorEnd()
		return m, m.title.Focus()
	case "ctrl+l":
		return m.toggleTheme()
	case "ctrl+e":
		return m.openExternalEditor()
	}

	var cmd tea.Cmd
	before := m.content.Value()
	m.content, cmd = m.content.Update(msg)
	if v := m.content.Value(); v != before {
		m.store.Update(m.ctx, m.editingID, core.Patch{Content: core.String(v)})
		m.refreshList()
	}
	return m, cmd
}

func (m Model) updatePreview(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "p":
		m.focus = focusList
		return m, nil
	case "ctrl+l":
		m2, _ := m.toggleTheme()
		return m2.openPreview()
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.pendingDelete
		m.pendingDelete = ""
		m.focus = focusList

		title := "(gone)"
		if n, ok := m.store.Get(id); ok {
			title = displayTitle(n.Title)
		}
		idx := m.store.Index(id)
		m.store.Delete(m.ctx, id)
		m.cache.forget(id)
		if next, ok := core.NextSelection(m.store.Notes(), idx); ok {
			m.store.Select(next)
		} else {
			m.store.ClearSelection()
		}
		m.refreshList()
		m.syncEditor()
		m.setStatus("deleted: "+title, false)
		return m, nil
	case key.Matches(msg, m.keys.Back), msg.String() == "n", msg.String() == "N":
		m.pendingDelete = ""
		m.focus = focusList
		return m, nil
	}
	return m, nil
}

// openPreview renders the selected note with glamour and switches focus to
// the preview viewport.
func (m Model) openPreview() (Model, tea.Cmd) {
	n, ok := m.store.Selected()
	if !ok {
		m.setStatus("nothing to preview", true)
		return m, nil
	}
	width := m.preview.Width
	if width <= 0 {
		width = 80
	}
	out, err := m.cache.render(n, m.store.Theme(), width)
	if err != nil {
		m.logger.Warn("preview render failed", "id", n.ID, "error", err)
		m.setStatus("preview failed: "+err.Error(), true)
		return m, nil
	}
	m.preview.SetContent(out)
	m.preview.GotoTop()
	m.focus = focusPreview
	return m, nil
}

func (m Model) toggleTheme() (Model, tea.Cmd) {
	theme := m.store.ToggleTheme(m.ctx)
	m.styles = newStyles(theme)
	m.list.SetDelegate(m.styles.delegate())
	m.setStatus("theme: "+string(theme), false)
	return m, nil
}

// yankSelected copies the selected note's content to the system clipboard
// off the update loop.
func (m Model) yankSelected() tea.Cmd {
	n, ok := m.store.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return clipboardResultMsg{err: clipboard.WriteAll(n.Content)}
	}
}

// openExternalEditor hands the selected note to the user's editor via a
// scratch file and suspends the UI until it exits.
func (m Model) openExternalEditor() (Model, tea.Cmd) {
	n, ok := m.store.Selected()
	if !ok {
		return m, nil
	}

	editor := m.editor
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	f, err := os.CreateTemp("", "peat-*.md")
	if err != nil {
		m.setStatus("editor failed: "+err.Error(), true)
		return m, nil
	}
	if _, err := f.WriteString(n.Content); err != nil {
		f.Close()
		os.Remove(f.Name())
		m.setStatus("editor failed: "+err.Error(), true)
		return m, nil
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		m.setStatus("editor failed: "+err.Error(), true)
		return m, nil
	}

	parts := strings.Fields(editor)
	if len(parts) == 0 {
		parts = []string{"vi"}
	}
	args := append(parts[1:], f.Name())
	c := exec.Command(parts[0], args...)
	return m, tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{id: n.ID, path: f.Name(), err: err}
	})
}

func (m Model) finishExternalEdit(msg editorFinishedMsg) (Model, tea.Cmd) {
	defer os.Remove(msg.path)

	if msg.err != nil {
		m.setStatus("editor failed: "+msg.err.Error(), true)
		return m, nil
	}
	data, err := os.ReadFile(msg.path)
	if err != nil {
		m.setStatus("editor failed: "+err.Error(), true)
		return m, nil
	}

	m.store.Update(m.ctx, msg.id, core.Patch{Content: core.String(string(data))})
	if m.editingID == msg.id {
		m.content.SetValue(string(data))
	}
	m.refreshList()
	m.setStatus("updated from external editor", false)
	return m, nil
}

// refreshList rebuilds the visible rows from the store, keeping the cursor
// on the selected note when it is still visible.
func (m *Model) refreshList() {
	items := make([]list.Item, 0, m.store.Len())
	selectedIdx := -1
	for n := range m.store.List(m.store.Query()) {
		if n.ID == m.store.SelectedID() {
			selectedIdx = len(items)
		}
		items = append(items, noteItem{note: n})
	}
	m.list.SetItems(items)
	if selectedIdx >= 0 {
		m.list.Select(selectedIdx)
	} else if len(items) > 0 {
		m.list.Select(0)
	}
}

// syncSelection pushes the list cursor into the store. Moving the cursor is
// how the user selects; an empty filtered list leaves the selection alone.
func (m *Model) syncSelection() {
	if it, ok := m.list.SelectedItem().(noteItem); ok {
		m.store.Select(it.note.ID)
	}
}

// syncEditor binds the content editor to the selected note. A focused
// editor is never overwritten; the user's buffer wins until they leave it.
func (m *Model) syncEditor() {
	n, ok := m.store.Selected()
	if !ok {
		m.editingID = ""
		m.content.SetValue("")
		return
	}
	if n.ID == m.editingID {
		if !m.content.Focused() && m.content.Value() != n.Content {
			m.content.SetValue(n.Content)
		}
		return
	}
	m.editingID = n.ID
	m.content.SetValue(n.Content)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusIsErr = isErr
}

func (m *Model) layout() {
	if !m.ready {
		return
	}

	listWidth := m.width / 3
	if listWidth < 26 {
		listWidth = 26
	}
	if listWidth > 44 {
		listWidth = 44
	}
	editorWidth := m.width - listWidth

	frameW := m.styles.ListPane.GetHorizontalFrameSize()
	frameH := m.styles.ListPane.GetVerticalFrameSize()
	footerH := 3
	innerH := m.height - frameH - footerH
	if innerH < 3 {
		innerH = 3
	}

	m.help.Width = m.width
	m.search.Width = listWidth - frameW - 4
	m.list.SetSize(listWidth-frameW, innerH-1)

	m.title.Width = editorWidth - frameW - 4
	m.content.SetWidth(editorWidth - frameW)
	m.content.SetHeight(innerH - 2)
	m.preview.Width = editorWidth - frameW
	m.preview.Height = innerH

	m.listWidthCached = listWidth
	m.editorWidthCached = editorWidth
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var left strings.Builder
	if m.focus == focusSearch || m.store.Query() != "" {
		left.WriteString(m.styles.SearchBar.Render(m.search.View()))
		left.WriteString("\n")
	}
	left.WriteString(m.list.View())
	leftPane := m.styles.ListPane.Width(m.listWidthCached - 2).Render(left.String())

	var right string
	switch {
	case m.focus == focusPreview:
		right = m.preview.View()
	case m.editingID == "":
		right = m.styles.Placeholder.Render("No note selected. Press n to create one.")
	default:
		n, _ := m.store.Get(m.editingID)
		var titleLine string
		if m.focus == focusTitle {
			titleLine = m.title.View()
		} else {
			titleLine = m.styles.NoteTitle.Render(displayTitle(n.Title))
		}
		meta := m.styles.Timestamp.Render("edited " + n.Updated().Format("Jan 2 15:04"))
		right = titleLine + "  " + meta + "\n\n" + m.content.View()
	}
	rightPane := m.styles.EditorPane.Width(m.editorWidthCached - 2).Render(right)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	var footer string
	if m.focus == focusConfirm {
		title := "(gone)"
		if n, ok := m.store.Get(m.pendingDelete); ok {
			title = displayTitle(n.Title)
		}
		footer = m.styles.Warning.Render(fmt.Sprintf("Delete %q? (y/n)", title))
	} else {
		footer = m.help.View(m.keys)
		if m.status != "" {
			style := m.styles.Status
			if m.statusIsErr {
				style = m.styles.Warning
			}
			footer = style.Render(m.status) + "\n" + footer
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, panes, footer)
}
