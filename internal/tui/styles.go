package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/peat/pkg/core"
)

// palette is the small set of colors a theme is built from. Colors are
// resolved per theme rather than via terminal detection because the active
// theme is session state the user toggles and the store persists.
type palette struct {
	accent lipgloss.Color
	text   lipgloss.Color
	dim    lipgloss.Color
	border lipgloss.Color
	danger lipgloss.Color
}

func paletteFor(theme core.Theme) palette {
	if theme == core.ThemeDark {
		return palette{
			accent: lipgloss.Color("170"),
			text:   lipgloss.Color("252"),
			dim:    lipgloss.Color("241"),
			border: lipgloss.Color("238"),
			danger: lipgloss.Color("203"),
		}
	}
	return palette{
		accent: lipgloss.Color("63"),
		text:   lipgloss.Color("235"),
		dim:    lipgloss.Color("245"),
		border: lipgloss.Color("250"),
		danger: lipgloss.Color("160"),
	}
}

// Styles holds every rendered style for one theme. Rebuild with newStyles
// after a theme toggle; the zero value is unusable.
type Styles struct {
	Theme core.Theme

	ListPane   lipgloss.Style
	EditorPane lipgloss.Style

	NoteTitle   lipgloss.Style
	Timestamp   lipgloss.Style
	Placeholder lipgloss.Style
	SearchBar   lipgloss.Style

	Status  lipgloss.Style
	Warning lipgloss.Style
	Help    lipgloss.Style
}

func newStyles(theme core.Theme) Styles {
	p := paletteFor(theme)
	return Styles{
		Theme: theme,
		ListPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		EditorPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		NoteTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		Timestamp: lipgloss.NewStyle().
			Foreground(p.dim),
		Placeholder: lipgloss.NewStyle().
			Foreground(p.dim).
			Italic(true),
		SearchBar: lipgloss.NewStyle().
			Foreground(p.text),
		Status: lipgloss.NewStyle().
			Foreground(p.dim),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.danger),
		Help: lipgloss.NewStyle().
			Foreground(p.dim),
	}
}

// delegate builds the list row renderer for the current theme.
func (s Styles) delegate() list.DefaultDelegate {
	p := paletteFor(s.Theme)
	d := list.NewDefaultDelegate()
	d.Styles.NormalTitle = d.Styles.NormalTitle.Foreground(p.text)
	d.Styles.NormalDesc = d.Styles.NormalDesc.Foreground(p.dim)
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(p.accent).
		BorderLeftForeground(p.accent)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(p.accent).
		BorderLeftForeground(p.accent)
	return d
}

// glamourStyle maps the app theme onto one of glamour's bundled style sets.
func glamourStyle(theme core.Theme) string {
	if theme == core.ThemeDark {
		return "dark"
	}
	return "light"
}
