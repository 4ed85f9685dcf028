// Package tui is the interactive face of the launcher: a query line,
// the ranked shortlist and a selection bar. It is a thin view over a
// session.Session; every keystroke goes straight through the session's
// transitions with no debouncing of its own.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quantmind-br/sling/internal/catalog"
	"github.com/quantmind-br/sling/internal/session"
)

// ScanFunc produces a fresh catalog. It runs on a background goroutine
// via the bubbletea command machinery; its finished result is swapped
// into the store in one step on the update loop.
type ScanFunc func() *catalog.Catalog

// Model is the bubbletea model for the launcher window.
type Model struct {
	store *catalog.Store
	sess  *session.Session
	scan  ScanFunc

	input  textinput.Model
	choice *catalog.Item

	width    int
	height   int
	scanning bool
}

type catalogMsg struct {
	cat *catalog.Catalog
}

// New creates the launcher model over an already-populated store.
func New(store *catalog.Store, scan ScanFunc) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type to search"
	ti.CharLimit = 128
	ti.Focus()

	return Model{
		store: store,
		sess:  session.New(store),
		scan:  scan,
		input: ti,
	}
}

// Choice returns the item the user activated, if any.
func (m Model) Choice() (catalog.Item, bool) {
	if m.choice == nil {
		return catalog.Item{}, false
	}
	return *m.choice, true
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogMsg:
		m.store.Swap(msg.cat)
		m.sess.Refresh()
		m.scanning = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "ctrl+p":
			m.sess.MoveSelection(session.Up)
			return m, nil
		case "down", "ctrl+n":
			m.sess.MoveSelection(session.Down)
			return m, nil
		case "enter":
			if it, ok := m.sess.CurrentSelection(); ok {
				m.choice = &it
				return m, tea.Quit
			}
			return m, nil
		case "ctrl+r":
			if m.scanning {
				return m, nil
			}
			m.scanning = true
			return m, m.rescanCmd()
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != m.sess.Query() {
			m.sess.SetQuery(m.input.Value())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// rescanCmd runs the scan off the update loop and delivers the result
// as a message, so readers only ever see a finished catalog.
func (m Model) rescanCmd() tea.Cmd {
	scan := m.scan
	return func() tea.Msg {
		return catalogMsg{cat: scan()}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(promptStyle.Render("sling"))
	b.WriteString("  ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	results := m.sess.Results()
	selected := m.sess.SelectedIndex()

	visible := m.height - 5
	if visible < 1 {
		visible = 10
	}

	start := 0
	if selected >= visible {
		start = selected - visible + 1
	}
	end := min(start+visible, len(results))

	if len(results) == 0 {
		b.WriteString(emptyStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		it := results[i]
		line := it.Name
		if it.Terminal {
			line += terminalStyle.Render("  (terminal)")
		}
		if i == selected {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := fmt.Sprintf("%d/%d  ·  enter launch · ctrl+r rescan · esc quit",
		len(results), m.store.Current().Len())
	if m.scanning {
		status = "rescanning…  ·  " + status
	}
	b.WriteString(statusStyle.Render(status))

	return b.String()
}
