package tui

import (
	"context"
	"fmt"
	"strings"

	"animalbase/internal/domain/animals"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(0, 1)
)

// Model es la versión de terminal de la página: cada tecla es una acción
// sobre el Service y la tabla se vuelve a pintar completa.
type Model struct {
	ctx context.Context
	svc *animals.Service

	snap     animals.Snapshot
	cursor   int
	conflict *animals.ConflictView
	status   string
}

func New(ctx context.Context, svc *animals.Service) Model {
	return Model{ctx: ctx, svc: svc, snap: svc.Snapshot()}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.conflict != nil {
		return m.updateDialog(key.String()), nil
	}

	// cada acción reemplaza el mensaje de la anterior
	m.status = ""

	switch k := key.String(); k {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.View)-1 {
			m.cursor++
		}
	case "r":
		if err := m.svc.Reload(m.ctx); err != nil {
			m.status = err.Error()
		} else {
			m.status = "reloaded"
		}
		m.cursor = 0
	case "f":
		_, err := m.svc.Filter(m.nextFilter())
		m.setErr(err)
		m.cursor = 0
	case "s":
		if a, ok := m.selected(); ok {
			_, err := m.svc.ToggleStar(a.ID)
			m.setErr(err)
		}
	case "w":
		if a, ok := m.selected(); ok {
			res, err := m.svc.ToggleWinner(a.ID)
			m.setErr(err)
			m.conflict = res.Conflict
		}
	case "1", "2", "3", "4", "5", "6":
		i := int(k[0] - '1')
		_, dir, err := m.svc.Sort(string(animals.SortKeys[i]))
		m.setErr(err)
		if err == nil {
			m.status = fmt.Sprintf("sorted by %s %s", animals.SortKeys[i], dir)
		}
	}

	m.refresh()
	return m, nil
}

func (m Model) updateDialog(k string) Model {
	switch k {
	case "esc", "q":
		m.conflict = nil
	case "1", "2":
		i := int(k[0] - '1')
		if i < len(m.conflict.Winners) {
			_, err := m.svc.RemoveWinner(m.conflict.Winners[i].ID)
			m.setErr(err)
			m.conflict = nil
		}
	}
	m.refresh()
	return m
}

// nextFilter recorre "*" y luego cada tipo en orden de aparición.
func (m Model) nextFilter() string {
	keys := []string{animals.Wildcard}
	for _, t := range m.snap.Types {
		if strings.TrimSpace(t) != "" {
			keys = append(keys, t)
		}
	}
	for i, k := range keys {
		if k == m.snap.Filter {
			return keys[(i+1)%len(keys)]
		}
	}
	return animals.Wildcard
}

func (m Model) selected() (animals.Animal, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.View) {
		return animals.Animal{}, false
	}
	return m.snap.View[m.cursor], true
}

func (m *Model) setErr(err error) {
	if err != nil {
		m.status = err.Error()
	}
}

func (m *Model) refresh() {
	m.snap = m.svc.Snapshot()
	if m.cursor >= len(m.snap.View) {
		m.cursor = len(m.snap.View) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Animalbase"))
	b.WriteString("\n\n")

	if !m.snap.Loaded {
		b.WriteString(errorStyle.Render("Could not load the animals: " + m.snap.LoadErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("r reload · q quit"))
		return b.String()
	}

	for _, w := range m.snap.Warnings {
		b.WriteString(errorStyle.Render("warning: " + w))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "filter: %s · showing %d of %d\n", m.snap.Filter, len(m.snap.View), m.snap.Total)
	b.WriteString(Table(m.snap.View, m.snap.NextDir, m.cursor))
	b.WriteString("\n")

	if m.conflict != nil {
		b.WriteString(dialogView(m.conflict))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("1/2 remove winner · esc dismiss"))
		return b.String()
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ move · s star · w winner · f filter · 1-6 sort · r reload · q quit"))
	return b.String()
}

func dialogView(c *animals.ConflictView) string {
	lines := []string{c.Message, ""}
	for i, w := range c.Winners {
		lines = append(lines, fmt.Sprintf("[%d] %s", i+1, w.Label()))
	}
	return dialogStyle.Render(strings.Join(lines, "\n"))
}
