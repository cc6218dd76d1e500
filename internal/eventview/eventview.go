// Package eventview is a bubbletea inspector over a recorded callback
// stream. It renders the records as a scrollable list so a captured run can
// be examined interactively after the loop has finished.
package eventview

import (
	"fmt"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	seqStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))
)

// model is the root bubbletea model for the inspector.
type model struct {
	title   string
	records []Record

	cursor int
	offset int

	width  int
	height int
}

func newModel(title string, records []Record) model {
	return model{title: title, records: records}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// listHeight returns the rows available for records.
func (m model) listHeight() int {
	// title (1) + blank (1) + help bar (1)
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.cursor--
		case "down", "j":
			m.cursor++
		case "pgup":
			m.cursor -= m.listHeight()
		case "pgdown":
			m.cursor += m.listHeight()
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.records) - 1
		}
		m.clamp()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clamp()
		return m, nil
	}

	return m, nil
}

func (m *model) clamp() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.records)-1 {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	title := titleStyle.Render(fmt.Sprintf("%s (%d events)", m.title, len(m.records)))

	h := m.listHeight()
	end := m.offset + h
	if end > len(m.records) {
		end = len(m.records)
	}

	rows := ""
	for i := m.offset; i < end; i++ {
		r := m.records[i]
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		line := marker +
			seqStyle.Render(fmt.Sprintf("%4d ", r.Seq)) +
			nameStyle.Render(fmt.Sprintf("%-22s", r.Name)) +
			detailStyle.Render(r.Detail)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		rows += line + "\n"
	}
	if len(m.records) == 0 {
		rows = detailStyle.Render("  no events recorded") + "\n"
	}

	help := helpStyle.Render("j/k move · g/G top/bottom · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, rows, help)
}

// Run opens the inspector over the records, blocking until the user quits.
func Run(title string, records []Record) error {
	p := tea.NewProgram(newModel(title, records), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("event inspector failed: %w", err)
	}
	return nil
}
