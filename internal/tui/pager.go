package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the number of lines used by the title and footer.
const chromeHeight = 3

// Model shows the current conditions and one day table at a time.
type Model struct {
	title   string
	current []string
	days    [][]string
	day     int

	viewport viewport.Model
	ready    bool
}

// New creates a pager over pre-rendered lines.
func New(title string, current []string, days [][]string) Model {
	return Model{
		title:   title,
		current: current,
		days:    days,
	}
}

// Day returns the index of the day table on screen.
func (m Model) Day() int {
	return m.day
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "h", "left":
			if m.day > 0 {
				m.day--
				m.refresh()
			}
			return m, nil
		case "l", "right":
			if m.day < len(m.days)-1 {
				m.day++
				m.refresh()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		height := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// content joins the current block and the selected day table.
func (m Model) content() string {
	lines := append([]string{}, m.current...)
	if len(m.days) > 0 {
		lines = append(lines, "")
		lines = append(lines, m.days[m.day]...)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	status := "no forecast days"
	if len(m.days) > 0 {
		status = fmt.Sprintf("day %d/%d", m.day+1, len(m.days))
	}
	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		StatusStyle.Render(status),
		HelpStyle.Render("←/→ day • ↑/↓ scroll • q quit"),
	)

	return TitleStyle.Render(m.title) + "\n" + m.viewport.View() + "\n" + footer
}
