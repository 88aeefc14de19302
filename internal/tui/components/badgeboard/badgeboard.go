package badgeboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/vigor/internal/badges"
	"github.com/julianstephens/vigor/internal/models"
)

var (
	earnedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			Italic(true)

	xpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)
)

type Model struct {
	viewport viewport.Model
	earned   map[string]models.BadgeStatus
	xp       int
	width    int
	height   int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{
		viewport: vp,
		earned:   make(map[string]models.BadgeStatus),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetProgress updates the board with the persisted award state and XP total.
func (m *Model) SetProgress(statuses []models.BadgeStatus, xp int) {
	m.earned = make(map[string]models.BadgeStatus, len(statuses))
	for _, st := range statuses {
		if st.Earned {
			m.earned[st.Key] = st
		}
	}
	m.xp = xp
	m.Render()
}

func (m *Model) Render() {
	var b strings.Builder

	b.WriteString(xpStyle.Render(fmt.Sprintf("Total XP: %d", m.xp)))
	b.WriteString("\n\n")

	for _, def := range badges.Table {
		name := def.Name
		mark := "  "
		style := lockedStyle
		if _, ok := m.earned[def.Key]; ok {
			mark = "★ "
			style = earnedStyle
		}

		line := fmt.Sprintf("%s%s %s\n",
			mark,
			style.Render(fmt.Sprintf("%-14s", name)),
			descStyle.Render(fmt.Sprintf("%s (%d XP)", def.Description, def.XP)),
		)
		b.WriteString(line)
	}

	m.viewport.SetContent(b.String())
}
