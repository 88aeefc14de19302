package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/vigor/internal/models"
	"github.com/julianstephens/vigor/internal/streak"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateLogging && m.form != nil {
		return m.form.View()
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.pendingList.View())
	case StateBadges:
		content = docStyle.Render(m.badgeBoard.View())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	}

	sections := []string{m.viewTabs(), content}
	if m.toast != "" {
		sections = append(sections, toastStyle.Render(m.toast))
	}
	if m.errMsg != "" {
		sections = append(sections, dangerStyle.Render(m.errMsg))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Badges", "Stats"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStats() string {
	logs, err := m.store.GetAllLogs()
	if err != nil {
		return fmt.Sprintf("failed to load logs: %v", err)
	}

	consistency := streak.Compute(logs, time.Now())

	var exercises, tasks, photos int
	for _, l := range logs {
		switch l.Kind {
		case models.LogExercise:
			exercises++
		case models.LogTask:
			tasks++
		case models.LogPhoto:
			photos++
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statHeaderStyle.Render("Consistency"),
		fmt.Sprintf("  Current streak  %d day(s)", consistency.Current),
		fmt.Sprintf("  Longest streak  %d day(s)", consistency.Longest),
		fmt.Sprintf("  Active days     %d", consistency.ActiveDays),
		"",
		statHeaderStyle.Render("Totals"),
		fmt.Sprintf("  Exercises       %d", exercises),
		fmt.Sprintf("  Tasks           %d", tasks),
		fmt.Sprintf("  Photos          %d", photos),
	)
}
