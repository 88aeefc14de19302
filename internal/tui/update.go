package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/vigor/internal/constants"
	"github.com/julianstephens/vigor/internal/models"
	"github.com/julianstephens/vigor/internal/tui/components/pendinglist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.pendingList.SetSize(msg.Width-4, msg.Height-6)
		m.badgeBoard.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case pendinglist.CompleteMsg:
		return m.startLogging(msg.Item)
	}

	if m.state == StateLogging {
		return m.updateLogging(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.pendingList, cmd = m.pendingList.Update(msg)
	case StateBadges:
		m.badgeBoard, cmd = m.badgeBoard.Update(msg)
	}
	return m, cmd
}

func (m Model) startLogging(item models.Item) (tea.Model, tea.Cmd) {
	m.itemToLog = &item
	m.logForm = &LogFormModel{}

	fields := []huh.Field{
		huh.NewInput().
			Title("Note").
			Value(&m.logForm.Note),
	}
	if item.Type == constants.ItemExercise {
		fields = append(fields, huh.NewInput().
			Title("Duration (minutes)").
			Value(&m.logForm.Duration).
			Validate(func(s string) error {
				if s == "" {
					return nil
				}
				if _, err := strconv.Atoi(s); err != nil {
					return fmt.Errorf("must be a number")
				}
				return nil
			}))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...))
	m.state = StateLogging
	return m, m.form.Init()
}

func (m Model) updateLogging(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = StateToday
		m.form = nil
		m.itemToLog = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.completeLog()
		m.state = StateToday
		m.form = nil
		m.itemToLog = nil
	}

	return m, cmd
}

// completeLog persists the completion for the item being logged, then runs a
// badge evaluation and refreshes every tab that depends on the log set.
func (m *Model) completeLog() {
	if m.itemToLog == nil {
		return
	}
	item := *m.itemToLog

	kind := models.LogTask
	if item.Type == constants.ItemExercise {
		kind = models.LogExercise
	}

	l := models.Log{
		ID:          uuid.New().String(),
		Kind:        kind,
		ItemID:      item.ID,
		RoutineID:   item.RoutineID,
		GoalID:      item.GoalID,
		CompletedAt: time.Now(),
		Note:        m.logForm.Note,
	}
	if m.logForm.Duration != "" {
		if d, err := strconv.Atoi(m.logForm.Duration); err == nil {
			l.DurationMin = d
		}
	}

	if err := m.store.AddLog(l); err != nil {
		m.errMsg = fmt.Sprintf("failed to save log: %v", err)
		return
	}

	if _, err := m.engine.Evaluate(); err != nil {
		m.errMsg = fmt.Sprintf("failed to evaluate badges: %v", err)
	}

	m.refreshPending()
	m.refreshBadges()
	m.refreshToast()
}
