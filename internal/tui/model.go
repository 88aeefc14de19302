package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/vigor/internal/badges"
	"github.com/julianstephens/vigor/internal/catalog"
	"github.com/julianstephens/vigor/internal/constants"
	"github.com/julianstephens/vigor/internal/models"
	"github.com/julianstephens/vigor/internal/pending"
	"github.com/julianstephens/vigor/internal/storage"
	"github.com/julianstephens/vigor/internal/tui/components/badgeboard"
	"github.com/julianstephens/vigor/internal/tui/components/pendinglist"
	"github.com/julianstephens/vigor/internal/utils"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateBadges
	StateStats
	StateLogging
)

// tabCount is the number of cycleable tabs; StateLogging is modal.
const tabCount = 3

type LogFormModel struct {
	Note     string
	Duration string
}

type Model struct {
	store       storage.Provider
	catalog     *catalog.Catalog
	engine      *badges.Engine
	state       SessionState
	keys        KeyMap
	help        help.Model
	pendingList pendinglist.Model
	badgeBoard  badgeboard.Model
	form        *huh.Form
	logForm     *LogFormModel
	itemToLog   *models.Item
	toast       string
	errMsg      string
	quitting    bool
	width       int
	height      int
}

func NewModel(store storage.Provider, cat *catalog.Catalog, engine *badges.Engine) Model {
	m := Model{
		store:       store,
		catalog:     cat,
		engine:      engine,
		state:       StateToday,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		pendingList: pendinglist.New(nil, 0, 0),
		badgeBoard:  badgeboard.New(0, 0),
	}

	m.refreshPending()
	m.refreshBadges()
	m.refreshToast()

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateToday {
		keys = append(keys, m.keys.Complete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	if m.state == StateToday {
		actions = []key.Binding{m.keys.Complete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshPending rebuilds the Today tab from the current item and log state.
func (m *Model) refreshPending() {
	now := time.Now()

	items, err := m.store.GetAllItems()
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load items: %v", err)
		return
	}
	logs, err := m.store.GetLogsForDay(utils.Today(now))
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load logs: %v", err)
		return
	}

	due := pending.Today(items, logs, now)
	entries := make([]pendinglist.Entry, len(due))
	for i, item := range due {
		entries[i] = pendinglist.Entry{
			Item:        item,
			DisplayName: m.displayName(item),
			Slot:        formatSlot(item.Recurrence),
		}
	}
	m.pendingList.SetEntries(entries)
	m.errMsg = ""
}

func (m *Model) refreshBadges() {
	statuses, err := m.store.GetAllBadgeStatuses()
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load badges: %v", err)
		return
	}
	xp, err := m.store.GetXP()
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load XP: %v", err)
		return
	}
	m.badgeBoard.SetProgress(statuses, xp)
}

// refreshToast surfaces the oldest unseen badge award, at most one at a time.
func (m *Model) refreshToast() {
	pendingToasts, err := m.engine.PendingToasts()
	if err != nil || len(pendingToasts) == 0 {
		m.toast = ""
		return
	}

	b := pendingToasts[0]
	m.toast = fmt.Sprintf("Badge earned: %s (+%d XP)", b.Name, b.XP)
	if err := m.engine.MarkToastShown(b.Key); err != nil {
		m.errMsg = fmt.Sprintf("failed to record toast: %v", err)
	}
}

func (m *Model) displayName(item models.Item) string {
	if item.Name != "" {
		return item.Name
	}
	if tpl, ok := m.catalog.Lookup(item.TemplateID); ok {
		return tpl.Name
	}
	return item.TemplateID
}

func formatSlot(rec models.Recurrence) string {
	if !rec.Scheduled() {
		return "unscheduled"
	}

	e := rec.Entries[0]
	if rec.Kind == constants.RecurrenceWeekly && e.Weekday != nil {
		return fmt.Sprintf("%s %s", e.Weekday.String()[:3], e.TimeOfDay)
	}
	return e.TimeOfDay
}
