package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/vigor/internal/pending"
	"github.com/julianstephens/vigor/internal/utils"
)

var (
	todayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	todayTimeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	todayDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := time.Now()

	items, err := ctx.Store.GetAllItems()
	if err != nil {
		return err
	}
	logs, err := ctx.Store.GetLogsForDay(utils.Today(now))
	if err != nil {
		return err
	}

	due := pending.Today(items, logs, now)

	fmt.Println(todayHeaderStyle.Render(now.Format("Monday, January 2")))

	if len(due) == 0 {
		fmt.Println(todayDoneStyle.Render("All done for today."))
		return nil
	}

	for _, item := range due {
		name := item.Name
		if name == "" {
			if tpl, ok := ctx.Catalog.Lookup(item.TemplateID); ok {
				name = tpl.Name
			} else {
				name = item.TemplateID
			}
		}
		slot := FormatRecurrence(item.Recurrence)
		fmt.Printf("  %s  %s\n", todayTimeStyle.Render(fmt.Sprintf("%-22s", slot)), name)
	}

	fmt.Printf("\n%d item(s) pending\n", len(due))
	return nil
}
