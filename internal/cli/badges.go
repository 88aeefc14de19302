package cli

import (
	"fmt"

	"github.com/julianstephens/vigor/internal/badges"
)

type BadgesCmd struct {
	All bool `help:"Include badges not yet earned."`
}

func (c *BadgesCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	statuses, err := ctx.Store.GetAllBadgeStatuses()
	if err != nil {
		return err
	}
	earned := make(map[string]bool, len(statuses))
	for _, st := range statuses {
		if st.Earned {
			earned[st.Key] = true
		}
	}

	xp, err := ctx.Store.GetXP()
	if err != nil {
		return err
	}

	fmt.Printf("Total XP: %d\n\n", xp)
	for _, def := range badges.Table {
		if !earned[def.Key] && !c.All {
			continue
		}
		mark := " "
		if earned[def.Key] {
			mark = "*"
		}
		fmt.Printf("%s %-9s %-14s %s (%d XP)\n", mark, def.Level, def.Name, def.Description, def.XP)
	}

	if len(earned) == 0 && !c.All {
		fmt.Println("No badges earned yet. Run with --all to see what's available.")
	}
	return nil
}
