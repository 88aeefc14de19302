package cli

import (
	"fmt"

	"github.com/julianstephens/vigor/internal/constants"
	"github.com/julianstephens/vigor/internal/notifier"
	"github.com/julianstephens/vigor/internal/reminders"
)

type RemindCmd struct {
	DryRun bool `help:"Print the reminder plan without scheduling anything."`
}

func (c *RemindCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	onboarding, err := ctx.Store.GetOnboarding(constants.SetupFlowKey)
	if err != nil {
		return err
	}
	if !onboarding.Done() {
		return fmt.Errorf("finish setup before scheduling reminders (vigor onboard complete)")
	}

	items, err := ctx.Store.GetAllItems()
	if err != nil {
		return err
	}

	if c.DryRun {
		sched := reminders.New(nil)
		triggers, skipped := sched.Plan(items)
		fmt.Print(reminders.FormatPlan(triggers, skipped))
		return nil
	}

	facility, err := notifier.NewTrayFacility()
	if err != nil {
		return err
	}

	res, err := reminders.New(facility).Reschedule(items)
	if err != nil {
		return err
	}

	fmt.Printf("Scheduled %d reminder(s)", res.Scheduled)
	if res.Skipped > 0 {
		fmt.Printf(", %d random entries left unscheduled", res.Skipped)
	}
	if len(res.Errors) > 0 {
		fmt.Printf(", %d failure(s)", len(res.Errors))
	}
	fmt.Println()

	for _, e := range res.Errors {
		fmt.Printf("  %v\n", e)
	}
	return nil
}
