package cli

import (
	"fmt"

	"github.com/julianstephens/vigor/internal/constants"
	"github.com/julianstephens/vigor/internal/models"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if !c.Force && fileExists(ctx.Store.GetConfigPath()) {
		return fmt.Errorf("storage already exists at %s (use --force to reinitialize, or 'vigor migrate' to update the schema)", ctx.Store.GetConfigPath())
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	// Init applies any pending migrations on an existing database.
	return ctx.Store.Init()
}

type OnboardCmd struct {
	Status   OnboardStatusCmd   `cmd:"" help:"Show onboarding progress." default:"1"`
	Advance  OnboardAdvanceCmd  `cmd:"" help:"Advance to the next onboarding step."`
	Complete OnboardCompleteCmd `cmd:"" help:"Mark onboarding as completed."`
	Skip     OnboardSkipCmd     `cmd:"" help:"Skip onboarding."`
}

type OnboardStatusCmd struct{}

func (c *OnboardStatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	o, err := ctx.Store.GetOnboarding(constants.SetupFlowKey)
	if err != nil {
		return err
	}
	fmt.Printf("Setup: %s (step %d)\n", o.Status, o.Step)
	return nil
}

type OnboardAdvanceCmd struct{}

func (c *OnboardAdvanceCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	o, err := ctx.Store.GetOnboarding(constants.SetupFlowKey)
	if err != nil {
		return err
	}
	if o.Done() {
		fmt.Println("Onboarding already finished.")
		return nil
	}

	o.Step++
	o.Status = models.OnboardingInProgress
	if err := ctx.Store.SaveOnboarding(o); err != nil {
		return err
	}
	fmt.Printf("Onboarding step %d\n", o.Step)
	return nil
}

type OnboardCompleteCmd struct{}

func (c *OnboardCompleteCmd) Run(ctx *Context) error {
	return finishOnboarding(ctx, models.OnboardingCompleted)
}

type OnboardSkipCmd struct{}

func (c *OnboardSkipCmd) Run(ctx *Context) error {
	return finishOnboarding(ctx, models.OnboardingSkipped)
}

func finishOnboarding(ctx *Context, status models.OnboardingState) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	o, err := ctx.Store.GetOnboarding(constants.SetupFlowKey)
	if err != nil {
		return err
	}
	o.Status = status
	if err := ctx.Store.SaveOnboarding(o); err != nil {
		return err
	}
	fmt.Printf("Onboarding %s.\n", status)
	return nil
}
