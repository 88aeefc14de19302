package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/vigor/internal/badges"
	"github.com/julianstephens/vigor/internal/catalog"
	"github.com/julianstephens/vigor/internal/cli"
	"github.com/julianstephens/vigor/internal/constants"
	"github.com/julianstephens/vigor/internal/keyring"
	"github.com/julianstephens/vigor/internal/logger"
	"github.com/julianstephens/vigor/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path, or 'keyring' to use the stored postgres connection string." type:"path" default:"~/.config/vigor/vigor.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize vigor storage."`
	Migrate cli.MigrateCmd `cmd:"" help:"Apply pending schema migrations."`
	Onboard cli.OnboardCmd `cmd:"" help:"Manage the setup flow."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today   cli.TodayCmd   `cmd:"" help:"Show items still due today."`
	Log     cli.LogCmd     `cmd:"" help:"Record completions."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show streaks and totals."`
	Badges  cli.BadgesCmd  `cmd:"" help:"Show earned badges and XP."`
	Remind  cli.RemindCmd  `cmd:"" help:"Reschedule reminders from current item schedules."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks."`
	Routine cli.RoutineCmd `cmd:"" help:"Manage routines."`
	Goal    cli.GoalCmd    `cmd:"" help:"Manage goals."`
	Item    cli.ItemCmd    `cmd:"" help:"Manage routine and goal items."`
	Secret  cli.SecretCmd  `cmd:"" help:"Manage secrets in the OS keyring."`
	Backup  cli.BackupCmd  `cmd:"" help:"Snapshot and restore the database."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("vigor"),
		kong.Description("Personal routine, exercise, and progress tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	store, err := buildStore(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: logDir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	cat, err := catalog.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:   store,
		Catalog: cat,
		Badges:  badges.NewEngine(store),
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// logDir returns the directory the log file lives in: next to the sqlite
// database when one is in use, the default config directory otherwise.
func logDir(config string) string {
	if config == "keyring" || storage.IsPostgres(config) {
		return filepath.Dir(storage.ExpandPath(constants.DefaultConfigPath))
	}
	return filepath.Dir(storage.ExpandPath(config))
}

// buildStore selects the storage backend from the config value. Plain paths
// get the sqlite store. Postgres connection strings must come from the OS
// keyring ('--config keyring'); passing one with an embedded password on the
// command line is rejected.
func buildStore(config string) (storage.Provider, error) {
	if config == "keyring" {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return nil, fmt.Errorf("no connection string in keyring: %w", err)
		}
		return storage.NewPostgresStore(connStr), nil
	}

	if storage.IsPostgres(config) {
		if storage.HasEmbeddedCredentials(config) {
			return nil, fmt.Errorf("connection string contains an embedded password; store it with 'vigor secret set-db' and use --config keyring")
		}
		return storage.NewPostgresStore(config), nil
	}

	return storage.NewSQLiteStore(config), nil
}
