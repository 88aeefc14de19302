package cli

import (
	"fmt"

	"github.com/julianstephens/vigor/internal/keyring"
	"github.com/julianstephens/vigor/internal/storage"
)

type SecretCmd struct {
	SetDb   SecretSetDbCmd   `cmd:"" name:"set-db" help:"Store the postgres connection string in the OS keyring."`
	ClearDb SecretClearDbCmd `cmd:"" name:"clear-db" help:"Remove the stored connection string."`
	SetTray SecretSetTrayCmd `cmd:"" name:"set-tray" help:"Store the tray webhook secret."`
}

type SecretSetDbCmd struct {
	ConnString string `arg:"" help:"Postgres connection string, password included."`
}

func (c *SecretSetDbCmd) Run(ctx *Context) error {
	if !storage.IsPostgres(c.ConnString) {
		return fmt.Errorf("not a postgres connection string")
	}
	if err := keyring.SetConnectionString(c.ConnString); err != nil {
		return err
	}
	fmt.Println("Connection string stored. Use '--config keyring' to connect.")
	return nil
}

type SecretClearDbCmd struct{}

func (c *SecretClearDbCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Connection string removed.")
	return nil
}

type SecretSetTrayCmd struct {
	Secret string `arg:"" help:"Shared secret for tray webhook calls."`
}

func (c *SecretSetTrayCmd) Run(ctx *Context) error {
	if err := keyring.SetWebhookSecret(c.Secret); err != nil {
		return err
	}
	fmt.Println("Tray secret stored.")
	return nil
}
