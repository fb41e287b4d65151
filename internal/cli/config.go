package cli

import (
	"fmt"

	"github.com/Pordilz/habit-tracker/internal/keyring"
	"github.com/Pordilz/habit-tracker/internal/storage"
)

type ConfigCmd struct {
	SetConnection    ConfigSetConnectionCmd    `cmd:"" help:"Store a Postgres connection string in the OS keyring."`
	DeleteConnection ConfigDeleteConnectionCmd `cmd:"" help:"Remove the stored Postgres connection string."`
}

type ConfigSetConnectionCmd struct {
	ConnectionString string `arg:"" help:"Full Postgres connection string (may include credentials; the keyring is the one place they are allowed)."`
}

func (c *ConfigSetConnectionCmd) Run(ctx *Context) error {
	if !storage.IsPostgresConnString(c.ConnectionString) {
		return fmt.Errorf("not a Postgres connection string (expected postgres:// or postgresql:// prefix)")
	}
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type ConfigDeleteConnectionCmd struct{}

func (c *ConfigDeleteConnectionCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No connection string stored.")
			return nil
		}
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
