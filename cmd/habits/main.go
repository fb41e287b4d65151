package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Pordilz/habit-tracker/internal/cli"
	"github.com/Pordilz/habit-tracker/internal/constants"
	"github.com/Pordilz/habit-tracker/internal/errors"
	"github.com/Pordilz/habit-tracker/internal/keyring"
	"github.com/Pordilz/habit-tracker/internal/logger"
	"github.com/Pordilz/habit-tracker/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store path (.db for SQLite, .json for JSON) or Postgres connection string. Postgres credentials must NOT be embedded; use the OS keyring ('habits config set-connection') or $HABITS_DB_CONNECTION." default:"~/.config/habits/habits.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize storage and load sample habits."`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits and check-offs."`
	Analyze cli.AnalyzeCmd `cmd:"" help:"Streak reports and habit analytics."`
	Menu    cli.MenuCmd    `cmd:"" help:"Run the interactive menu." default:"1"`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the habit dashboard."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
	ConfigCmd cli.ConfigCmd `cmd:"" name:"config" help:"Manage stored database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streak analytics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	store, err := selectStore(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.Format(err))
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir(store.GetConfigPath()),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	// init handles its own store lifecycle, and credential commands never
	// touch the store.
	cmdPath := ctx.Command()
	needsStore := cmdPath != "init" && !strings.HasPrefix(cmdPath, "config ")

	// Fatal calls os.Exit, so the store must be closed before it runs.
	errors.Fatal(run(ctx, store, needsStore))
}

// run loads the store when the command needs it, executes the command, and
// closes the store again whether or not the command succeeded.
func run(ctx *kong.Context, store storage.Provider, needsStore bool) error {
	if needsStore {
		if err := store.Load(); err != nil {
			return err
		}
		defer store.Close()
	}
	return ctx.Run(&cli.Context{Store: store})
}

// selectStore picks the storage backend from the config value: a Postgres
// connection string, a .json file path, or (default) a SQLite file path.
func selectStore(config string) (storage.Provider, error) {
	// The environment route may carry credentials: unlike a flag value it
	// never lands in argv or shell history, so it is trusted the same way
	// a keyring entry is.
	if env := os.Getenv(constants.EnvDBConnection); env != "" {
		if !storage.IsPostgresConnString(env) {
			return nil, fmt.Errorf("%s must be a Postgres connection string (postgres:// or postgresql:// prefix)", constants.EnvDBConnection)
		}
		return storage.NewPostgresStore(env), nil
	}

	if storage.IsPostgresConnString(config) {
		if storage.HasEmbeddedCredentials(config) {
			return nil, fmt.Errorf("connection strings with embedded credentials are not allowed; store the full string with 'habits config set-connection' or set %s", constants.EnvDBConnection)
		}
		// A keyring entry, when present, carries the complete connection
		// string including credentials.
		if connStr, err := keyring.GetConnectionString(); err == nil {
			return storage.NewPostgresStore(connStr), nil
		}
		return storage.NewPostgresStore(config), nil
	}

	path, err := expandHome(config)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".json") {
		return storage.NewJSONStore(path), nil
	}
	return storage.NewSQLiteStore(path), nil
}

func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

// configDir returns the directory logs live in. Postgres stores have no
// file path, so logs fall back to the default config directory.
func configDir(storePath string) string {
	if storage.IsPostgresConnString(storePath) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		return filepath.Join(home, ".config", constants.AppName)
	}
	return filepath.Dir(storePath)
}
