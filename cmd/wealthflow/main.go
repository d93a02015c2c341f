package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/wealthflow/backend/config"
	"github.com/wealthflow/backend/internal/cli"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was built
	// against. It's set via ldflags when building.
	CommitSHA = ""

	commands struct {
		Version kong.VersionFlag `help:"Show version information"`
		cli.Commands
	}
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	app := cli.NewApp(cfg)

	ctx := kong.Parse(&commands,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("wealthflow"),
		kong.Description("Track accounts, spending, savings and debts from the terminal."),
		kong.UsageOnError(),
		kong.Bind(app),
	)

	level := slog.LevelWarn
	if commands.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := cfg.Validate(); err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}

	err := ctx.Run()
	if closeErr := app.Close(); closeErr != nil {
		slog.Warn("Failed to close storage", "error", closeErr)
	}
	if err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func buildVersion() string {
	if Version == "" {
		Version = "dev"
	}
	if CommitSHA == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, CommitSHA)
}
