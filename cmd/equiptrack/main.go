package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/facilityos/equiptrack/internal/api"
	"github.com/facilityos/equiptrack/internal/cli"
	"github.com/facilityos/equiptrack/internal/config"
	"github.com/facilityos/equiptrack/internal/constants"
	"github.com/facilityos/equiptrack/internal/errors"
	"github.com/facilityos/equiptrack/internal/logger"
	"github.com/facilityos/equiptrack/internal/notify"
)

var CLI struct {
	Version kong.VersionFlag
	API     string `help:"Equipment service base URL. Overrides EQUIPTRACK_API_URL."`
	Debug   bool   `help:"Enable debug logging."`

	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive equipment board." default:"1"`
	List   cli.ListCmd   `cmd:"" help:"List all equipment."`
	Add    cli.AddCmd    `cmd:"" help:"Add a new piece of equipment."`
	Edit   cli.EditCmd   `cmd:"" help:"Edit an existing piece of equipment."`
	Delete cli.DeleteCmd `cmd:"" help:"Delete a piece of equipment."`

	Maintenance struct {
		Log     cli.MaintenanceLogCmd     `cmd:"" help:"Log a maintenance entry."`
		History cli.MaintenanceHistoryCmd `cmd:"" help:"Show maintenance history for one equipment."`
	} `cmd:"" help:"Log and review maintenance."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Facility equipment and maintenance tracking client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.API != "" {
		cfg.APIBaseURL = CLI.API
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: filepath.Join(configDir, constants.AppName),
	}); err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		API:  api.New(cfg.APIBaseURL, cfg.HTTPTimeout),
		Sink: notify.Console{},
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
