package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"task-status-viewer/internal/commands"
	"task-status-viewer/internal/config"
	"task-status-viewer/internal/logging"
)

// Populated at build-time via -ldflags.
var version = "dev"

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		app       = &commands.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "statusview",
		Usage:     "Task status pages and service updates",
		UsageText: "statusview [global options] command [command options]",
		Description: `Resolves task status page paths to task ids and fetches their status from
the API, serves the curated list of service updates and verifies signup
client ids. Run 'statusview serve' to expose everything over HTTP.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("STATUSVIEW_CONFIG"),
				Value:       "statusview.yaml",
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "env-file",
				Usage:       "path to a .env file loaded before the environment is read",
				Sources:     cli.EnvVars("STATUSVIEW_ENV_FILE"),
				Value:       ".env",
				Destination: &flags.EnvFile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Destination: &flags.LogFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath, flags.EnvFile)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if flags.LogLevel != "" {
				cfg.LogLevel = flags.LogLevel
			}
			if flags.LogFile != "" {
				cfg.LogFile = flags.LogFile
			}
			flags.Config = cfg

			logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			// Populate the pre-allocated App (commands already hold a pointer to it)
			a, err := commands.NewApp(cfg, log.Logger)
			if err != nil {
				return ctx, err
			}
			*app = *a

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	root = commands.NewServeCmd(flags, app).Register(root)
	root = commands.NewStatusCmd(flags, app).Register(root)
	root = commands.NewUpdatesCmd(flags, app).Register(root)
	root = commands.NewVerifyCmd(flags, app).Register(root)

	exitCode := 0
	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
