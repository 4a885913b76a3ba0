package commands

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lmeynard/skillkit/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "skillkit",
		Usage: "Register, discover and run self-describing skills",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.DefaultConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			NewListCommand(),
			NewSearchCommand(),
			NewDescribeCommand(),
			NewRunCommand(),
			NewHistoryCommand(),
			NewDemoCommand(),
		},
	}
}
