package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewHistoryCommand returns the history subcommand.
func NewHistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recent skill executions from the audit log",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of entries",
				Value:   20,
			},
		},
		Action: runHistory,
	}
}

func runHistory(_ context.Context, cmd *cli.Command) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	if app.store == nil {
		return fmt.Errorf("audit log is disabled")
	}

	entries, err := app.store.Recent(cmd.Int("limit"))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no executions recorded")
		return nil
	}

	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "failed"
		}
		line := fmt.Sprintf("%s  %-16s %-6s %s",
			e.FinishedAt.Local().Format("2006-01-02 15:04:05"), e.Skill, status, e.Duration)
		if e.Error != "" {
			line += "  " + e.Error
		}
		fmt.Println(line)
	}
	return nil
}
