package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewSearchCommand returns the search subcommand.
func NewSearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search skills by keyword (name, description, tags)",
		ArgsUsage: "<keyword>",
		Action:    runSearch,
	}
}

func runSearch(_ context.Context, cmd *cli.Command) error {
	keyword := cmd.Args().First()
	if keyword == "" {
		return fmt.Errorf("usage: skillkit search <keyword>")
	}

	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	matches := app.Registry.Search(keyword)
	if len(matches) == 0 {
		fmt.Printf("no skills match %q\n", keyword)
		return nil
	}

	for _, s := range matches {
		printSkillLine(s)
	}
	return nil
}
