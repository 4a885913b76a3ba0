package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lmeynard/skillkit/skills"
)

// NewDescribeCommand returns the describe subcommand.
func NewDescribeCommand() *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Usage:     "Print a skill's metadata as JSON",
		ArgsUsage: "<skill>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Describe every registered skill",
			},
		},
		Action: runDescribe,
	}
}

func runDescribe(_ context.Context, cmd *cli.Command) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	if cmd.Bool("all") {
		return printJSON(app.Registry.AllMetadata())
	}

	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("usage: skillkit describe <skill>")
	}

	s, ok := app.Registry.Get(name)
	if !ok {
		return fmt.Errorf("skill %q not found", name)
	}
	return printJSON(skills.Describe(s))
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
