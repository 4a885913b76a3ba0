package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lmeynard/skillkit/skills"
)

// NewRunCommand returns the run subcommand.
func NewRunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Execute a skill",
		ArgsUsage: "<skill> [key=value ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "json",
				Usage: "Arguments as a raw JSON object (overrides key=value pairs)",
			},
			&cli.BoolFlag{
				Name:  "no-validate",
				Usage: "Skip parameter validation before execution",
			},
		},
		Action: runRun,
	}
}

func runRun(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("usage: skillkit run <skill> [key=value ...]")
	}

	args, err := parseArguments(cmd)
	if err != nil {
		return err
	}

	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	var result skills.Result
	if cmd.Bool("no-validate") {
		result = app.Executor.ExecuteUnvalidated(ctx, name, args)
	} else {
		result = app.Executor.Execute(ctx, name, args)
	}

	if err := printJSON(result); err != nil {
		return err
	}
	if !result.Success {
		return cli.Exit("", 1)
	}
	return nil
}

// parseArguments builds the argument mapping from --json or key=value
// pairs. Pair values are decoded as JSON when possible, so numbers, bools,
// lists and objects keep their natural types; everything else is a string.
func parseArguments(cmd *cli.Command) (map[string]any, error) {
	if raw := cmd.String("json"); raw != "" {
		var args map[string]any
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return nil, fmt.Errorf("parse --json arguments: %w", err)
		}
		return args, nil
	}

	args := make(map[string]any)
	for _, pair := range cmd.Args().Tail() {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not key=value", pair)
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		args[key] = v
	}
	return args, nil
}
