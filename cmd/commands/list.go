package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lmeynard/skillkit/skills"
)

// NewListCommand returns the list subcommand.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List registered skills",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "category",
				Usage: "Only skills in this category (exact match)",
			},
			&cli.StringFlag{
				Name:  "tag",
				Usage: "Only skills carrying this tag",
			},
		},
		Action: runList,
	}
}

func runList(_ context.Context, cmd *cli.Command) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	var selected []skills.Skill
	switch {
	case cmd.String("category") != "":
		selected = app.Registry.FindByCategory(cmd.String("category"))
	case cmd.String("tag") != "":
		selected = app.Registry.FindByTag(cmd.String("tag"))
	default:
		for _, name := range app.Registry.Names() {
			if s, ok := app.Registry.Get(name); ok {
				selected = append(selected, s)
			}
		}
	}

	if len(selected) == 0 {
		fmt.Println("no skills found")
		return nil
	}

	for _, s := range selected {
		printSkillLine(s)
	}
	return nil
}

func printSkillLine(s skills.Skill) {
	line := fmt.Sprintf("%-16s %-8s %-10s %s", s.Name(), s.Version(), s.Category(), s.Description())
	if tags := s.Tags(); len(tags) > 0 {
		line += fmt.Sprintf("  [%s]", strings.Join(tags, ", "))
	}
	fmt.Println(line)
}
