package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lmeynard/skillkit/skills"
)

// NewDemoCommand returns the demo subcommand: a self-contained tour of the
// registry, discovery, validation and batch execution.
func NewDemoCommand() *cli.Command {
	return &cli.Command{
		Name:   "demo",
		Usage:  "Run a guided tour of the skill library",
		Action: runDemoTour,
	}
}

func runDemoTour(ctx context.Context, _ *cli.Command) error {
	registry := skills.NewRegistry()
	executor := skills.NewExecutor(registry)
	registerBuiltins(registry)

	fmt.Println("1. Registered skills:")
	fmt.Printf("   %s\n\n", strings.Join(registry.Names(), ", "))

	fmt.Println("2. Skill metadata:")
	for _, m := range registry.AllMetadata() {
		fmt.Printf("   - %s: %s (category=%s, tags=%v)\n", m.Name, m.Description, m.Category, m.Tags)
	}
	fmt.Println()

	fmt.Println("3. Executing calculator (10 + 5):")
	result := executor.Execute(ctx, "calculator", map[string]any{
		"operation": "add",
		"a":         10.0,
		"b":         5.0,
	})
	fmt.Printf("   success=%v data=%v\n\n", result.Success, result.Data)

	fmt.Println("4. Validation catches a missing operand:")
	result = executor.Execute(ctx, "calculator", map[string]any{
		"operation": "add",
		"a":         10.0,
	})
	fmt.Printf("   success=%v error=%q\n\n", result.Success, result.Error)

	fmt.Println("5. Text processing:")
	result = executor.Execute(ctx, "text_processor", map[string]any{
		"text":      "Hello, Skillkit!",
		"operation": "uppercase",
	})
	fmt.Printf("   success=%v data=%v\n\n", result.Success, result.Data)

	fmt.Println("6. Searching for \"calc\":")
	for _, s := range registry.Search("calc") {
		fmt.Printf("   - %s\n", s.Name())
	}
	fmt.Println()

	fmt.Println("7. Batch execution (one bad name does not stop the rest):")
	results := executor.BatchExecute(ctx, []skills.Invocation{
		{Name: "calculator", Arguments: map[string]any{"operation": "multiply", "a": 6.0, "b": 7.0}},
		{Name: "does_not_exist"},
		{Name: "web_search", Arguments: map[string]any{"query": "golang"}},
	})
	for i, r := range results {
		fmt.Printf("   [%d] success=%v\n", i, r.Success)
	}

	return nil
}
