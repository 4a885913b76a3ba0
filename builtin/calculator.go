// Package builtin ships ready-made skills reached only through the execute
// contract: a calculator, a text processor and a simulated web search. They
// double as reference implementations for skill authors.
package builtin

import (
	"context"

	"github.com/lmeynard/skillkit/skills"
)

// Calculator performs basic arithmetic on two operands.
type Calculator struct {
	skills.Base
}

// NewCalculator creates the calculator skill.
func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Name() string { return "calculator" }

func (c *Calculator) Description() string {
	return "Performs basic mathematical operations: add, subtract, multiply, divide"
}

func (c *Calculator) Category() string { return "math" }

func (c *Calculator) Tags() []string { return []string{"calculator", "math", "arithmetic"} }

func (c *Calculator) Parameters() []skills.Parameter {
	return []skills.Parameter{
		{
			Name:        "operation",
			Type:        skills.ParamString,
			Description: "Operation to perform: add, subtract, multiply, divide",
			Required:    true,
		},
		{
			Name:        "a",
			Type:        skills.ParamFloat,
			Description: "First operand",
			Required:    true,
		},
		{
			Name:        "b",
			Type:        skills.ParamFloat,
			Description: "Second operand",
			Required:    true,
		},
	}
}

// Execute runs the calculation. All foreseeable failures (unknown operation,
// division by zero) come back as failure Results.
func (c *Calculator) Execute(_ context.Context, args map[string]any) skills.Result {
	operation, _ := args["operation"].(string)
	a := toFloat(args["a"])
	b := toFloat(args["b"])

	var result float64
	switch operation {
	case "add":
		result = a + b
	case "subtract":
		result = a - b
	case "multiply":
		result = a * b
	case "divide":
		if b == 0 {
			return skills.Fail("division by zero is not allowed")
		}
		result = a / b
	default:
		return skills.Failf("unknown operation: %q", operation)
	}

	return skills.Result{
		Success:  true,
		Data:     result,
		Metadata: map[string]any{"operation": operation, "a": a, "b": b},
	}
}

// toFloat widens any numeric argument value to float64.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
