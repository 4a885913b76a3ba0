package builtin

import (
	"context"
	"strings"
	"testing"

	"github.com/lmeynard/skillkit/skills"
)

func TestCalculatorOperations(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		operation string
		a, b      float64
		want      float64
	}{
		{"add", 10, 5, 15},
		{"subtract", 10, 5, 5},
		{"multiply", 10, 5, 50},
		{"divide", 10, 5, 2},
		{"add", -2.5, 1.5, -1},
	}
	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			res := calc.Execute(context.Background(), map[string]any{
				"operation": tt.operation,
				"a":         tt.a,
				"b":         tt.b,
			})
			if !res.Success {
				t.Fatalf("Execute failed: %s", res.Error)
			}
			got, ok := res.Data.(float64)
			if !ok {
				t.Fatalf("Data = %T, want float64", res.Data)
			}
			if got != tt.want {
				t.Errorf("%s(%v, %v) = %v, want %v", tt.operation, tt.a, tt.b, got, tt.want)
			}
			if res.Metadata["operation"] != tt.operation {
				t.Errorf("Metadata[operation] = %v, want %v", res.Metadata["operation"], tt.operation)
			}
		})
	}
}

func TestCalculatorDivideByZero(t *testing.T) {
	calc := NewCalculator()
	res := calc.Execute(context.Background(), map[string]any{
		"operation": "divide",
		"a":         float64(1),
		"b":         float64(0),
	})
	if res.Success {
		t.Fatal("expected failure for division by zero")
	}
	if !strings.Contains(res.Error, "division by zero") {
		t.Errorf("Error = %q, want mention of division by zero", res.Error)
	}
}

func TestCalculatorUnknownOperation(t *testing.T) {
	calc := NewCalculator()
	res := calc.Execute(context.Background(), map[string]any{
		"operation": "modulo",
		"a":         float64(1),
		"b":         float64(2),
	})
	if res.Success {
		t.Fatal("expected failure for unknown operation")
	}
	if !strings.Contains(res.Error, "modulo") {
		t.Errorf("Error = %q, want mention of the operation", res.Error)
	}
}

func TestCalculatorThroughExecutor(t *testing.T) {
	registry := skills.NewRegistry()
	if err := registry.Register(NewCalculator()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	executor := skills.NewExecutor(registry)

	res := executor.Execute(context.Background(), "calculator", map[string]any{
		"operation": "add",
		"a":         float64(10),
		"b":         float64(5),
	})
	if !res.Success {
		t.Fatalf("Execute failed: %s", res.Error)
	}
	if res.Data != float64(15) {
		t.Errorf("Data = %v, want 15", res.Data)
	}

	res = executor.Execute(context.Background(), "calculator", map[string]any{
		"operation": "add",
		"a":         float64(10),
	})
	if res.Success {
		t.Fatal("expected validation failure when b is missing")
	}
	if !strings.Contains(res.Error, `"b"`) {
		t.Errorf("Error = %q, want mention of the missing parameter", res.Error)
	}
}
