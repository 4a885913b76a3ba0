package skills

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lmeynard/skillkit/events"
)

// Executor is the sanctioned path for invoking skills. It resolves names
// against a bound Registry, validates arguments, and converts every failure
// reachable through it (unknown name, schema violation, or a panicking
// skill body) into a failure Result. No fault raised by a skill ever
// escapes to the Executor's caller.
type Executor struct {
	registry *Registry
	bus      *events.Bus
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithEventBus makes the executor publish execution started/completed
// events. Events are an observational side effect and never change the
// returned Result.
func WithEventBus(bus *events.Bus) ExecutorOption {
	return func(e *Executor) { e.bus = bus }
}

// NewExecutor creates an executor bound to registry.
func NewExecutor(registry *Registry, opts ...ExecutorOption) *Executor {
	e := &Executor{registry: registry}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Invocation names one skill execution for BatchExecute.
type Invocation struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Execute runs the named skill after validating args against its declared
// parameters. The context is passed through to the skill; the executor
// itself sets no deadline, so a hanging skill blocks the call.
func (e *Executor) Execute(ctx context.Context, name string, args map[string]any) Result {
	return e.run(ctx, name, args, true)
}

// ExecuteUnvalidated runs the named skill without the validation step. The
// skill sees the arguments exactly as supplied.
func (e *Executor) ExecuteUnvalidated(ctx context.Context, name string, args map[string]any) Result {
	return e.run(ctx, name, args, false)
}

// BatchExecute runs each invocation independently, in order, with the same
// semantics as Execute. A failure in one invocation, even a panicking
// skill, never prevents subsequent invocations from running.
func (e *Executor) BatchExecute(ctx context.Context, invocations []Invocation) []Result {
	results := make([]Result, 0, len(invocations))
	for _, inv := range invocations {
		results = append(results, e.run(ctx, inv.Name, inv.Arguments, true))
	}
	return results
}

func (e *Executor) run(ctx context.Context, name string, args map[string]any, validate bool) Result {
	if args == nil {
		args = map[string]any{}
	}

	skill, ok := e.registry.Get(name)
	if !ok {
		return Failf("skill %q not found in registry", name)
	}

	if validate {
		if err := Validate(skill, args); err != nil {
			return Failf("parameter validation failed: %v", err)
		}
	}

	execID := uuid.NewString()
	e.publish(events.ExecutionStartedPayload{
		ExecutionID: execID,
		SkillName:   name,
		Arguments:   args,
	})

	slog.Info("executing skill", "name", name, "execution_id", execID)
	start := time.Now()

	result := e.invoke(ctx, skill, args)
	duration := time.Since(start)

	if result.Success {
		slog.Info("skill executed", "name", name, "duration", duration)
	} else {
		slog.Warn("skill failed", "name", name, "error", result.Error, "duration", duration)
	}

	e.publish(events.ExecutionCompletedPayload{
		ExecutionID: execID,
		SkillName:   name,
		Success:     result.Success,
		Error:       result.Error,
		Duration:    duration,
	})

	return result
}

// invoke calls the skill body and converts a panic into a failure Result.
func (e *Executor) invoke(ctx context.Context, skill Skill, args map[string]any) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("skill panicked", "name", skill.Name(), "panic", r)
			result = Failf("skill %q panicked: %v", skill.Name(), r)
		}
	}()
	return skill.Execute(ctx, args)
}

func (e *Executor) publish(payload events.EventPayload) {
	if e.bus == nil {
		return
	}
	e.bus.Publish(events.NewTypedEvent(events.SourceExecutor, payload))
}
