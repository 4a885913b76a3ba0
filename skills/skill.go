package skills

import (
	"context"
	"fmt"
)

// Result is the uniform outcome of a skill execution. Exactly one of the
// success or failure meanings holds: Data is meaningful only when Success is
// true, Error only when it is false. Metadata is an open, skill-defined
// mapping of auxiliary facts.
type Result struct {
	Success  bool           `json:"success"`
	Data     any            `json:"data,omitempty"`
	Error    string         `json:"error,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// OK returns a success Result carrying data.
func OK(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail returns a failure Result with the given message.
func Fail(msg string) Result {
	return Result{Success: false, Error: msg}
}

// Failf returns a failure Result with a formatted message.
func Failf(format string, args ...any) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// Skill is a named, self-describing unit of capability.
//
// Implementations must return a failure Result for foreseeable error
// conditions (bad operand, missing file, ...) rather than panicking; the
// Executor's panic recovery is a safety net for truly unexpected faults,
// not the primary error-reporting path. Side effects performed by Execute
// are the skill's own responsibility: the contract makes no atomicity or
// rollback guarantee when an execution fails partway through.
type Skill interface {
	// Name is the unique, non-empty identity of the skill within a Registry.
	Name() string
	// Description is a non-empty, human-readable summary.
	Description() string
	// Parameters declares the inputs Execute accepts, in order. May be empty.
	Parameters() []Parameter
	Category() string
	Tags() []string
	Version() string
	Execute(ctx context.Context, args map[string]any) Result
}

// Base supplies the contract defaults for the optional identity fields.
// Embed it in skills that have no particular category, tags or version.
type Base struct{}

func (Base) Category() string { return "general" }
func (Base) Tags() []string   { return nil }
func (Base) Version() string  { return "1.0.0" }

// Validator is implemented by skills that replace the default argument
// validation with their own.
type Validator interface {
	ValidateArguments(args map[string]any) error
}

// Validate runs the skill's own validation when it provides one, and the
// default schema check otherwise.
func Validate(s Skill, args map[string]any) error {
	if v, ok := s.(Validator); ok {
		return v.ValidateArguments(args)
	}
	return ValidateArguments(s.Parameters(), args)
}

// Metadata is the introspectable description of a skill. Producing it never
// requires a live execution.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Version     string      `json:"version"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Parameters  []Parameter `json:"parameters"`
}

// Describe returns the metadata for a skill.
func Describe(s Skill) Metadata {
	return Metadata{
		Name:        s.Name(),
		Description: s.Description(),
		Version:     s.Version(),
		Category:    s.Category(),
		Tags:        append([]string(nil), s.Tags()...),
		Parameters:  append([]Parameter(nil), s.Parameters()...),
	}
}
