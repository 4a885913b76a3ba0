package skills

import (
	"fmt"
	"math"
)

// ParamType is the closed set of parameter kinds a skill may declare.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInteger ParamType = "integer"
	ParamFloat   ParamType = "float"
	ParamBoolean ParamType = "boolean"
	ParamList    ParamType = "list"
	ParamMapping ParamType = "mapping"
	ParamAny     ParamType = "any"
)

// Valid reports whether t is one of the declared parameter kinds.
func (t ParamType) Valid() bool {
	switch t {
	case ParamString, ParamInteger, ParamFloat, ParamBoolean, ParamList, ParamMapping, ParamAny:
		return true
	}
	return false
}

// Matches reports whether a runtime value is compatible with the declared
// kind. JSON numbers decode as float64, so an integral float64 satisfies
// ParamInteger. ParamAny matches everything, including nil.
func (t ParamType) Matches(v any) bool {
	if t == ParamAny {
		return true
	}

	switch t {
	case ParamString:
		_, ok := v.(string)
		return ok

	case ParamBoolean:
		_, ok := v.(bool)
		return ok

	case ParamInteger:
		switch n := v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		case float64:
			return n == math.Trunc(n) && !math.IsInf(n, 0)
		case float32:
			return float64(n) == math.Trunc(float64(n))
		}
		return false

	case ParamFloat:
		switch v.(type) {
		case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		}
		return false

	case ParamList:
		switch v.(type) {
		case []any, []string, []int, []float64, []bool, []map[string]any:
			return true
		}
		return false

	case ParamMapping:
		switch v.(type) {
		case map[string]any, map[string]string:
			return true
		}
		return false
	}
	return false
}

// Parameter declares one named input a skill accepts. Default is only
// consulted for optional parameters; a required parameter that is absent
// fails validation regardless of any default.
type Parameter struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Description string    `json:"description"`
	Required    bool      `json:"required"`
	Default     any       `json:"default,omitempty"`
}

// ValidateArguments checks args against the declared parameters, in
// declaration order, stopping at the first violation. Absent optional
// parameters are not substituted here; applying defaults is a concern of
// execution, not validation. Argument names that match no declared
// parameter are rejected.
func ValidateArguments(params []Parameter, args map[string]any) error {
	declared := make(map[string]bool, len(params))
	for _, p := range params {
		declared[p.Name] = true

		v, ok := args[p.Name]
		if !ok {
			if p.Required {
				return fmt.Errorf("missing required parameter %q", p.Name)
			}
			continue
		}
		if !p.Type.Matches(v) {
			return fmt.Errorf("parameter %q: expected %s, got %T", p.Name, p.Type, v)
		}
	}

	for name := range args {
		if !declared[name] {
			return fmt.Errorf("unknown parameter %q", name)
		}
	}
	return nil
}
