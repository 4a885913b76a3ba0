package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/lmeynard/skillkit/skills"
)

// Compile-time check that CommandSkill satisfies the skill contract.
var _ skills.Skill = (*CommandSkill)(nil)

// CommandSkill runs a manifest-declared shell command as a skill. Arguments
// are passed as SKILL_ARG_<NAME> environment variables; stdout becomes the
// Result data and a non-zero exit becomes a failure Result. The command runs
// with full host privilege, like any other skill body.
type CommandSkill struct {
	def *Definition
}

func (s *CommandSkill) Name() string        { return s.def.Name }
func (s *CommandSkill) Description() string { return s.def.Description }

func (s *CommandSkill) Category() string {
	if s.def.Category == "" {
		return "general"
	}
	return s.def.Category
}

func (s *CommandSkill) Tags() []string { return s.def.Tags }

func (s *CommandSkill) Version() string {
	if s.def.Version == "" {
		return "1.0.0"
	}
	return s.def.Version
}

func (s *CommandSkill) Parameters() []skills.Parameter { return s.def.Parameters }

// Execute parses and runs the manifest command. Defaults for absent
// optional parameters are applied here, at execution time.
func (s *CommandSkill) Execute(ctx context.Context, args map[string]any) skills.Result {
	file, err := syntax.NewParser().Parse(strings.NewReader(s.def.Command), s.def.Name)
	if err != nil {
		return skills.Failf("skill %q: parse command: %v", s.def.Name, err)
	}

	env := os.Environ()
	for _, p := range s.def.Parameters {
		v, ok := args[p.Name]
		if !ok {
			if p.Required || p.Default == nil {
				continue
			}
			v = p.Default
		}
		env = append(env, "SKILL_ARG_"+envKey(p.Name)+"="+formatValue(v))
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, &stdout, &stderr),
		interp.Dir(s.def.WorkDir),
	)
	if err != nil {
		return skills.Failf("skill %q: init interpreter: %v", s.def.Name, err)
	}

	if s.def.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.def.Timeout)*time.Second)
		defer cancel()
	}

	if err := runner.Run(ctx, file); err != nil {
		if code, ok := interp.IsExitStatus(err); ok {
			return skills.Result{
				Success:  false,
				Error:    fmt.Sprintf("command exited with status %d: %s", code, strings.TrimSpace(stderr.String())),
				Metadata: map[string]any{"exit_code": int(code)},
			}
		}
		return skills.Failf("skill %q: run command: %v", s.def.Name, err)
	}

	return skills.Result{
		Success:  true,
		Data:     strings.TrimRight(stdout.String(), "\n"),
		Metadata: map[string]any{"exit_code": 0},
	}
}

// envKey uppercases a parameter name into an env-var-safe suffix.
func envKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// formatValue renders an argument value for the environment. Scalars keep
// their natural text form; lists and mappings are passed as JSON.
func formatValue(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case bool:
		return strconv.FormatBool(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case nil:
		return ""
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
