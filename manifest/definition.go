// Package manifest loads declarative skills from manifest files. A manifest
// is a JSONC or YAML document declaring a skill's identity, its parameter
// schema, and the shell command that implements it. Loaded definitions are
// adapted into the skills.Skill contract via CommandSkill.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/lmeynard/skillkit/skills"
)

// Definition is the declarative form of a command skill.
type Definition struct {
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Version     string             `json:"version,omitempty" yaml:"version,omitempty"`
	Category    string             `json:"category,omitempty" yaml:"category,omitempty"`
	Tags        []string           `json:"tags,omitempty" yaml:"tags,omitempty"`
	Parameters  []skills.Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// Command is the shell script to run. Arguments are exported to it as
	// SKILL_ARG_<NAME> environment variables.
	Command string `json:"command" yaml:"command"`
	WorkDir string `json:"work_dir,omitempty" yaml:"work_dir,omitempty"`
	// Timeout bounds one execution, in seconds. Zero means no limit.
	Timeout int `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Parse decodes a manifest document. The format is chosen by file extension:
// .jsonc and .json via hujson, .yaml and .yml via yaml.
func Parse(path string, data []byte) (*Definition, error) {
	var def Definition

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jsonc", ".json":
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("standardize %s: %w", path, err)
		}
		if err := json.Unmarshal(std, &def); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest extension %q", ext)
	}

	return &def, nil
}

// Load reads, parses and validates a manifest file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	def, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("validate manifest %s: %w", path, err)
	}
	return def, nil
}

// Validate checks the definition for consistency.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("skill name is required")
	}
	if d.Description == "" {
		return fmt.Errorf("skill %q: description is required", d.Name)
	}
	if d.Command == "" {
		return fmt.Errorf("skill %q: command is required", d.Name)
	}

	seen := make(map[string]bool, len(d.Parameters))
	for _, p := range d.Parameters {
		if p.Name == "" {
			return fmt.Errorf("skill %q: parameter name is required", d.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("skill %q: duplicate parameter %q", d.Name, p.Name)
		}
		seen[p.Name] = true
		if !p.Type.Valid() {
			return fmt.Errorf("skill %q: parameter %q: unknown type %q", d.Name, p.Name, p.Type)
		}
	}
	return nil
}

// Skill adapts the definition into the skill contract.
func (d *Definition) Skill() skills.Skill {
	return &CommandSkill{def: d}
}
