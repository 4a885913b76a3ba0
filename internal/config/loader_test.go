package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.jsonc"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Skills.Dirs) != 1 {
		t.Fatalf("Skills.Dirs = %v, want one default dir", cfg.Skills.Dirs)
	}
	if cfg.Events.BufferSize != 256 {
		t.Errorf("Events.BufferSize = %d, want 256", cfg.Events.BufferSize)
	}
	if cfg.Audit.Path == "" {
		t.Error("Audit.Path should default to a file path")
	}
	if cfg.Audit.Disabled {
		t.Error("Audit.Disabled should default to false")
	}
}

func TestLoadJSONCWithComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.jsonc")
	content := `{
	// manifest directories
	"skills": {
		"dirs": ["/opt/skills"],
	},
	"events": {"buffer_size": 64},
	"audit": {"disabled": true},
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Skills.Dirs) != 1 || cfg.Skills.Dirs[0] != "/opt/skills" {
		t.Errorf("Skills.Dirs = %v, want [/opt/skills]", cfg.Skills.Dirs)
	}
	if cfg.Events.BufferSize != 64 {
		t.Errorf("Events.BufferSize = %d, want 64", cfg.Events.BufferSize)
	}
	if !cfg.Audit.Disabled {
		t.Error("Audit.Disabled should be true")
	}
	if cfg.Audit.Path == "" {
		t.Error("Audit.Path should still receive its default")
	}
}

func TestLoadExpandsEnvTemplates(t *testing.T) {
	t.Setenv("SKILLKIT_TEST_DIR", "/var/lib/skills")

	path := filepath.Join(t.TempDir(), "config.jsonc")
	content := `{"skills": {"dirs": ["${{ .Env.SKILLKIT_TEST_DIR }}"]}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Skills.Dirs[0] != "/var/lib/skills" {
		t.Errorf("Skills.Dirs[0] = %q, want expanded env value", cfg.Skills.Dirs[0])
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.jsonc")
	if err := os.WriteFile(path, []byte(`{"skills": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestSkillkitPathEnvOverride(t *testing.T) {
	t.Setenv("SKILLKIT_PATH", "/srv/skillkit")
	if got := SkillkitPath(); got != "/srv/skillkit" {
		t.Errorf("SkillkitPath = %q, want /srv/skillkit", got)
	}
	if got := DefaultConfigPath(); got != filepath.Join("/srv/skillkit", "config.jsonc") {
		t.Errorf("DefaultConfigPath = %q", got)
	}
	if got := DefaultDotenvPath(); got != filepath.Join("/srv/skillkit", ".env") {
		t.Errorf("DefaultDotenvPath = %q", got)
	}
}
