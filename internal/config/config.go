// Package config loads the skillkit configuration: where skill manifests
// live, how big the event buffer is, and where the execution audit log goes.
package config

// Config is the root configuration for skillkit.
type Config struct {
	Skills SkillsConfig `json:"skills"`
	Events EventsConfig `json:"events"`
	Audit  AuditConfig  `json:"audit"`
}

// SkillsConfig configures manifest skill discovery.
type SkillsConfig struct {
	Dirs []string `json:"dirs"` // manifest directories (default: [$SKILLKIT_PATH/skills])
}

// EventsConfig holds event bus settings.
type EventsConfig struct {
	BufferSize int `json:"buffer_size"`
}

// AuditConfig configures the execution audit log.
type AuditConfig struct {
	Disabled bool   `json:"disabled"`
	Path     string `json:"path"` // sqlite file (default: $SKILLKIT_PATH/audit.db)
}
