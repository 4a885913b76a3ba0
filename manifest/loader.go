package manifest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lmeynard/skillkit/skills"
)

// manifestGlob matches manifest files anywhere below a skills directory.
const manifestGlob = "**/*.{jsonc,json,yaml,yml}"

// LoadDir discovers manifest files under dir recursively and registers the
// resulting skills. A missing directory is skipped; a malformed manifest is
// logged and skipped so one bad file cannot take down the whole catalog.
func LoadDir(registry *skills.Registry, dir string) error {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			slog.Debug("skills directory not found, skipping", "dir", dir)
			return nil
		}
		return fmt.Errorf("stat skills dir %s: %w", dir, err)
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(dir, manifestGlob))
	if err != nil {
		return fmt.Errorf("scan skills dir %s: %w", dir, err)
	}

	for _, path := range matches {
		def, err := Load(path)
		if err != nil {
			slog.Warn("failed to load skill manifest", "path", path, "error", err)
			continue
		}

		if err := registry.Register(def.Skill()); err != nil {
			slog.Warn("failed to register manifest skill", "name", def.Name, "error", err)
			continue
		}
		slog.Debug("registered manifest skill", "name", def.Name, "path", path)
	}

	return nil
}
