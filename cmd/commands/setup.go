package commands

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lmeynard/skillkit/builtin"
	"github.com/lmeynard/skillkit/events"
	"github.com/lmeynard/skillkit/internal/audit"
	"github.com/lmeynard/skillkit/internal/config"
	"github.com/lmeynard/skillkit/manifest"
	"github.com/lmeynard/skillkit/skills"
)

// App bundles the wired-up components a command needs. Registry and
// Executor are explicit instances; there is no process-wide singleton.
type App struct {
	Config   *config.Config
	Bus      *events.Bus
	Registry *skills.Registry
	Executor *skills.Executor

	store    *audit.Store
	recorder *audit.Recorder
}

// setupApp loads configuration, registers the builtin skills, discovers
// manifest skills, and wires the bus and audit log.
func setupApp(cmd *cli.Command) (*App, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	bus := events.NewBus(cfg.Events.BufferSize)
	registry := skills.NewRegistry()
	registerBuiltins(registry)

	for _, dir := range cfg.Skills.Dirs {
		if err := manifest.LoadDir(registry, dir); err != nil {
			slog.Warn("failed to scan skills directory", "dir", dir, "error", err)
		}
	}

	app := &App{
		Config:   cfg,
		Bus:      bus,
		Registry: registry,
		Executor: skills.NewExecutor(registry, skills.WithEventBus(bus)),
	}

	if !cfg.Audit.Disabled {
		store, err := audit.Open(cfg.Audit.Path)
		if err != nil {
			slog.Warn("audit log unavailable", "path", cfg.Audit.Path, "error", err)
		} else {
			app.store = store
			app.recorder = audit.NewRecorder(bus, store)
		}
	}

	return app, nil
}

// Close flushes pending events and releases resources.
func (a *App) Close() {
	a.Bus.Close()
	if a.recorder != nil {
		a.recorder.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
}

func registerBuiltins(registry *skills.Registry) {
	all := []skills.Skill{
		builtin.NewCalculator(),
		builtin.NewTextProcessor(),
		builtin.NewWebSearch(),
	}
	for _, s := range all {
		if err := registry.Register(s); err != nil {
			slog.Warn("failed to register builtin skill", "name", s.Name(), "error", err)
		}
	}
}
