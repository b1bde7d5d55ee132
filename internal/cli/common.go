package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/workmux/internal/clock"
	"github.com/danieljhkim/workmux/internal/config"
	"github.com/danieljhkim/workmux/internal/engine"
	"github.com/danieljhkim/workmux/internal/fsops"
	"github.com/danieljhkim/workmux/internal/tmux"
	"github.com/danieljhkim/workmux/internal/workspace"
)

// app bundles the per-invocation dependencies behind the commands.
type app struct {
	engine   *engine.Engine
	paths    *config.Paths
	settings *config.Settings
	fs       fsops.FS
	home     string
}

// newApp wires real implementations of all dependencies. Flags take
// precedence over settings.yaml values.
func newApp() (*app, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	settings, err := config.LoadSettings(paths.Settings)
	if err != nil {
		return nil, err
	}

	socket := socketName
	if socket == "" {
		socket = settings.Socket
	}
	client, err := tmux.NewClient(socket)
	if err != nil {
		return nil, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return &app{
		engine:   engine.New(client, &clock.RealClock{}, home),
		paths:    paths,
		settings: settings,
		fs:       fsops.NewRealFS(),
		home:     home,
	}, nil
}

// loadConfig reads and parses the workspace file. A missing file is a user
// error; commands that need config cannot proceed without it.
func (a *app) loadConfig() (workspace.Config, error) {
	data, err := a.fs.ReadFile(a.paths.Workspaces)
	if err != nil {
		if os.IsNotExist(err) {
			return workspace.Config{}, fmt.Errorf("%w at %s (run \"workmux edit\" to create it)",
				engine.ErrConfigNotFound, a.paths.Workspaces)
		}
		return workspace.Config{}, fmt.Errorf("failed to read workspace config: %w", err)
	}

	if strictMode || a.settings.Strict {
		return workspace.ParseStrict(string(data))
	}
	return workspace.Parse(string(data)), nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
