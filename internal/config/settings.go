package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are optional user preferences loaded from settings.yaml. Command
// line flags take precedence over them.
type Settings struct {
	// Editor opens the workspace file for the edit command. Falls back to
	// $VISUAL, $EDITOR, then vi.
	Editor string `yaml:"editor"`

	// Socket is the default tmux socket name ("" for the default server).
	Socket string `yaml:"socket"`

	// Strict surfaces malformed workspace lines as errors instead of
	// silently dropping them.
	Strict bool `yaml:"strict"`
}

// LoadSettings reads settings from path. A missing file is not an error and
// yields zero-value settings.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &s, nil
}
