// Package config manages workmux configuration and filesystem paths.
//
// The default root is <user config dir>/workmux/ containing the workspaces
// file and optional settings. The root can be overridden with WORKMUX_ROOT.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by workmux.
type Paths struct {
	// Root is the base directory for workmux data.
	Root string

	// Workspaces is the path to the declarative workspace file.
	Workspaces string

	// Settings is the path to the optional settings file.
	Settings string
}

// DefaultPaths returns the default paths for workmux.
// WORKMUX_ROOT overrides the root directory.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("WORKMUX_ROOT")
	if root == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user config directory: %w", err)
		}
		root = filepath.Join(base, "workmux")
	}

	return &Paths{
		Root:       root,
		Workspaces: filepath.Join(root, "workspaces.conf"),
		Settings:   filepath.Join(root, "settings.yaml"),
	}, nil
}

// EnsureDirectories creates the root directory if it doesn't exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}

// BackupPath returns the fixed backup location for a workspace file,
// alongside the original.
func BackupPath(target string) string {
	return target + ".bak"
}
