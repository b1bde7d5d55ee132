package engine

import "errors"

var (
	// ErrConfigNotFound indicates the workspace config file does not exist.
	ErrConfigNotFound = errors.New("workspace config not found")

	// ErrNoGroups indicates the workspace config defines no groups.
	ErrNoGroups = errors.New("workspace config defines no groups")
)
