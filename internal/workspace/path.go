package workspace

import (
	"path/filepath"
	"strings"
)

// CollapseHome replaces a leading home-directory prefix with "~". The
// substitution is cosmetic; equality comparisons must use Comparable so both
// sides are in collapsed form.
func CollapseHome(path, home string) string {
	if home == "" || path == "" {
		return path
	}
	home = strings.TrimRight(home, "/")
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}
	return path
}

// ExpandHome replaces a leading "~" with the home directory.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// Comparable returns the form used for path equality: collapsed, with the
// empty path standing in for the home directory (the manager default).
func Comparable(path, home string) string {
	if path == "" {
		return "~"
	}
	return CollapseHome(path, home)
}
