// Package workspace defines the declarative workspace model shared by the
// parser, the diff engine, and the snapshotter.
//
// A workspace is an ordered sequence of named groups (tmux sessions), each
// holding an ordered sequence of named items (windows) bound to filesystem
// paths. The same model describes both the parsed config file and a snapshot
// of the live server; live snapshots additionally carry creation-order keys.
package workspace

import "time"

// Item is a named window bound to a directory. An empty Path means the
// manager picks its default (the home directory).
type Item struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

// Group is a named session holding an ordered sequence of items. Item order
// is semantically meaningful: it determines default focus and is the basis
// for reorder detection.
type Group struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Lookup returns the item with the given name. When the config contains
// duplicate item names in one group, the last occurrence wins.
func (g *Group) Lookup(name string) (Item, bool) {
	for i := len(g.Items) - 1; i >= 0; i-- {
		if g.Items[i].Name == name {
			return g.Items[i], true
		}
	}
	return Item{}, false
}

// Config is the ordered workspace description parsed from the config file.
// It is immutable once parsed.
type Config struct {
	Groups []*Group `json:"groups"`
}

// Lookup returns the group with the given name. Group names are unique
// within a config (the parser merges repeated group headers).
func (c *Config) Lookup(name string) (*Group, bool) {
	for _, g := range c.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// LiveGroup is a group as reported by the running manager, carrying its
// creation timestamp (second granularity on the server side) and the logical
// creation order assigned at creation time.
type LiveGroup struct {
	Group
	CreatedAt time.Time `json:"created_at"`
	Order     int       `json:"order"`
}

// Live is a snapshot of the running manager, groups in creation order.
type Live struct {
	Groups []*LiveGroup `json:"groups"`
}

// First returns the earliest-created group, or nil when the snapshot is
// empty. Groups arrive from the reader already sorted by creation order.
func (l *Live) First() *LiveGroup {
	if len(l.Groups) == 0 {
		return nil
	}
	return l.Groups[0]
}

// Lookup returns the live group with the given name.
func (l *Live) Lookup(name string) (*LiveGroup, bool) {
	for _, g := range l.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}
