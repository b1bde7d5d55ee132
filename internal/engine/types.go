package engine

import "time"

// Status classifies one item in a diff report.
type Status string

const (
	StatusUnchanged   Status = "unchanged"
	StatusAdded       Status = "added"
	StatusRemoved     Status = "removed"
	StatusPathChanged Status = "path-changed"
)

// ItemDiff is the classification of a single item. A reordered item appears
// twice: once removed (config-order pass) and once added (live-order pass).
type ItemDiff struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Path    string `json:"path,omitempty"`
	OldPath string `json:"old_path,omitempty"`
}

// GroupDiff is the per-group diff: the config-order pass entries followed by
// the live-order pass additions.
type GroupDiff struct {
	Name     string     `json:"name"`
	InConfig bool       `json:"in_config"`
	InLive   bool       `json:"in_live"`
	Items    []ItemDiff `json:"items"`
}

// Clean reports whether the group has no changes.
func (g *GroupDiff) Clean() bool {
	if !g.InConfig || !g.InLive {
		return false
	}
	for _, item := range g.Items {
		if item.Status != StatusUnchanged {
			return false
		}
	}
	return true
}

// DiffReport holds all config groups in config order followed by live-only
// groups in creation order.
type DiffReport struct {
	Groups []GroupDiff `json:"groups"`
}

// Clean reports whether config and live state are in sync.
func (r *DiffReport) Clean() bool {
	for i := range r.Groups {
		if !r.Groups[i].Clean() {
			return false
		}
	}
	return true
}

// CreatedGroup records one group created by the reconciler with its creation
// stamp and assigned logical order.
type CreatedGroup struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Order     int       `json:"order"`
}

// CreateResult reports what a reconciliation run did.
type CreateResult struct {
	Created []CreatedGroup `json:"created"`
	Skipped []string       `json:"skipped"`
}
