package engine

import (
	"context"

	"github.com/danieljhkim/workmux/internal/workspace"
)

// placeholderItem names the initial window every group is created with. The
// manager requires at least one window per session; the placeholder is
// removed once the configured windows exist.
const placeholderItem = "workmux-init"

// Create realizes the config against the session manager. Groups that
// already exist are skipped, so a partially failed run can be re-run safely.
//
// Each created group is assigned a strictly increasing logical order stored
// on the session itself. The manager's own creation timestamps have second
// granularity and collide when groups are created back to back; the logical
// order keeps creation-order sorts (such as default attach target)
// deterministic without waiting out clock ticks.
//
// Group and item creation failures abort the run; placeholder cleanup and
// focus normalization are cosmetic and swallow errors. Nothing is rolled
// back on failure.
func (e *Engine) Create(ctx context.Context, cfg workspace.Config) (*CreateResult, error) {
	if len(cfg.Groups) == 0 {
		return nil, ErrNoGroups
	}

	res := &CreateResult{}
	created := make(map[string]bool, len(cfg.Groups))

	order := 0
	for _, g := range cfg.Groups {
		if e.mgr.GroupExists(ctx, g.Name) {
			res.Skipped = append(res.Skipped, g.Name)
			continue
		}
		if err := e.mgr.CreateGroup(ctx, g.Name, placeholderItem, ""); err != nil {
			return nil, err
		}
		if err := e.mgr.SetGroupOrder(ctx, g.Name, order); err != nil {
			return nil, err
		}
		res.Created = append(res.Created, CreatedGroup{
			Name:      g.Name,
			CreatedAt: e.clock.Now(),
			Order:     order,
		})
		created[g.Name] = true
		order++
	}

	for _, g := range cfg.Groups {
		if !created[g.Name] {
			continue
		}
		for _, item := range g.Items {
			dir := workspace.ExpandHome(item.Path, e.home)
			if err := e.mgr.CreateItem(ctx, g.Name, item.Name, dir); err != nil {
				return nil, err
			}
		}
	}

	for _, g := range cfg.Groups {
		if created[g.Name] {
			e.removePlaceholder(ctx, g.Name)
		}
	}
	for _, g := range cfg.Groups {
		e.normalizeFocus(ctx, g)
	}

	return res, nil
}

// removePlaceholder kills the placeholder window once the group holds more
// than it. Best-effort.
func (e *Engine) removePlaceholder(ctx context.Context, group string) {
	items, err := e.mgr.ListItems(ctx, group)
	if err != nil || len(items) <= 1 {
		return
	}
	for _, item := range items {
		if item.Name == placeholderItem {
			_ = e.mgr.KillItem(ctx, group, item.Name)
			return
		}
	}
}

// normalizeFocus selects the second item then the first, leaving the first
// current and the second most recently used so a single "last window"
// toggle switches between the two leading items. Best-effort.
func (e *Engine) normalizeFocus(ctx context.Context, g *workspace.Group) {
	if len(g.Items) == 0 {
		return
	}
	if len(g.Items) > 1 {
		_ = e.mgr.SelectItem(ctx, g.Name, g.Items[1].Name)
	}
	_ = e.mgr.SelectItem(ctx, g.Name, g.Items[0].Name)
}
