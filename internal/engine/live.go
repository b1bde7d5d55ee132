package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/workmux/internal/workspace"
)

// ReadLive queries the session manager and builds a snapshot with groups in
// creation order and items in display order. Item paths are collapsed with
// the "~" home marker. Returns tmux.ErrNoServer when no server is running;
// callers decide whether that is fatal.
func (e *Engine) ReadLive(ctx context.Context) (workspace.Live, error) {
	groups, err := e.mgr.ListGroups(ctx)
	if err != nil {
		return workspace.Live{}, err
	}

	var live workspace.Live
	for _, g := range groups {
		lg := &workspace.LiveGroup{
			Group:     workspace.Group{Name: g.Name},
			CreatedAt: g.CreatedAt,
			Order:     g.Order,
		}
		items, err := e.mgr.ListItems(ctx, g.Name)
		if err != nil {
			return workspace.Live{}, fmt.Errorf("failed to read group %q: %w", g.Name, err)
		}
		for _, item := range items {
			lg.Items = append(lg.Items, workspace.Item{
				Name: item.Name,
				Path: workspace.CollapseHome(item.Path, e.home),
			})
		}
		live.Groups = append(live.Groups, lg)
	}

	return live, nil
}
