package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/danieljhkim/workmux/internal/clock"
	"github.com/danieljhkim/workmux/internal/tmux"
	"github.com/danieljhkim/workmux/internal/workspace"
)

const testHome = "/home/user"

// fakeManager is an in-memory tmux.Manager. Like the real server it stamps
// session creation at second granularity, so back-to-back creations collide
// unless the logical order disambiguates them.
type fakeManager struct {
	clock  *clock.FakeClock
	groups []*fakeGroup

	selections []string // "group:item" in call order
	attached   []string

	failCreateItem bool
}

type fakeGroup struct {
	name    string
	created time.Time
	order   int
	items   []tmux.ItemInfo
}

func newFakeManager(clk *clock.FakeClock) *fakeManager {
	return &fakeManager{clock: clk}
}

func (m *fakeManager) find(name string) *fakeGroup {
	for _, g := range m.groups {
		if g.name == name {
			return g
		}
	}
	return nil
}

func (m *fakeManager) ServerReachable(ctx context.Context) bool {
	return len(m.groups) > 0
}

func (m *fakeManager) ListGroups(ctx context.Context) ([]tmux.GroupInfo, error) {
	if len(m.groups) == 0 {
		return nil, tmux.ErrNoServer
	}
	infos := make([]tmux.GroupInfo, 0, len(m.groups))
	for _, g := range m.groups {
		infos = append(infos, tmux.GroupInfo{Name: g.name, CreatedAt: g.created, Order: g.order})
	}
	sort.SliceStable(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Name < b.Name
	})
	return infos, nil
}

func (m *fakeManager) GroupExists(ctx context.Context, name string) bool {
	return m.find(name) != nil
}

func (m *fakeManager) CreateGroup(ctx context.Context, name, item, dir string) error {
	if m.find(name) != nil {
		return fmt.Errorf("duplicate session %q", name)
	}
	m.groups = append(m.groups, &fakeGroup{
		name:    name,
		created: m.clock.Now().Truncate(time.Second),
		order:   -1,
		items:   []tmux.ItemInfo{{Name: item, Path: dir}},
	})
	return nil
}

func (m *fakeManager) SetGroupOrder(ctx context.Context, name string, order int) error {
	g := m.find(name)
	if g == nil {
		return fmt.Errorf("no session %q", name)
	}
	g.order = order
	return nil
}

func (m *fakeManager) CreateItem(ctx context.Context, group, name, dir string) error {
	if m.failCreateItem {
		return errors.New("exit status 1")
	}
	g := m.find(group)
	if g == nil {
		return fmt.Errorf("no session %q", group)
	}
	if dir == "" {
		dir = testHome
	}
	g.items = append(g.items, tmux.ItemInfo{Name: name, Path: dir})
	return nil
}

func (m *fakeManager) ListItems(ctx context.Context, group string) ([]tmux.ItemInfo, error) {
	g := m.find(group)
	if g == nil {
		return nil, fmt.Errorf("no session %q", group)
	}
	return append([]tmux.ItemInfo(nil), g.items...), nil
}

func (m *fakeManager) SelectItem(ctx context.Context, group, item string) error {
	m.selections = append(m.selections, group+":"+item)
	return nil
}

func (m *fakeManager) KillItem(ctx context.Context, group, item string) error {
	g := m.find(group)
	if g == nil {
		return fmt.Errorf("no session %q", group)
	}
	for i, it := range g.items {
		if it.Name == item {
			g.items = append(g.items[:i], g.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no window %q", item)
}

func (m *fakeManager) KillGroup(ctx context.Context, name string) error {
	for i, g := range m.groups {
		if g.name == name {
			m.groups = append(m.groups[:i], m.groups[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no session %q", name)
}

func (m *fakeManager) KillServer(ctx context.Context) error {
	m.groups = nil
	return nil
}

func (m *fakeManager) Attach(ctx context.Context, group string) error {
	m.attached = append(m.attached, group)
	return nil
}

var _ tmux.Manager = (*fakeManager)(nil)

func newTestEngine() (*Engine, *fakeManager, *clock.FakeClock) {
	clk := clock.NewFakeClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	mgr := newFakeManager(clk)
	return New(mgr, clk, testHome), mgr, clk
}

// group is a test helper building a config group from "name:path" pairs.
func group(name string, items ...string) *workspace.Group {
	g := &workspace.Group{Name: name}
	for _, pair := range items {
		itemName, path, _ := strings.Cut(pair, "=")
		g.Items = append(g.Items, workspace.Item{Name: itemName, Path: path})
	}
	return g
}
