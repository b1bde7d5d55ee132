package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/danieljhkim/workmux/internal/tmux"
)

func TestReadLive_NoServerPassesThrough(t *testing.T) {
	e, _, _ := newTestEngine()

	_, err := e.ReadLive(context.Background())
	if !errors.Is(err, tmux.ErrNoServer) {
		t.Errorf("error = %v, want ErrNoServer", err)
	}
}

func TestReadLive_CollapsesHomePaths(t *testing.T) {
	e, mgr, _ := newTestEngine()
	ctx := context.Background()

	if err := mgr.CreateGroup(ctx, "work", "editor", testHome+"/src"); err != nil {
		t.Fatal(err)
	}
	if err := mgr.CreateItem(ctx, "work", "logs", "/var/log"); err != nil {
		t.Fatal(err)
	}

	live, err := e.ReadLive(ctx)
	if err != nil {
		t.Fatalf("ReadLive() error = %v", err)
	}

	items := live.Groups[0].Items
	if items[0].Path != "~/src" {
		t.Errorf("home path = %q, want ~/src", items[0].Path)
	}
	if items[1].Path != "/var/log" {
		t.Errorf("absolute path = %q, want /var/log", items[1].Path)
	}
}

func TestKill_RequiresRunningServer(t *testing.T) {
	e, mgr, _ := newTestEngine()
	ctx := context.Background()

	if err := e.Kill(ctx); !errors.Is(err, tmux.ErrNoServer) {
		t.Errorf("Kill() without server = %v, want ErrNoServer", err)
	}

	if err := mgr.CreateGroup(ctx, "work", "a", ""); err != nil {
		t.Fatal(err)
	}
	if err := e.Kill(ctx); err != nil {
		t.Errorf("Kill() error = %v", err)
	}
	if e.Reachable(ctx) {
		t.Error("server still reachable after Kill()")
	}
}
