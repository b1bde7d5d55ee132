package tmux

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeRunner records invocations and serves canned output keyed by the tmux
// subcommand (the first argument after any socket flags).
type fakeRunner struct {
	calls       [][]string
	outputs     map[string]string
	failing     map[string]bool
	interactive [][]string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs: make(map[string]string),
		failing: make(map[string]bool),
	}
}

func subcommand(args []string) string {
	for i := 0; i < len(args); i++ {
		if args[i] == "-L" {
			i++
			continue
		}
		return args[i]
	}
	return ""
}

func (r *fakeRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	r.calls = append(r.calls, args)
	sub := subcommand(args)
	if r.failing[sub] {
		return nil, errors.New("exit status 1")
	}
	return []byte(r.outputs[sub]), nil
}

func (r *fakeRunner) Run(ctx context.Context, args ...string) error {
	r.calls = append(r.calls, args)
	if r.failing[subcommand(args)] {
		return errors.New("exit status 1")
	}
	return nil
}

func (r *fakeRunner) RunInteractive(ctx context.Context, args ...string) error {
	r.interactive = append(r.interactive, args)
	return nil
}

func TestClient_SocketFlagPrependedToEveryCall(t *testing.T) {
	runner := newFakeRunner()
	c := NewClientWithRunner("devspace", runner)
	ctx := context.Background()

	c.ServerReachable(ctx)
	_ = c.CreateGroup(ctx, "work", "init", "")

	for _, call := range runner.calls {
		if len(call) < 2 || call[0] != "-L" || call[1] != "devspace" {
			t.Errorf("call missing socket flag: %v", call)
		}
	}
}

func TestClient_ListGroups(t *testing.T) {
	runner := newFakeRunner()
	// Two sessions share a creation second; logical order must break the tie.
	runner.outputs["list-sessions"] = "beta\t1700000100\t1\nalpha\t1700000100\t0\nolder\t1700000000\t\n"
	c := NewClientWithRunner("", runner)

	groups, err := c.ListGroups(context.Background())
	if err != nil {
		t.Fatalf("ListGroups() error = %v", err)
	}

	want := []string{"older", "alpha", "beta"}
	if len(groups) != len(want) {
		t.Fatalf("groups = %d, want %d", len(groups), len(want))
	}
	for i, name := range want {
		if groups[i].Name != name {
			t.Errorf("groups[%d] = %q, want %q", i, groups[i].Name, name)
		}
	}
	if got := groups[0].CreatedAt; !got.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("CreatedAt = %v, want %v", got, time.Unix(1700000000, 0))
	}
	if groups[0].Order != -1 {
		t.Errorf("unset order = %d, want -1", groups[0].Order)
	}
}

func TestClient_ListGroups_NoServer(t *testing.T) {
	runner := newFakeRunner()
	runner.failing["list-sessions"] = true
	c := NewClientWithRunner("", runner)

	_, err := c.ListGroups(context.Background())
	if !errors.Is(err, ErrNoServer) {
		t.Errorf("error = %v, want ErrNoServer", err)
	}
}

func TestClient_ListItems(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["list-windows"] = "editor\t/home/user/src\nlogs\t/var/log\n"
	c := NewClientWithRunner("", runner)

	items, err := c.ListItems(context.Background(), "work")
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0] != (ItemInfo{Name: "editor", Path: "/home/user/src"}) {
		t.Errorf("unexpected first item: %+v", items[0])
	}
}

func TestClient_CreateCalls(t *testing.T) {
	runner := newFakeRunner()
	c := NewClientWithRunner("", runner)
	ctx := context.Background()

	if err := c.CreateGroup(ctx, "work", "init", "/tmp"); err != nil {
		t.Fatalf("CreateGroup() error = %v", err)
	}
	if err := c.CreateItem(ctx, "work", "editor", ""); err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	if err := c.SetGroupOrder(ctx, "work", 3); err != nil {
		t.Fatalf("SetGroupOrder() error = %v", err)
	}

	joined := make([]string, len(runner.calls))
	for i, call := range runner.calls {
		joined[i] = strings.Join(call, " ")
	}
	wants := []string{
		"new-session -d -s work -n init -c /tmp",
		"new-window -t work: -n editor",
		"set-option -t =work @workmux-order 3",
	}
	for i, want := range wants {
		if joined[i] != want {
			t.Errorf("call %d = %q, want %q", i, joined[i], want)
		}
	}
}

func TestClient_AttachOutsideTmuxIsInteractive(t *testing.T) {
	t.Setenv("TMUX", "")
	runner := newFakeRunner()
	c := NewClientWithRunner("", runner)

	if err := c.Attach(context.Background(), "work"); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if len(runner.interactive) != 1 {
		t.Fatalf("interactive calls = %d, want 1", len(runner.interactive))
	}
	if got := strings.Join(runner.interactive[0], " "); got != "attach-session -t =work" {
		t.Errorf("attach call = %q", got)
	}
}

func TestClient_AttachInsideTmuxSwitchesClient(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	runner := newFakeRunner()
	c := NewClientWithRunner("", runner)

	if err := c.Attach(context.Background(), "work"); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if len(runner.interactive) != 0 {
		t.Fatal("switch-client must not take over the terminal")
	}
	if got := strings.Join(runner.calls[0], " "); got != "switch-client -t =work" {
		t.Errorf("switch call = %q", got)
	}
}
