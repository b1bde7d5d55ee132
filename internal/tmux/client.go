// Package tmux wraps the tmux binary behind the Manager interface consumed
// by the engine. Every call is a single tmux invocation; the client holds no
// state beyond the socket name.
package tmux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotInstalled indicates the tmux binary is not on PATH.
	ErrNotInstalled = errors.New("tmux is not installed")

	// ErrNoServer indicates no tmux server is running on the target socket.
	ErrNoServer = errors.New("no tmux server running")
)

// orderOption is the tmux session user option holding the logical creation
// order assigned by the reconciler. It disambiguates sessions whose
// second-granularity creation timestamps collide.
const orderOption = "@workmux-order"

// GroupInfo describes one live session.
type GroupInfo struct {
	Name      string
	CreatedAt time.Time
	Order     int
}

// ItemInfo describes one live window.
type ItemInfo struct {
	Name string
	Path string
}

// Manager is the surface of the session manager that the engine drives.
type Manager interface {
	ServerReachable(ctx context.Context) bool
	ListGroups(ctx context.Context) ([]GroupInfo, error)
	GroupExists(ctx context.Context, name string) bool
	CreateGroup(ctx context.Context, name, item, dir string) error
	SetGroupOrder(ctx context.Context, name string, order int) error
	CreateItem(ctx context.Context, group, name, dir string) error
	ListItems(ctx context.Context, group string) ([]ItemInfo, error)
	SelectItem(ctx context.Context, group, item string) error
	KillItem(ctx context.Context, group, item string) error
	KillGroup(ctx context.Context, name string) error
	KillServer(ctx context.Context) error
	Attach(ctx context.Context, group string) error
}

// Client implements Manager by shelling out to tmux. A non-empty socket name
// routes every call to an isolated server instance via -L.
type Client struct {
	socket string
	runner Runner
}

// NewClient creates a Client for the given socket name ("" for the default
// server). Returns ErrNotInstalled when tmux is not on PATH.
func NewClient(socket string) (*Client, error) {
	bin, err := exec.LookPath("tmux")
	if err != nil {
		return nil, ErrNotInstalled
	}
	return &Client{socket: socket, runner: &execRunner{bin: bin}}, nil
}

// NewClientWithRunner creates a Client with an injected runner for tests.
func NewClientWithRunner(socket string, runner Runner) *Client {
	return &Client{socket: socket, runner: runner}
}

func (c *Client) args(rest ...string) []string {
	if c.socket == "" {
		return rest
	}
	return append([]string{"-L", c.socket}, rest...)
}

// ServerReachable reports whether a tmux server with at least one session is
// running on the client's socket.
func (c *Client) ServerReachable(ctx context.Context) bool {
	return c.runner.Run(ctx, c.args("has-session")...) == nil
}

// ListGroups returns all sessions in creation order. Creation timestamps
// have second granularity, so ties are broken by the logical order option
// and finally by name.
func (c *Client) ListGroups(ctx context.Context) ([]GroupInfo, error) {
	format := fmt.Sprintf("#{session_name}\t#{session_created}\t#{%s}", orderOption)
	out, err := c.runner.Output(ctx, c.args("list-sessions", "-F", format)...)
	if err != nil {
		return nil, ErrNoServer
	}

	var groups []GroupInfo
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 2 {
			continue
		}
		info := GroupInfo{Name: fields[0], Order: -1}
		if sec, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
			info.CreatedAt = time.Unix(sec, 0)
		}
		if len(fields) == 3 && fields[2] != "" {
			if order, err := strconv.Atoi(fields[2]); err == nil {
				info.Order = order
			}
		}
		groups = append(groups, info)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Name < b.Name
	})

	return groups, nil
}

// GroupExists reports whether a session with exactly this name exists.
func (c *Client) GroupExists(ctx context.Context, name string) bool {
	// "=" forces an exact match instead of tmux's prefix matching.
	return c.runner.Run(ctx, c.args("has-session", "-t", "="+name)...) == nil
}

// CreateGroup creates a detached session with a single initial window. The
// server is started implicitly if it is not running yet.
func (c *Client) CreateGroup(ctx context.Context, name, item, dir string) error {
	args := []string{"new-session", "-d", "-s", name, "-n", item}
	if dir != "" {
		args = append(args, "-c", dir)
	}
	if err := c.runner.Run(ctx, c.args(args...)...); err != nil {
		return fmt.Errorf("failed to create session %q: %w", name, err)
	}
	return nil
}

// SetGroupOrder records the logical creation order on the session.
func (c *Client) SetGroupOrder(ctx context.Context, name string, order int) error {
	args := c.args("set-option", "-t", "="+name, orderOption, strconv.Itoa(order))
	if err := c.runner.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to set creation order on %q: %w", name, err)
	}
	return nil
}

// CreateItem appends a window to a session. An empty dir lets tmux pick its
// default starting directory.
func (c *Client) CreateItem(ctx context.Context, group, name, dir string) error {
	args := []string{"new-window", "-t", group + ":", "-n", name}
	if dir != "" {
		args = append(args, "-c", dir)
	}
	if err := c.runner.Run(ctx, c.args(args...)...); err != nil {
		return fmt.Errorf("failed to create window %q in %q: %w", name, group, err)
	}
	return nil
}

// ListItems returns a session's windows in display order with the current
// path of each window's active pane.
func (c *Client) ListItems(ctx context.Context, group string) ([]ItemInfo, error) {
	args := c.args("list-windows", "-t", group, "-F", "#{window_name}\t#{pane_current_path}")
	out, err := c.runner.Output(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list windows of %q: %w", group, err)
	}

	var items []ItemInfo
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" {
			continue
		}
		name, path, _ := strings.Cut(line, "\t")
		items = append(items, ItemInfo{Name: name, Path: path})
	}
	return items, nil
}

// SelectItem makes a window the session's current window.
func (c *Client) SelectItem(ctx context.Context, group, item string) error {
	return c.runner.Run(ctx, c.args("select-window", "-t", group+":"+item)...)
}

// KillItem removes a window from a session.
func (c *Client) KillItem(ctx context.Context, group, item string) error {
	return c.runner.Run(ctx, c.args("kill-window", "-t", group+":"+item)...)
}

// KillGroup removes a session.
func (c *Client) KillGroup(ctx context.Context, name string) error {
	return c.runner.Run(ctx, c.args("kill-session", "-t", "="+name)...)
}

// KillServer stops the whole server and every session on it.
func (c *Client) KillServer(ctx context.Context) error {
	return c.runner.Run(ctx, c.args("kill-server")...)
}

// Attach attaches the terminal to a session, or to the server's current
// session when group is empty. Inside an existing tmux client, attaching
// nests terminals, so the client is switched instead.
func (c *Client) Attach(ctx context.Context, group string) error {
	if os.Getenv("TMUX") != "" {
		args := []string{"switch-client"}
		if group != "" {
			args = append(args, "-t", "="+group)
		}
		return c.runner.Run(ctx, c.args(args...)...)
	}

	args := []string{"attach-session"}
	if group != "" {
		args = append(args, "-t", "="+group)
	}
	return c.runner.RunInteractive(ctx, c.args(args...)...)
}
