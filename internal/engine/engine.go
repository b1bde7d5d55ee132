// Package engine implements the reconciliation core: reading live state
// from the session manager, diffing it against the declarative config, and
// creating sessions from the config.
//
// The engine is the orchestration layer between CLI commands and the tmux
// client. All operations are synchronous and single-threaded; the live
// server is treated as exclusively owned for the duration of an invocation
// (a concurrent invocation can race on existence checks, which is accepted).
package engine

import (
	"context"

	"github.com/danieljhkim/workmux/internal/clock"
	"github.com/danieljhkim/workmux/internal/tmux"
)

// Engine coordinates all workspace operations.
// It is the main API surface called by the CLI.
type Engine struct {
	mgr   tmux.Manager
	clock clock.Clock
	home  string
}

// New creates a new Engine with the given dependencies. home is the user's
// home directory, used for "~" path normalization.
func New(mgr tmux.Manager, clk clock.Clock, home string) *Engine {
	return &Engine{
		mgr:   mgr,
		clock: clk,
		home:  home,
	}
}

// Reachable reports whether the session manager is running.
func (e *Engine) Reachable(ctx context.Context) bool {
	return e.mgr.ServerReachable(ctx)
}

// Attach attaches the caller's terminal to a group, or to the manager's
// current group when group is empty.
func (e *Engine) Attach(ctx context.Context, group string) error {
	return e.mgr.Attach(ctx, group)
}

// Kill stops the session manager and every group on it. Unlike the
// reconciler's cleanup calls this is fatal-checked: asking to kill a server
// that is not running is an error.
func (e *Engine) Kill(ctx context.Context) error {
	if !e.mgr.ServerReachable(ctx) {
		return tmux.ErrNoServer
	}
	return e.mgr.KillServer(ctx)
}
