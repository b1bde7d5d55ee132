package tmux

import (
	"context"
	"os"
	"os/exec"
)

// Runner executes tmux invocations. It exists so the client can be tested
// without a real tmux server.
type Runner interface {
	// Output runs tmux with the given arguments and returns stdout.
	Output(ctx context.Context, args ...string) ([]byte, error)

	// Run runs tmux with the given arguments, discarding output.
	Run(ctx context.Context, args ...string) error

	// RunInteractive runs tmux attached to the caller's terminal. Used for
	// attach-session, which takes over the tty.
	RunInteractive(ctx context.Context, args ...string) error
}

// execRunner shells out to the tmux binary.
type execRunner struct {
	bin string
}

func (r *execRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, r.bin, args...).Output()
}

func (r *execRunner) Run(ctx context.Context, args ...string) error {
	return exec.CommandContext(ctx, r.bin, args...).Run()
}

func (r *execRunner) RunInteractive(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
