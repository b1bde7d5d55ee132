package cli

import (
	"errors"

	"github.com/danieljhkim/workmux/internal/tmux"
)

// errToolMissing marks a required external tool (e.g. the configured editor)
// that is not on PATH. Mapped to exit code 127 like a missing tmux binary.
var errToolMissing = errors.New("required tool not found")

// usageError marks command line misuse so main can exit with code 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newUsageError(err error) error {
	return &usageError{err: err}
}

// ExitCode maps an Execute error to the process exit code:
// 0 success, 1 recoverable user error, 2 usage error, 127 missing tool.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, tmux.ErrNotInstalled) || errors.Is(err, errToolMissing) {
		return 127
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}
