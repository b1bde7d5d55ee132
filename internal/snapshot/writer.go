// Package snapshot persists a serialized live snapshot to the workspace
// file, backing up any previous file first.
package snapshot

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/workmux/internal/config"
	"github.com/danieljhkim/workmux/internal/fsops"
)

// Writer writes snapshot text to disk.
type Writer struct {
	fs fsops.FS
}

// NewWriter creates a new Writer.
func NewWriter(fs fsops.FS) *Writer {
	return &Writer{fs: fs}
}

// Write stores text at path. An existing file is first copied to the fixed
// backup name alongside it, so one prior snapshot always survives an
// overwrite.
func (w *Writer) Write(path, text string) error {
	exists, err := w.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		if err := w.fs.CopyFile(path, config.BackupPath(path)); err != nil {
			return fmt.Errorf("failed to back up %s: %w", path, err)
		}
	} else {
		if err := w.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	if err := w.fs.WriteFileAtomic(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
