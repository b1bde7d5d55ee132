package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:     "edit",
	Short:   "Open the workspace config in your editor",
	Args:    noArgs,
	GroupID: "workspace-lifecycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		if err := app.paths.EnsureDirectories(); err != nil {
			return err
		}

		editor := app.settings.Editor
		if editor == "" {
			editor = os.Getenv("VISUAL")
		}
		if editor == "" {
			editor = os.Getenv("EDITOR")
		}
		if editor == "" {
			editor = "vi"
		}

		bin, err := exec.LookPath(editor)
		if err != nil {
			return fmt.Errorf("%w: %s", errToolMissing, editor)
		}

		c := exec.Command(bin, app.paths.Workspaces)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}
