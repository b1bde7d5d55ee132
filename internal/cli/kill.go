package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var killCmd = &cobra.Command{
	Use:     "kill",
	Short:   "Kill the tmux server and every session on it",
	Args:    noArgs,
	GroupID: "workspace-lifecycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		if err := app.engine.Kill(context.Background()); err != nil {
			return err
		}
		PrintSuccess("workspace killed")
		return nil
	},
}
