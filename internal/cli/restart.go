package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var restartCmd = &cobra.Command{
	Use:     "restart",
	Short:   "Kill the running workspace and recreate it from config",
	Long:    `Stop the tmux server, recreate every configured session, and attach.`,
	Args:    noArgs,
	GroupID: "workspace-lifecycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		ctx := context.Background()
		if app.engine.Reachable(ctx) {
			if err := app.engine.Kill(ctx); err != nil {
				return err
			}
		}
		return upAndAttach(ctx, app)
	},
}
