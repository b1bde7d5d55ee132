package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/workmux/internal/snapshot"
	"github.com/danieljhkim/workmux/internal/workspace"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [path]",
	Short: "Write the live workspace state to the config format",
	Long: `Serialize the running sessions and windows into the declarative workspace
format. Without a path the workspace config file is overwritten; the previous
file is kept at a fixed backup name alongside it.`,
	Args:    maxOneArg,
	GroupID: "inspection",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		live, err := app.engine.ReadLive(context.Background())
		if err != nil {
			return err
		}
		text := workspace.Encode(live, app.home)

		target := app.paths.Workspaces
		if len(args) == 1 {
			target = args[0]
		}

		writer := snapshot.NewWriter(app.fs)
		if err := writer.Write(target, text); err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("snapshot written to %s", target))
		return nil
	},
}
