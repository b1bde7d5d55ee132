package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:     "ls",
	Short:   "List live sessions and their windows",
	Args:    noArgs,
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

		if jsonOutput {
			return outputJSON(live)
		}

		for _, g := range live.Groups {
			_, _ = headerColor.Printf("%s\n", g.Name)
			for _, item := range g.Items {
				if item.Path == "" {
					fmt.Printf("  %s\n", item.Name)
					continue
				}
				fmt.Printf("  %s: ", item.Name)
				_, _ = dimColor.Printf("%s\n", item.Path)
			}
		}
		return nil
	},
}
