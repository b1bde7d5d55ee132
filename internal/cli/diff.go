package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/workmux/internal/engine"
)

var diffShowAll bool

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show differences between the workspace config and live state",
	Long: `Compare the declarative workspace file against the running server.
Reordered windows are reported as one removal plus one addition; windows
whose relative order is unchanged stay quiet even when their neighbors moved.`,
	Args:    noArgs,
	GroupID: "inspection",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		cfg, err := app.loadConfig()
		if err != nil {
			return err
		}
		live, err := app.engine.ReadLive(context.Background())
		if err != nil {
			return err
		}

		report := app.engine.Diff(cfg, live)

		if jsonOutput {
			return outputJSON(report)
		}

		renderDiff(report, diffShowAll)
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVarP(&diffShowAll, "all", "a", false, "Include unchanged items in the report")
}

func renderDiff(report *engine.DiffReport, showAll bool) {
	if report.Clean() && !showAll {
		PrintEmptyState("No changes detected")
		return
	}

	for i := range report.Groups {
		g := &report.Groups[i]
		if g.Clean() && !showAll {
			continue
		}

		_, _ = headerColor.Printf("%s", g.Name)
		switch {
		case !g.InLive:
			_, _ = dimColor.Print("  (not running)")
		case !g.InConfig:
			_, _ = dimColor.Print("  (not in config)")
		}
		fmt.Println()

		for _, item := range g.Items {
			switch item.Status {
			case engine.StatusAdded:
				_, _ = successColor.Printf("  + %s", item.Name)
				printItemPath(item.Path)
			case engine.StatusRemoved:
				_, _ = errorColor.Printf("  - %s", item.Name)
				printItemPath(item.Path)
			case engine.StatusPathChanged:
				_, _ = warningColor.Printf("  ~ %s", item.Name)
				_, _ = dimColor.Printf("  %s -> %s\n", item.OldPath, item.Path)
			default:
				if showAll {
					fmt.Printf("    %s", item.Name)
					printItemPath(item.Path)
				}
			}
		}
	}
}

func printItemPath(path string) {
	if path == "" {
		fmt.Println()
		return
	}
	_, _ = dimColor.Printf("  %s\n", path)
}
