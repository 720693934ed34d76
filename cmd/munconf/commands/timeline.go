package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/catalog"
)

var timelineJSON bool

func init() {
	timelineCmd.Flags().BoolVar(&timelineJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(timelineCmd)
}

var timelineCmd = &cobra.Command{
	Use:     "timeline",
	Short:   "Show the conference timeline",
	Long:    `Show the conference's key dates in order.`,
	Example: `  munconf timeline`,
	Args:    cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		if flags.JSON(timelineJSON) {
			return writeJSON(c.OutOrStdout(), cat.Timeline)
		}
		return outputTimeline(c.OutOrStdout(), cat.Timeline)
	},
}

func outputTimeline(w io.Writer, events []catalog.Event) error {
	for _, ev := range events {
		fmt.Fprintf(w, "%s  %s\n", cyan(fmt.Sprintf("%-18s", ev.Date)), bold(ev.Title))
		if ev.Description != "" {
			fmt.Fprintf(w, "%-18s  %s\n", "", ev.Description)
		}
	}
	return nil
}
