package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/catalog"
	"github.com/thoreinstein/munconf/internal/filter"
	"github.com/thoreinstein/munconf/internal/logging"
)

// noCommittees is printed when a filter matches nothing.
const noCommittees = "No committees found."

var (
	committeeCategory    string
	committeeSearch      string
	committeeJSON        bool
	committeeInteractive bool
)

func init() {
	committeesCmd.Flags().StringVarP(&committeeCategory, "category", "c", filter.All,
		"committee type to show (All, Political, Economic, ...)")
	committeesCmd.Flags().StringVarP(&committeeSearch, "search", "s", "",
		"case-insensitive text to find in name, description or type")
	committeesCmd.Flags().BoolVar(&committeeJSON, "json", false,
		"output as JSON")
	committeesCmd.Flags().BoolVarP(&committeeInteractive, "interactive", "i", false,
		"pick a committee with a fuzzy finder")
	rootCmd.AddCommand(committeesCmd)
}

var committeesCmd = &cobra.Command{
	Use:     "committees",
	Aliases: []string{"committee"},
	Short:   "List conference committees",
	Long: `List the committees delegates can choose, optionally narrowed to one
committee type and to those mentioning a search term.

The category filter is exact; "All" (the default) shows every type. The
search is case-insensitive and matches anywhere in the name, description or
type. Both filters keep catalog order.`,
	Example: `  # All committees
  munconf committees

  # Economic committees mentioning trade
  munconf committees --category Economic --search trade

  # Browse interactively
  munconf committees -i`,
	Args: cobra.NoArgs,
	RunE: runCommittees,
}

func runCommittees(c *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	if !cat.ValidCommitteeCategory(committeeCategory) {
		return unknownCategory(committeeCategory, cat.CommitteeFilterOptions())
	}

	results := cat.SearchCommittees(committeeCategory, committeeSearch)
	logging.FromContext(c.Context()).Debug("filtered committees",
		"category", committeeCategory,
		"search", committeeSearch,
		"matches", len(results),
		"total", len(cat.Committees))

	w := c.OutOrStdout()
	switch {
	case committeeInteractive:
		return pickCommittee(c.InOrStdin(), w, results)
	case flags.JSON(committeeJSON):
		return writeJSON(w, results)
	default:
		return outputCommittees(w, results)
	}
}

func outputCommittees(w io.Writer, committees []catalog.Committee) error {
	if len(committees) == 0 {
		_, err := fmt.Fprintln(w, noCommittees)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		bold("NAME"), bold("TYPE"), bold("DIFFICULTY"), bold("DELEGATES"), bold("DESCRIPTION"))
	for _, cm := range committees {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			green(cm.Name),
			cm.Category,
			cm.Difficulty,
			cm.Delegates,
			gray(truncate(cm.Description, 60)))
	}
	return tw.Flush()
}

func describeCommittee(cm catalog.Committee) string {
	return fmt.Sprintf("%s (%s)\nType:       %s\nDifficulty: %s\nDelegates:  %d\n\n%s\n",
		cm.Name, cm.ID, cm.Category, cm.Difficulty, cm.Delegates, cm.Description)
}
