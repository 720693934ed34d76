package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/catalog"
)

var aboutJSON bool

func init() {
	aboutCmd.Flags().BoolVar(&aboutJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(aboutCmd)
}

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Describe the conference",
	Long: `Show what delegates get out of the conference and the experience
levels accepted on the registration form.`,
	Example: `  munconf about`,
	Args:    cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		if flags.JSON(aboutJSON) {
			return writeJSON(c.OutOrStdout(), aboutOutput{
				Highlights:       cat.Highlights,
				ExperienceLevels: cat.ExperienceLevels,
			})
		}
		return outputAbout(c.OutOrStdout(), cat)
	},
}

type aboutOutput struct {
	Highlights       []catalog.Highlight `json:"highlights"`
	ExperienceLevels []string            `json:"experience_levels"`
}

func outputAbout(w io.Writer, cat *catalog.Catalog) error {
	for _, h := range cat.Highlights {
		fmt.Fprintf(w, "%s\n  %s\n\n", bold(h.Title), h.Description)
	}
	fmt.Fprintln(w, bold("Experience levels"))
	for _, level := range cat.ExperienceLevels {
		fmt.Fprintf(w, "  - %s\n", level)
	}
	return nil
}
