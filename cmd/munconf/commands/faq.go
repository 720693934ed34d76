package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/catalog"
	"github.com/thoreinstein/munconf/internal/filter"
	"github.com/thoreinstein/munconf/internal/logging"
)

// noFAQs is printed when a filter matches nothing.
const noFAQs = "No FAQs found matching your search."

var (
	faqCategory    string
	faqJSON        bool
	faqInteractive bool
)

func init() {
	faqCmd.Flags().StringVarP(&faqCategory, "category", "c", filter.All,
		"FAQ category to show (All, Registration, Preparation, ...)")
	faqCmd.Flags().BoolVar(&faqJSON, "json", false,
		"output as JSON")
	faqCmd.Flags().BoolVarP(&faqInteractive, "interactive", "i", false,
		"pick a question with a fuzzy finder")
	rootCmd.AddCommand(faqCmd)
}

var faqCmd = &cobra.Command{
	Use:   "faq [query]",
	Short: "Search frequently asked questions",
	Long: `Show frequently asked questions, optionally narrowed to one category and
to those containing the query.

The query is trimmed and matched case-insensitively anywhere in the
question, answer or category. Extra questions are read from markdown files
in the configured faq_dir.`,
	Example: `  # Every question
  munconf faq

  # Registration questions about fees
  munconf faq fee --category Registration

  # Browse interactively
  munconf faq -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFAQ,
}

func runFAQ(c *cobra.Command, args []string) error {
	var query string
	if len(args) > 0 {
		query = args[0]
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	if !cat.ValidFAQCategory(faqCategory) {
		return unknownCategory(faqCategory, cat.FAQFilterOptions())
	}

	results := cat.SearchFAQs(faqCategory, query)
	logging.FromContext(c.Context()).Debug("filtered FAQs",
		"category", faqCategory,
		"query", query,
		"matches", len(results),
		"total", len(cat.FAQs))

	w := c.OutOrStdout()
	switch {
	case faqInteractive:
		return pickFAQ(c.InOrStdin(), w, results)
	case flags.JSON(faqJSON):
		return writeJSON(w, results)
	default:
		return outputFAQs(w, results)
	}
}

func outputFAQs(w io.Writer, faqs []catalog.FAQ) error {
	if len(faqs) == 0 {
		_, err := fmt.Fprintln(w, noFAQs)
		return err
	}

	for i, f := range faqs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", bold(f.Question), gray("["+f.Category+"]"))
		for _, line := range strings.Split(strings.TrimSpace(f.Answer), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	return nil
}

func describeFAQ(f catalog.FAQ) string {
	return fmt.Sprintf("%s\nCategory: %s\n\n%s\n", f.Question, f.Category, strings.TrimSpace(f.Answer))
}
