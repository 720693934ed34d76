package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/catalog"
	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/logging"
	"github.com/thoreinstein/munconf/internal/paths"
	"github.com/thoreinstein/munconf/internal/validation"
	"github.com/thoreinstein/munconf/pkg/fileutil"
)

var (
	faqAddCategory string
	faqAddAnswer   string
	faqAddDir      string
	faqAddForce    bool
)

func init() {
	faqAddCmd.Flags().StringVarP(&faqAddCategory, "category", "c", "",
		"FAQ category (Registration, Preparation, ...)")
	faqAddCmd.Flags().StringVarP(&faqAddAnswer, "answer", "a", "",
		"answer text (markdown)")
	faqAddCmd.Flags().StringVar(&faqAddDir, "dir", "",
		"directory to write to (default: faq_dir from the config)")
	faqAddCmd.Flags().BoolVarP(&faqAddForce, "force", "f", false,
		"overwrite an existing document")
	faqCmd.AddCommand(faqAddCmd)
}

var faqAddCmd = &cobra.Command{
	Use:   "add <question>",
	Short: "Write a new FAQ document",
	Long: `Write a question and its answer as a markdown document in the FAQ
directory. The entry is checked against the catalog's FAQ rules first, and
the file name is derived from the question.`,
	Example: `  munconf faq add "Is there a refund policy?" \
    --category Registration --answer "Refunds are available until February 1."`,
	Args: cobra.ExactArgs(1),
	RunE: runFAQAdd,
}

func runFAQAdd(c *cobra.Command, args []string) error {
	dir := faqAddDir
	if dir == "" {
		dir = flags.Config().FAQDir
	}
	if dir == "" {
		return errors.NewUserError(
			errors.New("no FAQ directory configured"),
			"Pass --dir or set faq_dir in the config file")
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	entry := catalog.FAQ{
		Question: strings.TrimSpace(args[0]),
		Answer:   strings.TrimSpace(faqAddAnswer),
		Category: strings.TrimSpace(faqAddCategory),
	}
	if res := cat.ValidateFAQ(entry); !res.Valid() {
		reporter := validation.NewReporter(c.OutOrStdout(), validation.FormatText)
		if err := reporter.Report("faq", res, cat.FAQRules()); err != nil {
			return err
		}
		return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
	}

	path := filepath.Join(dir, catalog.FAQDocName(entry.Question))
	if _, err := os.Stat(path); err == nil && !faqAddForce {
		return errors.NewUserError(
			errors.Newf("%s already exists", path),
			"Use --force to overwrite it")
	}

	data, err := catalog.FormatFAQDoc(entry)
	if err != nil {
		return err
	}
	if err := paths.EnsureDir(dir, 0o755); err != nil {
		return errors.NewSystemError(err, "Check that the parent directory is writable")
	}
	if err := fileutil.WriteAtomic(path, data, 0o644); err != nil {
		return errors.NewSystemError(err, "Check that the directory is writable")
	}

	logging.FromContext(c.Context()).Debug("wrote FAQ document", "path", path, "category", entry.Category)
	fmt.Fprintf(c.OutOrStdout(), "Created %s\n", path)
	return nil
}
