package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/config"
	"github.com/thoreinstein/munconf/internal/doctor"
	"github.com/thoreinstein/munconf/internal/errors"
)

var (
	doctorJSON bool
	doctorAll  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVarP(&doctorAll, "all", "a", false,
		"show every check, including passed ones")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and catalog issues",
	Long: `Run diagnostic checks on munconf's configuration and catalog.

Checks that the config file loads and is not writable by others, that the
catalog (embedded or catalog_file) passes its self-check, and that every
document in faq_dir parses.

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  munconf doctor
  munconf doctor --all
  munconf doctor --json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func newDoctorRunner() *doctor.Runner {
	cfg := flags.Config()
	return doctor.NewRunner(
		&doctor.ConfigCheck{File: config.FileUsed(), Err: configLoadErr},
		&doctor.PermissionCheck{Path: config.FileUsed()},
		&doctor.CatalogCheck{Options: flags.CatalogOptions()},
		&doctor.FAQDirCheck{Dir: cfg.FAQDir},
	)
}

func runDoctor(c *cobra.Command, _ []string) error {
	report := newDoctorRunner().Run(contextOf(c))

	w := c.OutOrStdout()
	var err error
	if flags.JSON(doctorJSON) {
		err = writeJSON(w, report)
	} else {
		err = outputDoctorText(w, report, doctorAll)
	}
	if err != nil {
		return err
	}

	if report.HasErrors() {
		return errDoctorErrors
	}
	if report.HasWarnings() {
		return errDoctorWarnings
	}
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.Report, showAll bool) error {
	shown := 0
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}
		shown++

		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if problem && result.FixHint != "" {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if shown > 0 {
		fmt.Fprintln(w)
	}

	_, err := fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
	return err
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}

// errDoctorWarnings maps to exit code 1.
var errDoctorWarnings = errors.NewExitError(errors.New("doctor found warnings"), errors.ExitUser)

// errDoctorErrors maps to exit code 2.
var errDoctorErrors = errors.NewExitError(errors.New("doctor found errors"), errors.ExitSystem)
