package register

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/logging"
	"github.com/thoreinstein/munconf/internal/registration"
	"github.com/thoreinstein/munconf/internal/validation"
	"github.com/thoreinstein/munconf/internal/watch"
)

var (
	validateJSON  bool
	validateWatch bool
)

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	validateCmd.Flags().BoolVarP(&validateWatch, "watch", "w", false,
		"re-validate whenever the file changes")
	Cmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a registration record",
	Long: `Validate a registration record against the registration form's rules.

Each field reports at most one problem: the first rule it fails. With
--watch the file is re-checked after every save until interrupted.

Exit codes:
  0 - Record is valid
  1 - Record has violations or could not be read`,
	Example: `  # Validate a record
  munconf register validate delegate.yaml

  # Machine-readable output
  munconf register validate delegate.json --json

  # Keep validating while editing
  munconf register validate delegate.toml --watch

  See Also:
    munconf register fields  - List form fields and their rules
    munconf register submit  - Submit a valid record`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := contextOf(cmd)
	logger := logging.FromContext(ctx)
	reporter := validation.NewReporter(cmd.OutOrStdout(), reportFormat(validateJSON))

	if !validateWatch {
		return validateFile(ctx, reporter, path)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watch.New(path, flags.Config().WatchDebounce, logger)
	logger.Info("watching for changes", "path", w.Path())
	return w.Run(ctx, func(ctx context.Context) error {
		err := validateFile(ctx, reporter, path)
		if errors.Is(err, errors.ErrValidationFailed) {
			return nil
		}
		return err
	})
}

// validateFile decodes, checks and reports one record.
func validateFile(ctx context.Context, reporter *validation.Reporter, path string) error {
	rec, err := decode(path)
	if err != nil {
		return err
	}

	result := registration.Validate(rec)
	logging.FromContext(ctx).Debug("validated record",
		"path", path,
		"email", rec.Get(registration.FieldEmail),
		"violations", len(result))

	if err := reporter.Report(path, result, registration.Rules); err != nil {
		return errors.Wrap(err, "writing report")
	}
	if !result.Valid() {
		return errInvalid
	}
	return nil
}
