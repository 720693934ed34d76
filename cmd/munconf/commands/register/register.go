// Package register provides the registration form commands: checking a
// filled-in record, simulating its submission and scaffolding a blank one.
package register

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/registration"
	"github.com/thoreinstein/munconf/internal/validation"
)

// Cmd is the register command.
var Cmd = &cobra.Command{
	Use:   "register",
	Short: "Work with delegate registration records",
	Long: `Check, submit and scaffold delegate registration records.

A record is a YAML, TOML or JSON file holding the registration form's fields
(run 'munconf register fields' to list them). Validation reports, for each
field, the first rule it breaks.`,
	Example: `  # Create a blank record to fill in
  munconf register init delegate.yaml

  # Check it, re-checking on every save
  munconf register validate delegate.yaml --watch

  # Submit it
  munconf register submit delegate.yaml`,
}

// supportedFormats is shown when a record file cannot be decoded.
const supportedFormats = "Records must be .yaml, .yml, .toml or .json files"

func reportFormat(jsonFlag bool) validation.Format {
	if flags.JSON(jsonFlag) {
		return validation.FormatJSON
	}
	return validation.FormatText
}

// decode reads a record file, mapping failures to user errors.
func decode(path string) (validation.Record, error) {
	rec, err := registration.Decode(path)
	if err != nil {
		return nil, errors.NewUserError(err, supportedFormats)
	}
	return rec, nil
}

// errInvalid signals a reported validation failure.
var errInvalid = errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
