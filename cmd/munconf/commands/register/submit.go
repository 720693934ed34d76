package register

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/catalog"
	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/logging"
	"github.com/thoreinstein/munconf/internal/registration"
	"github.com/thoreinstein/munconf/internal/validation"
)

var submitJSON bool

// now is replaced in tests.
var now = time.Now

func init() {
	submitCmd.Flags().BoolVar(&submitJSON, "json", false,
		"output the receipt as JSON")
	Cmd.AddCommand(submitCmd)
}

var submitCmd = &cobra.Command{
	Use:   "submit <file>",
	Short: "Submit a registration record",
	Long: `Validate a registration record and, if it passes, submit it.

Submission is simulated: nothing is sent or stored. A receipt with a
reference id is printed instead.`,
	Example: `  # Submit a record
  munconf register submit delegate.yaml

  # Receipt as JSON
  munconf register submit delegate.yaml --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := logging.FromContext(contextOf(cmd))
	jsonOut := flags.JSON(submitJSON)

	rec, err := decode(path)
	if err != nil {
		return err
	}

	receipt, result := registration.Submit(rec, now())
	if !result.Valid() {
		reporter := validation.NewReporter(cmd.OutOrStdout(), reportFormat(submitJSON))
		if err := reporter.Report(path, result, registration.Rules); err != nil {
			return errors.Wrap(err, "writing report")
		}
		return errInvalid
	}

	if cat, err := catalog.Load(flags.CatalogOptions()); err != nil {
		logger.Warn("committee names unavailable", "error", err)
	} else if cm, ok := cat.Committee(receipt.Committee); ok {
		receipt.Committee = cm.Name
	}

	logger.Info("registration submitted", "id", receipt.ID.String(), "email", receipt.Email)

	if jsonOut {
		return outputReceiptJSON(cmd.OutOrStdout(), receipt)
	}
	return outputReceipt(cmd.OutOrStdout(), receipt)
}

func outputReceipt(w io.Writer, r registration.Receipt) error {
	fmt.Fprintln(w, color.GreenString(registration.ThankYouMessage))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Reference: %s\n", r.ID)
	fmt.Fprintf(w, "  Delegate:  %s <%s>\n", r.Name, r.Email)
	fmt.Fprintf(w, "  Committee: %s\n", r.Committee)
	_, err := fmt.Fprintf(w, "  Received:  %s\n", r.SubmittedAt.Format(time.RFC1123))
	return err
}

// receiptOutput is the JSON shape of a successful submission.
type receiptOutput struct {
	Message string               `json:"message"`
	Receipt registration.Receipt `json:"receipt"`
}

func outputReceiptJSON(w io.Writer, r registration.Receipt) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(receiptOutput{
		Message: registration.ThankYouMessage,
		Receipt: r,
	}), "encoding JSON")
}
