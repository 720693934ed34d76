package validation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Report is the JSON shape of a rendered Result.
type Report struct {
	Source string  `json:"source,omitempty"`
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues"`
}

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes result for source, listing issues in the field order of rules.
func (r *Reporter) Report(source string, result Result, rules RuleSet) error {
	rep := Report{
		Source: source,
		Valid:  result.Valid(),
		Issues: result.Issues(rules),
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(rep)
	default:
		return r.reportText(rep)
	}
}

func (r *Reporter) reportJSON(rep Report) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(rep), "encoding JSON report")
}

func (r *Reporter) reportText(rep Report) error {
	prefix := ""
	if rep.Source != "" {
		prefix = rep.Source + ": "
	}

	if rep.Valid {
		_, err := fmt.Fprintln(r.out, prefix+color.GreenString("✓ Validation passed"))
		return err
	}

	fmt.Fprintf(r.out, "%sValidation failed: %s\n\n", prefix,
		color.RedString("%d field(s)", len(rep.Issues)))

	field := color.New(color.FgRed).SprintFunc()
	for _, issue := range rep.Issues {
		fmt.Fprintf(r.out, "  • %s: %s\n", field(issue.Field), issue.Message)
	}
	_, err := fmt.Fprintln(r.out)
	return err
}
