package register

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/registration"
	"github.com/thoreinstein/munconf/internal/validation"
)

var fieldsJSON bool

func init() {
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "output as JSON")
	Cmd.AddCommand(fieldsCmd)
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List registration form fields and their rules",
	Long: `List every registration form field in form order with the rules that
apply to it. Fields without rules are optional.`,
	Example: `  munconf register fields`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flags.JSON(fieldsJSON) {
			return outputFieldsJSON(cmd.OutOrStdout())
		}
		return outputFields(cmd.OutOrStdout())
	},
}

// fieldInfo describes one form field.
type fieldInfo struct {
	Field    string   `json:"field"`
	Required bool     `json:"required"`
	Rules    []string `json:"rules"`
}

func describeFields() []fieldInfo {
	infos := make([]fieldInfo, 0, len(registration.Fields))
	for _, field := range registration.Fields {
		info := fieldInfo{Field: field, Rules: []string{}}
		for _, r := range registration.Rules.For(field) {
			info.Rules = append(info.Rules, r.Name)
			if r.Name == validation.RuleRequired {
				info.Required = true
			}
		}
		infos = append(infos, info)
	}
	return infos
}

func outputFields(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tREQUIRED\tRULES")
	for _, info := range describeFields() {
		required := "no"
		if info.Required {
			required = "yes"
		}
		rules := strings.Join(info.Rules, ", ")
		if rules == "" {
			rules = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Field, required, rules)
	}
	return tw.Flush()
}

func outputFieldsJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(describeFields()), "encoding JSON")
}
