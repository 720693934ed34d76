package commands

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/catalog"
	"github.com/thoreinstein/munconf/internal/errors"
)

// Output styles for listings.
var (
	bold  = color.New(color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
)

// loadCatalog loads the catalog named by the configuration.
func loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load(flags.CatalogOptions())
	if err != nil {
		return nil, errors.NewConfigError(err)
	}
	return cat, nil
}

// unknownCategory reports a category outside options.
func unknownCategory(value string, options []string) error {
	return errors.NewUserError(
		errors.Wrapf(errors.ErrUnknownCategory, "%q", value),
		"Valid categories: "+strings.Join(options, ", "))
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encoding JSON")
}

// truncate shortens s to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// contextOf returns the command's context, or Background before Execute.
func contextOf(c *cobra.Command) context.Context {
	if ctx := c.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
