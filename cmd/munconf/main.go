// Package main is the entry point for the munconf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/munconf/cmd/munconf/commands"
	"github.com/thoreinstein/munconf/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	if !errors.Reported(err) {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		if hint := errors.SuggestionOf(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
	}
	os.Exit(errors.CodeOf(err))
}
