package commands

import "github.com/thoreinstein/munconf/cmd/munconf/commands/register"

func init() {
	rootCmd.AddCommand(register.Cmd)
}
