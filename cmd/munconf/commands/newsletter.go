package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/logging"
	"github.com/thoreinstein/munconf/internal/registration"
)

func init() {
	newsletterCmd.AddCommand(newsletterSubscribeCmd)
	rootCmd.AddCommand(newsletterCmd)
}

var newsletterCmd = &cobra.Command{
	Use:   "newsletter",
	Short: "Manage newsletter sign-ups",
	Long:  `Manage sign-ups for the conference newsletter.`,
}

var newsletterSubscribeCmd = &cobra.Command{
	Use:   "subscribe <email>",
	Short: "Subscribe an address to the newsletter",
	Long: `Validate an email address and subscribe it to the newsletter.

Subscription is simulated: the address is checked and acknowledged but not
stored.`,
	Example: `  munconf newsletter subscribe delegate@example.org`,
	Args:    cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		msg, result := registration.Subscribe(args[0])
		if !result.Valid() {
			return errors.NewUserError(
				errors.New(result[registration.FieldEmail]),
				"Enter an address like name@example.org")
		}
		logging.FromContext(c.Context()).Info("newsletter subscription", "email", args[0])
		_, err := fmt.Fprintln(c.OutOrStdout(), color.GreenString(msg))
		return err
	},
}
