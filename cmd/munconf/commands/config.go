package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/munconf/cmd/munconf/commands/flags"
	"github.com/thoreinstein/munconf/internal/config"
	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/paths"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output as JSON")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect munconf configuration",
	Long: `Inspect munconf configuration.

Settings are read from config.yaml in the current directory or the munconf
config directory, and can be overridden with MUNCONF_* environment
variables (e.g. MUNCONF_OUTPUT=json).

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show effective configuration
  munconf config

  # Where is the config file?
  munconf config path

See Also: munconf config show`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Show the effective configuration",
	Long:    `Show the effective configuration after defaults, file and environment are merged.`,
	Example: `  munconf config show --json`,
	Args:    cobra.NoArgs,
	RunE:    runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Long: `Print the configuration file in use, or the default location when none
was found.`,
	Example: `  munconf config path`,
	Args:    cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		fmt.Fprintln(c.OutOrStdout(), configPath())
	},
}

func runConfigShow(c *cobra.Command, _ []string) error {
	return showConfig(c.OutOrStdout(), flags.Config(), flags.JSON(configShowJSON))
}

func showConfig(w io.Writer, cfg *config.Config, asJSON bool) error {
	settings := cfg.Settings()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(settings), "encoding JSON")
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "encoding YAML")
	}
	_, err = w.Write(data)
	return err
}

func configPath() string {
	if used := config.FileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}
