package register

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/munconf/internal/editor"
	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/logging"
	"github.com/thoreinstein/munconf/internal/registration"
	"github.com/thoreinstein/munconf/internal/validation"
	"github.com/thoreinstein/munconf/pkg/fileutil"
)

var (
	initForce bool
	initEdit  bool
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"overwrite an existing file")
	initCmd.Flags().BoolVarP(&initEdit, "edit", "e", false,
		"open the new file in $EDITOR, then validate it")
	Cmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Create a blank registration record",
	Long: `Write an empty registration record to <file>. The format follows the
file extension: .yaml, .yml, .toml or .json.

With --edit the file is opened in $EDITOR (falling back to $VISUAL, nano,
then vi) and validated once the editor exits.`,
	Example: `  munconf register init delegate.yaml
  munconf register init delegate.toml --force
  munconf register init delegate.yaml --edit`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := registration.FormatFromPath(path)
	if err != nil {
		return errors.NewUserError(err, supportedFormats)
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return errors.NewUserError(
			errors.Newf("%s already exists", path),
			"Use --force to overwrite it")
	}

	if format == registration.FormatYAML {
		err = fileutil.WriteYAML(path, registration.Registration{}, 0o600)
	} else {
		var data []byte
		data, err = registration.Template(format)
		if err == nil {
			err = fileutil.WriteAtomic(path, data, 0o600)
		}
	}
	if err != nil {
		return errors.NewSystemError(err, "Check that the directory exists and is writable")
	}

	ctx := contextOf(cmd)
	logging.FromContext(ctx).Debug("wrote template", "path", path, "format", string(format))
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)

	if !initEdit {
		return nil
	}
	streams := editor.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if err := editor.Open(ctx, path, streams); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your preferred editor")
	}
	return validateFile(ctx, validation.NewReporter(cmd.OutOrStdout(), validation.FormatText), path)
}
