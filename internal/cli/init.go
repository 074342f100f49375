package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/sveltepatch/internal/configloader"
	"github.com/yaklabco/sveltepatch/internal/logging"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force bool
	dir   string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .sveltepatch.yml configuration file",
		Long: `Create a commented .sveltepatch.yml in the current directory with the
default settings.

Examples:
  sveltepatch init                Create .sveltepatch.yml
  sveltepatch init --dir web      Create web/.sveltepatch.yml
  sveltepatch init --force        Overwrite an existing file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.dir, "dir", "d", ".", "directory to write the file into")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	path, err := configloader.WriteProjectConfig(commandContext(cmd), flags.dir, flags.force)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("file %q already exists; use --force to overwrite", path)
	}
	if err != nil {
		return err //nolint:wrapcheck // Already wrapped with the path.
	}

	logger.Info("created configuration file", logging.FieldPath, path)
	logger.Info("run 'sveltepatch patch' to see pending rewrites")

	return nil
}
