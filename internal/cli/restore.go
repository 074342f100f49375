package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/sveltepatch/internal/logging"
	"github.com/yaklabco/sveltepatch/pkg/reporter"
	"github.com/yaklabco/sveltepatch/pkg/runner"
)

func newRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [paths...]",
		Short: "Restore components from their .bak backups",
		Long: `Put back the backup written by 'patch --write --backup' for every
component under the given paths (default: current directory) and remove
the backup files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, workDir, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			opts := runner.OptionsFromConfig(loaded.Config, args)
			opts.WorkingDir = workDir

			ctx := commandContext(cmd)
			restored, err := runner.Restore(ctx, opts)
			for _, path := range restored {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: restored\n", reporter.DisplayPath(path, workDir))
			}
			if err != nil {
				return fmt.Errorf("restore: %w", err)
			}

			logging.FromContext(ctx).Info("restore complete", logging.FieldFilesModified, len(restored))
			return nil
		},
	}
}
