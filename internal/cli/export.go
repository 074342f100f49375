package cli

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/sveltepatch/internal/logging"
	"github.com/yaklabco/sveltepatch/pkg/config"
	"github.com/yaklabco/sveltepatch/pkg/export"
)

// exportFlags holds the flags for the export command.
type exportFlags struct {
	root string
	out  string
	sets []string
}

func newExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate per-icon modules from SVG sources",
		Long: `Generate one directory per icon set containing a module per icon, an
all.js map of every icon, index.js re-exports, TypeScript declarations and a
package.json. Existing set directories are replaced.

Examples:
  sveltepatch export                          Export every configured set into .
  sveltepatch export --out dist               Write set directories under dist
  sveltepatch export --set fa --set io        Export only Font Awesome and Ionicons`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "directory the SVG globs are resolved against")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "directory the set directories are written to")
	cmd.Flags().StringSliceVar(&flags.sets, "set", nil, "export only the set with this ID (repeatable)")

	return cmd
}

func runExport(cmd *cobra.Command, flags *exportFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	loaded, workDir, err := loadConfig(cmd, &config.Config{
		Export: config.ExportConfig{Root: flags.root, Out: flags.out},
	})
	if err != nil {
		return err
	}

	exportCfg := loaded.Config.Export
	exportCfg.Root = absFrom(workDir, exportCfg.Root)
	exportCfg.Out = absFrom(workDir, exportCfg.Out)

	exporter := export.New(exportCfg)
	if len(flags.sets) > 0 {
		exporter.Sets = slices.DeleteFunc(slices.Clone(exporter.Sets), func(set config.IconSet) bool {
			return !slices.Contains(flags.sets, set.ID)
		})
		if len(exporter.Sets) == 0 {
			return fmt.Errorf("%w: no icon set matches %v", ErrConfig, flags.sets)
		}
	}

	report, err := exporter.Export(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	for _, set := range report.Sets {
		for _, dir := range set.Dirs {
			logger.Debug("exported directory",
				logging.FieldSet, set.ID,
				logging.FieldDir, dir.Path,
				logging.FieldIcons, dir.Icons)
			if dir.Duplicates > 0 {
				logger.Warn("skipped icons with duplicate names",
					logging.FieldDir, dir.Path,
					logging.FieldIcons, dir.Duplicates)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d icons\n", set.ID, set.Icons())
	}

	logger.Info("export complete",
		logging.FieldOutput, exportCfg.Out,
		logging.FieldIcons, report.Icons(),
		logging.FieldDuration, report.Duration)

	return nil
}

func absFrom(base, path string) string {
	if path == "" {
		path = "."
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
