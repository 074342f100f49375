package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/sveltepatch/internal/logging"
	"github.com/yaklabco/sveltepatch/pkg/config"
	"github.com/yaklabco/sveltepatch/pkg/reporter"
	"github.com/yaklabco/sveltepatch/pkg/runner"
)

// patchFlags holds the flags for the patch command.
type patchFlags struct {
	write     bool
	dryRun    bool
	check     bool
	watch     bool
	format    string
	jobs      int
	strategy  string
	subtrees  string
	packages  []string
	extension string
	ignore    []string
	noBackups bool
	backups   bool
	verbose   bool
	compact   bool
	summary   bool
}

func newPatchCommand() *cobra.Command {
	flags := &patchFlags{}

	cmd := &cobra.Command{
		Use:   "patch [paths...]",
		Short: "Split icon barrel imports in Svelte components",
		Long: `Find Svelte components under the given paths (default: current directory)
and split named imports from the configured icon packages into one default
import per icon.

Without --write, patch only reports what would change.

Examples:
  sveltepatch patch                     Report pending rewrites under .
  sveltepatch patch --write src         Rewrite components under src
  sveltepatch patch --check             Exit 1 if any import still needs splitting
  sveltepatch patch --format diff       Show the rewrites as a unified diff
  sveltepatch patch --write --watch     Keep rewriting components as they change`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report changes without writing, even with --write")
	cmd.Flags().BoolVar(&flags.check, "check", false, "exit with status 1 when changes are pending")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "keep running and patch components as they change")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json, diff")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = number of CPUs)")
	cmd.Flags().StringVar(&flags.strategy, "strategy", "", "rewrite strategy: splice, first-match")
	cmd.Flags().StringVar(&flags.subtrees, "subtrees", "", "visit nodes inside rewritten imports: skip, descend")
	cmd.Flags().StringSliceVarP(&flags.packages, "package", "p", nil, "icon package whose imports are split (repeatable)")
	cmd.Flags().StringVar(&flags.extension, "extension", "", "suffix appended to per-icon import paths")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob pattern of files to skip (repeatable)")
	cmd.Flags().BoolVar(&flags.backups, "backup", false, "keep a .bak copy of every rewritten file")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "disable backups even when configured")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list unchanged files too")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "emit compact JSON")
	cmd.Flags().BoolVar(&flags.summary, "summary", true, "print a summary line")

	return cmd
}

// cliConfig converts the flags that were set into a config layer.
func (f *patchFlags) cliConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{
		Write:     f.write,
		DryRun:    f.dryRun,
		Watch:     f.watch,
		NoBackups: f.noBackups,
		Backups:   config.BackupsConfig{Enabled: f.backups},
		Jobs:      f.jobs,
		Strategy:  f.strategy,
		Subtrees:  f.subtrees,
		Extension: f.extension,
	}

	if cmd.Flags().Changed("format") {
		format, err := config.ParseOutputFormat(f.format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		cfg.Format = format
	}
	if cmd.Flags().Changed("package") {
		cfg.Packages = f.packages
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = f.ignore
	}

	return cfg, nil
}

func runPatch(cmd *cobra.Command, args []string, flags *patchFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}

	loaded, workDir, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	cfg := loaded.Config

	logger.Debug("patching",
		logging.FieldPaths, args,
		logging.FieldPackages, cfg.Packages,
		logging.FieldStrategy, cfg.Strategy,
		logging.FieldSubtrees, cfg.Subtrees,
		logging.FieldWrite, cfg.Write,
		logging.FieldDryRun, cfg.DryRun,
	)

	processor, err := runner.ProcessorFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	run := runner.New(runner.NewPipeline(processor))
	opts := runner.OptionsFromConfig(cfg, args)
	opts.WorkingDir = workDir

	result, err := run.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("patch: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      cfg.Format,
		Color:       colorMode(cmd),
		ShowSummary: flags.summary,
		Verbose:     flags.verbose,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if cfg.Watch {
		return watch(cmd, run, opts)
	}

	return exitError(ExitCodeFromResult(result, flags.check))
}

// watch re-patches components as they change until the command context is
// cancelled.
func watch(cmd *cobra.Command, run *runner.Runner, opts runner.Options) error {
	ctx := commandContext(cmd)
	logger := logging.NewInteractive()
	ctx = logging.WithLogger(ctx, logger)

	logger.Info("watching for changes", logging.FieldPaths, opts.Paths)

	err := run.Watch(ctx, opts, func(outcome runner.FileOutcome) {
		switch {
		case outcome.Error != nil:
			logger.Error("patch failed", logging.FieldPath, outcome.Path, logging.FieldError, outcome.Error)
		case outcome.Result != nil && outcome.Result.Modified:
			logger.Info(outcome.Result.Summary(),
				logging.FieldPath, outcome.Path,
				logging.FieldImports, outcome.Result.Rewrites())
		}
	})
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
