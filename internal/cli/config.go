package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/sveltepatch/internal/configloader"
	"github.com/yaklabco/sveltepatch/internal/logging"
	"github.com/yaklabco/sveltepatch/internal/ui/pretty"
	"github.com/yaklabco/sveltepatch/pkg/config"
)

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the configuration with cliCfg as the highest layer.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*configloader.LoadResult, string, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, result.LoadedFrom)
	}

	return result, workDir, nil
}

func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return pretty.ColorAuto
	}
	return mode
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, _, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			data, err := result.Config.ToYAML()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			for _, path := range result.LoadedFrom {
				fmt.Fprintf(cmd.OutOrStdout(), "# from %s\n", path)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err //nolint:wrapcheck // Plain output write.
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "List supported environment variables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, v := range configloader.ListEnvVars() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", v[0], v[1])
			}
		},
	})

	return cmd
}
