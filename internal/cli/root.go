// Package cli provides the Cobra command structure for sveltepatch.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/sveltepatch/internal/logging"
	"github.com/yaklabco/sveltepatch/internal/ui/pretty"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root sveltepatch command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "sveltepatch",
		Short: "Split barrel icon imports in Svelte components",
		Long: `sveltepatch rewrites named imports from an icon package into one default
import per icon, so bundlers only load the icons a component uses:

  import {Home, Close} from "@paulpopa/icons";

becomes

  import Home from "@paulpopa/icons/Home.js"
  import Close from "@paulpopa/icons/Close.js"

It also generates the per-icon modules those imports point at from
directories of SVG files.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(commandContext(cmd), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", pretty.ColorAuto,
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newPatchCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
