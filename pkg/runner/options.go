// Package runner discovers component files and patches them concurrently.
package runner

import (
	"fmt"

	"github.com/yaklabco/sveltepatch/pkg/config"
	"github.com/yaklabco/sveltepatch/pkg/imports"
	"github.com/yaklabco/sveltepatch/pkg/patch"
	"github.com/yaklabco/sveltepatch/pkg/preprocess"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are files or directories to process. Empty means ".".
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process
	// working directory.
	WorkingDir string

	// Extensions are the component file extensions, with leading dot.
	// Empty means DefaultExtensions.
	Extensions []string

	// ExcludeGlobs skip matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks.
	FollowSymlinks bool

	// Jobs bounds the worker pool; 0 or negative means runtime.NumCPU.
	Jobs int

	// Pipeline controls what happens to patched files.
	Pipeline PipelineOptions
}

// DefaultExtensions returns the component extensions processed by default.
func DefaultExtensions() []string {
	return []string{".svelte"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// OptionsFromConfig builds run options for paths from a resolved config.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Paths:        paths,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Pipeline:     PipelineOptionsFromConfig(cfg),
	}
}

// ProcessorFromConfig builds a document processor that splits imports of
// the configured packages with the configured strategy.
func ProcessorFromConfig(cfg *config.Config) (*preprocess.Processor, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	strategy, err := patch.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	subtrees, err := patch.ParseSubtreePolicy(cfg.Subtrees)
	if err != nil {
		return nil, fmt.Errorf("subtrees: %w", err)
	}

	splitter := imports.NewSplitter(
		imports.WithPackages(cfg.Packages...),
		imports.WithExtension(cfg.Extension),
	)

	return preprocess.New(
		preprocess.WithVisitor(splitter),
		preprocess.WithPatchOptions(patch.Options{Strategy: strategy, Subtrees: subtrees}),
	), nil
}
