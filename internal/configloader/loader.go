// Package configloader resolves the sveltepatch configuration from defaults,
// config files, environment variables and CLI flags.
package configloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/sveltepatch/pkg/config"
	"github.com/yaklabco/sveltepatch/pkg/fsutil"
)

// ProjectConfigName is the file `sveltepatch init` writes.
const ProjectConfigName = ".sveltepatch.yml"

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where the project config search starts. Defaults to
	// the current directory.
	WorkingDir string

	// ExplicitPath is a config file given with --config.
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// CLIConfig holds values from command-line flags; they win over
	// every other source.
	CLIConfig *config.Config
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	Config *config.Config

	// Paths are the discovered config file locations.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were merged, lowest precedence first.
	LoadedFrom []string

	// Warnings are non-fatal findings.
	Warnings []string
}

// Load merges, lowest precedence first: defaults, system config
// (/etc/sveltepatch/config.yaml), user config
// ($XDG_CONFIG_HOME/sveltepatch/config.yaml), project config
// (.sveltepatch.yml found upward from WorkingDir), the explicit --config
// file, SVELTEPATCH_* environment variables and CLI flags. The result is
// validated.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		if workDir, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{name: "system", path: paths.System, skip: opts.IgnoreSystemConfig},
		{name: "user", path: paths.User, skip: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, skip: opts.IgnoreProjectConfig},
		{name: "explicit", path: paths.Explicit},
	}
	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile decodes a YAML config file. Unknown keys are errors so
// typos do not silently fall back to defaults.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &config.Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ValidationError{FilePath: path, Message: err.Error()}
	}
	return cfg, nil
}

// WriteProjectConfig writes the starter config into dir. It refuses to
// overwrite an existing file unless force is set.
func WriteProjectConfig(ctx context.Context, dir string, force bool) (string, error) {
	path := dir + string(os.PathSeparator) + ProjectConfigName
	if !force && fileExists(path) {
		return path, fmt.Errorf("%w: %s", os.ErrExist, path)
	}
	if _, err := fsutil.WriteAtomicIfChanged(ctx, path, config.Template(), fsutil.DefaultFileMode); err != nil {
		return path, fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
