// Package config defines the configuration types for sveltepatch.
// These types are plain data; loading and merging live in
// internal/configloader.
package config

// Default values.
const (
	DefaultPackage   = "@paulpopa/icons"
	DefaultExtension = ".js"
	DefaultStrategy  = "splice"
	DefaultSubtrees  = "skip"
	DefaultOut       = "."
)

// BackupsConfig controls sidecar backups when writing patched components.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// IconContent is one directory of SVG sources within an icon set.
type IconContent struct {
	// Path is the output subdirectory under the set directory; "." writes
	// into the set directory itself.
	Path string `yaml:"path"`

	// Files is a glob, relative to the export root, matching the SVG files.
	Files string `yaml:"files"`
}

// IconSet is a named group of icon sources exported under one directory.
type IconSet struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Contents []IconContent `yaml:"contents"`
}

// ExportConfig configures the icon exporter.
type ExportConfig struct {
	// Root is the directory the content globs are resolved against.
	Root string `yaml:"root"`

	// Out is the directory the set directories are written to.
	Out string `yaml:"out"`

	// Sets lists the icon sets. Empty means DefaultIconSets.
	Sets []IconSet `yaml:"sets,omitempty"`
}

// Config is the root configuration.
type Config struct {
	// Packages lists the import sources whose named imports are split.
	Packages []string `yaml:"packages"`

	// Extension is appended to each per-symbol import path.
	Extension string `yaml:"extension"`

	// Strategy is "splice" or "first-match".
	Strategy string `yaml:"strategy"`

	// Subtrees is "skip" or "descend".
	Subtrees string `yaml:"subtrees"`

	// Extensions lists component file extensions to discover.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Backups configures sidecar backups.
	Backups BackupsConfig `yaml:"backups"`

	// Export configures the icon exporter.
	Export ExportConfig `yaml:"export"`

	// CLI-level options (not persisted to config files).

	// Write rewrites files in place.
	Write bool `yaml:"-"`

	// DryRun reports what would change without writing.
	DryRun bool `yaml:"-"`

	// Format is the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs is the number of parallel workers; 0 means GOMAXPROCS.
	Jobs int `yaml:"-"`

	// Watch keeps running and re-patches files as they change.
	Watch bool `yaml:"-"`

	// NoBackups disables backups for this run.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Packages:   []string{DefaultPackage},
		Extension:  DefaultExtension,
		Strategy:   DefaultStrategy,
		Subtrees:   DefaultSubtrees,
		Extensions: []string{".svelte"},
		Ignore:     nil,
		Backups: BackupsConfig{
			Enabled: false,
		},
		Export: ExportConfig{
			Root: ".",
			Out:  DefaultOut,
		},
		Format: FormatText,
		Jobs:   0,
	}
}

// IconSets returns the configured sets, or DefaultIconSets when none are set.
func (e ExportConfig) IconSets() []IconSet {
	if len(e.Sets) > 0 {
		return e.Sets
	}
	return DefaultIconSets()
}

// DefaultIconSets returns the icon sets published by @paulpopa/icons, with
// globs relative to a project root that has the source packages installed.
func DefaultIconSets() []IconSet {
	return []IconSet{
		{
			ID:   "fa",
			Name: "Font Awesome",
			Contents: []IconContent{
				{Path: "regular", Files: "node_modules/@fortawesome/fontawesome-free/svgs/regular/*.svg"},
				{Path: "brands", Files: "node_modules/@fortawesome/fontawesome-free/svgs/brands/*.svg"},
				{Path: "solid", Files: "node_modules/@fortawesome/fontawesome-free/svgs/solid/*.svg"},
			},
		},
		{
			ID:       "fi",
			Name:     "Feather Icons",
			Contents: []IconContent{{Path: ".", Files: "node_modules/feather-icons/dist/icons/*.svg"}},
		},
		{
			ID:       "io",
			Name:     "Ionicons",
			Contents: []IconContent{{Path: ".", Files: "node_modules/ionicons/dist/collection/icon/svg/*.svg"}},
		},
		{
			ID:       "oi",
			Name:     "Octicons",
			Contents: []IconContent{{Path: ".", Files: "node_modules/octicons/build/svg/*.svg"}},
		},
		{
			ID:   "md",
			Name: "Material Design icons",
			Contents: []IconContent{
				{Path: "filled", Files: "node_modules/@material-design-icons/svg/filled/*.svg"},
				{Path: "outlined", Files: "node_modules/@material-design-icons/svg/outlined/*.svg"},
				{Path: "round", Files: "node_modules/@material-design-icons/svg/round/*.svg"},
				{Path: "sharp", Files: "node_modules/@material-design-icons/svg/sharp/*.svg"},
			},
		},
	}
}
