package configloader

import "github.com/yaklabco/sveltepatch/pkg/config"

// merge overlays override on base and returns a new config.
//   - Strings and ints: override wins when non-zero.
//   - Booleans: override can only switch a flag on; false is
//     indistinguishable from unset.
//   - Slices: override replaces base when non-nil.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base.Clone()

	setString(&result.Extension, override.Extension)
	setString(&result.Strategy, override.Strategy)
	setString(&result.Subtrees, override.Subtrees)
	setString(&result.Export.Root, override.Export.Root)
	setString(&result.Export.Out, override.Export.Out)
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	result.Backups.Enabled = result.Backups.Enabled || override.Backups.Enabled
	result.Write = result.Write || override.Write
	result.DryRun = result.DryRun || override.DryRun
	result.Watch = result.Watch || override.Watch
	result.NoBackups = result.NoBackups || override.NoBackups

	if override.Packages != nil {
		result.Packages = append([]string(nil), override.Packages...)
	}
	if override.Extensions != nil {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}
	if override.Export.Sets != nil {
		result.Export.Sets = override.Clone().Export.Sets
	}

	return &result
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// MergeAll merges configs in order; later configs win.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}
	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
