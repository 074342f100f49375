package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/sveltepatch/pkg/config"
)

// envVarPrefix prefixes every supported environment variable.
const envVarPrefix = "SVELTEPATCH_"

// envVar binds one environment variable to a config field.
type envVar struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

func stringVar(desc string, set func(*config.Config, string)) envVar {
	return envVar{description: desc, apply: func(cfg *config.Config, v string) error {
		set(cfg, v)
		return nil
	}}
}

func listVar(desc string, set func(*config.Config, []string)) envVar {
	return envVar{description: desc, apply: func(cfg *config.Config, v string) error {
		set(cfg, splitList(v))
		return nil
	}}
}

func boolVar(desc string, set func(*config.Config, bool)) envVar {
	return envVar{description: desc, apply: func(cfg *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", v)
		}
		set(cfg, b)
		return nil
	}}
}

func intVar(desc string, set func(*config.Config, int)) envVar {
	return envVar{description: desc, apply: func(cfg *config.Config, v string) error {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer %q", v)
		}
		set(cfg, i)
		return nil
	}}
}

// envVars maps variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"PACKAGES": listVar("Comma-separated import sources to split",
		func(c *config.Config, v []string) { c.Packages = v }),
	"EXTENSION": stringVar("Suffix appended to per-icon import paths",
		func(c *config.Config, v string) { c.Extension = v }),
	"STRATEGY": stringVar("Rewrite strategy: splice or first-match",
		func(c *config.Config, v string) { c.Strategy = v }),
	"SUBTREES": stringVar("Rewritten subtree policy: skip or descend",
		func(c *config.Config, v string) { c.Subtrees = v }),
	"EXTENSIONS": listVar("Comma-separated component file extensions",
		func(c *config.Config, v []string) { c.Extensions = v }),
	"IGNORE": listVar("Comma-separated ignore globs",
		func(c *config.Config, v []string) { c.Ignore = v }),
	"BACKUPS_ENABLED": boolVar("Keep .sveltepatch.bak copies: true or false",
		func(c *config.Config, v bool) { c.Backups.Enabled = v }),
	"NO_BACKUPS": boolVar("Disable backups for this run: true or false",
		func(c *config.Config, v bool) { c.NoBackups = v }),
	"WRITE": boolVar("Rewrite files in place: true or false",
		func(c *config.Config, v bool) { c.Write = v }),
	"DRY_RUN": boolVar("Report changes without writing: true or false",
		func(c *config.Config, v bool) { c.DryRun = v }),
	"FORMAT": stringVar("Output format: text, json or diff",
		func(c *config.Config, v string) { c.Format = config.OutputFormat(v) }),
	"JOBS": intVar("Number of parallel workers (0 = auto)",
		func(c *config.Config, v int) { c.Jobs = v }),
	"EXPORT_ROOT": stringVar("Directory icon source globs are relative to",
		func(c *config.Config, v string) { c.Export.Root = v }),
	"EXPORT_OUT": stringVar("Directory icon sets are written to",
		func(c *config.Config, v string) { c.Export.Out = v }),
}

// LoadFromEnv applies SVELTEPATCH_* overrides to cfg. Empty variables are
// ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	for suffix, ev := range envVars {
		name := envVarPrefix + suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := ev.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// ListEnvVars returns every supported variable with its description, sorted
// by name.
func ListEnvVars() [][2]string {
	out := make([][2]string, 0, len(envVars))
	for suffix, ev := range envVars {
		out = append(out, [2]string{envVarPrefix + suffix, ev.description})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
