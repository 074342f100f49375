package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/sveltepatch/pkg/config"
	"github.com/yaklabco/sveltepatch/pkg/patch"
)

// ValidationError is a configuration problem.
type ValidationError struct {
	// Field is the dotted key path, e.g. "export.sets[0].id".
	Field string

	// Value is the offending value.
	Value any

	Message string

	// FilePath is the config file involved, when known.
	FilePath string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult collects errors and warnings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r *ValidationResult) errorf(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks cfg.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		result.errorf("", nil, "configuration is nil")
		return result
	}

	if len(cfg.Packages) == 0 {
		result.errorf("packages", cfg.Packages, "at least one package is required")
	}
	for i, pkg := range cfg.Packages {
		if strings.TrimSpace(pkg) == "" {
			result.errorf(fmt.Sprintf("packages[%d]", i), pkg, "package must not be empty")
		}
	}
	if strings.ContainsAny(cfg.Extension, `"/\`) {
		result.errorf("extension", cfg.Extension, "extension must not contain quotes or path separators")
	}

	if _, err := patch.ParseStrategy(cfg.Strategy); err != nil {
		result.errorf("strategy", cfg.Strategy, "%v", err)
	}
	if _, err := patch.ParseSubtreePolicy(cfg.Subtrees); err != nil {
		result.errorf("subtrees", cfg.Subtrees, "%v", err)
	}
	if cfg.Strategy == string(patch.StrategyFirstMatch) {
		result.warnf("strategy", cfg.Strategy,
			"first-match may rewrite an identical import elsewhere in the script")
	}

	if len(cfg.Extensions) == 0 {
		result.errorf("extensions", cfg.Extensions, "at least one extension is required")
	}
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.errorf(fmt.Sprintf("extensions[%d]", i), ext, "extension must start with '.'")
		}
	}

	for i, pattern := range cfg.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.errorf(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob: %v", err)
		}
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.errorf("format", cfg.Format, "unknown output format (expected text, json or diff)")
	}
	if cfg.Jobs < 0 {
		result.errorf("jobs", cfg.Jobs, "jobs must not be negative")
	}
	if cfg.Write && cfg.DryRun {
		result.warnf("dry_run", true, "dry run takes precedence over write; no files will be changed")
	}

	validateExport(cfg.Export, result)
	return result
}

func validateExport(export config.ExportConfig, result *ValidationResult) {
	seen := make(map[string]bool)
	for i, set := range export.Sets {
		field := fmt.Sprintf("export.sets[%d]", i)
		switch {
		case set.ID == "":
			result.errorf(field+".id", set.ID, "set id is required")
		case strings.ContainsAny(set.ID, `/\`) || set.ID == "." || set.ID == "..":
			result.errorf(field+".id", set.ID, "set id must be a plain directory name")
		case seen[set.ID]:
			result.errorf(field+".id", set.ID, "duplicate set id")
		}
		seen[set.ID] = true

		if len(set.Contents) == 0 {
			result.warnf(field+".contents", nil, "set %q has no contents", set.ID)
		}
		for j, content := range set.Contents {
			cfield := fmt.Sprintf("%s.contents[%d]", field, j)
			if content.Files == "" {
				result.errorf(cfield+".files", content.Files, "files glob is required")
			} else if _, err := filepath.Match(content.Files, ""); err != nil {
				result.errorf(cfield+".files", content.Files, "invalid glob: %v", err)
			}
			if filepath.IsAbs(content.Path) || strings.HasPrefix(filepath.Clean(content.Path), "..") {
				result.errorf(cfield+".path", content.Path, "path must stay inside the set directory")
			}
		}
	}
}
