package config

import "fmt"

// OutputFormat specifies how patch results are reported.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// OutputFormats returns the supported formats.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatText, FormatJSON, FormatDiff}
}

// IsValid reports whether f is a supported format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a name into an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	f := OutputFormat(name)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown output format %q (expected text, json or diff)", name)
	}
	return f, nil
}
