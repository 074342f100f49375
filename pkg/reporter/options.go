package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/sveltepatch/internal/ui/pretty"
	"github.com/yaklabco/sveltepatch/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color is "auto" (default), "always" or "never".
	Color string

	// ShowSummary appends aggregate statistics.
	ShowSummary bool

	// Verbose lists unchanged files too.
	Verbose bool

	// Compact emits unindented JSON.
	Compact bool

	// WorkingDir is the directory paths are shown relative to. Empty means
	// the process working directory.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      config.FormatText,
		Color:       pretty.ColorAuto,
		ShowSummary: true,
	}
}
