package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/sveltepatch/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 imports split in 2 files, 1 failed (12 files checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%d %s checked)",
		stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles)))

	var parts []string
	if stats.FilesChanged == 0 {
		parts = append(parts, s.Success.Render("Nothing to split"))
	} else {
		verb := "to split"
		style := s.Changed
		if stats.FilesWritten == stats.FilesChanged {
			verb = "split"
			style = s.Success
		}
		parts = append(parts, style.Render(fmt.Sprintf("%d %s %s in %d %s",
			stats.ImportsRewritten, plural(stats.ImportsRewritten, "import", "imports"), verb,
			stats.FilesChanged, plural(stats.FilesChanged, wordFile, wordFiles))))
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + checked + "\n"
}
