// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Color modes accepted by IsColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Changed lipgloss.Style
	Written lipgloss.Style

	FilePath lipgloss.Style
	Import   lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Error:   newStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: newStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Changed: newStyle().Foreground(lipgloss.Color("11")),
		Written: newStyle().Foreground(lipgloss.Color("10")),

		FilePath: newStyle().Bold(true),
		Import:   newStyle().Foreground(lipgloss.Color("14")),

		DiffHeader:  newStyle().Bold(true),
		DiffHunk:    newStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:     newStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:  newStyle().Foreground(lipgloss.Color("9")),
		DiffContext: newStyle().Foreground(lipgloss.Color("8")),

		SummaryTitle: newStyle().Bold(true),
		Success:      newStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      newStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  newStyle().Foreground(lipgloss.Color("8")),
		Bold: newStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := newStyle()
	return &Styles{
		Error:        plain,
		Warning:      plain,
		Changed:      plain,
		Written:      plain,
		FilePath:     plain,
		Import:       plain,
		DiffHeader:   plain,
		DiffHunk:     plain,
		DiffAdd:      plain,
		DiffRemove:   plain,
		DiffContext:  plain,
		SummaryTitle: plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// newStyle returns a style that leaves tabs alone; diffs must reproduce
// the file content byte for byte.
func newStyle() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// In auto mode, color is enabled only if the writer is a terminal and
// NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		f, ok := writer.(*os.File)
		if !ok {
			return false
		}
		return IsTerminal(f)
	}
}

// IsTerminal reports whether f is attached to a terminal, including Cygwin
// and MSYS pseudo-terminals.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd) //nolint:gosec // fd fits in int.
}
