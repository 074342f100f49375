// Package reporter renders patch run results as text, JSON or unified diffs.
package reporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/sveltepatch/pkg/config"
	"github.com/yaklabco/sveltepatch/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result and returns the
	// number of files with pending or written changes.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}

	switch format {
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatDiff:
		return NewDiffReporter(opts), nil
	case config.FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// status classifies a file outcome.
type status string

const (
	statusUnchanged status = "unchanged"
	statusPending   status = "pending"
	statusWritten   status = "written"
	statusSkipped   status = "skipped"
	statusError     status = "error"
)

func statusOf(outcome runner.FileOutcome) status {
	pr := outcome.Result
	switch {
	case outcome.Error != nil:
		return statusError
	case pr == nil:
		return statusUnchanged
	case pr.Skipped:
		return statusSkipped
	case pr.Written:
		return statusWritten
	case pr.Modified:
		return statusPending
	default:
		return statusUnchanged
	}
}

// rewrite is one split import statement.
type rewrite struct {
	Old string
	New []string
}

func rewritesOf(pr *runner.PipelineResult) []rewrite {
	if pr == nil || pr.Patch == nil {
		return nil
	}
	var out []rewrite
	for _, block := range pr.Patch.Blocks {
		for _, edit := range block.Edits {
			out = append(out, rewrite{Old: edit.OldText, New: strings.Split(edit.NewText, "\n")})
		}
	}
	return out
}

// DisplayPath shows path relative to workDir (or the process working
// directory) unless that needs more than two parent traversals.
func DisplayPath(path, workDir string) string {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return filepath.Base(path)
		}
		workDir = cwd
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}
