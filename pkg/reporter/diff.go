package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/sveltepatch/internal/ui/pretty"
	"github.com/yaklabco/sveltepatch/pkg/runner"
)

// DiffReporter formats results as unified diffs in git style.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. Written files are shown too, so the diff of a
// --write run records what changed on disk.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var files, additions, deletions int
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(DisplayPath(file.Path, r.opts.WorkingDir)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
			continue
		}
		if file.Result == nil || !file.Result.Diff.HasChanges() {
			continue
		}

		diff := file.Result.Diff
		files++
		additions += diff.Additions
		deletions += diff.Deletions
		fmt.Fprintln(r.bw, r.styles.FormatDiff(diff, DisplayPath(file.Path, r.opts.WorkingDir)))
	}

	if files > 0 && r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.styles.FormatDiffStat(files, additions, deletions))
	}

	return files, nil
}
