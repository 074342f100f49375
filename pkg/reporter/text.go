package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/sveltepatch/internal/ui/pretty"
	"github.com/yaklabco/sveltepatch/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No components found."))
		}
		return 0, nil
	}

	changed := 0
	for _, file := range result.Files {
		st := statusOf(file)
		if st == statusPending || st == statusWritten {
			changed++
		}
		r.writeFile(file, st)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return changed, nil
}

func (r *TextReporter) writeFile(file runner.FileOutcome, st status) {
	path := r.styles.FilePath.Render(DisplayPath(file.Path, r.opts.WorkingDir))

	switch st {
	case statusError:
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
		return
	case statusUnchanged:
		if r.opts.Verbose {
			fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Dim.Render(file.Result.Summary()))
		}
		return
	case statusSkipped:
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Warning.Render(file.Result.Summary()))
		return
	case statusWritten:
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Written.Render(file.Result.Summary()))
	case statusPending:
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Changed.Render(file.Result.Summary()))
	}

	for _, rw := range rewritesOf(file.Result) {
		old := strings.TrimSpace(strings.SplitN(rw.Old, "\n", 2)[0])
		fmt.Fprintf(r.bw, "  %s %s %s\n",
			r.styles.Import.Render(old),
			r.styles.Dim.Render("->"),
			fmt.Sprintf("%d %s", len(rw.New), plural(len(rw.New), "import", "imports")))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
