package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/sveltepatch/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Status   string        `json:"status"`
	Rewrites []JSONRewrite `json:"rewrites"`
	Backup   bool          `json:"backup,omitempty"`
	Reason   string        `json:"reason,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// JSONRewrite is one split import statement.
type JSONRewrite struct {
	Old string   `json:"old"`
	New []string `json:"new"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked     int `json:"filesChecked"`
	FilesChanged     int `json:"filesChanged"`
	FilesWritten     int `json:"filesWritten"`
	FilesSkipped     int `json:"filesSkipped"`
	FilesErrored     int `json:"filesErrored"`
	ImportsRewritten int `json:"importsRewritten"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesChanged, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{Version: "1.0.0", Files: make([]JSONFileResult, 0)}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		st := statusOf(file)
		fr := JSONFileResult{
			Path:     DisplayPath(file.Path, r.opts.WorkingDir),
			Status:   string(st),
			Rewrites: make([]JSONRewrite, 0),
		}
		if file.Error != nil {
			fr.Error = file.Error.Error()
		}
		if pr := file.Result; pr != nil {
			fr.Backup = pr.BackupCreated
			fr.Reason = pr.SkipReason
			for _, rw := range rewritesOf(pr) {
				fr.Rewrites = append(fr.Rewrites, JSONRewrite(rw))
			}
		}
		output.Files = append(output.Files, fr)
	}

	output.Summary = JSONSummary{
		FilesChecked:     result.Stats.FilesProcessed,
		FilesChanged:     result.Stats.FilesChanged,
		FilesWritten:     result.Stats.FilesWritten,
		FilesSkipped:     result.Stats.FilesSkipped,
		FilesErrored:     result.Stats.FilesErrored,
		ImportsRewritten: result.Stats.ImportsRewritten,
	}
	return output
}
