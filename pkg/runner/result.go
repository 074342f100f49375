package runner

// FileOutcome is the result for one discovered file.
type FileOutcome struct {
	Path string

	// Result is nil when Error is set.
	Result *PipelineResult

	Error error
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesSkipped    int
	FilesErrored    int

	// FilesChanged counts files whose content patching changed.
	FilesChanged int

	// FilesWritten counts files rewritten on disk.
	FilesWritten int

	// ImportsRewritten counts rewritten import statements.
	ImportsRewritten int
}

// Result is the outcome of a run.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasChanges reports whether any file had pending or written changes.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// Pending reports whether changes were found but not written.
func (r *Result) Pending() bool {
	return r != nil && r.Stats.FilesChanged > r.Stats.FilesWritten
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	pr := outcome.Result
	if pr.Skipped {
		r.Stats.FilesSkipped++
	}
	if pr.Modified {
		r.Stats.FilesChanged++
		r.Stats.ImportsRewritten += pr.Rewrites()
	}
	if pr.Written {
		r.Stats.FilesWritten++
	}
}
