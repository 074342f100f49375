package runner

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/sveltepatch/internal/logging"
	"github.com/yaklabco/sveltepatch/pkg/config"
	"github.com/yaklabco/sveltepatch/pkg/fix"
	"github.com/yaklabco/sveltepatch/pkg/fsutil"
	"github.com/yaklabco/sveltepatch/pkg/preprocess"
)

// Pipeline error categories.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrPatchFailure     = errors.New("patch failure")
	ErrWriteFailure     = errors.New("write failure")
)

// PipelineOptions controls what ProcessFile does with a changed file.
type PipelineOptions struct {
	// Write rewrites changed files in place.
	Write bool

	// DryRun reports diffs without writing, even when Write is set.
	DryRun bool

	// Backup keeps a sidecar copy before each write.
	Backup bool
}

// PipelineOptionsFromConfig derives pipeline options from a resolved config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return PipelineOptions{}
	}
	return PipelineOptions{
		Write:  cfg.Write,
		DryRun: cfg.DryRun,
		Backup: cfg.Backups.Enabled && !cfg.NoBackups,
	}
}

// PipelineResult is the outcome for one file.
type PipelineResult struct {
	Path string

	// OriginalInfo is the file state when it was read.
	OriginalInfo *fsutil.FileInfo

	// Patch is the document-level patch result.
	Patch *preprocess.Result

	// Modified is true when patching changed the content.
	Modified bool

	// ModifiedContent is the patched content, nil when unchanged.
	ModifiedContent []byte

	// Diff is set for every modified file.
	Diff *fix.Diff

	// Skipped is true when the file was left alone; SkipReason says why.
	Skipped    bool
	SkipReason string

	BackupCreated bool
	Written       bool
}

// Rewrites returns the number of import statements rewritten.
func (pr *PipelineResult) Rewrites() int {
	if pr == nil || pr.Patch == nil {
		return 0
	}
	return pr.Patch.EditCount()
}

// Summary returns a short human-readable status.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "patched (backup created)"
	case pr.Written:
		return "patched"
	case pr.Modified:
		return "changes pending"
	default:
		return "ok"
	}
}

// Pipeline patches single files safely.
type Pipeline struct {
	Processor *preprocess.Processor
}

// NewPipeline creates a pipeline around processor.
func NewPipeline(processor *preprocess.Processor) *Pipeline {
	return &Pipeline{Processor: processor}
}

// ProcessFile reads path, patches its script blocks and, when writing,
// replaces the file atomically:
//  1. Read and hash the file.
//  2. Patch the document.
//  3. Build a diff of the change.
//  4. Stop here unless writing (dry-run wins over write).
//  5. Skip the file if it changed on disk meanwhile.
//  6. Create a backup if enabled.
//  7. Write atomically, preserving the file mode.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	ctx = logging.With(ctx, logging.FieldPath, path)
	result := &PipelineResult{Path: path}

	original, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}
	result.OriginalInfo = info

	if err := p.patch(ctx, result, original); err != nil {
		return nil, err
	}
	if !result.Modified || opts.DryRun || !opts.Write {
		return result, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup {
		created, err := fsutil.CreateBackup(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, result.ModifiedContent, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	logging.FromContext(ctx).Debug("wrote file", logging.FieldImports, result.Rewrites())

	return result, nil
}

// ProcessContent patches in-memory content without touching the disk.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}
	if err := p.patch(ctx, result, content); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Pipeline) patch(ctx context.Context, result *PipelineResult, original []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("processing cancelled: %w", err)
	}

	res, err := p.Processor.Document(ctx, result.Path, string(original))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatchFailure, err)
	}
	result.Patch = res

	if res.Skipped {
		result.Skipped = true
		result.SkipReason = "vendored file"
		return nil
	}
	if !res.Changed() || res.Text == string(original) {
		return nil
	}

	result.Modified = true
	result.ModifiedContent = []byte(res.Text)
	result.Diff = fix.GenerateDiff(result.Path, original, result.ModifiedContent)
	return nil
}

func categorizeError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}

// IsPipelineError reports whether err belongs to a pipeline error category.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrPatchFailure) ||
		errors.Is(err, ErrWriteFailure)
}
