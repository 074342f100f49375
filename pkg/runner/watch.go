package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/sveltepatch/internal/logging"
)

// Watcher re-patches component files as they change.
type Watcher struct {
	runner  *Runner
	opts    Options
	disc    discoverer
	watcher *fsnotify.Watcher
}

// NewWatcher registers every directory under opts.Paths that discovery
// would descend into. Directories created later are added as they appear.
// The returned Watcher must be started with Run or released with Close.
func (r *Runner) NewWatcher(ctx context.Context, opts Options) (*Watcher, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		runner:  r,
		opts:    opts,
		disc:    discoverer{opts: opts, workDir: workDir, extensions: opts.effectiveExtensions()},
		watcher: fsw,
	}

	for _, input := range opts.effectivePaths() {
		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		info, err := os.Stat(path)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}
		if !info.IsDir() {
			path = filepath.Dir(path)
		}
		if err := w.addTree(ctx, path); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}
	return nil
}

// Run processes change events until ctx is cancelled, calling onOutcome for
// every processed file. It closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context, onOutcome func(FileOutcome)) error {
	defer func() { _ = w.Close() }()
	log := logging.FromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			info, err := os.Stat(event.Name)
			if err != nil {
				continue
			}
			if info.IsDir() {
				if !w.disc.skipDir(event.Name, info.Name()) {
					if err := w.addTree(ctx, event.Name); err != nil {
						log.Warn("watch directory failed", logging.FieldDir, event.Name, logging.FieldError, err)
					}
				}
				continue
			}
			if !w.disc.matchesFile(event.Name) || isHidden(event.Name) {
				continue
			}

			log.Debug("file changed", logging.FieldPath, event.Name, logging.FieldEvent, event.Op.String())
			onOutcome(w.runner.Process(ctx, event.Name, w.opts.Pipeline))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", logging.FieldError, err)
		}
	}
}

// Watch patches files as they change until ctx is cancelled.
func (r *Runner) Watch(ctx context.Context, opts Options, onOutcome func(FileOutcome)) error {
	w, err := r.NewWatcher(ctx, opts)
	if err != nil {
		return err
	}
	return w.Run(ctx, onOutcome)
}

func (w *Watcher) addTree(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && w.disc.skipDir(path, entry.Name()) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	return nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return len(base) > 0 && base[0] == '.'
}
