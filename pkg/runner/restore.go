package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/sveltepatch/internal/logging"
	"github.com/yaklabco/sveltepatch/pkg/fsutil"
)

// Restore puts back the sidecar backup of every discovered component that
// has one and returns the restored paths in order. It stops at the first
// failure.
func Restore(ctx context.Context, opts Options) ([]string, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	var restored []string
	for _, path := range files {
		ok, err := fsutil.RestoreBackup(ctx, path)
		if err != nil {
			return restored, fmt.Errorf("%s: %w", path, err)
		}
		if ok {
			logging.FromContext(ctx).Debug("restored backup", logging.FieldPath, path)
			restored = append(restored, path)
		}
	}
	return restored, nil
}
