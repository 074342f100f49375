package cli

import (
	"errors"

	"github.com/yaklabco/sveltepatch/pkg/runner"
)

// Exit codes for sveltepatch.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitChangesPending indicates --check found imports still to split.
	ExitChangesPending = 1

	// ExitPatchErrors indicates at least one file could not be patched.
	ExitPatchErrors = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Errors that only carry an exit status; main does not log them.
var (
	ErrChangesPending = errors.New("changes pending")
	ErrPatchFailed    = errors.New("some files could not be patched")
)

// ErrConfig wraps configuration failures.
var ErrConfig = errors.New("configuration error")

// ExitCodeFromResult determines the exit code of a patch run. Pending
// changes only fail the run in check mode.
func ExitCodeFromResult(result *runner.Result, check bool) int {
	switch {
	case result == nil:
		return ExitSuccess
	case result.HasErrors():
		return ExitPatchErrors
	case check && result.Pending():
		return ExitChangesPending
	default:
		return ExitSuccess
	}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChangesPending):
		return ExitChangesPending
	case errors.Is(err, ErrPatchFailed):
		return ExitPatchErrors
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, runner.ErrFileNotFound), errors.Is(err, runner.ErrPermissionDenied),
		errors.Is(err, runner.ErrWriteFailure):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsSilent reports whether err only signals an exit status.
func IsSilent(err error) bool {
	return errors.Is(err, ErrChangesPending) || errors.Is(err, ErrPatchFailed)
}

func exitError(code int) error {
	switch code {
	case ExitChangesPending:
		return ErrChangesPending
	case ExitPatchErrors:
		return ErrPatchFailed
	default:
		return nil
	}
}
