package accio

import (
	"errors"
	"io/fs"
)

// Decide maps a filesystem failure to its kind and to what the search does
// about it. Only permission errors are recoverable.
func Decide(err error) (FailureKind, Disposition) {
	kind := classifyFailure(err)
	if kind == FailurePermissionDenied {
		return kind, Skip
	}

	return kind, Abort
}

func classifyFailure(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, fs.ErrPermission):
		return FailurePermissionDenied
	case errors.Is(err, ErrQueueExhausted), isResourceExhausted(err):
		return FailureAllocation
	case errors.Is(err, fs.ErrNotExist), isNotDirectory(err):
		return FailureNotFoundOrWrongType
	default:
		return FailureOtherStatus
	}
}
