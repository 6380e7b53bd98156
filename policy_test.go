package accio

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"syscall"
	"testing"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		kind        FailureKind
		disposition Disposition
		unixOnly    bool
	}{
		{"EACCES", &fs.PathError{Op: "open", Path: "p", Err: syscall.EACCES}, FailurePermissionDenied, Skip, false},
		{"EPERM", &fs.PathError{Op: "lstat", Path: "p", Err: syscall.EPERM}, FailurePermissionDenied, Skip, false},
		{"ErrPermission", fs.ErrPermission, FailurePermissionDenied, Skip, false},
		{"ENOENT", &fs.PathError{Op: "lstat", Path: "p", Err: syscall.ENOENT}, FailureNotFoundOrWrongType, Abort, false},
		{"ENOTDIR", &fs.PathError{Op: "open", Path: "p", Err: syscall.ENOTDIR}, FailureNotFoundOrWrongType, Abort, false},
		{"EIO", &fs.PathError{Op: "lstat", Path: "p", Err: syscall.EIO}, FailureOtherStatus, Abort, false},
		{"Plain", errors.New("boom"), FailureOtherStatus, Abort, false},
		{"QueueExhausted", newQueueExhaustedError("p", 1), FailureAllocation, Abort, false},
		{"EMFILE", &fs.PathError{Op: "open", Path: "p", Err: syscall.EMFILE}, FailureAllocation, Abort, true},
		{"ENOMEM", &fs.PathError{Op: "open", Path: "p", Err: syscall.ENOMEM}, FailureAllocation, Abort, true},
		{"Wrapped", ErrOpenDirectory.SetError(fmt.Errorf("ctx: %w", syscall.EACCES)), FailurePermissionDenied, Skip, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.unixOnly && runtime.GOOS == "windows" {
				t.Skip("resource errors are only classified on unix")
			}

			kind, disposition := Decide(tc.err)
			if kind != tc.kind {
				t.Errorf("Expected kind %s, got %s", tc.kind, kind)
			}
			if disposition != tc.disposition {
				t.Errorf("Expected disposition %s, got %s", tc.disposition, disposition)
			}
		})
	}
}

func TestFailureContext(t *testing.T) {
	osErr := &fs.PathError{Op: "open", Path: "/x", Err: syscall.ENOENT}
	err := newSearchAbortedError("/x", FailureNotFoundOrWrongType, ErrOpenDirectory.SetError(osErr))

	wrapped := fmt.Errorf("cli: %w", err)
	if path, ok := FailedPath(wrapped); !ok || path != "/x" {
		t.Errorf("Expected /x, got %q", path)
	}
	if kind := FailureOf(wrapped); kind != FailureNotFoundOrWrongType {
		t.Errorf("Expected %s, got %s", FailureNotFoundOrWrongType, kind)
	}

	if _, ok := FailedPath(errors.New("plain")); ok {
		t.Error("Plain errors carry no path")
	}
	if kind := FailureOf(newInvalidTargetError("")); kind != FailureNone {
		t.Errorf("Expected %s, got %s", FailureNone, kind)
	}
}
