package accio

import (
	"errors"

	"github.com/boostgo/errorx"
)

var (
	ErrInvalidTarget  = errorx.New("accio.search.invalid_target")
	ErrSearchAborted  = errorx.New("accio.search.aborted")
	ErrOpenDirectory  = errorx.New("accio.directory.open")
	ErrReadDirectory  = errorx.New("accio.directory.read")
	ErrStatEntry      = errorx.New("accio.entry.stat")
	ErrQueueExhausted = errorx.New("accio.queue.exhausted")
	ErrResolveRoot    = errorx.New("accio.root.resolve")
)

type pathErrorContext struct {
	Path  string      `json:"path"`
	Kind  FailureKind `json:"kind"`
	Error error       `json:"error"`
}

type targetErrorContext struct {
	Target string `json:"target"`
}

type queueErrorContext struct {
	Path  string `json:"path"`
	Limit int    `json:"limit"`
}

func newInvalidTargetError(target string) error {
	return ErrInvalidTarget.SetData(targetErrorContext{
		Target: target,
	})
}

func newQueueExhaustedError(path string, limit int) error {
	return ErrQueueExhausted.SetData(queueErrorContext{
		Path:  path,
		Limit: limit,
	})
}

// newSearchAbortedError wraps a fatal failure. err is expected to already
// carry the operation that failed (ErrOpenDirectory, ErrStatEntry, ...).
func newSearchAbortedError(path string, kind FailureKind, err error) error {
	return ErrSearchAborted.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Kind:  kind,
			Error: err,
		})
}

func newResolveRootError(path string, err error) error {
	kind, _ := Decide(err)
	return ErrResolveRoot.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Kind:  kind,
			Error: err,
		})
}

// FailedPath returns the path that caused a fatal search or resolve error
func FailedPath(err error) (string, bool) {
	ctx, ok := findPathErrorContext(err)
	if !ok {
		return "", false
	}
	return ctx.Path, true
}

// FailureOf returns the failure kind recorded on err, or FailureNone
func FailureOf(err error) FailureKind {
	ctx, ok := findPathErrorContext(err)
	if !ok {
		return FailureNone
	}
	return ctx.Kind
}

func findPathErrorContext(err error) (pathErrorContext, bool) {
	for err != nil {
		var custom *errorx.Error
		if !errors.As(err, &custom) {
			return pathErrorContext{}, false
		}

		if ctx, ok := custom.Data().(pathErrorContext); ok {
			return ctx, true
		}

		err = custom.Unwrap()
	}

	return pathErrorContext{}, false
}
