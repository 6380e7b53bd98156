package accio

import (
	"errors"
	"io"
	"os"
	"strings"
)

// FindFirst searches root breadth-first and returns the first entry named
// target. The bool is false when the whole tree was searched without a match.
func FindFirst(root string, target string, options ...SearchOption) (string, bool, error) {
	var (
		found string
		ok    bool
	)

	_, err := search(root, target, newSearchOptions(options), func(path string) bool {
		found, ok = path, true
		return false // Stop walking
	})
	if err != nil {
		return "", false, err
	}

	return found, ok, nil
}

// FindAll searches the whole tree under root and calls onMatch for every entry
// named target as soon as it is found. It returns the number of matches.
//
// A matching directory is reported but not descended into.
func FindAll(root string, target string, onMatch MatchFunc, options ...SearchOption) (int, error) {
	return search(root, target, newSearchOptions(options), func(path string) bool {
		if onMatch != nil {
			onMatch(path)
		}
		return true
	})
}

// FindAllPaths is FindAll collecting the matches in discovery order
func FindAllPaths(root string, target string, options ...SearchOption) ([]SearchResult, error) {
	var results []SearchResult

	_, err := FindAll(root, target, func(path string) {
		results = append(results, SearchResult{
			Path:      path,
			MatchedBy: "name",
		})
	}, options...)
	if err != nil {
		return nil, err
	}

	return results, nil
}

// visitFunc receives a match and reports whether the search should go on
type visitFunc func(path string) bool

// walker holds the state of one search call. Nothing outlives the call.
type walker struct {
	fsys   FileSystem
	target string
	opts   *searchOptions
	queue  *PathQueue
	visit  visitFunc
	found  int
}

func search(root string, target string, opts *searchOptions, visit visitFunc) (int, error) {
	if err := validateTarget(target); err != nil {
		return 0, err
	}

	queue := NewPathQueue(opts.queueLimit)
	defer queue.Reset()

	w := &walker{
		fsys:   opts.fileSystem,
		target: target,
		opts:   opts,
		queue:  queue,
		visit:  visit,
	}

	if err := queue.Enqueue(root); err != nil {
		return 0, w.fail(root, err)
	}

	for {
		dir, ok := queue.Dequeue()
		if !ok {
			break
		}

		proceed, err := w.expand(dir)
		if err != nil {
			return w.found, err
		}
		if !proceed {
			break
		}
	}

	return w.found, nil
}

// expand lists dir and handles every child. It returns false once the visitor
// asked to stop.
func (w *walker) expand(dir string) (bool, error) {
	handle, err := w.fsys.OpenDir(dir)
	if err != nil {
		return true, w.fail(dir, ErrOpenDirectory.SetError(err))
	}
	defer handle.Close()

	for {
		entries, err := handle.ReadDir(w.opts.readBatch)
		for _, entry := range entries {
			proceed, inspectErr := w.inspect(dir, entry.Name())
			if inspectErr != nil || !proceed {
				return proceed, inspectErr
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			return true, w.fail(dir, ErrReadDirectory.SetError(err))
		}

		if len(entries) == 0 {
			return true, nil
		}
	}
}

func (w *walker) inspect(dir, name string) (bool, error) {
	path := JoinPath(dir, name)

	kind, err := Classify(w.fsys, name, path, w.target)
	if err != nil {
		return true, w.fail(path, ErrStatEntry.SetError(err))
	}

	switch kind {
	case KindMatch:
		w.found++
		return w.visit(path), nil
	case KindDirectory:
		if err := w.queue.Enqueue(path); err != nil {
			return true, w.fail(path, err)
		}
	}

	return true, nil
}

// fail applies the error policy. Recoverable failures go to the skip handler
// and yield nil.
func (w *walker) fail(path string, err error) error {
	kind, disposition := Decide(err)
	if disposition == Skip {
		if w.opts.onSkip != nil {
			w.opts.onSkip(path, err)
		}
		return nil
	}

	return newSearchAbortedError(path, kind, err)
}

// validateTarget rejects names no directory entry can have
func validateTarget(target string) error {
	if target == "" || strings.ContainsRune(target, '/') || strings.ContainsRune(target, os.PathSeparator) {
		return newInvalidTargetError(target)
	}

	return nil
}
