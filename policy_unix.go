//go:build unix

package accio

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isNotDirectory(err error) bool {
	return errors.Is(err, unix.ENOTDIR)
}

func isResourceExhausted(err error) bool {
	return errors.Is(err, unix.ENOMEM) ||
		errors.Is(err, unix.EMFILE) ||
		errors.Is(err, unix.ENFILE)
}
