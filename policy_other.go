//go:build !unix

package accio

import (
	"errors"
	"syscall"
)

func isNotDirectory(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}

func isResourceExhausted(err error) bool {
	return false
}
