package fs

import (
	"errors"
	"syscall"
)

// isTransient reports whether a listing or removal is worth retrying.
// Busy files on network mounts and interrupted syscalls usually clear up.
func isTransient(err error) bool {
	return errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EBUSY) ||
		errors.Is(err, syscall.EINTR) ||
		errors.Is(err, syscall.ETIMEDOUT)
}
