package listing

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// PathError is the fatal class: the root path itself is unusable. Every
// other traversal failure is reported inline and absorbed.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func pathErrorFrom(path string, err error) *PathError {
	return &PathError{Path: path, Reason: reasonFor(err)}
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "no such file or directory"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(err, syscall.ENOTDIR):
		return "not a directory"
	default:
		return err.Error()
	}
}
