// File: pkg/sieve/errors.go
package sieve

import (
	"errors"
	"fmt"
)

// Fatal discovery errors. These abort the run before any work is scheduled.
var (
	ErrRootNotFound = errors.New("root directory does not exist")
	ErrRootNotDir   = errors.New("root path is not a directory")
)

// ErrorKind classifies per-file failures. A failed file is recorded and
// skipped; it never aborts the run.
type ErrorKind int

const (
	// KindCorruption marks malformed gzip input.
	KindCorruption ErrorKind = iota
	// KindIO marks filesystem failures such as permissions or a full disk.
	KindIO
	// KindRename marks a failed atomic replace. The original file is preserved.
	KindRename
)

func (k ErrorKind) String() string {
	switch k {
	case KindCorruption:
		return "corruption"
	case KindIO:
		return "io"
	case KindRename:
		return "rename"
	default:
		return "unknown"
	}
}

// FileError describes why a single file could not be processed.
type FileError struct {
	Path string
	Kind ErrorKind
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Path, e.Kind, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
