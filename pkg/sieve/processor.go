// File: pkg/sieve/processor.go
package sieve

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Process rewrites one gzip file with filtered lines removed. The filtered
// content is streamed to a temporary file in the same directory and renamed
// over the original on success, so the replacement is atomic on the same
// filesystem. On any earlier failure the original is left untouched and the
// temporary file is removed.
//
// Kept lines are written byte-for-byte, including their original terminators;
// a final line without a trailing newline stays unterminated.
func Process(task FileTask, filter *Filter, logger *zap.Logger) FileResult {
	result := FileResult{Task: task, BytesIn: task.Size}

	fail := func(kind ErrorKind, err error) FileResult {
		result.Err = &FileError{Path: task.Path, Kind: kind, Err: err}
		return result
	}

	in, err := os.Open(task.Path)
	if err != nil {
		return fail(KindIO, err)
	}
	defer in.Close()

	gzIn, err := gzip.NewReader(in)
	if err != nil {
		return fail(classifyReadError(err), err)
	}
	defer gzIn.Close()

	tmp, err := os.CreateTemp(filepath.Dir(task.Path), "."+filepath.Base(task.Path)+".tmp-")
	if err != nil {
		return fail(KindIO, err)
	}
	tmpPath := tmp.Name()
	renamed := false
	defer func() {
		if renamed {
			return
		}
		tmp.Close()
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove temporary file", zap.String("path", tmpPath), zap.Error(err))
		}
	}()

	bufOut := bufio.NewWriter(tmp)
	gzOut := gzip.NewWriter(bufOut)

	reader := bufio.NewReader(gzIn)
	for {
		line, readErr := reader.ReadBytes('\n')
		if len(line) > 0 {
			result.LinesTotal++
			if filter.Keep(line) {
				if _, err := gzOut.Write(line); err != nil {
					return fail(KindIO, err)
				}
			} else {
				result.LinesRemoved++
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fail(classifyReadError(readErr), readErr)
		}
	}

	// Finalize the compressed stream before touching the original.
	if err := gzOut.Close(); err != nil {
		return fail(KindIO, err)
	}
	if err := bufOut.Flush(); err != nil {
		return fail(KindIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fail(KindIO, err)
	}

	if fi, err := os.Stat(tmpPath); err == nil {
		result.BytesOut = fi.Size()
	}

	if err := os.Rename(tmpPath, task.Path); err != nil {
		return fail(KindRename, err)
	}
	renamed = true

	logger.Debug("Processed file",
		zap.String("path", task.Path),
		zap.Uint64("linesRemoved", result.LinesRemoved),
		zap.Uint64("linesTotal", result.LinesTotal))
	return result
}

// classifyReadError separates malformed gzip input from plain I/O failures.
func classifyReadError(err error) ErrorKind {
	var corrupt flate.CorruptInputError
	switch {
	case errors.Is(err, gzip.ErrHeader),
		errors.Is(err, gzip.ErrChecksum),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &corrupt):
		return KindCorruption
	default:
		return KindIO
	}
}
