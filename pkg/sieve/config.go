// File: pkg/sieve/config.go
package sieve

// RunConfig holds the fully resolved inputs for one filtering run.
// The CLI layer resolves it from flags and arguments; the core never
// parses argv itself.
type RunConfig struct {
	RootDir  string   // Directory scanned recursively for .gz files
	Patterns []string // Literal substrings; a line containing any of them is dropped
	Workers  int      // Worker count; values <= 0 mean the number of logical CPUs
	Locale   string   // Locale identifier for number formatting in the summary
}

// FileTask is one discovered file awaiting processing. It is created by
// discovery and consumed by exactly one worker.
type FileTask struct {
	Path string // Absolute path to the .gz file
	Size int64  // Compressed size in bytes, used for progress accounting
}

// FileResult is the outcome of processing a single FileTask. Err is nil on
// success and a *FileError when the file was skipped.
type FileResult struct {
	Task         FileTask
	LinesTotal   uint64 // Lines seen in the decompressed stream
	LinesRemoved uint64 // Lines dropped by the filter
	BytesIn      int64  // Compressed input size
	BytesOut     int64  // Compressed output size
	Err          error
}
