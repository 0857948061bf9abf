// File: pkg/sieve/filter.go
package sieve

import "bytes"

// Filter decides whether a line survives, based on a fixed set of literal,
// case-sensitive substring patterns. A Filter is read-only after construction
// and safe to share across workers without locking.
type Filter struct {
	patterns [][]byte
}

// NewFilter builds a Filter from the configured pattern strings. Empty
// patterns are discarded since they would match every line. With no patterns
// the filter keeps everything.
func NewFilter(patterns []string) *Filter {
	f := &Filter{patterns: make([][]byte, 0, len(patterns))}
	for _, p := range patterns {
		if p != "" {
			f.patterns = append(f.patterns, []byte(p))
		}
	}
	return f
}

// Keep reports whether the line should be written to the output. The line may
// include its terminator; patterns never contain newlines so matching is
// unaffected.
func (f *Filter) Keep(line []byte) bool {
	for _, p := range f.patterns {
		if bytes.Contains(line, p) {
			return false
		}
	}
	return true
}
