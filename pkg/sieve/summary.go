// File: pkg/sieve/summary.go
package sieve

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RunSummary is the final snapshot of a run plus the list of per-file
// failures. It is immutable once produced and owned by the caller.
type RunSummary struct {
	Snapshot Snapshot
	Failures []error
}

// Format renders the human-readable report with numbers grouped according to
// the requested locale. An unrecognized locale identifier falls back to
// English with a logged warning. Printing is left to the caller.
func (s RunSummary) Format(localeID string, logger *zap.Logger) string {
	tag, err := language.Parse(localeID)
	if err != nil {
		logger.Warn("Invalid locale identifier, defaulting to English", zap.String("locale", localeID))
		tag = language.English
	}

	p := message.NewPrinter(tag)
	report := p.Sprintf("Removed %d lines from a total of %d lines read.",
		s.Snapshot.LinesRemoved, s.Snapshot.LinesTotal)
	if n := len(s.Failures); n > 0 {
		report += p.Sprintf(" Skipped %d files due to errors.", n)
	}
	return report
}
