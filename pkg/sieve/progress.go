// File: pkg/sieve/progress.go
package sieve

import (
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressState accumulates per-file results from all workers. Counters are
// monotonically non-decreasing for the duration of a run and filesCompleted
// never exceeds filesTotal. Record holds the lock only for the counter
// updates; the display loop reads snapshots on its own interval and never
// blocks a worker on I/O.
type ProgressState struct {
	mu             sync.Mutex
	filesTotal     int
	filesCompleted int
	failures       int
	linesTotal     uint64
	linesRemoved   uint64
	bytesProcessed int64
	bytesWritten   int64
	startedAt      time.Time
}

// NewProgressState creates the shared progress state for a run with a known
// number of files.
func NewProgressState(filesTotal int) *ProgressState {
	return &ProgressState{
		filesTotal: filesTotal,
		startedAt:  time.Now(),
	}
}

// Record folds one FileResult into the shared counters. Failed files still
// count as completed: the task has resolved either way.
func (ps *ProgressState) Record(result FileResult) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.filesCompleted < ps.filesTotal {
		ps.filesCompleted++
	}
	if result.Err != nil {
		ps.failures++
	}
	ps.linesTotal += result.LinesTotal
	ps.linesRemoved += result.LinesRemoved
	ps.bytesProcessed += result.BytesIn
	ps.bytesWritten += result.BytesOut
}

// Snapshot is a consistent read of the progress counters plus derived
// throughput and ETA values.
type Snapshot struct {
	FilesTotal     int
	FilesCompleted int
	Failures       int
	LinesTotal     uint64
	LinesRemoved   uint64
	BytesProcessed int64
	BytesWritten   int64
	Elapsed        time.Duration
	Throughput     float64       // Compressed bytes per second
	ETA            time.Duration // Zero until the first file completes
}

// Snapshot returns a point-in-time copy of the counters. ETA extrapolates the
// average per-file duration over the remaining files and is left zero while
// no file has completed.
func (ps *ProgressState) Snapshot() Snapshot {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	elapsed := time.Since(ps.startedAt)
	snap := Snapshot{
		FilesTotal:     ps.filesTotal,
		FilesCompleted: ps.filesCompleted,
		Failures:       ps.failures,
		LinesTotal:     ps.linesTotal,
		LinesRemoved:   ps.linesRemoved,
		BytesProcessed: ps.bytesProcessed,
		BytesWritten:   ps.bytesWritten,
		Elapsed:        elapsed,
	}
	if elapsed > 0 {
		snap.Throughput = float64(ps.bytesProcessed) / elapsed.Seconds()
	}
	if ps.filesCompleted > 0 && ps.filesCompleted < ps.filesTotal {
		perFile := elapsed / time.Duration(ps.filesCompleted)
		snap.ETA = perFile * time.Duration(ps.filesTotal-ps.filesCompleted)
	}
	return snap
}

// newProgressBar builds the byte-based progress bar, sized to half the
// terminal width clamped to [40, 100]. Falls back to an 80-column terminal
// when stderr is not a terminal.
func newProgressBar(totalBytes int64) *progressbar.ProgressBar {
	termWidth := 80
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 80 {
		termWidth = w
	}
	barWidth := termWidth / 2
	if barWidth < 40 {
		barWidth = 40
	}
	if barWidth > 100 {
		barWidth = 100
	}

	return progressbar.NewOptions64(totalBytes,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("filtering"),
		progressbar.OptionSetWidth(barWidth),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
}

// displayLoop polls the shared state on a fixed interval and pushes the
// processed byte count into the bar. Refresh is fully decoupled from worker
// update frequency; closing stop renders the final state and finishes the bar.
func displayLoop(ps *ProgressState, bar *progressbar.ProgressBar, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			snap := ps.Snapshot()
			_ = bar.Set64(snap.BytesProcessed)
			_ = bar.Finish()
			return
		case <-ticker.C:
			snap := ps.Snapshot()
			_ = bar.Set64(snap.BytesProcessed)
		}
	}
}
