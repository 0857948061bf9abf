// File: pkg/sieve/run.go

// Package sieve implements the concurrent filtering pipeline: discovery of
// gzip-compressed log files under a root directory, a bounded worker pool
// that rewrites each file in place with matching lines removed, and shared
// progress accounting that drives a live display.
package sieve

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// displayInterval is how often the progress display polls the shared state.
const displayInterval = 100 * time.Millisecond

// Run executes one full filtering pass: discover the target files, fan them
// out to the worker pool, and return the aggregated summary. Fatal errors
// (bad root directory) abort before any file is touched; per-file failures
// are collected into the summary instead. Cancelling the context stops
// dispatch between files while preserving every original file intact.
func Run(ctx context.Context, cfg RunConfig, logger *zap.Logger) (RunSummary, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", workers))
	}

	tasks, totalBytes, err := Discover(cfg.RootDir, logger)
	if err != nil {
		return RunSummary{}, err
	}
	if len(tasks) == 0 {
		logger.Warn("No compressed log files found under root", zap.String("root", cfg.RootDir))
	}

	filter := NewFilter(cfg.Patterns)
	progress := NewProgressState(len(tasks))

	bar := newProgressBar(totalBytes)
	stop := make(chan struct{})
	displayDone := make(chan struct{})
	go func() {
		defer close(displayDone)
		displayLoop(progress, bar, displayInterval, stop)
	}()

	results := schedule(ctx, tasks, workers, filter, progress, logger)

	close(stop)
	<-displayDone

	summary := RunSummary{Snapshot: progress.Snapshot()}
	for _, result := range results {
		if result.Err != nil {
			summary.Failures = append(summary.Failures, result.Err)
		}
	}

	logger.Debug("Run completed",
		zap.Int("filesCompleted", summary.Snapshot.FilesCompleted),
		zap.Int("failures", len(summary.Failures)),
		zap.Uint64("linesRemoved", summary.Snapshot.LinesRemoved),
		zap.Duration("elapsed", summary.Snapshot.Elapsed))
	return summary, nil
}
