// File: pkg/sieve/scheduler.go
package sieve

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// schedule fans the task list out to a fixed pool of workers and blocks until
// every dispatched task has produced a FileResult. Each task is consumed by
// exactly one worker; idle workers pull the next unclaimed task immediately,
// so size-skewed files do not starve the pool. Per-file failures are carried
// in the results and never abort the run.
func schedule(ctx context.Context, tasks []FileTask, workers int, filter *Filter, progress *ProgressState, logger *zap.Logger) []FileResult {
	jobs := make(chan FileTask, len(tasks))
	results := make(chan FileResult, len(tasks))
	var wg sync.WaitGroup

	logger.Debug("Initializing worker pool", zap.Int("workers", workers))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		workerLogger := logger.With(zap.Int("workerID", w))
		go worker(ctx, jobs, results, filter, progress, &wg, workerLogger)
	}

	for _, task := range tasks {
		jobs <- task
	}
	close(jobs)

	// Close results once all workers have finished.
	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]FileResult, 0, len(tasks))
	for result := range results {
		collected = append(collected, result)
	}
	return collected
}

// worker processes tasks until the jobs channel drains or the context is
// cancelled. Cancellation is checked between files only: a file already being
// processed either completes its atomic rename or cleans up its temporary
// file, so no original is ever left half-written.
func worker(ctx context.Context, jobs <-chan FileTask, results chan<- FileResult, filter *Filter, progress *ProgressState, wg *sync.WaitGroup, logger *zap.Logger) {
	defer wg.Done()

	for task := range jobs {
		select {
		case <-ctx.Done():
			logger.Debug("Worker stopping on cancellation")
			return
		default:
		}

		result := Process(task, filter, logger)
		if result.Err != nil {
			logger.Warn("Error processing file", zap.String("path", task.Path), zap.Error(result.Err))
		}

		progress.Record(result)
		results <- result
	}
}
