// Package fileproc provides concurrent file processing utilities.
package fileproc

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/augur-dev/augur/pkg/metrics"
)

// DefaultWorkerMultiplier is the multiplier applied to NumCPU for worker count.
// 2x is optimal for mixed I/O and CGO workloads.
const DefaultWorkerMultiplier = 2

// ProgressFunc is called after each file is processed.
type ProgressFunc func()

// ErrorFunc is called when a file processing error occurs.
// Receives the file path and the error. If nil, errors are silently skipped.
type ErrorFunc func(path string, err error)

// ProcessingError represents an error that occurred while processing a file.
type ProcessingError struct {
	Path string
	Err  error
}

func (e ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// MapFiles processes files in parallel, calling fn for each file with a
// dedicated metric calculator. Results keep the input order so that output
// is identical regardless of worker scheduling. Failed files are omitted and
// reported through onError.
func MapFiles[T any](ctx context.Context, files []string, fn func(*metrics.Calculator, string) (T, error), onProgress ProgressFunc, onError ErrorFunc) []T {
	return MapFilesN(ctx, files, 0, fn, onProgress, onError)
}

// MapFilesN processes files with a configurable worker count.
// If maxWorkers is <= 0, defaults to 2x NumCPU.
func MapFilesN[T any](ctx context.Context, files []string, maxWorkers int, fn func(*metrics.Calculator, string) (T, error), onProgress ProgressFunc, onError ErrorFunc) []T {
	if len(files) == 0 {
		return nil
	}

	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU() * DefaultWorkerMultiplier
	}

	type slot struct {
		value T
		ok    bool
	}
	slots := make([]slot, len(files))

	// Each goroutine owns its calculator for the duration of one file, and
	// no locking is needed on results: every index is written by exactly
	// one goroutine.
	p := pool.New().WithMaxGoroutines(maxWorkers)
	for i, path := range files {
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}

			calc := metrics.NewCalculator()
			defer calc.Close()

			result, err := fn(calc, path)
			if onProgress != nil {
				onProgress()
			}
			if err != nil {
				if onError != nil {
					onError(path, err)
				}
				return
			}
			slots[i] = slot{value: result, ok: true}
		})
	}
	p.Wait()

	results := make([]T, 0, len(files))
	for _, s := range slots {
		if s.ok {
			results = append(results, s.value)
		}
	}
	return results
}
