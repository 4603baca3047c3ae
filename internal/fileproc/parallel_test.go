package fileproc

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/augur-dev/augur/pkg/metrics"
)

func TestMapFilesPreservesOrder(t *testing.T) {
	files := make([]string, 50)
	for i := range files {
		files[i] = fmt.Sprintf("file_%02d.py", i)
	}

	got := MapFiles(context.Background(), files, func(calc *metrics.Calculator, path string) (string, error) {
		return path, nil
	}, nil, nil)

	if !slices.Equal(got, files) {
		t.Errorf("results reordered:\ngot  %v\nwant %v", got, files)
	}
}

func TestMapFilesOmitsFailures(t *testing.T) {
	files := []string{"a.py", "bad.py", "c.py"}
	var failed atomic.Value

	got := MapFiles(context.Background(), files, func(calc *metrics.Calculator, path string) (string, error) {
		if path == "bad.py" {
			return "", errors.New("boom")
		}
		return path, nil
	}, nil, func(path string, err error) {
		failed.Store(path)
	})

	if !slices.Equal(got, []string{"a.py", "c.py"}) {
		t.Errorf("got %v", got)
	}
	if failed.Load() != "bad.py" {
		t.Errorf("error callback got %v, want bad.py", failed.Load())
	}
}

func TestMapFilesProgress(t *testing.T) {
	files := []string{"a.py", "b.py", "c.py"}
	var ticks atomic.Int64

	MapFiles(context.Background(), files, func(calc *metrics.Calculator, path string) (struct{}, error) {
		return struct{}{}, nil
	}, func() { ticks.Add(1) }, nil)

	if ticks.Load() != 3 {
		t.Errorf("progress ticks = %d, want 3", ticks.Load())
	}
}

func TestMapFilesEmptyInput(t *testing.T) {
	got := MapFiles(context.Background(), nil, func(calc *metrics.Calculator, path string) (int, error) {
		return 0, nil
	}, nil, nil)
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestMapFilesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := MapFiles(ctx, []string{"a.py", "b.py"}, func(calc *metrics.Calculator, path string) (string, error) {
		return path, nil
	}, nil, nil)
	if len(got) != 0 {
		t.Errorf("cancelled context should produce no results, got %v", got)
	}
}

func TestMapFilesWorkerCountIndependence(t *testing.T) {
	files := []string{"a.py", "b.py", "c.py", "d.py", "e.py"}
	run := func(workers int) []string {
		return MapFilesN(context.Background(), files, workers, func(calc *metrics.Calculator, path string) (string, error) {
			return path, nil
		}, nil, nil)
	}

	one := run(1)
	many := run(8)
	if !slices.Equal(one, many) {
		t.Errorf("worker count changed output: %v vs %v", one, many)
	}
}
