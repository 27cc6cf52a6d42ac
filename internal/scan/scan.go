package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied by Run when the request leaves a field zero.
const (
	DefaultTopK          = 25
	DefaultProgressEvery = 200
)

// Outcome reports how a scan terminated.
type Outcome string

const (
	// Complete means the walk exhausted the tree.
	Complete Outcome = "complete"
	// Cancelled means the caller's context fired; the snapshot is partial.
	Cancelled Outcome = "cancelled"
)

// Request configures one scan. It is not modified by Run.
type Request struct {
	// Root is the directory to scan.
	Root string
	// TopK is the number of largest files to retain.
	TopK int
	// ProgressEvery is the progress cadence in processed files.
	ProgressEvery int
	// Estimate is an advisory total file count (from EstimateFileCount),
	// forwarded verbatim on progress events. 0 means unknown.
	Estimate int64
	// Debug enables debug output.
	Debug bool
}

// ProgressEvent is pushed to the progress sink while a scan runs.
type ProgressEvent struct {
	// Files is the number of files processed so far.
	Files int64
	// Estimate is the advisory total from the request, 0 if unknown.
	Estimate int64
	// Elapsed is the wall time since the scan started.
	Elapsed time.Duration
}

// ProgressFunc receives progress events. It is called from the scanning
// goroutine and must not block; use ChanSink to bridge to a consumer that
// might be slow.
type ProgressFunc func(ProgressEvent)

// ChanSink adapts a channel into a ProgressFunc. Sends never block: when the
// consumer falls behind, events are dropped rather than stalling the walk.
func ChanSink(ch chan<- ProgressEvent) ProgressFunc {
	return func(ev ProgressEvent) {
		select {
		case ch <- ev:
		default:
		}
	}
}

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// Run performs one scan of req.Root and returns the resulting snapshot.
//
// The context is checked before each file is observed: once it fires, no
// further files are processed and the accumulated state is returned as a
// partial snapshot with Outcome Cancelled and a nil error. Cancellation
// latency is bounded by one file's I/O, not by the size of the tree.
//
// Progress events are delivered to sink every req.ProgressEvery files, plus
// one terminal event on normal completion so observers always see the final
// count, even when the tree is empty or the total is not a multiple of the
// cadence. Event counts are strictly increasing within one scan.
//
// A missing or non-directory root is reported synchronously before any work
// starts. A traversal fault that cannot be absorbed per-entry is returned as
// an error with no snapshot; per-file stat failures never surface here, they
// are counted as zero-size files by the walker.
func Run(ctx context.Context, req Request, sink ProgressFunc) (*Snapshot, error) {
	log := logger{enabled: req.Debug}

	if req.Root == "" {
		req.Root = "."
	}

	root, err := filepath.Abs(filepath.Clean(req.Root))
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("accessing root %q: %w", req.Root, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", req.Root)
	}

	if req.TopK <= 0 {
		req.TopK = DefaultTopK
	}

	if req.ProgressEvery <= 0 {
		req.ProgressEvery = DefaultProgressEvery
	}

	log.printf("[debug] scanning %s (top %d, progress every %d files)\n", root, req.TopK, req.ProgressEvery)

	acc := NewAccumulator(req.TopK)
	start := time.Now()
	reported := int64(-1)

	walkErr := Walk(root, func(path string, size int64) error {
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		acc.Observe(path, size)

		if sink != nil && acc.Files()%int64(req.ProgressEvery) == 0 {
			reported = acc.Files()
			sink(ProgressEvent{Files: reported, Estimate: req.Estimate, Elapsed: time.Since(start)})
		}

		return nil
	})

	snap := acc.Snapshot()
	snap.Elapsed = time.Since(start)

	switch {
	case errors.Is(walkErr, context.Canceled):
		log.printf("[debug] scan cancelled after %d files\n", snap.Files)

		snap.Outcome = Cancelled

		return snap, nil
	case walkErr != nil:
		return nil, fmt.Errorf("walking %q: %w", root, walkErr)
	}

	// Terminal event, unless the last cadence event already carried the
	// final count.
	if sink != nil && reported != acc.Files() {
		sink(ProgressEvent{Files: acc.Files(), Estimate: req.Estimate, Elapsed: snap.Elapsed})
	}

	snap.Outcome = Complete

	return snap, nil
}
