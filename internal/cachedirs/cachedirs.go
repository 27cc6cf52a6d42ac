// Package cachedirs enumerates the well-known cache directories on this
// machine and summarizes their contents with the scan package.
package cachedirs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/diskscope/internal/scan"
)

// DefaultWorkers bounds how many cache roots are scanned concurrently.
const DefaultWorkers = 3

// Summary couples a cache root with its scan snapshot.
type Summary struct {
	Root     string         `json:"root"`
	Snapshot *scan.Snapshot `json:"snapshot"`
}

// Roots returns the well-known cache directories that exist on this machine,
// plus any extra candidates supplied by the caller, deduplicated and in a
// stable order.
func Roots(extra ...string) []string {
	return dedupeExisting(append(platformCandidates(), extra...))
}

// dedupeExisting normalizes candidates, removes duplicates and anything that
// is not an existing directory, preserving first-seen order.
func dedupeExisting(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	roots := make([]string, 0, len(candidates))

	for _, c := range candidates {
		if c == "" {
			continue
		}

		c = filepath.Clean(c)
		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}

		if info, err := os.Stat(c); err != nil || !info.IsDir() {
			continue
		}

		roots = append(roots, c)
	}

	return roots
}

// Summarize scans each root independently and returns one summary per root,
// in input order. Roots are scanned concurrently, at most workers at a time.
// Each scan owns its own accumulator, so no state is shared between them.
//
// Cancelling ctx stops all scans; the summaries collected so far carry
// partial snapshots, mirroring a single cancelled scan.
func Summarize(ctx context.Context, roots []string, topK, workers int) ([]Summary, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	summaries := make([]Summary, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			snap, err := scan.Run(ctx, scan.Request{Root: root, TopK: topK}, nil)
			if err != nil {
				return fmt.Errorf("scanning cache root %q: %w", root, err)
			}

			summaries[i] = Summary{Root: root, Snapshot: snap}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summaries, nil
}
