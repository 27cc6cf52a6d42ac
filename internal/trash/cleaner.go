package trash

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/idelchi/diskscope/internal/scan"
)

// Result counts the outcome of one clean pass.
type Result struct {
	// Cleaned is the number of files moved to trash.
	Cleaned int `json:"cleaned"`
	// Skipped counts files left in place: protected, in use, or otherwise
	// unmovable.
	Skipped int `json:"skipped"`
	// Bytes is the cumulative size of the cleaned files.
	Bytes int64 `json:"bytes"`
}

// Cleaner empties directories by moving their files to the trash. Per-file
// failures are counted as skips, never escalated; refusing a protected root
// is the only hard error.
type Cleaner struct {
	trash     *Trash
	protected []string
	dryRun    bool
}

// NewCleaner returns a cleaner that moves files into t. Paths under any of
// the protected prefixes are never touched. With dryRun set, nothing is
// moved and the result reports what would have been cleaned.
func NewCleaner(t *Trash, protected []string, dryRun bool) *Cleaner {
	return &Cleaner{trash: t, protected: protected, dryRun: dryRun}
}

// CleanRoot trashes every file under root. Enumeration uses the same walker
// as scanning, so symbolic links and mount boundaries are pruned identically
// and the clean loop can never reach a file a scan would not have counted.
//
// Cancelling ctx stops the loop; the partial result and ctx's error are
// returned.
func (c *Cleaner) CleanRoot(ctx context.Context, root string) (Result, error) {
	var res Result

	abs, err := filepath.Abs(root)
	if err != nil {
		return res, fmt.Errorf("resolving %q: %w", root, err)
	}

	if c.isProtected(abs) {
		return res, fmt.Errorf("refusing to clean protected path %q", abs)
	}

	walkErr := scan.Walk(abs, func(path string, size int64) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if c.isProtected(path) {
			res.Skipped++

			return nil
		}

		if !c.dryRun {
			if err := c.trash.Move(path); err != nil {
				res.Skipped++

				return nil
			}
		}

		res.Cleaned++
		res.Bytes += size

		return nil
	})

	return res, walkErr
}

// isProtected reports whether path equals or lives under a protected prefix.
func (c *Cleaner) isProtected(path string) bool {
	sep := string(filepath.Separator)

	for _, p := range c.protected {
		if p == "" {
			continue
		}

		p = filepath.Clean(p)
		if path == p || strings.HasPrefix(path, p+sep) {
			return true
		}
	}

	return false
}
