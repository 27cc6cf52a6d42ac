package scan

import (
	"io/fs"
	"path/filepath"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// WalkFunc is called once per regular file with its absolute path and size.
// Returning a non-nil error stops the walk and Walk returns that error.
type WalkFunc func(path string, size int64) error

// Walk enumerates the regular files under root and calls fn for each one.
//
// Symbolic links are never followed, and directories living on a different
// filesystem than root are pruned, so the walk cannot loop through link
// cycles or wander onto other volumes. Entries that vanish or cannot be
// inspected are skipped silently; a file whose size cannot be read is
// reported with size 0 rather than aborting the traversal.
//
// Entries within each directory are visited in lexical order and the walk
// runs on a single worker, so the sequence of calls is deterministic for a
// fixed directory snapshot.
//
// A root that is itself a symlink is resolved to its target first, so
// scanning e.g. /tmp on macOS reaches /private/tmp; only links below the
// root are pruned.
func Walk(root string, fn WalkFunc) error {
	root = resolveRoot(root)
	rootDev, rootDevErr := deviceID(root)

	conf := &fastwalk.Config{
		Follow:     false,
		Sort:       fastwalk.SortLexical,
		NumWorkers: 1,
	}

	return fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // vanished or unreadable entry
		}

		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		if d.IsDir() {
			if path == root || rootDevErr != nil {
				return nil
			}

			// Prune mount boundaries. A failed check counts as a boundary:
			// better to under-scan than to cross onto another volume.
			if dev, err := deviceID(path); err != nil || dev != rootDev {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		var size int64
		if info, err := d.Info(); err == nil {
			size = info.Size()
		}

		return fn(path, size)
	})
}

// resolveRoot follows a symlinked root to its target. Resolution failures
// are left to the walk itself to report.
func resolveRoot(root string) string {
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		return resolved
	}

	return root
}

// EstimateFileCount walks root counting regular files by name only, with no
// per-file stat calls. It is a cheap pre-pass whose result serves as an
// advisory denominator for progress fractions.
func EstimateFileCount(root string) (int64, error) {
	root = resolveRoot(root)

	var count atomic.Int64

	conf := &fastwalk.Config{Follow: false}

	err := fastwalk.Walk(conf, root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if d.Type().IsRegular() {
			count.Add(1)
		}

		return nil
	})

	return count.Load(), err
}
