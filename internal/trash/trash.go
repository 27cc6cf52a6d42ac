// Package trash moves files into the user's trash instead of deleting them,
// and provides a counting clean loop over whole directories.
package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Trash is a reversible deletion target. Files moved into it can be restored
// with the platform's usual trash tooling.
type Trash struct {
	filesDir string
	infoDir  string // empty on platforms without sidecar metadata
}

// Open returns the current user's trash.
func Open() (*Trash, error) {
	return platformTrash()
}

// At returns a trash rooted at dir, using the freedesktop files/info layout.
// Intended for tests and custom setups.
func At(dir string) *Trash {
	return &Trash{
		filesDir: filepath.Join(dir, "files"),
		infoDir:  filepath.Join(dir, "info"),
	}
}

// Move relocates path into the trash. The original name is kept when free;
// otherwise a numeric suffix is appended. Moving across filesystems is not
// attempted: the rename fails and the caller decides what to do.
func (t *Trash) Move(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", path, err)
	}

	if err := os.MkdirAll(t.filesDir, 0o700); err != nil {
		return fmt.Errorf("creating trash directory: %w", err)
	}

	name := uniqueName(t.filesDir, filepath.Base(abs))

	infoPath := ""
	if t.infoDir != "" {
		if err := os.MkdirAll(t.infoDir, 0o700); err != nil {
			return fmt.Errorf("creating trash info directory: %w", err)
		}

		infoPath = filepath.Join(t.infoDir, name+".trashinfo")

		info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
			abs, time.Now().Format("2006-01-02T15:04:05"))
		if err := os.WriteFile(infoPath, []byte(info), 0o600); err != nil {
			return fmt.Errorf("writing trash info: %w", err)
		}
	}

	if err := os.Rename(abs, filepath.Join(t.filesDir, name)); err != nil {
		if infoPath != "" {
			os.Remove(infoPath)
		}

		return fmt.Errorf("moving %q to trash: %w", path, err)
	}

	return nil
}

// uniqueName finds a name for base that does not collide inside dir. When
// dir cannot be probed at all the base name is returned as-is and the rename
// surfaces the real failure.
func uniqueName(dir, base string) string {
	name := base
	for i := 2; ; i++ {
		_, err := os.Lstat(filepath.Join(dir, name))
		if err != nil {
			return name
		}

		name = fmt.Sprintf("%s.%d", base, i)
	}
}
