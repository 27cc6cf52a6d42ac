//go:build darwin

package trash

import (
	"fmt"
	"os"
	"path/filepath"
)

// platformTrash returns ~/.Trash. Finder keeps no sidecar metadata there, so
// files are renamed straight into the directory.
func platformTrash() (*Trash, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}

	return &Trash{filesDir: filepath.Join(home, ".Trash")}, nil
}
