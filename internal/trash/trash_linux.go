//go:build linux

package trash

import (
	"fmt"
	"os"
	"path/filepath"
)

// platformTrash returns the freedesktop.org user trash:
// ~/.local/share/Trash with files/ plus info/ sidecars.
func platformTrash() (*Trash, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}

	return At(filepath.Join(home, ".local", "share", "Trash")), nil
}
