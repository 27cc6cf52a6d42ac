//go:build darwin

package cachedirs

import (
	"os"
	"path/filepath"
)

func platformCandidates() []string {
	candidates := []string{
		"/Library/Caches",
		"/private/tmp",
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return candidates
	}

	return append(candidates,
		filepath.Join(home, "Library", "Caches"),
		filepath.Join(home, "Library", "Logs"),
		filepath.Join(home, ".npm", "_cacache"),
		filepath.Join(home, ".cache"),
	)
}
