//go:build linux

package cachedirs

import (
	"os"
	"path/filepath"
)

func platformCandidates() []string {
	candidates := []string{
		os.Getenv("XDG_CACHE_HOME"),
		"/var/cache",
		"/tmp",
		"/var/tmp",
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return candidates
	}

	return append(candidates,
		filepath.Join(home, ".cache"),
		filepath.Join(home, ".cache", "go-build"),
		filepath.Join(home, ".cache", "pip"),
		filepath.Join(home, ".cache", "yarn"),
		filepath.Join(home, ".cache", "thumbnails"),
		filepath.Join(home, ".cache", "fontconfig"),
		filepath.Join(home, ".cache", "google-chrome"),
		filepath.Join(home, ".cache", "chromium"),
		filepath.Join(home, ".cache", "mozilla", "firefox"),
		filepath.Join(home, ".npm", "_cacache"),
	)
}
