//go:build !linux && !darwin && !windows

package cachedirs

import "os"

func platformCandidates() []string {
	return []string{os.TempDir()}
}
