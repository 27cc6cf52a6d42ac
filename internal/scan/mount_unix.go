//go:build linux || darwin

package scan

import (
	"fmt"
	"os"
	"syscall"
)

// deviceID reports the filesystem device a path lives on, without following
// a final symlink component.
func deviceID(path string) (uint64, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, err
	}

	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, fmt.Errorf("no stat data for %q", path)
	}

	return uint64(st.Dev), nil //nolint:unconvert // Dev is int32 on darwin
}
