//go:build darwin

package drives

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// platformDrives reports the root volume plus everything mounted under
// /Volumes.
func platformDrives() ([]Drive, error) {
	var drives []Drive

	add := func(mount string) {
		var st unix.Statfs_t
		if err := unix.Statfs(mount, &st); err != nil {
			return
		}

		drives = append(drives, Drive{
			Device: cstring(st.Mntfromname[:]),
			Mount:  mount,
			Total:  st.Blocks * uint64(st.Bsize),
			Free:   st.Bavail * uint64(st.Bsize),
		})
	}

	add("/")

	entries, err := os.ReadDir("/Volumes")
	if err != nil {
		// No /Volumes access, the root volume still stands
		return drives, nil
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		mount := filepath.Join("/Volumes", entry.Name())

		// The boot volume is usually linked under /Volumes too
		if info, err := os.Lstat(mount); err != nil || info.Mode()&os.ModeSymlink != 0 {
			continue
		}

		add(mount)
	}

	return drives, nil
}

// cstring converts a NUL-terminated byte buffer to a Go string.
func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}

	return string(b)
}
