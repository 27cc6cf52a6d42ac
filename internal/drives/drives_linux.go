//go:build linux

package drives

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// platformDrives lists device-backed mounts from /proc/self/mounts and sizes
// each one with statfs. Mounts that cannot be statted (stale, permission)
// are dropped rather than reported with garbage numbers.
func platformDrives() ([]Drive, error) {
	f, err := os.Open("/proc/self/mounts")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var drives []Drive

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 || !strings.HasPrefix(fields[0], "/dev/") {
			continue
		}

		// /proc/mounts octal-escapes spaces in mount points
		mount := strings.ReplaceAll(fields[1], `\040`, " ")

		var st unix.Statfs_t
		if err := unix.Statfs(mount, &st); err != nil {
			continue
		}

		drives = append(drives, Drive{
			Device: fields[0],
			Mount:  mount,
			Total:  st.Blocks * uint64(st.Bsize),
			Free:   st.Bavail * uint64(st.Bsize),
		})
	}

	return drives, sc.Err()
}
