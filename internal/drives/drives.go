// Package drives reports mounted filesystems and their usage.
package drives

// Drive describes one mounted filesystem.
type Drive struct {
	// Device is the backing device or volume identifier.
	Device string `json:"device"`
	// Mount is the mount point path.
	Mount string `json:"mount"`
	// Total is the filesystem capacity in bytes.
	Total uint64 `json:"total"`
	// Free is the space available to unprivileged users, in bytes.
	Free uint64 `json:"free"`
}

// Used returns bytes in use on this drive.
func (d Drive) Used() uint64 {
	if d.Free > d.Total {
		return 0
	}

	return d.Total - d.Free
}

// UsedPercent returns the percentage of the drive in use.
func (d Drive) UsedPercent() float64 {
	if d.Total == 0 {
		return 0
	}

	return float64(d.Used()) / float64(d.Total) * 100
}

// List returns the mounted drives visible to this process.
func List() ([]Drive, error) {
	return platformDrives()
}
