//go:build !linux && !darwin

package drives

func platformDrives() ([]Drive, error) {
	return nil, nil
}
