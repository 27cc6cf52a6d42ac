//go:build !linux && !darwin

package scan

import "errors"

var errNoDeviceID = errors.New("device identity not supported on this platform")

// deviceID is unavailable here; Walk disables mount pruning when the root's
// device cannot be determined.
func deviceID(string) (uint64, error) {
	return 0, errNoDeviceID
}
