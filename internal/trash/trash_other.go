//go:build !linux && !darwin

package trash

import "errors"

func platformTrash() (*Trash, error) {
	return nil, errors.New("trash not supported on this platform")
}
