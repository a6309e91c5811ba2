//go:build unix

package system

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CheckWritable reports an error when the current user cannot create files in dir.
func CheckWritable(dir string) error {
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("access %s: %w", dir, err)
	}
	return nil
}
