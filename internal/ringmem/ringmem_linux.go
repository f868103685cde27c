//go:build linux

package ringmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// createBackingPlatform creates an anonymous, in-memory file via
// memfd_create(2) and sizes it to exactly `size` bytes. The fd is the only
// handle needed; there is no path to unlink.
func createBackingPlatform(size uint64) (fd int, cleanup func(), err error) {
	fd, err = unix.MemfdCreate("cueue", 0)
	if err != nil {
		return 0, nil, fmt.Errorf("memfd_create: %w", err)
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		return 0, nil, fmt.Errorf("ftruncate: %w", err)
	}
	return fd, func() { unix.Close(fd) }, nil
}

// platformMmapFlags adds MAP_POPULATE to the first fixed mapping so the
// kernel prefaults the backing pages instead of taking a fault per page on
// first touch. Performance-only; correctness does not depend on it.
func platformMmapFlags() int {
	return unix.MAP_POPULATE
}
