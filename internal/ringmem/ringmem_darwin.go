//go:build darwin

package ringmem

import (
	"fmt"
	"os"
)

// createBackingPlatform creates a shareable backing object the way the
// original crate does on macOS: a uniquely-named temp file, unlinked
// immediately so no path outlives the process, kept alive only by the open
// file descriptor. Darwin has no memfd_create; mmap(MAP_SHARED) over a
// regular (already-unlinked) file descriptor gives the same semantics.
func createBackingPlatform(size uint64) (fd int, cleanup func(), err error) {
	f, err := os.CreateTemp("", "cueue-*")
	if err != nil {
		return 0, nil, fmt.Errorf("create temp backing file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		return 0, nil, fmt.Errorf("truncate backing file: %w", err)
	}

	fd = int(f.Fd())
	return fd, func() { f.Close() }, nil
}

// platformMmapFlags: macOS has no MAP_POPULATE-equivalent prefault flag
// worth using here.
func platformMmapFlags() int {
	return 0
}
