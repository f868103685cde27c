//go:build !linux && !darwin
// +build !linux,!darwin

package ringmem

import "errors"

// createBackingPlatform reports that double-mapping is unsupported on this
// platform. The double-map trick requires an OS primitive for reusable
// anonymous memory mapped twice at adjacent fixed addresses; only Linux and
// Darwin are implemented here (spec non-goal: "portability beyond operating
// systems that can map the same physical pages at two adjacent virtual
// address ranges").
func createBackingPlatform(size uint64) (fd int, cleanup func(), err error) {
	return 0, nil, errors.New("ringmem: double-mapped ring buffers are not supported on this platform")
}

func platformMmapFlags() int {
	return 0
}
