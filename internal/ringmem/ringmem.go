package ringmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mapping is a double-mapped virtual address range: Data[i] and
// Data[Capacity+i] refer to the same physical byte for every
// 0 <= i < Capacity, over a total span of 2*Capacity bytes.
type Mapping struct {
	// Data is a slice over the full 2*Capacity virtual span. Only the
	// first Capacity bytes need ever be addressed directly; the second
	// half exists so that a span starting anywhere in the first half and
	// no longer than Capacity bytes is contiguous.
	Data     []byte
	Capacity uint64
}

// createBacking creates an anonymous, shrinkable, shareable memory object
// of the given size and returns its file descriptor. Implemented per-OS in
// ringmem_linux.go / ringmem_darwin.go / ringmem_other.go.
func createBacking(size uint64) (fd int, cleanup func(), err error) {
	return createBackingPlatform(size)
}

// createBackingPlatform and platformMmapFlags are implemented once per OS in
// ringmem_linux.go, ringmem_darwin.go and ringmem_other.go.

// pageSize caches the system page size, queried once at package init.
var pageSize = uint64(unix.Getpagesize())

// PageSize returns the system's memory page size in bytes.
func PageSize() uint64 {
	return pageSize
}

// RoundUpCapacity returns the smallest power of two >= max(req, PageSize()).
func RoundUpCapacity(req uint64) uint64 {
	return nextPowerOfTwo(maxU64(req, pageSize))
}

// New reserves a 2*capacity virtual range and maps the same capacity-byte
// backing object into both halves. capacity must already be a power of two
// that is a multiple of the page size (callers go through RoundUpCapacity).
func New(capacity uint64) (*Mapping, error) {
	if capacity == 0 || capacity&(capacity-1) != 0 {
		return nil, fmt.Errorf("ringmem: capacity %d is not a power of two", capacity)
	}

	fd, cleanupFd, err := createBacking(capacity)
	if err != nil {
		return nil, fmt.Errorf("ringmem: create backing object: %w", err)
	}
	defer cleanupFd()

	// Reserve 2*capacity contiguous bytes of address space with a private
	// anonymous mapping, purely to secure a base address atomically.
	reservation, err := unix.Mmap(-1, 0, int(2*capacity), unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("ringmem: reserve address space: %w", err)
	}
	base := uintptr(unsafe.Pointer(&reservation[0]))

	// Overlay the backing object twice, each for capacity bytes, replacing
	// the reservation via MAP_FIXED. Both must land at the requested
	// address; MAP_FIXED silently drops the overlapped reservation pages.
	if err := mmapFixed(base, capacity, fd, 0, platformMmapFlags()); err != nil {
		unix.Munmap(reservation)
		unix.Close(fd)
		return nil, fmt.Errorf("ringmem: map first half: %w", err)
	}
	if err := mmapFixed(base+uintptr(capacity), capacity, fd, 0, 0); err != nil {
		munmapRange(base, capacity) // undo the first half
		unix.Munmap(reservation)
		unix.Close(fd)
		return nil, fmt.Errorf("ringmem: map second half: %w", err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(base)), 2*capacity)
	return &Mapping{Data: data, Capacity: capacity}, nil
}

// Close unmaps the full 2*Capacity virtual range in one call.
func (m *Mapping) Close() error {
	if m == nil || m.Data == nil {
		return nil
	}
	err := unix.Munmap(m.Data)
	m.Data = nil
	return err
}

// mmapFixed maps size bytes of fd at offset onto the fixed address base,
// replacing whatever reservation already lives there. unix.Mmap does not
// expose MAP_FIXED with a caller-chosen address, so this goes straight to
// the mmap syscall the way the double-map trick requires. extraFlags carries
// platform-specific, performance-only flags (e.g. MAP_POPULATE on Linux).
func mmapFixed(base uintptr, size uint64, fd int, offset int64, extraFlags int) error {
	flags := unix.MAP_SHARED | unix.MAP_FIXED | extraFlags
	addr, _, errno := unix.RawSyscall6(
		unix.SYS_MMAP,
		base,
		uintptr(size),
		uintptr(unix.PROT_READ|unix.PROT_WRITE),
		uintptr(flags),
		uintptr(fd),
		uintptr(offset),
	)
	if errno != 0 {
		return errno
	}
	if addr != base {
		return fmt.Errorf("ringmem: kernel placed mapping at %#x, wanted %#x", addr, base)
	}
	return nil
}

// munmapRange unmaps a size-byte range starting at base, used to unwind a
// partially-completed double map on failure.
func munmapRange(base uintptr, size uint64) {
	unix.RawSyscall(unix.SYS_MUNMAP, base, uintptr(size), 0)
}

func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
