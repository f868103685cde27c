// Package ringmem provides the double-mapped ("magic ring buffer") memory
// allocator that backs cueue's SPSC byte ring: a physical region of N bytes
// mapped twice into adjacent virtual address ranges, so any span of at most
// N bytes starting anywhere in the first mapping is contiguous in the
// process's address space. No wrap-around logic is needed on the read or
// write path; both halves alias the same physical pages.
//
// Platform-specific backing-object creation lives in ringmem_linux.go,
// ringmem_darwin.go, and the unsupported-platform stub in
// ringmem_other.go.
package ringmem
