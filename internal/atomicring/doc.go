// Package atomicring implements the SPSC position protocol shared by
// cueue's Producer and Consumer: two monotonically increasing 64-bit
// counters, write position and read position, each isolated onto its own
// cache line to avoid false sharing, published and observed with
// release/acquire ordering.
//
// This package has no dependency on the memory backend (ringmem); it can be
// exercised and tested against a plain byte slice.
package atomicring
