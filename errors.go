package cueue

import "fmt"

// Sentinel errors returned by this package. Wrapped with additional context
// via fmt.Errorf("%w", ...) where useful, never panicked on
// contract-respecting input.
var (
	// ErrInvalidCapacity is returned by New when requestedCapacity would
	// overflow or otherwise cannot be rounded to a valid power-of-two
	// capacity.
	ErrInvalidCapacity = fmt.Errorf("cueue: invalid requested capacity")

	// ErrInsufficientSpace is returned by Producer.Write when the argument
	// exceeds the span currently reserved by BeginWrite/BeginWriteIfNeeded.
	ErrInsufficientSpace = fmt.Errorf("cueue: write exceeds reserved span")
)
