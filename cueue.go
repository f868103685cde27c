package cueue

import (
	"sync/atomic"

	"github.com/flowline/cueue/internal/atomicring"
	"github.com/flowline/cueue/internal/ringmem"
)

// sharedRing is the state jointly owned by a Producer/Consumer pair: the
// double-mapped backing storage and the position-counter protocol. It is
// released exactly once, when both endpoints have called Close.
type sharedRing struct {
	mapping  *ringmem.Mapping
	ctrl     atomicring.Control
	mask     uint64
	capacity uint64

	refs           atomic.Int32
	producerClosed atomic.Bool
	consumerClosed atomic.Bool
}

func (s *sharedRing) data() []byte {
	return s.mapping.Data[:s.capacity]
}

// release drops one owner's reference; the last to drop unmaps the memory.
func (s *sharedRing) release() error {
	if s.refs.Add(-1) == 0 {
		return s.mapping.Close()
	}
	return nil
}

// New creates a single-producer/single-consumer byte queue. requestedCapacity
// is a lower bound on the actual capacity: the real capacity is rounded up
// to the next power of two that is at least one page, and is reported by
// Producer.Capacity/Consumer.Capacity.
func New(requestedCapacity uint64) (*Producer, *Consumer, error) {
	if requestedCapacity == 0 {
		return nil, nil, ErrInvalidCapacity
	}

	capacity := ringmem.RoundUpCapacity(requestedCapacity)
	if capacity == 0 || capacity&(capacity-1) != 0 {
		return nil, nil, ErrInvalidCapacity
	}

	mapping, err := ringmem.New(capacity)
	if err != nil {
		return nil, nil, err
	}

	ring := &sharedRing{
		mapping:  mapping,
		mask:     capacity - 1,
		capacity: capacity,
	}
	ring.refs.Store(2)

	p := &Producer{ring: ring}
	c := &Consumer{ring: ring}
	return p, c, nil
}
