package cueue

// Consumer is the read endpoint of a cueue. It must only be used from one
// goroutine at a time; see noCopy.
type Consumer struct {
	_    noCopy
	ring *sharedRing

	readBase  uint64 // read position at the time of the last BeginRead
	windowLen uint64 // length of the slice last returned by BeginRead
}

// Capacity returns the queue's actual (rounded-up) byte capacity.
func (c *Consumer) Capacity() uint64 {
	return c.ring.capacity
}

// BeginRead loads the write position with acquire ordering and returns the
// contiguous slice of bytes committed by the producer since the last
// EndRead. The slice is empty iff the queue is empty. It may aggregate
// bytes from several producer batches, but never a partial, uncommitted
// batch.
func (c *Consumer) BeginRead() []byte {
	w := c.ring.ctrl.LoadWriteAcquire()
	r := c.ring.ctrl.LoadReadRelaxed()

	pos := r & c.ring.mask
	length := w - r

	c.readBase = r
	c.windowLen = length
	return c.ring.data()[pos : pos+length]
}

// EndRead releases the slice most recently returned by BeginRead, advancing
// the shared read position with release ordering so the producer can reuse
// that space. It is idempotent if called again with no intervening
// BeginRead.
func (c *Consumer) EndRead() {
	newRead := c.readBase + c.windowLen
	c.ring.ctrl.StoreReadRelease(newRead)
	c.readBase = newRead
	c.windowLen = 0
}

// Close releases this endpoint's share of the underlying mapping. The
// mapping itself is unmapped only once the Producer has also closed.
func (c *Consumer) Close() error {
	c.ring.consumerClosed.Store(true)
	return c.ring.release()
}
