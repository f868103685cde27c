package cueue

// Producer is the write endpoint of a cueue. It must only be used from one
// goroutine at a time; see noCopy.
type Producer struct {
	_    noCopy
	ring *sharedRing

	cachedRead uint64 // last-observed read position, refreshed on the slow path
	writeBase  uint64 // write position at the time of the last BeginWrite
	span       []byte // full span reserved by the last BeginWrite
	pending    uint64 // bytes written into span so far, not yet published
}

// Capacity returns the queue's actual (rounded-up) byte capacity.
func (p *Producer) Capacity() uint64 {
	return p.ring.capacity
}

// WriteCapacity returns the number of bytes that can still be written into
// the span reserved by the most recent BeginWrite/BeginWriteIfNeeded,
// without calling either again. It may be stale-conservative: it does not
// reload the consumer's read position.
func (p *Producer) WriteCapacity() uint64 {
	return uint64(len(p.span)) - p.pending
}

// BeginWrite refreshes the cached read position from the consumer (with
// acquire ordering) and returns the maximal writable contiguous span. Any
// previously reserved but uncommitted bytes (written without a following
// EndWrite) are discarded. The returned slice may have length zero if the
// queue is full.
func (p *Producer) BeginWrite() []byte {
	p.cachedRead = p.ring.ctrl.LoadReadAcquire()
	w := p.ring.ctrl.LoadWriteRelaxed()

	available := p.ring.capacity - (w - p.cachedRead)
	pos := w & p.ring.mask

	p.writeBase = w
	p.pending = 0
	p.span = p.ring.data()[pos : pos+available]
	return p.span
}

// BeginWriteIfNeeded returns the currently-held writable span if it already
// holds at least n bytes; otherwise it calls BeginWrite to refresh the
// consumer's read position and returns the updated span.
func (p *Producer) BeginWriteIfNeeded(n uint64) []byte {
	if p.WriteCapacity() >= n {
		return p.span[p.pending:]
	}
	return p.BeginWrite()
}

// Write appends src into the span currently held from BeginWrite/
// BeginWriteIfNeeded, advancing the in-progress length. It returns
// ErrInsufficientSpace, and leaves the in-progress length unchanged, if src
// is longer than the remaining reserved span.
func (p *Producer) Write(src []byte) error {
	if uint64(len(src)) > p.WriteCapacity() {
		return ErrInsufficientSpace
	}
	copy(p.span[p.pending:], src)
	p.pending += uint64(len(src))
	return nil
}

// EndWrite publishes every byte written since the last BeginWrite/EndWrite
// by advancing the shared write position with release ordering, making it
// visible to the consumer. It is a no-op if nothing has been written.
func (p *Producer) EndWrite() {
	if p.pending == 0 {
		return
	}
	newWrite := p.writeBase + p.pending
	p.ring.ctrl.StoreWriteRelease(newWrite)

	p.writeBase = newWrite
	p.span = p.span[p.pending:]
	p.pending = 0
}

// Close releases this endpoint's share of the underlying mapping. The
// mapping itself is unmapped only once the Consumer has also closed.
func (p *Producer) Close() error {
	p.ring.producerClosed.Store(true)
	return p.ring.release()
}
