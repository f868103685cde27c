package cueue

import "github.com/flowline/cueue/internal/atomicring"

// State is a diagnostic snapshot of a queue's counters and abandonment
// flags, exposed for tests, benchmarks, and metrics export.
type State struct {
	atomicring.Snapshot
	ProducerClosed bool
	ConsumerClosed bool
}

// DebugState returns a snapshot of the queue's counters as observed through
// the Producer side.
func (p *Producer) DebugState() State {
	return p.ring.debugState()
}

// DebugState returns a snapshot of the queue's counters as observed through
// the Consumer side.
func (c *Consumer) DebugState() State {
	return c.ring.debugState()
}

func (s *sharedRing) debugState() State {
	return State{
		Snapshot:       s.ctrl.Snapshot(s.capacity),
		ProducerClosed: s.producerClosed.Load(),
		ConsumerClosed: s.consumerClosed.Load(),
	}
}
