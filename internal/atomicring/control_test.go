package atomicring_test

import (
	"testing"

	"github.com/flowline/cueue/internal/atomicring"
)

func TestControlPublishObserve(t *testing.T) {
	var c atomicring.Control

	if got := c.LoadWriteAcquire(); got != 0 {
		t.Fatalf("fresh control write position = %d, want 0", got)
	}
	if got := c.LoadReadAcquire(); got != 0 {
		t.Fatalf("fresh control read position = %d, want 0", got)
	}

	c.StoreWriteRelease(9)
	if got := c.LoadWriteAcquire(); got != 9 {
		t.Fatalf("write position = %d, want 9", got)
	}

	c.StoreReadRelease(3)
	if got := c.LoadReadAcquire(); got != 3 {
		t.Fatalf("read position = %d, want 3", got)
	}
}

func TestSnapshotUsed(t *testing.T) {
	var c atomicring.Control
	c.StoreWriteRelease(15)
	c.StoreReadRelease(4)

	snap := c.Snapshot(1 << 20)
	if snap.Used != 11 {
		t.Fatalf("snapshot used = %d, want 11", snap.Used)
	}
	if snap.Capacity != 1<<20 {
		t.Fatalf("snapshot capacity = %d, want %d", snap.Capacity, 1<<20)
	}
}
