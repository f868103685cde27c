package ringmem_test

import (
	"testing"

	"github.com/flowline/cueue/internal/ringmem"
)

func TestRoundUpCapacity(t *testing.T) {
	page := ringmem.PageSize()
	cases := []struct {
		req  uint64
		want uint64
	}{
		{0, page},
		{1, page},
		{page, page},
		{page + 1, page * 2},
		{page * 3, page * 4},
	}
	for _, tc := range cases {
		if got := ringmem.RoundUpCapacity(tc.req); got != tc.want {
			t.Errorf("RoundUpCapacity(%d) = %d, want %d", tc.req, got, tc.want)
		}
	}
}

// TestDoubleMapIdentity verifies the core property the whole allocator
// exists for: a byte written at offset i is visible at offset Capacity+i,
// and vice versa, sampled at every 128th i in [0, Capacity).
func TestDoubleMapIdentity(t *testing.T) {
	m, err := ringmem.New(ringmem.PageSize())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	cap := m.Capacity
	if uint64(len(m.Data)) != 2*cap {
		t.Fatalf("len(Data) = %d, want %d", len(m.Data), 2*cap)
	}

	for i := uint64(0); i < cap; i += 128 {
		m.Data[i] = byte(i)
	}
	for i := uint64(0); i < cap; i += 128 {
		if got, want := m.Data[cap+i], byte(i); got != want {
			t.Fatalf("Data[capacity+%d] = %d, want %d (written via first half)", i, got, want)
		}
	}

	for i := uint64(0); i < cap; i += 128 {
		m.Data[cap+i] = byte(0xFF - i)
	}
	for i := uint64(0); i < cap; i += 128 {
		if got, want := m.Data[i], byte(0xFF-i); got != want {
			t.Fatalf("Data[%d] = %d, want %d (written via second half)", i, got, want)
		}
	}
}

// TestWrapSpanIsContiguous writes a span that straddles the capacity
// boundary in one contiguous slice, the scenario the whole double map exists
// to support.
func TestWrapSpanIsContiguous(t *testing.T) {
	m, err := ringmem.New(ringmem.PageSize())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	cap := m.Capacity
	start := cap - 64
	span := m.Data[start : start+128]
	for i := range span {
		span[i] = byte(i)
	}

	for i := uint64(0); i < 64; i++ {
		if got, want := m.Data[start+i], byte(i); got != want {
			t.Fatalf("first half byte %d = %d, want %d", i, got, want)
		}
	}
	for i := uint64(0); i < 64; i++ {
		if got, want := m.Data[i], byte(64+i); got != want {
			t.Fatalf("wrapped byte %d = %d, want %d", i, got, want)
		}
	}
}

func TestNewRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := ringmem.New(3); err == nil {
		t.Fatal("New(3) = nil error, want non-power-of-two rejection")
	}
}
