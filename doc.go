// Package cueue implements a bounded, single-producer/single-consumer byte
// queue for shipping variable-sized messages between two goroutines with
// lock-free, batch-oriented semantics.
//
// The backing storage is a contiguous byte array whose virtual address
// range is mapped twice, back to back, so any span of at most Capacity()
// bytes beginning anywhere inside the first mapping is physically
// contiguous. Producer and Consumer never need wrap-around branching: a
// single copy suffices even for spans that straddle the end of the buffer.
//
//	p, c, err := cueue.New(1 << 20)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	buf := p.BeginWrite()
//	if len(buf) >= len("foo")+len("bar")+len("baz") {
//		p.Write([]byte("foo"))
//		p.Write([]byte("bar"))
//		p.Write([]byte("baz"))
//	}
//	p.EndWrite()
//
//	got := c.BeginRead()
//	fmt.Println(string(got)) // "foobarbaz"
//	c.EndRead()
//
// Producer and Consumer are not safe for concurrent use by more than one
// goroutine each, and must not be copied after their first use; pass
// pointers, never values.
package cueue
