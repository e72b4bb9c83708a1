package buffer

import "fmt"

// Buffer is an owned contiguous byte region with Len() <= Cap().
// The zero value is an empty buffer with no capacity.
type Buffer struct {
	// data is always length Cap(); n tracks the valid prefix.
	data []byte
	n    int
}

// New allocates a buffer with the given capacity and length 0.
// Negative capacities are treated as 0.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]byte, capacity)}
}

// FromBytes wraps an existing slice as a full buffer: both length and
// capacity equal len(b). The buffer takes ownership of the slice.
func FromBytes(b []byte) *Buffer {
	return &Buffer{data: b, n: len(b)}
}

// Len returns the count of currently valid bytes.
func (b *Buffer) Len() int { return b.n }

// Cap returns the allocated size.
func (b *Buffer) Cap() int { return len(b.data) }

// Bytes returns the valid prefix. The slice aliases the buffer's storage;
// it remains valid as long as the buffer does.
func (b *Buffer) Bytes() []byte { return b.data[:b.n] }

// Storage returns the full allocated region, valid and spare bytes alike.
// It is the write target handed to a foreign call; after the call reports
// how much it wrote, commit that count with SetLen.
func (b *Buffer) Storage() []byte { return b.data }

// SetLen commits n as the count of valid bytes. It fails if n is negative
// or exceeds the capacity, leaving the length unchanged.
func (b *Buffer) SetLen(n int) error {
	if n < 0 || n > len(b.data) {
		return fmt.Errorf("buffer: length %d out of range (capacity %d)", n, len(b.data))
	}
	b.n = n
	return nil
}

// String describes the buffer for diagnostics.
func (b *Buffer) String() string {
	return fmt.Sprintf("buffer(len=%d cap=%d)", b.n, len(b.data))
}
