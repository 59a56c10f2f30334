package dataoutput

import (
	"fmt"
	"math"
)

const (
	// DefaultSize is the initial capacity of a Buffer created without an explicit size.
	DefaultSize = 256

	// MaxCapacity bounds every Buffer: wire lengths are 32-bit signed.
	MaxCapacity = math.MaxInt32

	// growAlign is the granularity grown capacities are rounded up to.
	growAlign = 64
)

// Buffer is an owned, growable byte arena. len(b) is the logical length of
// the encoded output and cap(b) the allocated capacity, so the invariant
// 0 <= length <= capacity holds by construction.
//
// Growth relocates storage. Slices returned by Bytes are only valid until the
// next mutating call; callers that need a position across writes must keep an
// offset (Len) instead of a slice.
type Buffer struct {
	b   []byte
	max int
}

// NewBuffer creates a Buffer with the given initial capacity.
func NewBuffer(size int) *Buffer {
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxCapacity {
		size = MaxCapacity
	}
	return &Buffer{b: make([]byte, 0, size), max: MaxCapacity}
}

// SetMaxCapacity lowers the limit growth may reach. Values outside
// (0, MaxCapacity] restore the default.
func (b *Buffer) SetMaxCapacity(n int) {
	if n <= 0 || n > MaxCapacity {
		n = MaxCapacity
	}
	b.max = n
}

// EnsureCapacity makes room for n more bytes past the logical length.
// Capacity at least doubles when it grows, and the existing bytes are copied
// into the new storage.
func (b *Buffer) EnsureCapacity(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative reservation %d", ErrCapacity, n)
	}
	if n <= cap(b.b)-len(b.b) {
		return nil
	}
	if n > b.max-len(b.b) {
		return fmt.Errorf("%w: need %d bytes past %d, limit %d", ErrCapacity, n, len(b.b), b.max)
	}
	size := len(b.b) + n
	if c := cap(b.b); c <= b.max/2 && 2*c > size {
		size = 2 * c
	}
	if size <= b.max-growAlign {
		size = Roundup(size, growAlign)
	} else {
		size = b.max
	}
	grown := make([]byte, len(b.b), size)
	copy(grown, b.b)
	b.b = grown
	return nil
}

// WriteByte implements the io.ByteWriter interface.
func (b *Buffer) WriteByte(c byte) error {
	if err := b.EnsureCapacity(1); err != nil {
		return err
	}
	b.b = append(b.b, c)
	return nil
}

// Write implements the io.Writer interface. It either appends all of p or
// nothing.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.EnsureCapacity(len(p)); err != nil {
		return 0, err
	}
	b.b = append(b.b, p...)
	return len(p), nil
}

// WriteString implements the io.StringWriter interface.
func (b *Buffer) WriteString(s string) (int, error) {
	if err := b.EnsureCapacity(len(s)); err != nil {
		return 0, err
	}
	b.b = append(b.b, s...)
	return len(s), nil
}

// AdvanceCursor moves the logical length by delta without writing. A positive
// delta reserves space (for a field patched later), a negative one rolls back.
// Bytes already in storage are kept, so rewinding and advancing again restores
// them. The buffer is left unchanged when the move is rejected.
func (b *Buffer) AdvanceCursor(delta int) error {
	if delta < -len(b.b) || delta > cap(b.b)-len(b.b) {
		return fmt.Errorf("%w: length %d%+d outside [0, %d]", ErrInvalidCursor, len(b.b), delta, cap(b.b))
	}
	b.b = b.b[:len(b.b)+delta]
	return nil
}

// Reset empties the buffer for a new session, keeping its storage.
func (b *Buffer) Reset() {
	clear(b.b[:cap(b.b)])
	b.b = b.b[:0]
}

// Len returns the logical length.
func (b *Buffer) Len() int { return len(b.b) }

// Cap returns the allocated capacity.
func (b *Buffer) Cap() int { return cap(b.b) }

// Available returns the number of bytes that can be written without growing.
func (b *Buffer) Available() int { return cap(b.b) - len(b.b) }

// Bytes returns a view of the written data. The view is capped at the
// logical length so appending to it never touches the buffer.
func (b *Buffer) Bytes() []byte { return b.b[:len(b.b):len(b.b)] }
