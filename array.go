package dataoutput

import (
	"math"
	"unsafe"
)

// Array length markers. Counts up to MaxInlineArrayLen are a single byte;
// larger counts follow a marker byte.
const (
	MaxInlineArrayLen = 252
	arrayLen16        = 253 // followed by a big-endian uint16
	arrayLen32        = 254 // followed by a big-endian int32
	arrayLenNull      = 255

	// NullArrayLen is the count that encodes an absent array.
	NullArrayLen int32 = -1
)

// WriteArrayLen writes n in the compact array-length form. NullArrayLen
// writes the null marker. The comparison is signed, so other negative counts
// fall into the single-byte form and only their low 8 bits are written.
func (o *DataOutput) WriteArrayLen(n int32) {
	switch {
	case n == NullArrayLen:
		o.WriteUint8(arrayLenNull)
	case n <= MaxInlineArrayLen:
		o.WriteUint8(uint8(n))
	case n <= math.MaxUint16:
		if o.reserve(3) {
			o.WriteUint8(arrayLen16)
			o.WriteUint16(uint16(n))
		}
	default:
		if o.reserve(5) {
			o.WriteUint8(arrayLen32)
			o.WriteInt32(n)
		}
	}
}

// WriteBytes writes the array length of p followed by its bytes. A nil slice
// is written as the null array.
func (o *DataOutput) WriteBytes(p []byte) {
	if p == nil {
		o.WriteArrayLen(NullArrayLen)
		return
	}
	if !o.checkArrayLen(len(p)) {
		return
	}
	o.WriteArrayLen(int32(len(p)))
	o.WriteBytesOnly(p)
}

// WriteBytesOnly writes the bytes of p with no length prefix.
func (o *DataOutput) WriteBytesOnly(p []byte) {
	_, _ = o.Write(p)
}

// WriteSignedBytes is WriteBytes for signed bytes. The bit patterns are
// written unchanged.
func (o *DataOutput) WriteSignedBytes(p []int8) { o.WriteBytes(signedAsBytes(p)) }

// WriteSignedBytesOnly is WriteBytesOnly for signed bytes.
func (o *DataOutput) WriteSignedBytesOnly(p []int8) { o.WriteBytesOnly(signedAsBytes(p)) }

func signedAsBytes(p []int8) []byte {
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(p))), len(p))
}
