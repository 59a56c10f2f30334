package dataoutput

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// WriteInt writes v big-endian using the width of T, so int16 and uint16
// produce two bytes, int32 four, and int, uint and the 64-bit types eight.
// The bit pattern is written verbatim.
func WriteInt[T constraints.Integer](o *DataOutput, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		o.WriteUint8(uint8(v))
	case 2:
		o.WriteUint16(uint16(v))
	case 4:
		o.WriteUint32(uint32(v))
	default:
		o.WriteUint64(uint64(v))
	}
}

// WriteArray writes an array-length prefix followed by each element encoded
// with put. A nil slice is written as the null array.
func WriteArray[T any](o *DataOutput, items []T, put func(T)) {
	if items == nil {
		o.WriteArrayLen(NullArrayLen)
		return
	}
	if !o.checkArrayLen(len(items)) {
		return
	}
	o.WriteArrayLen(int32(len(items)))
	for _, v := range items {
		put(v)
	}
}

// checkArrayLen latches ErrCapacity for counts the length prefix cannot carry.
func (o *DataOutput) checkArrayLen(n int) bool {
	if n > math.MaxInt32 {
		o.setError(fmt.Errorf("%w: array of %d elements", ErrCapacity, n))
	}
	return o.err == nil
}
