package dataoutput

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Order is the byte order of every multi-byte value on the wire.
var Order = binary.BigEndian

// Roundup rounds n up to the nearest multiple of align, which must be a power of two.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }
