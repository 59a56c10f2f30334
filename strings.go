package dataoutput

import (
	"iter"
	"math"
	"unicode/utf8"
)

// Text is the source of a string write: a Go (UTF-8) string or a sequence of
// UTF-16 code units. Both produce identical bytes for the same characters.
//
// On the wire a character is one 16-bit unit. Each rune of a Go string is one
// character, truncated to its low 16 bits; a byte that is not valid UTF-8 is
// one character holding that byte.
type Text interface {
	string | []uint16
}

// units yields the 16-bit characters of s.
func units[T Text](s T) iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		switch s := any(s).(type) {
		case string:
			for i := 0; i < len(s); {
				r, w := utf8.DecodeRuneInString(s[i:])
				if r == utf8.RuneError && w == 1 {
					r = rune(s[i])
				}
				if !yield(uint16(r)) {
					return
				}
				i += w
			}
		case []uint16:
			for _, u := range s {
				if !yield(u) {
					return
				}
			}
		}
	}
}

// unitCount returns the number of characters in s.
func unitCount[T Text](s T) int {
	switch s := any(s).(type) {
	case string:
		return utf8.RuneCountInString(s)
	case []uint16:
		return len(s)
	}
	return 0
}

// isASCII reports whether every byte of s is below 0x80.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// utf8Len returns the modified UTF-8 size of a character. U+0000 takes two
// bytes so the encoded form never contains a zero byte.
func utf8Len(u uint16) int {
	switch {
	case u == 0:
		return 2
	case u < 0x80:
		return 1
	case u < 0x800:
		return 2
	default:
		return 3
	}
}

func appendModifiedUTF8(b []byte, u uint16) []byte {
	switch utf8Len(u) {
	case 1:
		return append(b, byte(u))
	case 2:
		return append(b, byte(0xC0|u>>6), byte(0x80|u&0x3F))
	default:
		return append(b, byte(0xE0|u>>12), byte(0x80|(u>>6)&0x3F), byte(0x80|u&0x3F))
	}
}

// EncodedLength returns the number of bytes the modified UTF-8 encoding of s
// takes. It writes nothing.
func EncodedLength[T Text](s T) int {
	if s, ok := any(s).(string); ok && isASCII(s) && !hasZero(s) {
		return len(s)
	}
	n := 0
	for u := range units(s) {
		n += utf8Len(u)
	}
	return n
}

func hasZero(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return true
		}
	}
	return false
}

// utfPrefix measures the longest run of whole characters whose modified
// UTF-8 encoding fits in limit bytes.
func utfPrefix[T Text](s T, limit int) (count, size int) {
	for u := range units(s) {
		l := utf8Len(u)
		if size+l > limit {
			break
		}
		size += l
		count++
	}
	return count, size
}

// isFastPath reports whether every character of s is in 0x01..0x7F, the
// range where one character is one byte in every scheme.
func isFastPath[T Text](s T) bool {
	if s, ok := any(s).(string); ok {
		return isASCII(s) && !hasZero(s)
	}
	for u := range units(s) {
		if u == 0 || u >= 0x80 {
			return false
		}
	}
	return true
}

// appendLow8 appends the low 8 bits of the first n characters of s.
func appendLow8[T Text](b []byte, s T, n int) []byte {
	if str, ok := any(s).(string); ok && isASCII(str) {
		return append(b, str[:n]...)
	}
	i := 0
	for u := range units(s) {
		if i == n {
			break
		}
		b = append(b, byte(u))
		i++
	}
	return b
}

// appendUTF appends the modified UTF-8 encoding of the first n characters of s.
func appendUTF[T Text](b []byte, s T, n int) []byte {
	i := 0
	for u := range units(s) {
		if i == n {
			break
		}
		b = appendModifiedUTF8(b, u)
		i++
	}
	return b
}

func writeASCII[T Text](o *DataOutput, s T) {
	n := min(unitCount(s), math.MaxUint16)
	if o.reserve(2 + n) {
		o.buf.b = Order.AppendUint16(o.buf.b, uint16(n))
		o.buf.b = appendLow8(o.buf.b, s, n)
	}
}

func writeASCIIHuge[T Text](o *DataOutput, s T) {
	n := unitCount(s)
	if !o.checkArrayLen(n) {
		return
	}
	if o.reserve(4 + n) {
		o.buf.b = Order.AppendUint32(o.buf.b, uint32(n))
		o.buf.b = appendLow8(o.buf.b, s, n)
	}
}

func writeUTF[T Text](o *DataOutput, s T) {
	count, size := utfPrefix(s, math.MaxUint16)
	if o.reserve(2 + size) {
		o.buf.b = Order.AppendUint16(o.buf.b, uint16(size))
		o.buf.b = appendUTF(o.buf.b, s, count)
	}
}

func writeFullUTF[T Text](o *DataOutput, s T) {
	size := EncodedLength(s)
	if !o.checkArrayLen(size) {
		return
	}
	var flag byte = 1
	if isFastPath(s) {
		flag = 0
	}
	if o.reserve(5 + size) {
		o.buf.b = Order.AppendUint32(o.buf.b, uint32(size))
		o.buf.b = append(o.buf.b, flag)
		o.buf.b = appendUTF(o.buf.b, s, math.MaxInt)
	}
}

func writeUTFHuge[T Text](o *DataOutput, s T) {
	n := unitCount(s)
	if !o.checkArrayLen(n) {
		return
	}
	if o.reserve(4 + 2*n) {
		o.buf.b = Order.AppendUint32(o.buf.b, uint32(n))
		for u := range units(s) {
			o.buf.b = Order.AppendUint16(o.buf.b, u)
		}
	}
}

// WriteASCII writes a 2-byte character count followed by the low 8 bits of
// each character. At most 65535 characters are written. Bytes of s that are
// not valid UTF-8 are written as they are.
func (o *DataOutput) WriteASCII(s string) { writeASCII(o, s) }

// WriteASCIIHuge writes a 4-byte character count followed by the low 8 bits
// of each character.
func (o *DataOutput) WriteASCIIHuge(s string) { writeASCIIHuge(o, s) }

// WriteUTF writes a 2-byte length followed by the modified UTF-8 encoding of
// s. When the encoding exceeds 65535 bytes, only the whole characters that
// fit are written and the length matches them.
func (o *DataOutput) WriteUTF(s string) { writeUTF(o, s) }

// WriteFullUTF writes a 4-byte length, a flag byte (0 when every character
// is in 0x01..0x7F, 1 otherwise) and the modified UTF-8 encoding of s.
func (o *DataOutput) WriteFullUTF(s string) { writeFullUTF(o, s) }

// WriteUTFHuge writes a 4-byte character count followed by each character as
// a big-endian 16-bit unit. Runes above U+FFFF keep only their low 16 bits.
func (o *DataOutput) WriteUTFHuge(s string) { writeUTFHuge(o, s) }

func (o *DataOutput) WriteASCIIWide(s []uint16)     { writeASCII(o, s) }
func (o *DataOutput) WriteASCIIHugeWide(s []uint16) { writeASCIIHuge(o, s) }
func (o *DataOutput) WriteUTFWide(s []uint16)       { writeUTF(o, s) }
func (o *DataOutput) WriteFullUTFWide(s []uint16)   { writeFullUTF(o, s) }
func (o *DataOutput) WriteUTFHugeWide(s []uint16)   { writeUTFHuge(o, s) }
