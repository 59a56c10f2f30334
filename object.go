package dataoutput

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// WriteObject writes v through the hook its resolver returns for it. A nil v
// writes the null type identifier.
//
// An unresolvable value returns ErrUnsupportedType without writing. The
// size a Sizer reports is only a growth hint. A hook
// that fails part way leaves what it wrote in the buffer; callers that need
// the write to be atomic should note Len beforehand and roll back with
// AdvanceCursor.
func (o *DataOutput) WriteObject(v any) error {
	if o.err != nil {
		return o.err
	}
	hook, err := o.resolver.Resolve(v)
	if err != nil {
		o.logger.Debug("no write hook", zap.String("type", fmt.Sprintf("%T", v)), zap.Error(err))
		return err
	}
	if hook == nil {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	if s, ok := v.(Sizer); ok && !isNil(v) {
		o.grow(s.Size())
	}
	if err := hook(o, v); err != nil {
		return err
	}
	return o.err
}

// grow pre-sizes the buffer for a write of about n bytes. The hint never
// fails the write: a negative hint is ignored and one past the capacity limit
// leaves growth to the writes themselves.
func (o *DataOutput) grow(n int) {
	if n <= 0 || n > o.buf.max-o.buf.Len() {
		return
	}
	o.reserve(n)
}

// WriteNativeString writes s as a string object: a type identifier and the
// narrowest encoding that holds it. Short ASCII text is written with
// TypeASCIIString and WriteASCII.
func (o *DataOutput) WriteNativeString(s string) {
	writeStringObject(o, s)
}

func writeStringObject[T Text](o *DataOutput, s T) {
	n := unitCount(s)
	switch {
	case isSingleByte(s) && n <= math.MaxUint16:
		o.WriteTypeID(TypeASCIIString)
		writeASCII(o, s)
	case isSingleByte(s):
		o.WriteTypeID(TypeASCIIHuge)
		writeASCIIHuge(o, s)
	case EncodedLength(s) <= math.MaxUint16:
		o.WriteTypeID(TypeString)
		writeUTF(o, s)
	default:
		o.WriteTypeID(TypeStringHuge)
		writeUTFHuge(o, s)
	}
}

// isSingleByte reports whether every character of s is below 0x80, so the
// ASCII schemes carry it without loss.
func isSingleByte[T Text](s T) bool {
	if s, ok := any(s).(string); ok {
		return isASCII(s)
	}
	for u := range units(s) {
		if u >= 0x80 {
			return false
		}
	}
	return true
}

func writeNull(out *DataOutput, _ any) error {
	out.WriteTypeID(TypeNull)
	return out.err
}

func writeSerializable(out *DataOutput, v any) error {
	return v.(Serializable).ToData(out)
}

// registerBuiltins installs the hooks for the Go types with a fixed wire form.
func registerBuiltins(r *Registry) {
	Register(r, func(out *DataOutput, v string) error {
		writeStringObject(out, v)
		return out.err
	})
	Register(r, func(out *DataOutput, v []uint16) error {
		writeStringObject(out, v)
		return out.err
	})
	Register(r, func(out *DataOutput, v bool) error {
		out.WriteTypeID(TypeBoolean)
		out.WriteBool(v)
		return out.err
	})
	Register(r, func(out *DataOutput, v int8) error {
		out.WriteTypeID(TypeByte)
		out.WriteInt8(v)
		return out.err
	})
	Register(r, func(out *DataOutput, v uint8) error {
		out.WriteTypeID(TypeByte)
		out.WriteUint8(v)
		return out.err
	})
	Register(r, func(out *DataOutput, v uint16) error {
		out.WriteTypeID(TypeCharacter)
		out.WriteChar(v)
		return out.err
	})
	Register(r, func(out *DataOutput, v int16) error {
		out.WriteTypeID(TypeInt16)
		out.WriteInt16(v)
		return out.err
	})
	Register(r, func(out *DataOutput, v int32) error {
		out.WriteTypeID(TypeInt32)
		out.WriteInt32(v)
		return out.err
	})
	Register(r, func(out *DataOutput, v int64) error {
		out.WriteTypeID(TypeInt64)
		out.WriteInt64(v)
		return out.err
	})
	Register(r, func(out *DataOutput, v int) error {
		out.WriteTypeID(TypeInt64)
		out.WriteInt64(int64(v))
		return out.err
	})
	Register(r, func(out *DataOutput, v float32) error {
		out.WriteTypeID(TypeFloat)
		out.WriteFloat32(v)
		return out.err
	})
	Register(r, func(out *DataOutput, v float64) error {
		out.WriteTypeID(TypeDouble)
		out.WriteFloat64(v)
		return out.err
	})
	Register(r, func(out *DataOutput, v time.Time) error {
		out.WriteTypeID(TypeDate)
		out.WriteInt64(v.UnixMilli())
		return out.err
	})
	Register(r, func(out *DataOutput, v []byte) error {
		out.WriteTypeID(TypeBytes)
		out.WriteBytes(v)
		return out.err
	})
	Register(r, func(out *DataOutput, v []int16) error {
		out.WriteTypeID(TypeInt16Array)
		WriteArray(out, v, out.WriteInt16)
		return out.err
	})
	Register(r, func(out *DataOutput, v []int32) error {
		out.WriteTypeID(TypeInt32Array)
		WriteArray(out, v, out.WriteInt32)
		return out.err
	})
	Register(r, func(out *DataOutput, v []int64) error {
		out.WriteTypeID(TypeInt64Array)
		WriteArray(out, v, out.WriteInt64)
		return out.err
	})
	Register(r, func(out *DataOutput, v []float32) error {
		out.WriteTypeID(TypeFloatArray)
		WriteArray(out, v, out.WriteFloat32)
		return out.err
	})
	Register(r, func(out *DataOutput, v []float64) error {
		out.WriteTypeID(TypeDoubleArray)
		WriteArray(out, v, out.WriteFloat64)
		return out.err
	})
}
