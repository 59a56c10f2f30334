package dataoutput

import "strconv"

// TypeID is the one-byte type identifier that precedes a value written by
// WriteObject. The values are fixed by the remote peer.
type TypeID int8

const (
	TypeNull        TypeID = 41
	TypeString      TypeID = 42 // modified UTF-8, 2-byte length
	TypeBytes       TypeID = 46
	TypeInt16Array  TypeID = 47
	TypeInt32Array  TypeID = 48
	TypeInt64Array  TypeID = 49
	TypeFloatArray  TypeID = 50
	TypeDoubleArray TypeID = 51
	TypeBoolean     TypeID = 53
	TypeCharacter   TypeID = 54
	TypeByte        TypeID = 55
	TypeInt16       TypeID = 56
	TypeInt32       TypeID = 57
	TypeInt64       TypeID = 58
	TypeFloat       TypeID = 59
	TypeDouble      TypeID = 60
	TypeDate        TypeID = 61
	TypeASCIIString TypeID = 87
	TypeASCIIHuge   TypeID = 88
	TypeStringHuge  TypeID = 89 // UTF-16, 4-byte length
)

// String returns the human-readable name of the type identifier.
func (t TypeID) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeBytes:
		return "bytes"
	case TypeInt16Array:
		return "int16[]"
	case TypeInt32Array:
		return "int32[]"
	case TypeInt64Array:
		return "int64[]"
	case TypeFloatArray:
		return "float[]"
	case TypeDoubleArray:
		return "double[]"
	case TypeBoolean:
		return "boolean"
	case TypeCharacter:
		return "char"
	case TypeByte:
		return "byte"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeDate:
		return "date"
	case TypeASCIIString:
		return "ascii_string"
	case TypeASCIIHuge:
		return "ascii_string_huge"
	case TypeStringHuge:
		return "string_huge"
	default:
		return "type(" + strconv.Itoa(int(t)) + ")"
	}
}

// WriteTypeID writes a type identifier byte.
func (o *DataOutput) WriteTypeID(t TypeID) { o.WriteInt8(int8(t)) }
