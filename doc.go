// Package dataoutput encodes values into the binary wire format read by the
// remote cache server.
//
// Every multi-byte value is big-endian and every layout is fixed by the peer:
//
//	bool              1 byte, 0x01 or 0x00
//	int16/32/64       2/4/8 bytes, bit pattern verbatim
//	float32/float64   IEEE-754 bits, 4/8 bytes
//	array length      0..252 as one byte; 0xFD + uint16; 0xFE + int32; 0xFF for null
//	ASCII             uint16 count, one byte per character
//	ASCII huge        uint32 count, one byte per character
//	UTF               uint16 byte length, modified UTF-8
//	full UTF          uint32 byte length, flag byte, modified UTF-8
//	UTF huge          uint32 count, one big-endian 16-bit unit per character
//
// Objects are written through a Resolver, usually a Registry, which maps the
// dynamic type of a value to a WriteHook:
//
//	out := dataoutput.NewDataOutput(nil)
//	out.WriteInt32(55)
//	if err := out.WriteObject("You had me at meat tornado."); err != nil {
//		return err
//	}
//	data, err := out.Result()
//
// A DataOutput latches the first error; writes after it are no-ops. Slices
// returned by Bytes are invalidated by the next write.
package dataoutput
