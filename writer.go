package dataoutput

import (
	"io"
	"math"

	"go.uber.org/zap"
)

// DataOutput encodes values into an in-memory Buffer using the cache wire
// format. It tracks the first error that occurs; after an error, all
// subsequent write operations become no-ops.
//
// A DataOutput is not safe for concurrent use.
type DataOutput struct {
	buf      *Buffer
	err      error // first error encountered. Subsequent writes become no-ops.
	resolver Resolver
	logger   *zap.Logger
}

var (
	_ io.Writer       = (*DataOutput)(nil)
	_ io.ByteWriter   = (*DataOutput)(nil)
	_ io.StringWriter = (*DataOutput)(nil)
	_ io.WriterTo     = (*DataOutput)(nil)
)

// NewDataOutputSize creates a DataOutput whose buffer starts with the given
// capacity. A nil resolver selects DefaultRegistry.
func NewDataOutputSize(resolver Resolver, size int) *DataOutput {
	if resolver == nil {
		resolver = DefaultRegistry
	}
	return &DataOutput{
		buf:      NewBuffer(size),
		resolver: resolver,
		logger:   zap.NewNop(),
	}
}

// NewDataOutput creates a DataOutput with a default buffer size.
func NewDataOutput(resolver Resolver) *DataOutput {
	return NewDataOutputSize(resolver, DefaultSize)
}

// WithLogger sets the logger used for buffer growth and dispatch events and
// returns the DataOutput for chaining.
func (o *DataOutput) WithLogger(logger *zap.Logger) *DataOutput {
	if logger == nil {
		logger = zap.NewNop()
	}
	o.logger = logger.With(zap.String("component", "dataoutput"))
	return o
}

// WithMaxCapacity bounds buffer growth and returns the DataOutput for chaining.
func (o *DataOutput) WithMaxCapacity(n int) *DataOutput {
	o.buf.SetMaxCapacity(n)
	return o
}

func (o *DataOutput) Len() int        { return o.buf.Len() }
func (o *DataOutput) Err() error      { return o.err }
func (o *DataOutput) Buffer() *Buffer { return o.buf }

// Bytes returns a view of the encoded output, valid until the next write.
func (o *DataOutput) Bytes() []byte { return o.buf.Bytes() }

// Result returns the encoded output and the latched error.
func (o *DataOutput) Result() ([]byte, error) {
	return o.buf.Bytes(), o.err
}

// Reset discards the output and any latched error so the DataOutput can start
// a new, independent encoding.
func (o *DataOutput) Reset() {
	o.buf.Reset()
	o.err = nil
}

// setError records the first non-nil error.
func (o *DataOutput) setError(err error) {
	if o.err == nil && err != nil {
		o.err = err
	}
}

// reserve makes room for n bytes, latching a capacity failure.
func (o *DataOutput) reserve(n int) bool {
	if o.err != nil {
		return false
	}
	before := o.buf.Cap()
	if err := o.buf.EnsureCapacity(n); err != nil {
		o.logger.Debug("buffer growth failed",
			zap.Int("length", o.buf.Len()),
			zap.Int("need", n),
			zap.Error(err))
		o.setError(err)
		return false
	}
	if after := o.buf.Cap(); after != before {
		o.logger.Debug("buffer grown", zap.Int("from", before), zap.Int("to", after))
	}
	return true
}

// AdvanceCursor moves the logical length by delta without writing, to reserve
// room for a field patched later or to roll back a speculative write. A
// rejected move returns ErrInvalidCursor and leaves the output unchanged.
func (o *DataOutput) AdvanceCursor(delta int) error {
	if o.err != nil {
		return o.err
	}
	return o.buf.AdvanceCursor(delta)
}

// Write implements the io.Writer interface.
func (o *DataOutput) Write(p []byte) (int, error) {
	if !o.reserve(len(p)) {
		return 0, o.err
	}
	o.buf.b = append(o.buf.b, p...)
	return len(p), nil
}

// WriteString implements the io.StringWriter interface. It writes the raw
// bytes of s with no length prefix.
func (o *DataOutput) WriteString(s string) (int, error) {
	if !o.reserve(len(s)) {
		return 0, o.err
	}
	o.buf.b = append(o.buf.b, s...)
	return len(s), nil
}

// WriteByte implements the io.ByteWriter interface.
func (o *DataOutput) WriteByte(c byte) error {
	if o.reserve(1) {
		o.buf.b = append(o.buf.b, c)
	}
	return o.err
}

// WriteTo hands the encoded output to a transport writer. The output is not
// consumed; a DataOutput that has latched an error writes nothing.
func (o *DataOutput) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrWriteToNil
	}
	if o.err != nil {
		return 0, o.err
	}
	data := o.buf.Bytes()
	n, err := w.Write(data)
	if n < 0 || n > len(data) {
		return 0, ErrInvalidWrite
	}
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// --- Primitive Write Operations ---

func (o *DataOutput) WriteBool(v bool) {
	if v {
		o.WriteUint8(1)
	} else {
		o.WriteUint8(0)
	}
}

func (o *DataOutput) WriteUint8(v uint8) {
	if o.reserve(1) {
		o.buf.b = append(o.buf.b, v)
	}
}

func (o *DataOutput) WriteInt8(v int8) { o.WriteUint8(uint8(v)) }

func (o *DataOutput) WriteUint16(v uint16) {
	if o.reserve(2) {
		o.buf.b = Order.AppendUint16(o.buf.b, v)
	}
}

func (o *DataOutput) WriteUint32(v uint32) {
	if o.reserve(4) {
		o.buf.b = Order.AppendUint32(o.buf.b, v)
	}
}

func (o *DataOutput) WriteUint64(v uint64) {
	if o.reserve(8) {
		o.buf.b = Order.AppendUint64(o.buf.b, v)
	}
}

func (o *DataOutput) WriteInt16(v int16) { o.WriteUint16(uint16(v)) }
func (o *DataOutput) WriteInt32(v int32) { o.WriteUint32(uint32(v)) }
func (o *DataOutput) WriteInt64(v int64) { o.WriteUint64(uint64(v)) }

// WriteChar writes a UTF-16 code unit. The layout is that of WriteUint16.
func (o *DataOutput) WriteChar(v uint16) { o.WriteUint16(v) }

// WriteFloat32 writes the IEEE-754 single-precision bits of v.
func (o *DataOutput) WriteFloat32(v float32) { o.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 writes the IEEE-754 double-precision bits of v.
func (o *DataOutput) WriteFloat64(v float64) { o.WriteUint64(math.Float64bits(v)) }
