package dataoutput

import "errors"

var (
	// ErrCapacity indicates that the buffer could not grow to hold a write.
	// It is fatal for the encode in progress: the DataOutput latches it and
	// ignores every subsequent write.
	ErrCapacity = errors.New("dataoutput: buffer capacity exceeded")

	// ErrInvalidCursor indicates an AdvanceCursor delta that would move the
	// logical length below zero or past the allocated capacity.
	ErrInvalidCursor = errors.New("dataoutput: cursor moved out of range")

	// ErrUnsupportedType indicates that WriteObject was given a value with no
	// resolvable entry in the serialization registry.
	ErrUnsupportedType = errors.New("dataoutput: unsupported type")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("dataoutput: WriteTo called with a nil io.Writer")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid count from Write.
	ErrInvalidWrite = errors.New("dataoutput: writer returned invalid count from Write")
)
