package dataoutput

// Sizer is an interface for types that can report their binary size.
// WriteObject uses it to grow the buffer once before encoding.
type Sizer interface {
	// Size returns the size of the type in bytes when binary encoded,
	// including its type identifier.
	Size() int
}

// Serializable is implemented by values that encode themselves, type
// identifier included. The registry resolves any Serializable value that has
// no hook of its own to ToData.
type Serializable interface {
	ToData(out *DataOutput) error
}

// WriteHook encodes v into out. Hooks are looked up by the dynamic type of v,
// so a hook may assert v to the type it was registered for.
type WriteHook func(out *DataOutput, v any) error

// Resolver maps a value to the hook that encodes it. Resolution must not
// write to any DataOutput.
type Resolver interface {
	Resolve(v any) (WriteHook, error)
}
