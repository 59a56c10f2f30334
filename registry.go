package dataoutput

import (
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// Registry maps the dynamic type of a value to the hook that encodes it.
// Registration and resolution are safe from many goroutines.
type Registry struct {
	hooks *xsync.Map[reflect.Type, WriteHook]
}

var _ Resolver = (*Registry)(nil)

// DefaultRegistry holds the built-in hooks. It is used by DataOutputs created
// without a resolver.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a Registry with the built-in hooks registered.
func NewRegistry() *Registry {
	r := &Registry{hooks: xsync.NewMap[reflect.Type, WriteHook]()}
	registerBuiltins(r)
	return r
}

// Register installs hook for values whose dynamic type is t, replacing any
// previous hook for t.
func (r *Registry) Register(t reflect.Type, hook WriteHook) {
	r.hooks.Store(t, hook)
}

// Register installs a typed hook for T in r.
func Register[T any](r *Registry, hook func(out *DataOutput, v T) error) {
	r.Register(reflect.TypeFor[T](), func(out *DataOutput, v any) error {
		return hook(out, v.(T))
	})
}

// Resolve returns the hook for v. Nil values and nil pointers resolve to the
// null hook; a value with no registered hook resolves to its ToData when it is
// Serializable.
func (r *Registry) Resolve(v any) (WriteHook, error) {
	if isNil(v) {
		return writeNull, nil
	}
	t := reflect.TypeOf(v)
	if hook, ok := r.hooks.Load(t); ok {
		return hook, nil
	}
	if _, ok := v.(Serializable); ok {
		return writeSerializable, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
