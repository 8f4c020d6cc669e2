package dict

import (
	"fmt"
	"reflect"
)

// Converter turns a stored value into a T. A returned error marks the value
// as unconvertible and lets the accessor fall back to its default.
type Converter[T any] func(any) (T, error)

// Option configures a single Get or Pop call.
type Option[T any] func(*options[T])

type options[T any] struct {
	def      Arg[T]
	factory  func() T
	conv     Converter[T]
	required Arg[bool]
}

// WithDefault sets the value returned when the key is absent or its value
// cannot be converted. It takes precedence over WithDefaultFactory.
func WithDefault[T any](v T) Option[T] {
	return func(o *options[T]) {
		o.def = Value(v)
	}
}

// WithNullDefault sets an explicit null default. The accessor then returns the
// zero value of T instead of failing, and Pop no longer requires the key.
func WithNullDefault[T any]() Option[T] {
	return func(o *options[T]) {
		o.def = Null[T]()
	}
}

// WithDefaultFactory sets a function producing the default lazily.
// It is called at most once per call and only when the default is needed.
func WithDefaultFactory[T any](f func() T) Option[T] {
	return func(o *options[T]) {
		o.factory = f
	}
}

// WithType sets the conversion applied to the stored value.
func WithType[T any](c Converter[T]) Option[T] {
	return func(o *options[T]) {
		o.conv = c
	}
}

// Required makes absence, null values and failed conversions hard errors.
func Required[T any](required bool) Option[T] {
	return func(o *options[T]) {
		o.required = Value(required)
	}
}

func newOptions[T any](opts []Option[T]) *options[T] {
	o := &options[T]{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// hasFallback reports whether a default or a default factory was passed.
func (o *options[T]) hasFallback() bool {
	return o.def.IsSet() || o.factory != nil
}

// fallback resolves the default: literal default first, then the factory, then null.
func (o *options[T]) fallback() T {
	if o.def.IsSet() {
		v, _ := o.def.Get()
		return v
	}

	if o.factory != nil {
		return o.factory()
	}

	var zero T
	return zero
}

// matchesDefault reports whether stored equals the literal default.
// Factories are never compared.
func (o *options[T]) matchesDefault(stored any) bool {
	switch o.def.State() {
	case ArgNull:
		return stored == nil
	case ArgValue:
		v, _ := o.def.Get()
		return reflect.DeepEqual(stored, any(v))
	default:
		return false
	}
}

// convert applies the converter, or asserts stored to T when there is none.
func (o *options[T]) convert(stored any) (T, error) {
	if o.conv != nil {
		return o.conv(stored)
	}

	var zero T
	if stored == nil {
		return zero, nil
	}

	v, ok := stored.(T)
	if !ok {
		return zero, fmt.Errorf("%w: have %T, want %v", ErrUnexpectedType, stored, reflect.TypeFor[T]())
	}

	return v, nil
}
