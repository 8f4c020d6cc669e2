package dict

// ArgState tells whether an optional argument was passed, and how.
type ArgState uint8

const (
	// ArgUnset means the caller did not pass the argument.
	ArgUnset ArgState = iota
	// ArgNull means the caller explicitly passed null.
	ArgNull
	// ArgValue means the caller passed a concrete value.
	ArgValue
)

// Arg is an optional argument that keeps "not passed" apart from "passed as null".
type Arg[T any] struct {
	state ArgState
	value T
}

// Unset returns an argument that was not passed.
func Unset[T any]() Arg[T] {
	return Arg[T]{}
}

// Null returns an argument explicitly passed as null.
func Null[T any]() Arg[T] {
	return Arg[T]{state: ArgNull}
}

// Value returns an argument carrying v.
func Value[T any](v T) Arg[T] {
	return Arg[T]{state: ArgValue, value: v}
}

// State returns the argument state.
func (a Arg[T]) State() ArgState {
	return a.state
}

// IsSet reports whether the argument was passed at all, null included.
func (a Arg[T]) IsSet() bool {
	return a.state != ArgUnset
}

// Get returns the value and whether the argument carries one.
// A null or unset argument yields the zero value.
func (a Arg[T]) Get() (T, bool) {
	return a.value, a.state == ArgValue
}
