// Package dict provides Dict, a map whose accessors convert loosely-typed
// values on the way out.
//
// Values parsed from query strings, JSON or form submissions arrive as strings,
// float64s or nil. Get and Pop turn them into typed values at the point of
// access and fall back to a default, a default factory or the zero value when
// the key is absent or the value does not convert:
//
//	d := dict.From(map[string]any{"foo": "42", "bar": "blub"})
//	n, _ := dict.Get(d, "foo", dict.WithType(convert.Int))                        // 42
//	m, _ := dict.Get(d, "bar", dict.WithDefault(-1), dict.WithType(convert.Int))  // -1
//
// Precedence, highest first:
//  1. Absent key: ErrNotFound when required, else default, else factory, else zero.
//  2. Null value without default or factory: ErrRequiredNull when required, else zero.
//  3. Value equal to the literal default: returned as is, the converter is not called.
//  4. Conversion failure: *ConversionError when required, else default, else factory, else zero.
//
// A Dict is not safe for concurrent use.
package dict

import "maps"

// Dict is a map with typed, defaulting accessors.
type Dict[K comparable] map[K]any

// New creates an empty Dict.
func New[K comparable]() Dict[K] {
	return make(Dict[K])
}

// From copies m into a new Dict.
func From[K comparable, V any](m map[K]V) Dict[K] {
	d := make(Dict[K], len(m))
	for k, v := range m {
		d[k] = v
	}

	return d
}

// Has reports whether key is present, even with a nil value.
func (d Dict[K]) Has(key K) bool {
	_, ok := d[key]
	return ok
}

// Set stores v under key.
func (d Dict[K]) Set(key K, v any) {
	d[key] = v
}

// Delete removes key. Deleting a missing key is a no-op.
func (d Dict[K]) Delete(key K) {
	delete(d, key)
}

// Len returns the number of entries.
func (d Dict[K]) Len() int {
	return len(d)
}

// Keys returns the keys in unspecified order.
func (d Dict[K]) Keys() []K {
	keys := make([]K, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}

	return keys
}

// Clone returns a shallow copy.
func (d Dict[K]) Clone() Dict[K] {
	return maps.Clone(d)
}

// Get is the untyped form of the package-level Get.
func (d Dict[K]) Get(key K, opts ...Option[any]) (any, error) {
	return Get(d, key, opts...)
}

// Pop is the untyped form of the package-level Pop.
func (d Dict[K]) Pop(key K, opts ...Option[any]) (any, error) {
	return Pop(d, key, opts...)
}

// Get returns the value stored under key converted to T.
// Without Required, lookups never fail: they fall back as described in the
// package documentation. Get never modifies d.
func Get[T any, K comparable](d Dict[K], key K, opts ...Option[T]) (T, error) {
	o := newOptions(opts)
	required, _ := o.required.Get()

	v, _, err := resolve(d, key, o, required)
	return v, err
}

// Pop is like Get but removes key once its value has been resolved.
//
// Unless Required is passed, a missing key is an error when neither a default
// nor a factory was given. A value that fails conversion stays in d.
func Pop[T any, K comparable](d Dict[K], key K, opts ...Option[T]) (T, error) {
	o := newOptions(opts)
	required := !o.hasFallback()
	if r, ok := o.required.Get(); ok {
		required = r
	}

	v, consumed, err := resolve(d, key, o, required)
	if err != nil {
		return v, err
	}

	if consumed {
		// A key removed in the meantime makes this a no-op.
		delete(d, key)
	}

	return v, nil
}

// resolve runs the lookup policy shared by Get and Pop. consumed is true when
// the result came from the stored value, which makes it safe to remove.
func resolve[T any, K comparable](d Dict[K], key K, o *options[T], required bool) (v T, consumed bool, err error) {
	stored, ok := d[key]
	if !ok {
		if required {
			return v, false, &KeyError{Key: key, Err: ErrNotFound}
		}
		return o.fallback(), false, nil
	}

	if stored == nil && !o.hasFallback() {
		if required {
			return v, false, &KeyError{Key: key, Err: ErrRequiredNull}
		}
		return v, true, nil
	}

	if o.matchesDefault(stored) {
		return o.fallback(), true, nil
	}

	converted, err := o.convert(stored)
	if err != nil {
		if required {
			return v, false, &ConversionError{Key: key, Err: err}
		}
		return o.fallback(), false, nil
	}

	return converted, true, nil
}
