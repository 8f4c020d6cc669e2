package dict

import (
	"fmt"
	"reflect"
)

// NestedConvert rebuilds v with every mapping, at any depth and inside
// sequences too, turned into a Dict. Maps with string keys become Dict[string],
// other maps Dict[any]. Slices and arrays become []any; byte slices and other
// scalars are kept as they are.
//
// v itself must be a mapping or a sequence, anything else fails with
// ErrNotContainer.
func NestedConvert(v any) (any, error) {
	if !isContainer(reflect.ValueOf(v)) {
		return nil, fmt.Errorf("dict: nested convert %T: %w", v, ErrNotContainer)
	}

	return nested(v), nil
}

// NestedDict is NestedConvert for a string-keyed map.
func NestedDict(m map[string]any) Dict[string] {
	d := make(Dict[string], len(m))
	for k, v := range m {
		d[k] = nested(v)
	}

	return d
}

func nested(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return NestedDict(t)
	case Dict[string]:
		return NestedDict(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = nested(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	if !isContainer(rv) {
		return v
	}

	if rv.Kind() == reflect.Map {
		if rv.Type().Key().Kind() == reflect.String {
			d := make(Dict[string], rv.Len())
			for iter := rv.MapRange(); iter.Next(); {
				d[iter.Key().String()] = nested(iter.Value().Interface())
			}
			return d
		}

		d := make(Dict[any], rv.Len())
		for iter := rv.MapRange(); iter.Next(); {
			d[iter.Key().Interface()] = nested(iter.Value().Interface())
		}
		return d
	}

	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = nested(rv.Index(i).Interface())
	}
	return out
}

func isContainer(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Map:
		return true
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

// Plain undoes NestedConvert: every Dict becomes a plain map[string]any or
// map[any]any so encoders and validators that switch on concrete map types
// accept the result.
func Plain(v any) any {
	switch t := v.(type) {
	case Dict[string]:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = Plain(e)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = Plain(e)
		}
		return m
	case Dict[any]:
		m := make(map[any]any, len(t))
		for k, e := range t {
			m[k] = Plain(e)
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Plain(e)
		}
		return out
	default:
		return v
	}
}
