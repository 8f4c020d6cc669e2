// Package convert provides stock converters for dict.WithType.
//
// Numbers are accepted in any Go numeric kind, integral floats included since
// JSON numbers decode as float64, and as numeric strings.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/ekisa-team/convdict/dict"
)

// Int converts v to an int.
func Int(v any) (int, error) {
	n, err := Int64(v)
	if err != nil {
		return 0, err
	}

	if int64(int(n)) != n {
		return 0, invalid(v, "int", strconv.ErrRange)
	}

	return int(n), nil
}

// Int64 converts v to an int64.
func Int64(v any) (int64, error) {
	switch x := v.(type) {
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, invalid(v, "int64", err)
		}
		return n, nil
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return 0, invalid(v, "int64", err)
		}
		return n, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, invalid(v, "int64", strconv.ErrRange)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, invalid(v, "int64", nil)
		}
		return int64(f), nil
	default:
		return 0, unexpected(v, "int64")
	}
}

// Uint converts v to a uint.
func Uint(v any) (uint, error) {
	if s, ok := v.(string); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
		if err != nil {
			return 0, invalid(v, "uint", err)
		}
		return uint(n), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if uint64(uint(u)) != u {
			return 0, invalid(v, "uint", strconv.ErrRange)
		}
		return uint(u), nil
	}

	n, err := Int64(v)
	if err != nil {
		return 0, err
	}

	if n < 0 || uint64(uint(n)) != uint64(n) {
		return 0, invalid(v, "uint", strconv.ErrRange)
	}

	return uint(n), nil
}

// Float64 converts v to a float64.
func Float64(v any) (float64, error) {
	switch x := v.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, invalid(v, "float64", err)
		}
		return f, nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, invalid(v, "float64", err)
		}
		return f, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	default:
		return 0, unexpected(v, "float64")
	}
}

// Bool converts v to a bool. Strings follow strconv.ParseBool.
func Bool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return false, invalid(v, "bool", err)
		}
		return b, nil
	default:
		return false, unexpected(v, "bool")
	}
}

// String converts v to a string. Numbers and bools are formatted, byte slices
// and fmt.Stringer values are accepted as they are.
func String(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case fmt.Stringer:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	default:
		return "", unexpected(v, "string")
	}
}

// Duration converts v to a time.Duration. Strings use time.ParseDuration,
// numbers are seconds.
func Duration(v any) (time.Duration, error) {
	switch x := v.(type) {
	case time.Duration:
		return x, nil
	case string:
		d, err := time.ParseDuration(strings.TrimSpace(x))
		if err != nil {
			return 0, invalid(v, "duration", err)
		}
		return d, nil
	}

	secs, err := Float64(v)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			return 0, invalid(v, "duration", err)
		}
		return 0, unexpected(v, "duration")
	}

	ns := secs * float64(time.Second)
	if math.IsNaN(ns) || ns < math.MinInt64 || ns >= math.MaxInt64 {
		return 0, invalid(v, "duration", strconv.ErrRange)
	}

	return time.Duration(ns), nil
}

// Time returns a converter parsing strings with layout.
func Time(layout string) dict.Converter[time.Time] {
	return func(v any) (time.Time, error) {
		switch x := v.(type) {
		case time.Time:
			return x, nil
		case string:
			t, err := time.Parse(layout, strings.TrimSpace(x))
			if err != nil {
				return time.Time{}, invalid(v, "time", err)
			}
			return t, nil
		default:
			return time.Time{}, unexpected(v, "time")
		}
	}
}

// From adapts a typed parser such as strconv.Atoi. Values that are not an S
// fail with dict.ErrUnexpectedType.
func From[S, T any](fn func(S) (T, error)) dict.Converter[T] {
	return func(v any) (T, error) {
		s, ok := v.(S)
		if !ok {
			var zero T
			return zero, unexpected(v, reflect.TypeFor[S]().String())
		}

		out, err := fn(s)
		if err != nil {
			var zero T
			return zero, invalid(v, reflect.TypeFor[T]().String(), err)
		}

		return out, nil
	}
}

// Slice converts every element of a sequence with elem.
func Slice[T any](elem dict.Converter[T]) dict.Converter[[]T] {
	return func(v any) ([]T, error) {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, unexpected(v, "slice")
		}

		out := make([]T, rv.Len())
		for i := range rv.Len() {
			e, err := elem(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("convert: element %d: %w", i, err)
			}
			out[i] = e
		}

		return out, nil
	}
}

// OneOf wraps c and rejects results outside allowed.
func OneOf[T comparable](c dict.Converter[T], allowed ...T) dict.Converter[T] {
	return func(v any) (T, error) {
		out, err := c(v)
		if err != nil {
			return out, err
		}

		for _, a := range allowed {
			if out == a {
				return out, nil
			}
		}

		var zero T
		return zero, fmt.Errorf("convert: %w: %v not in %v", ErrInvalid, out, allowed)
	}
}

// Any erases the result type of c, for registries and untyped accessors.
func Any[T any](c dict.Converter[T]) dict.Converter[any] {
	return func(v any) (any, error) {
		out, err := c(v)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}
