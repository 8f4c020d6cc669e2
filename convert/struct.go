package convert

import (
	"fmt"
	"reflect"

	"github.com/ekisa-team/convdict/dict"
	"github.com/go-viper/mapstructure/v2"
)

// Struct returns a converter decoding a mapping into a T, usually a struct.
// Input is weakly typed, so "8080" fills an int field. Field names match
// the `json` tag, falling back to a case-insensitive field name match.
func Struct[T any]() dict.Converter[T] {
	return func(v any) (T, error) {
		var out T

		if reflect.ValueOf(v).Kind() != reflect.Map {
			return out, unexpected(v, reflect.TypeFor[T]().String())
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &out,
			TagName:          "json",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		})
		if err != nil {
			return out, fmt.Errorf("convert: failed to create decoder: %w", err)
		}

		if err := decoder.Decode(dict.Plain(v)); err != nil {
			var zero T
			return zero, invalid(v, reflect.TypeFor[T]().String(), err)
		}

		return out, nil
	}
}
