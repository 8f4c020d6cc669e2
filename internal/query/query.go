// Package query extracts the fields of a field file from a document.
package query

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ekisa-team/convdict/convert"
	"github.com/ekisa-team/convdict/dict"
	"github.com/ekisa-team/convdict/internal/config"
)

// Error definitions for the query package.
var (
	ErrUnknownType = errors.New("unknown converter type")
	ErrNotMapping  = errors.New("path does not lead to a mapping")
)

// Value is one extracted field.
type Value struct {
	Name  string
	Value any
}

// Result holds extracted fields in field file order.
type Result []Value

// Map returns the result keyed by field name.
func (r Result) Map() map[string]any {
	m := make(map[string]any, len(r))
	for _, v := range r {
		m[v.Name] = v.Value
	}

	return m
}

// Run extracts fields from doc. Pop fields remove their value from doc, so
// later fields see the removal. The first failing field aborts the run.
func Run(doc dict.Dict[string], fields []config.Field, reg *convert.Registry) (Result, error) {
	result := make(Result, 0, len(fields))

	for _, field := range fields {
		v, err := extract(doc, field, reg)
		if err != nil {
			return nil, fmt.Errorf("query: field %q: %w", field.Key(), err)
		}

		slog.Debug("Field resolved", "field", field.Key(), "path", field.Path, "pop", field.Pop)
		result = append(result, Value{Name: field.Key(), Value: v})
	}

	return result, nil
}

func extract(doc dict.Dict[string], field config.Field, reg *convert.Registry) (any, error) {
	opts, err := options(field, reg)
	if err != nil {
		return nil, err
	}

	segments := field.Segments()
	parent, err := walk(doc, segments[:len(segments)-1])
	if err != nil {
		return nil, err
	}

	key := segments[len(segments)-1]
	switch p := parent.(type) {
	case dict.Dict[string]:
		return access(p, key, field.Pop, opts)
	case dict.Dict[any]:
		return access(p, mapKey(p, key), field.Pop, opts)
	default:
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotMapping, joinPath(segments[:len(segments)-1]), parent)
	}
}

func access[K comparable](d dict.Dict[K], key K, pop bool, opts []dict.Option[any]) (any, error) {
	if pop {
		return d.Pop(key, opts...)
	}

	return d.Get(key, opts...)
}

func options(field config.Field, reg *convert.Registry) ([]dict.Option[any], error) {
	var opts []dict.Option[any]

	def, err := field.DefaultArg()
	if err != nil {
		return nil, err
	}

	switch def.State() {
	case dict.ArgNull:
		opts = append(opts, dict.WithNullDefault[any]())
	case dict.ArgValue:
		v, _ := def.Get()
		opts = append(opts, dict.WithDefault(v))
	}

	if field.Type != "" {
		c, ok := reg.Get(field.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, field.Type)
		}
		opts = append(opts, dict.WithType(c))
	}

	if field.Required != nil {
		opts = append(opts, dict.Required[any](*field.Required))
	}

	return opts, nil
}

// walk follows segments from doc to the mapping holding the final key, which
// is either a dict.Dict[string] or a dict.Dict[any].
// A missing intermediate key yields an empty mapping, so the field's own
// default and required rules decide the outcome.
func walk(doc dict.Dict[string], segments []string) (any, error) {
	var cur any = doc

	for i, seg := range segments {
		var (
			next any
			ok   bool
		)

		switch c := cur.(type) {
		case dict.Dict[string]:
			next, ok = c[seg]
		case dict.Dict[any]:
			next, ok = c[mapKey(c, seg)]
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is a sequence, %q is not an index", ErrNotMapping, joinPath(segments[:i]), seg)
			}
			if idx >= 0 && idx < len(c) {
				next, ok = c[idx], true
			}
		default:
			return nil, fmt.Errorf("%w: %q holds %T", ErrNotMapping, joinPath(segments[:i]), cur)
		}

		if !ok || next == nil {
			return dict.New[string](), nil
		}
		cur = next
	}

	switch cur.(type) {
	case dict.Dict[string], dict.Dict[any]:
		return cur, nil
	default:
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotMapping, joinPath(segments), cur)
	}
}

// mapKey returns the key of d written as seg in a path, such as the int 404
// for "404". An exact string key wins; seg itself is returned when nothing
// matches.
func mapKey(d dict.Dict[any], seg string) any {
	if _, ok := d[seg]; ok {
		return seg
	}

	for k := range d {
		if fmt.Sprint(k) == seg {
			return k
		}
	}

	return seg
}

func joinPath(segments []string) string {
	if len(segments) == 0 {
		return "."
	}

	path := segments[0]
	for _, s := range segments[1:] {
		path += "." + s
	}

	return path
}
