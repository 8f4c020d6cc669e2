// Package source turns loosely-typed payloads into nested dict.Dict values.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/ekisa-team/convdict/dict"
	"go.yaml.in/yaml/v3"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
)

// Format is a document encoding.
type Format string

const (
	// FormatJSON is a JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// Error definitions for the source package.
var (
	ErrUnknownFormat = errors.New("unknown document format")
	ErrNotObject     = errors.New("top level is not an object")
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("source: %q: %w", path, ErrUnknownFormat)
	}
}

// Decode reads a document in the given format.
func Decode(r io.Reader, format Format) (dict.Dict[string], error) {
	switch format {
	case FormatJSON:
		return FromJSON(r)
	case FormatYAML:
		return FromYAML(r)
	default:
		return nil, fmt.Errorf("source: %q: %w", format, ErrUnknownFormat)
	}
}

// FromJSON decodes a JSON object. Numbers decode as float64.
func FromJSON(r io.Reader) (dict.Dict[string], error) {
	var raw any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("source: invalid JSON: %w", err)
	}

	return toDict(raw)
}

// FromYAML decodes a YAML mapping. An empty document yields an empty Dict.
func FromYAML(r io.Reader) (dict.Dict[string], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: failed to read YAML: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("source: invalid YAML: %w", err)
	}

	if raw == nil {
		return dict.New[string](), nil
	}

	return toDict(raw)
}

// FromValues converts query string or form values. Keys with a single value
// map to a string, keys with several to a []any of strings.
func FromValues(values url.Values) dict.Dict[string] {
	return fromMulti(values)
}

// FromMetadata converts gRPC metadata with the same rules as FromValues.
// Keys are lowercase, as gRPC stores them.
func FromMetadata(md metadata.MD) dict.Dict[string] {
	return fromMulti(md)
}

// FromStruct converts a protobuf Struct. A nil Struct yields an empty Dict.
func FromStruct(s *structpb.Struct) dict.Dict[string] {
	if s == nil {
		return dict.New[string]()
	}

	return dict.NestedDict(s.AsMap())
}

func toDict(raw any) (dict.Dict[string], error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("source: %w: got %T", ErrNotObject, raw)
	}

	return dict.NestedDict(m), nil
}

func fromMulti(m map[string][]string) dict.Dict[string] {
	d := make(dict.Dict[string], len(m))
	for k, vs := range m {
		switch len(vs) {
		case 0:
			d[k] = nil
		case 1:
			d[k] = vs[0]
		default:
			list := make([]any, len(vs))
			for i, v := range vs {
				list[i] = v
			}
			d[k] = list
		}
	}

	return d
}
