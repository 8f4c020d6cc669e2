package config

import (
	"fmt"
	"strings"

	"github.com/ekisa-team/convdict/dict"
	"go.yaml.in/yaml/v3"
)

// Config is a field file: the typed fields to extract from a document.
type Config struct {
	Version string  `json:"version" yaml:"version"`
	Fields  []Field `json:"fields"  yaml:"fields"`
}

// Field describes one value to extract.
type Field struct {
	// Name is the output key. Defaults to Path.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Path is a dotted path; numeric segments index sequences.
	Path string `json:"path" yaml:"path"`

	// Type names a converter from convert.Registry. Empty means no conversion.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Default is kept as a node so that an explicit null stays apart from absence.
	Default yaml.Node `json:"-" yaml:"default,omitempty"`

	// Required is nil when unset, which matters for pop fields.
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Pop removes the value from the document once resolved.
	Pop bool `json:"pop,omitempty" yaml:"pop,omitempty"`
}

// Key returns the output key of the field.
func (f Field) Key() string {
	if f.Name != "" {
		return f.Name
	}

	return f.Path
}

// Segments splits Path on dots.
func (f Field) Segments() []string {
	return strings.Split(f.Path, ".")
}

// DefaultArg decodes Default into a dict argument.
func (f Field) DefaultArg() (dict.Arg[any], error) {
	if f.Default.Kind == 0 {
		return dict.Unset[any](), nil
	}

	if f.Default.Kind == yaml.ScalarNode && f.Default.ShortTag() == "!!null" {
		return dict.Null[any](), nil
	}

	var v any
	if err := f.Default.Decode(&v); err != nil {
		return dict.Unset[any](), fmt.Errorf("config: field %q: invalid default: %w", f.Key(), err)
	}

	// Mappings and sequences take the same shape as document values so that
	// a stored value equal to the default is recognized.
	if nested, err := dict.NestedConvert(v); err == nil {
		v = nested
	}

	return dict.Value(v), nil
}
