package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ekisa-team/convdict/convert"
	"github.com/ekisa-team/convdict/dict"
	"github.com/ekisa-team/convdict/internal/config"
	"github.com/ekisa-team/convdict/internal/query"
	"github.com/ekisa-team/convdict/source"
	"go.yaml.in/yaml/v3"
)

// extractor runs one extraction: load the field file, decode the document,
// resolve the fields and print them.
type extractor struct {
	docPath    string
	fieldsPath string
	schemaPath string
	format     string
	output     string
	registry   *convert.Registry
}

func (e *extractor) run(w io.Writer) error {
	cfg, err := config.LoadAndValidate(e.fieldsPath, e.schemaPath)
	if err != nil {
		return err
	}

	doc, err := e.decode()
	if err != nil {
		return err
	}

	result, err := query.Run(doc, cfg.Fields, e.registry)
	if err != nil {
		return err
	}

	return e.write(w, result)
}

func (e *extractor) decode() (dict.Dict[string], error) {
	format := source.Format(e.format)
	if e.format == "" || e.format == "auto" {
		var err error
		if format, err = source.FormatFromPath(e.docPath); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(e.docPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	return source.Decode(f, format)
}

func (e *extractor) write(w io.Writer, result query.Result) error {
	out := dict.Plain(result.Map())

	switch e.output {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(stringKeys(out)); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", e.output)
	}
}

// stringKeys rewrites map[any]any values, such as YAML mappings with integer
// keys, into map[string]any so that they encode as JSON objects.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = stringKeys(e)
		}
		return m
	case map[string]any:
		for k, e := range t {
			t[k] = stringKeys(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = stringKeys(e)
		}
		return t
	default:
		return v
	}
}
