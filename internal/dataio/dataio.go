package dataio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"datakit/collection"
)

// Format names a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrNotRecords    = errors.New("document is not a list of objects")
	ErrNotObject     = errors.New("document is not an object")
)

// ParseFormat accepts "json", "yaml" and "yml", case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
}

// FormatOf guesses the format from a file extension; anything that is not
// .yaml or .yml is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// LoadFile reads and decodes the document at path, or from stdin when path
// is "-". An empty format is guessed from the extension.
func LoadFile(path string, format Format, stdin io.Reader) (any, error) {
	var (
		data []byte
		err  error
	)

	if path == Stdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if format == "" {
		format = FormatOf(path)
	}

	v, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (any, error) {
	var v any

	switch format {
	case JSON:
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}

		v = normalize(v)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	return v, nil
}

// Marshal encodes v; JSON is indented by two spaces.
func Marshal(v any, format Format) ([]byte, error) {
	switch format {
	case JSON:
		var buf bytes.Buffer

		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}

		return buf.Bytes(), nil
	case YAML:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// Write encodes v to w.
func Write(w io.Writer, v any, format Format) error {
	data, err := Marshal(v, format)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// Object asserts that a decoded document is a single object.
func Object(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, v)
	}

	return m, nil
}

// Records asserts that a decoded document is a list of objects.
func Records(v any) ([]collection.Record, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotRecords, v)
	}

	out := make([]collection.Record, len(list))

	for i, item := range list {
		r, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is %T", ErrNotRecords, i, item)
		}

		out[i] = r
	}

	return out, nil
}

// normalize rewrites the map[any]any nodes yaml.v3 produces for non-string
// keys into map[string]any.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}

		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}

		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}

		return t
	default:
		return v
	}
}
