package dataio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datakit/collection"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", JSON, false},
		{"YAML", YAML, false},
		{"yml", YAML, false},
		{"toml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, YAML, FormatOf("data/tree.yml"))
	assert.Equal(t, YAML, FormatOf("TREE.YAML"))
	assert.Equal(t, JSON, FormatOf("tree.json"))
	assert.Equal(t, JSON, FormatOf(Stdin))
}

func TestParse_YAMLNormalizesKeys(t *testing.T) {
	t.Parallel()

	v, err := Parse([]byte("a:\n  1: one\n  list:\n    - {2: two}\n"), YAML)
	require.NoError(t, err)

	want := map[string]any{
		"a": map[string]any{
			"1":    "one",
			"list": []any{map[string]any{"2": "two"}},
		},
	}
	assert.Equal(t, want, v)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("{"), JSON)
	require.Error(t, err)

	_, err = Parse([]byte("a: [1"), YAML)
	require.Error(t, err)

	_, err = Parse([]byte("{}"), Format("xml"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: 1\n- id: 2\n  parentId: 1\n"), 0o644))

	v, err := LoadFile(path, "", nil)
	require.NoError(t, err)

	records, err := Records(v)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[1]["parentId"])

	v, err = LoadFile(Stdin, JSON, strings.NewReader(`{"a": 1}`))
	require.NoError(t, err)

	obj, err := Object(v)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, obj)

	_, err = LoadFile(filepath.Join(dir, "missing.json"), "", nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRecordsAndObject_Reject(t *testing.T) {
	t.Parallel()

	_, err := Records(map[string]any{})
	require.ErrorIs(t, err, ErrNotRecords)

	_, err = Records([]any{map[string]any{}, "x"})
	require.ErrorIs(t, err, ErrNotRecords)

	_, err = Object([]any{})
	require.ErrorIs(t, err, ErrNotObject)

	records, err := Records([]any{})
	require.NoError(t, err)
	assert.Equal(t, []collection.Record{}, records)
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	v := map[string]any{"name": "<b>", "tags": []any{"x"}}

	out, err := Marshal(v, JSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"<b>\",\n  \"tags\": [\n    \"x\"\n  ]\n}\n", string(out))

	out, err = Marshal(v, YAML)
	require.NoError(t, err)
	assert.Equal(t, "name: <b>\ntags:\n  - x\n", string(out))

	var sb strings.Builder
	require.NoError(t, Write(&sb, []any{1, "a"}, JSON))
	assert.Equal(t, "[\n  1,\n  \"a\"\n]\n", sb.String())
}
