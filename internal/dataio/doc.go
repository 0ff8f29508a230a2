// Package dataio reads and writes the JSON and YAML documents the datakit
// command works on. Decoded documents use the shapes encoding/json produces:
// map[string]any, []any, string, bool, numbers and nil.
package dataio
