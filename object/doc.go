// Package object provides operations over keyed mappings (map[string]any):
// deep cloning with cycle support, dotted-path access, flattening, deep
// merging, projection and query-string conversion.
//
// Every function returns a new container and leaves its arguments unchanged.
package object
