// Package diagnostic collects structured warnings and errors about input
// documents before they are transformed.
//
// Key capabilities:
//   - Orphan records whose parent is missing from a tree listing
//   - Duplicate and missing record identifiers
//   - Aggregation of diagnostics into a single error
package diagnostic
