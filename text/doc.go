// Package text provides identifier case conversion and simple string
// validation predicates.
//
// Key functions:
//   - Words: splits identifiers and phrases into words
//   - CamelCase, PascalCase, SnakeCase, KebabCase: case conversion
//   - Capitalize, Truncate: small string helpers
//   - IsValidURL, IsValidEmail: validation predicates
package text
