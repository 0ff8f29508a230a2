// Package match ranks known names by similarity to a mistyped one, so the
// command line can answer "unknown style camle" with "did you mean camel?".
//
// Key functions:
//   - Normalize: folds case and drops separators before comparing
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidates close enough to be worth offering
package match
