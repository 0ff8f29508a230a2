// Package random generates pseudo-random values: numbers, picks from slices,
// strings, colors, UUIDs, IPv4 addresses, mainland China phone numbers,
// Chinese names and dates.
//
// Values come from a non-cryptographic source. Package-level functions share
// a process-wide Generator; build a Generator with New(WithSeed(...)) for
// reproducible output. UUID is the exception: it reads from crypto/rand and
// only falls back to the non-cryptographic source when that read fails.
package random
