package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"datakit/internal/rng"
)

// ErrEmptySequence is returned when picking from an empty slice.
var ErrEmptySequence = errors.New("cannot select from an empty sequence")

// Alphanumeric is the default alphabet of String.
const Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generator produces random values from a Source.
type Generator struct {
	src     rng.Source
	entropy io.Reader
	now     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource uses src for every non-cryptographic value.
func WithSource(src rng.Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithSeed makes the generator deterministic. The resulting generator is not
// safe for concurrent use.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.src = rng.NewSeeded(seed) }
}

// WithEntropy replaces crypto/rand as the UUID entropy reader.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) { g.entropy = r }
}

// WithClock sets the clock AnyDate uses as its upper bound.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New returns a Generator backed by the process-wide source unless options
// say otherwise.
func New(opts ...Option) *Generator {
	g := &Generator{
		src:     rng.Default(),
		entropy: rand.Reader,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Float64 returns the next value of the underlying source, in [0, 1).
func (g *Generator) Float64() float64 {
	return g.src.Float64()
}

// Int returns an integer in [ceil(min), floor(max)]. When that range is empty
// the result is ceil(min).
func (g *Generator) Int(min, max float64) int {
	lo := int(math.Ceil(min))
	hi := int(math.Floor(max))

	if hi < lo {
		return lo
	}

	return lo + rng.Intn(g.src, hi-lo+1)
}

// Float returns a number in [min, max) rounded to decimals places.
func (g *Generator) Float(min, max float64, decimals int) float64 {
	decimals = max0(decimals)
	v := g.src.Float64()*(max-min) + min
	factor := math.Pow(10, float64(decimals))

	return math.Round(v*factor) / factor
}

// Bool returns true with probability p.
func (g *Generator) Bool(p float64) bool {
	return g.src.Float64() < p
}

// String returns n characters drawn from Alphanumeric.
func (g *Generator) String(n int) string {
	return g.StringFrom(n, Alphanumeric)
}

// StringFrom returns n characters drawn from alphabet. An empty alphabet
// yields the empty string.
func (g *Generator) StringFrom(n int, alphabet string) string {
	chars := []rune(alphabet)
	if len(chars) == 0 || n <= 0 {
		return ""
	}

	var b strings.Builder

	b.Grow(n)

	for range n {
		b.WriteRune(chars[rng.Intn(g.src, len(chars))])
	}

	return b.String()
}

// Color returns a color code such as "#0a3fc2".
func (g *Generator) Color() string {
	return fmt.Sprintf("#%06x", rng.Intn(g.src, 0xffffff))
}

// UUID returns a random (version 4) UUID read from the entropy reader. If the
// reader fails, the UUID is filled from the non-cryptographic source instead;
// such values are not suitable for anything security related.
func (g *Generator) UUID() string {
	id, err := uuid.NewRandomFromReader(g.entropy)
	if err == nil {
		return id.String()
	}

	return g.weakUUID()
}

func (g *Generator) weakUUID() string {
	const pattern = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"
	const hex = "0123456789abcdef"

	out := []byte(pattern)
	for i, c := range out {
		r := rng.Intn(g.src, 16)

		switch c {
		case 'x':
			out[i] = hex[r]
		case 'y':
			out[i] = hex[r&0x3|0x8]
		}
	}

	return string(out)
}

// IP returns an IPv4 address whose first and last octets are never zero.
func (g *Generator) IP() string {
	return strings.Join([]string{
		strconv.Itoa(g.Int(1, 255)),
		strconv.Itoa(g.Int(0, 255)),
		strconv.Itoa(g.Int(0, 255)),
		strconv.Itoa(g.Int(1, 255)),
	}, ".")
}

// Date returns a time uniformly distributed in [start, end).
func (g *Generator) Date(start, end time.Time) time.Time {
	span := end.Sub(start)

	return start.Add(time.Duration(g.src.Float64() * float64(span)))
}

// AnyDate returns a date between 2000-01-01 (local time) and now.
func (g *Generator) AnyDate() time.Time {
	return g.Date(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.Local), g.now())
}

// ItemWith picks one element of s using g.
func ItemWith[T any](g *Generator, s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}

	return s[rng.Intn(g.src, len(s))], nil
}

// ItemsWith picks count distinct positions of s without replacement. It returns
// an empty slice for count <= 0 and a copy of s when count >= len(s).
func ItemsWith[T any](g *Generator, s []T, count int) []T {
	if count <= 0 {
		return []T{}
	}

	pool := make([]T, len(s))
	copy(pool, s)

	if count >= len(s) {
		return pool
	}

	out := make([]T, 0, count)

	for range count {
		i := rng.Intn(g.src, len(pool))
		out = append(out, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}

	return out
}

func max0(n int) int {
	if n < 0 {
		return 0
	}

	return n
}
