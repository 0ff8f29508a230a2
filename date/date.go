package date

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedValue is returned by Parse for values it cannot read as a time.
var ErrUnsupportedValue = errors.New("unsupported date value")

const (
	DefaultDateLayout     = "YYYY-MM-DD"
	DefaultDateTimeLayout = "YYYY-MM-DD HH:mm:ss"
)

// Formatter renders times for one locale relative to one clock.
type Formatter struct {
	locale *Locale
	now    func() time.Time
}

type Option func(*Formatter)

// WithLocale sets the locale used for names and relative phrases.
func WithLocale(loc *Locale) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.locale = loc
		}
	}
}

// WithClock replaces the wall clock, used by FromNow and IsToday.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

func New(opts ...Option) *Formatter {
	f := &Formatter{
		locale: SimplifiedChinese,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *Formatter) Locale() *Locale {
	return f.locale
}

// Format renders t with a dayjs-style layout.
func (f *Formatter) Format(t time.Time, layout string) string {
	return format(t, layout, f.locale)
}

// FormatDate renders t with the first layout given, or YYYY-MM-DD.
func (f *Formatter) FormatDate(t time.Time, layout ...string) string {
	return f.Format(t, layoutOr(layout, DefaultDateLayout))
}

// FormatDateTime renders t with the first layout given, or YYYY-MM-DD HH:mm:ss.
func (f *Formatter) FormatDateTime(t time.Time, layout ...string) string {
	return f.Format(t, layoutOr(layout, DefaultDateTimeLayout))
}

// FromNow describes t relative to the clock, e.g. "3 天前" or "in 2 hours".
func (f *Formatter) FromNow(t time.Time) string {
	return relative(t, f.now(), f.locale)
}

// IsToday reports whether t falls on the clock's current calendar day, as seen
// from t's location.
func (f *Formatter) IsToday(t time.Time) bool {
	ny, nm, nd := f.now().In(t.Location()).Date()
	y, m, d := t.Date()

	return y == ny && m == nm && d == nd
}

// DiffDays returns the number of whole days from b to a, truncated toward
// zero. Differing UTC offsets are compensated so wall-clock days are counted.
func DiffDays(a, b time.Time) int {
	_, offA := a.Zone()
	_, offB := b.Zone()

	d := a.Sub(b) + time.Duration(offA-offB)*time.Second

	return int(d / (24 * time.Hour))
}

// AddTime shifts t by amount units. Month and year steps keep the day of
// month, clamped to the last day of the target month.
func AddTime(t time.Time, amount int, unit Unit) (time.Time, error) {
	switch unit {
	case Day:
		return t.AddDate(0, 0, amount), nil
	case Month:
		return addMonths(t, amount), nil
	case Year:
		return addMonths(t, amount*12), nil
	case Hour:
		return t.Add(time.Duration(amount) * time.Hour), nil
	case Minute:
		return t.Add(time.Duration(amount) * time.Minute), nil
	case Second:
		return t.Add(time.Duration(amount) * time.Second), nil
	default:
		return t, fmt.Errorf("add %d %s: unknown unit", amount, unit)
	}
}

func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	d = min(d, daysIn(first.Year(), first.Month()))

	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// Parse reads a time.Time, Unix milliseconds, or a date string. Strings
// without a zone are read in the local time zone.
func Parse(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v != nil {
			return *v, nil
		}
	case int:
		return time.UnixMilli(int64(v)), nil
	case int64:
		return time.UnixMilli(v), nil
	case float64:
		return time.UnixMilli(int64(v)), nil
	case string:
		for _, layout := range layouts {
			if layout == time.RFC3339Nano {
				if t, err := time.Parse(layout, v); err == nil {
					return t, nil
				}

				continue
			}

			if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
				return t, nil
			}
		}

		return time.Time{}, fmt.Errorf("parse %q: %w", v, ErrUnsupportedValue)
	}

	return time.Time{}, fmt.Errorf("parse %T: %w", value, ErrUnsupportedValue)
}

func layoutOr(layout []string, def string) string {
	if len(layout) > 0 && layout[0] != "" {
		return layout[0]
	}

	return def
}

var std = New()

// Format renders t with the default Simplified Chinese formatter.
func Format(t time.Time, layout string) string { return std.Format(t, layout) }

func FormatDate(t time.Time, layout ...string) string { return std.FormatDate(t, layout...) }

func FormatDateTime(t time.Time, layout ...string) string { return std.FormatDateTime(t, layout...) }

// FromNow describes t relative to the wall clock in Simplified Chinese.
func FromNow(t time.Time) string { return std.FromNow(t) }

func IsToday(t time.Time) bool { return std.IsToday(t) }
