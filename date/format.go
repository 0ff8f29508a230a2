package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// tokens is ordered so that longer tokens are tried before their prefixes.
var tokens = []string{
	"YYYY", "YY",
	"MMMM", "MMM", "MM", "M",
	"DD", "D",
	"dddd", "ddd", "dd", "d",
	"HH", "H", "hh", "h",
	"mm", "m",
	"SSS", "ss", "s",
	"ZZ", "Z",
	"A", "a",
}

func format(t time.Time, layout string, loc *Locale) string {
	var b strings.Builder

	for i := 0; i < len(layout); {
		if layout[i] == '[' {
			if end := strings.IndexByte(layout[i:], ']'); end > 0 {
				b.WriteString(layout[i+1 : i+end])
				i += end + 1

				continue
			}
		}

		tok := matchToken(layout[i:])
		if tok == "" {
			b.WriteByte(layout[i])
			i++

			continue
		}

		b.WriteString(render(t, tok, loc))
		i += len(tok)
	}

	return b.String()
}

func matchToken(s string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}

	return ""
}

func render(t time.Time, tok string, loc *Locale) string {
	switch tok {
	case "YYYY":
		return pad(t.Year(), 4)
	case "YY":
		return pad(t.Year()%100, 2)
	case "MMMM":
		return loc.Months[t.Month()-1]
	case "MMM":
		return loc.MonthsShort[t.Month()-1]
	case "MM":
		return pad(int(t.Month()), 2)
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DD":
		return pad(t.Day(), 2)
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		return loc.Weekdays[t.Weekday()]
	case "ddd":
		return loc.WeekdaysShort[t.Weekday()]
	case "dd":
		return loc.WeekdaysMin[t.Weekday()]
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "HH":
		return pad(t.Hour(), 2)
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return pad(hour12(t), 2)
	case "h":
		return strconv.Itoa(hour12(t))
	case "mm":
		return pad(t.Minute(), 2)
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return pad(t.Second(), 2)
	case "s":
		return strconv.Itoa(t.Second())
	case "SSS":
		return pad(t.Nanosecond()/int(time.Millisecond), 3)
	case "Z":
		return offset(t, ":")
	case "ZZ":
		return offset(t, "")
	case "A":
		return loc.meridiem(t.Hour(), t.Minute(), false)
	case "a":
		return loc.meridiem(t.Hour(), t.Minute(), true)
	default:
		return tok
	}
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}

	return h
}

func offset(t time.Time, sep string) string {
	_, secs := t.Zone()

	sign := '+'
	if secs < 0 {
		sign = '-'
		secs = -secs
	}

	return fmt.Sprintf("%c%02d%s%02d", sign, secs/3600, sep, secs%3600/60)
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}

	return strings.Repeat("0", width-len(s)) + s
}
