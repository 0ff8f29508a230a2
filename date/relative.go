package date

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type relKey int

const (
	relSecond relKey = iota
	relMinute
	relMinutes
	relHour
	relHours
	relDay
	relDays
	relMonth
	relMonths
	relYear
	relYears
)

// averageMonth is the mean Gregorian month length.
const averageMonth = 30.436875 * 24 * float64(time.Hour)

// relStep is one rung of the relative-time ladder. A step without a measure
// reuses the previous step's value; a zero limit accepts anything.
type relStep struct {
	key     relKey
	limit   float64
	measure func(d time.Duration) float64
}

var relSteps = []relStep{
	{relSecond, 44, func(d time.Duration) float64 { return d.Seconds() }},
	{relMinute, 89, nil},
	{relMinutes, 44, func(d time.Duration) float64 { return d.Minutes() }},
	{relHour, 89, nil},
	{relHours, 21, func(d time.Duration) float64 { return d.Hours() }},
	{relDay, 35, nil},
	{relDays, 25, func(d time.Duration) float64 { return d.Hours() / 24 }},
	{relMonth, 45, nil},
	{relMonths, 10, func(d time.Duration) float64 { return float64(d) / averageMonth }},
	{relYear, 17, nil},
	{relYears, 0, func(d time.Duration) float64 { return float64(d) / averageMonth / 12 }},
}

// relative renders the distance from now to t, e.g. "3 days ago".
func relative(t, now time.Time, loc *Locale) string {
	delta := t.Sub(now)

	future := delta > 0
	if delta < 0 {
		delta = -delta
	}

	var value float64

	for i, step := range relSteps {
		if step.measure != nil {
			value = step.measure(delta)
		}

		n := math.Round(value)
		if step.limit != 0 && n > step.limit {
			continue
		}

		key := step.key
		if n <= 1 && i > 0 {
			// "1 minutes" reads as "a minute"
			key = relSteps[i-1].key
		}

		phrase := strings.ReplaceAll(loc.relative.units[key], "%d", fmt.Sprint(int(n)))
		if future {
			return fmt.Sprintf(loc.relative.future, phrase)
		}

		return fmt.Sprintf(loc.relative.past, phrase)
	}

	return ""
}
