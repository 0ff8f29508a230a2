package date

import "fmt"

//go:generate go tool stringer -type=Unit -output=unit_string.go

// Unit is a calendar or clock unit accepted by AddTime.
type Unit int

const (
	_ Unit = iota // zero value is invalid

	Day
	Month
	Year
	Hour
	Minute
	Second
)

var unitAliases = map[string]Unit{
	"day": Day, "days": Day, "d": Day,
	"month": Month, "months": Month, "M": Month,
	"year": Year, "years": Year, "y": Year,
	"hour": Hour, "hours": Hour, "h": Hour,
	"minute": Minute, "minutes": Minute, "m": Minute,
	"second": Second, "seconds": Second, "s": Second,
}

// ParseUnit resolves unit names ("day", "months") and their dayjs short forms
// ("d", "M", "y", "h", "m", "s"). Short forms are case sensitive.
func ParseUnit(name string) (Unit, error) {
	if u, ok := unitAliases[name]; ok {
		return u, nil
	}

	return 0, fmt.Errorf("unknown time unit %q", name)
}
