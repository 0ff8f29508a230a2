package date

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale holds the names and phrases used when rendering dates.
type Locale struct {
	Tag           language.Tag
	Months        [12]string
	MonthsShort   [12]string
	Weekdays      [7]string
	WeekdaysShort [7]string
	WeekdaysMin   [7]string

	meridiem func(hour, minute int, lower bool) string
	relative relativeStrings
}

type relativeStrings struct {
	future, past string
	units        map[relKey]string
}

// English is the "en" locale.
var English = &Locale{
	Tag: language.English,
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthsShort:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	WeekdaysMin:   [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	meridiem: func(hour, _ int, lower bool) string {
		m := "AM"
		if hour >= 12 {
			m = "PM"
		}

		if lower {
			return strings.ToLower(m)
		}

		return m
	},
	relative: relativeStrings{
		future: "in %s",
		past:   "%s ago",
		units: map[relKey]string{
			relSecond: "a few seconds", relMinute: "a minute", relMinutes: "%d minutes",
			relHour: "an hour", relHours: "%d hours", relDay: "a day", relDays: "%d days",
			relMonth: "a month", relMonths: "%d months", relYear: "a year", relYears: "%d years",
		},
	},
}

// SimplifiedChinese is the "zh-CN" locale.
var SimplifiedChinese = &Locale{
	Tag: language.SimplifiedChinese,
	Months: [12]string{
		"一月", "二月", "三月", "四月", "五月", "六月",
		"七月", "八月", "九月", "十月", "十一月", "十二月",
	},
	MonthsShort: [12]string{
		"1月", "2月", "3月", "4月", "5月", "6月",
		"7月", "8月", "9月", "10月", "11月", "12月",
	},
	Weekdays:      [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
	WeekdaysShort: [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
	WeekdaysMin:   [7]string{"日", "一", "二", "三", "四", "五", "六"},
	meridiem: func(hour, minute int, _ bool) string {
		switch hm := hour*100 + minute; {
		case hm < 600:
			return "凌晨"
		case hm < 900:
			return "早上"
		case hm < 1100:
			return "上午"
		case hm < 1300:
			return "中午"
		case hm < 1800:
			return "下午"
		default:
			return "晚上"
		}
	},
	relative: relativeStrings{
		future: "%s内",
		past:   "%s前",
		units: map[relKey]string{
			relSecond: "几秒", relMinute: "1 分钟", relMinutes: "%d 分钟",
			relHour: "1 小时", relHours: "%d 小时", relDay: "1 天", relDays: "%d 天",
			relMonth: "1 个月", relMonths: "%d 个月", relYear: "1 年", relYears: "%d 年",
		},
	},
}

var (
	locales = []*Locale{English, SimplifiedChinese}
	matcher = language.NewMatcher([]language.Tag{English.Tag, SimplifiedChinese.Tag})
)

// ParseLocale resolves a BCP 47 tag such as "zh-cn" or "en-US" to the closest
// supported locale.
func ParseLocale(tag string) (*Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", tag, err)
	}

	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return nil, fmt.Errorf("unsupported locale %q", tag)
	}

	return locales[idx], nil
}

// String returns the locale's BCP 47 tag.
func (l *Locale) String() string {
	return l.Tag.String()
}
