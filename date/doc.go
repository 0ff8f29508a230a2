// Package date formats, compares and shifts times using dayjs-style layout
// tokens ("YYYY-MM-DD HH:mm:ss") and locale tables for English and
// Simplified Chinese.
//
// Supported tokens:
//
//	YYYY YY        year
//	M MM MMM MMMM  month number, padded number, short name, full name
//	D DD           day of month
//	d dd ddd dddd  weekday number, min name, short name, full name
//	H HH h hh      24-hour and 12-hour clock
//	m mm s ss SSS  minute, second, millisecond
//	A a            meridiem
//	Z ZZ           UTC offset as +07:00 / +0700
//	[text]         literal text
//
// The package-level helpers use Simplified Chinese and the wall clock; build a
// Formatter with New for other locales or a fixed clock.
package date
