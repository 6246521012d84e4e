package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the textual form of a Date used in config files and output.
const DateLayout = "2006-01-02"

// Date is a civil calendar day with no time-of-day or zone. Two Dates are
// equal exactly when they name the same calendar day, so Date is safe to use
// as a map key for day-granularity lookups.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Normalize strips the time-of-day from t, keeping the calendar day as seen
// in t's own location.
func Normalize(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate builds a Date, normalizing overflowing components the same way
// time.Date does (e.g. February 30 becomes March 1 or 2).
func NewDate(year int, month time.Month, day int) Date {
	return Normalize(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return Normalize(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of d in loc. A nil loc means time.Local.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// noon is used for arithmetic; UTC has no DST so adding days is exact.
func (d Date) noon() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar day n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Normalize(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// AddMonths shifts d by n months, clamping the day to the length of the
// target month so January 31 plus one month is the last day of February.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year, d.Month+time.Month(n), 1, 12, 0, 0, 0, time.UTC)
	day := d.Day
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return Date{Year: first.Year(), Month: first.Month(), Day: day}
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: DaysIn(d.Year, d.Month)}
}

// SameMonth reports whether d and other fall in the same month of the same year.
func (d Date) SameMonth(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() Weekday {
	return WeekdayOf(d.noon().Weekday())
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b Date) int {
	return int(b.noon().Sub(a.noon()).Hours() / 24)
}

// MonthsBetween returns the number of month boundaries from a's month to b's.
func MonthsBetween(a, b Date) int {
	return (b.Year-a.Year)*12 + int(b.Month) - int(a.Month)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// MinDate returns the earlier of a and b.
func MinDate(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxDate returns the later of a and b.
func MaxDate(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}

// IsWeekend applies the Saturday/Sunday weekend rule.
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == Saturday || wd == Sunday
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
