package calendar

import "time"

// Clock supplies the current instant. "Today" is always derived from it so
// tests can pin the calendar to a fixed day.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the local zone.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// FixedDay returns a clock pinned to noon of d in UTC.
func FixedDay(d Date) FixedClock {
	return FixedClock{At: time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)}
}

// Today normalizes the clock's current instant. A nil clock uses the system clock.
func Today(c Clock) Date {
	if c == nil {
		c = SystemClock{}
	}
	return Normalize(c.Now())
}
