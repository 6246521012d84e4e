package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Weekday numbers the days of the week from Sunday=1 to Saturday=7.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// AllWeekdays lists every weekday starting with Sunday.
var AllWeekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf converts a time.Weekday.
func WeekdayOf(wd time.Weekday) Weekday {
	return Weekday(int(wd) + 1)
}

// Valid reports whether w is one of the seven weekdays.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

// Std converts w to the standard library's numbering.
func (w Weekday) Std() time.Weekday {
	return time.Weekday(int(w) - 1)
}

// FullName returns the English weekday name, e.g. "Sunday".
func (w Weekday) FullName() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w-1]
}

// ShortName returns the three letter abbreviation, e.g. "Mon".
func (w Weekday) ShortName() string {
	if !w.Valid() {
		return "?"
	}
	return weekdayNames[w-1][:3]
}

func (w Weekday) String() string {
	return w.FullName()
}

// ParseWeekday accepts full or abbreviated English weekday names in any case.
func ParseWeekday(value string) (Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for i, name := range weekdayNames {
		lower := strings.ToLower(name)
		if v == lower || v == lower[:3] {
			return Weekday(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", value)
}

// OrderedFrom returns the seven weekdays beginning with first, as used for a
// calendar's weekday header row.
func OrderedFrom(first Weekday) []Weekday {
	if !first.Valid() {
		first = Sunday
	}
	out := make([]Weekday, 0, len(AllWeekdays))
	for i := 0; i < len(AllWeekdays); i++ {
		out = append(out, Weekday((int(first)-1+i)%7+1))
	}
	return out
}
