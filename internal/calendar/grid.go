package calendar

// DaysPerWeek is the fixed width of every grid row.
const DaysPerWeek = 7

// MaxWeeks bounds the rows a single month can need.
const MaxWeeks = 6

// GridStart returns the first date shown in anchor's month grid: the first
// of the month moved back to the nearest firstDay.
func GridStart(anchor Date, firstDay Weekday) Date {
	if !firstDay.Valid() {
		firstDay = Sunday
	}
	first := anchor.FirstOfMonth()
	daysFromStart := (int(first.Weekday()) - int(firstDay) + DaysPerWeek) % DaysPerWeek
	return first.AddDays(-daysFromStart)
}

// BuildWeeks lays out anchor's month as rows of seven consecutive dates.
//
// Rows are emitted from GridStart until the row holding the month's last day
// has been written; the final row is padded with days of the following month.
// A row lying entirely outside the month is never emitted, so a month spans
// four to six rows.
func BuildWeeks(anchor Date, firstDay Weekday) [][DaysPerWeek]Date {
	last := anchor.LastOfMonth()
	current := GridStart(anchor, firstDay)

	weeks := make([][DaysPerWeek]Date, 0, MaxWeeks)
	for len(weeks) < MaxWeeks && !current.After(last) {
		var week [DaysPerWeek]Date
		for i := range week {
			week[i] = current
			current = current.AddDays(1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// RowOf returns the index of the row containing d, or -1.
func RowOf(weeks [][DaysPerWeek]Date, d Date) int {
	for i, week := range weeks {
		for _, day := range week {
			if day == d {
				return i
			}
		}
	}
	return -1
}
