package calendar

import "strconv"

// Day is the renderable descriptor of one grid cell.
type Day struct {
	Date           Date
	Number         int
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
	IsWeekend      bool
	Events         []Event
}

// Week is one grid row.
type Week [DaysPerWeek]Day

// Month is the assembled view model for one page of the calendar.
type Month struct {
	Anchor Date
	Weeks  []Week
	Name   string
	Year   int
}

// SelectionLookup answers day-granularity membership in a selection.
type SelectionLookup interface {
	Contains(Date) bool
}

// EventLookup returns the events recorded for a normalized day.
type EventLookup interface {
	EventsOn(Date) []Event
}

// Title returns "March 2024" style text.
func (m Month) Title() string {
	return m.Name + " " + strconv.Itoa(m.Year)
}

// DayAt returns the descriptor for d if it is part of the grid.
func (m Month) DayAt(d Date) (Day, bool) {
	for _, week := range m.Weeks {
		for _, day := range week {
			if day.Date == d {
				return day, true
			}
		}
	}
	return Day{}, false
}

// Row returns the index of the week containing d, or -1.
func (m Month) Row(d Date) int {
	for i, week := range m.Weeks {
		for _, day := range week {
			if day.Date == d {
				return i
			}
		}
	}
	return -1
}

// AssembleMonth merges the grid for anchor's month with selection, today,
// weekend and event information. It reads its inputs only; selection and
// events may be nil.
func AssembleMonth(anchor Date, cfg Configuration, selection SelectionLookup, events EventLookup, today Date) Month {
	grid := BuildWeeks(anchor, cfg.WeekStart())

	weeks := make([]Week, len(grid))
	for w, row := range grid {
		for i, date := range row {
			day := Day{
				Date:           date,
				Number:         date.Day,
				IsCurrentMonth: date.SameMonth(anchor),
				IsToday:        date == today,
				IsWeekend:      IsWeekend(date),
			}
			if selection != nil {
				day.IsSelected = selection.Contains(date)
			}
			if events != nil {
				day.Events = events.EventsOn(date)
			}
			if day.Events == nil {
				day.Events = []Event{}
			}
			weeks[w][i] = day
		}
	}

	return Month{
		Anchor: anchor,
		Weeks:  weeks,
		Name:   anchor.Month.String(),
		Year:   anchor.Year,
	}
}
