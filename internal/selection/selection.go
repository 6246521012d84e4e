// Package selection holds the selected-days set and the policies that
// mutate it in single, multiple and range modes.
package selection

import (
	"sort"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
)

// State is an immutable set of selected days. The zero value is the empty
// selection. Operations return new States and never modify the receiver.
type State struct {
	dates map[calendar.Date]struct{}
}

// Of builds a State from the given dates; duplicates collapse.
func Of(dates ...calendar.Date) State {
	if len(dates) == 0 {
		return State{}
	}
	set := make(map[calendar.Date]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return State{dates: set}
}

// Span returns the State containing every day from lo to hi inclusive, in
// either order.
func Span(a, b calendar.Date) State {
	lo, hi := calendar.MinDate(a, b), calendar.MaxDate(a, b)
	set := make(map[calendar.Date]struct{}, calendar.DaysBetween(lo, hi)+1)
	for d := lo; !d.After(hi); d = d.AddDays(1) {
		set[d] = struct{}{}
	}
	return State{dates: set}
}

// Len returns the number of selected days.
func (s State) Len() int { return len(s.dates) }

// IsEmpty reports whether nothing is selected.
func (s State) IsEmpty() bool { return len(s.dates) == 0 }

// Contains reports whether d is selected.
func (s State) Contains(d calendar.Date) bool {
	_, ok := s.dates[d]
	return ok
}

// Dates returns the selected days in chronological order.
func (s State) Dates() []calendar.Date {
	out := make([]calendar.Date, 0, len(s.dates))
	for d := range s.dates {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// First returns the earliest selected day.
func (s State) First() (calendar.Date, bool) {
	if s.IsEmpty() {
		return calendar.Date{}, false
	}
	var first calendar.Date
	found := false
	for d := range s.dates {
		if !found || d.Before(first) {
			first = d
			found = true
		}
	}
	return first, true
}

// Bounds returns the earliest and latest selected days.
func (s State) Bounds() (lo, hi calendar.Date, ok bool) {
	if s.IsEmpty() {
		return calendar.Date{}, calendar.Date{}, false
	}
	dates := s.Dates()
	return dates[0], dates[len(dates)-1], true
}

// IsContiguous reports whether the selection is a gapless run of days. The
// empty selection counts as contiguous.
func (s State) IsContiguous() bool {
	lo, hi, ok := s.Bounds()
	if !ok {
		return true
	}
	return calendar.DaysBetween(lo, hi)+1 == s.Len()
}

// Equal reports whether both states select the same days.
func (s State) Equal(other State) bool {
	if s.Len() != other.Len() {
		return false
	}
	for d := range s.dates {
		if !other.Contains(d) {
			return false
		}
	}
	return true
}

func (s State) with(d calendar.Date) State {
	set := make(map[calendar.Date]struct{}, len(s.dates)+1)
	for k := range s.dates {
		set[k] = struct{}{}
	}
	set[d] = struct{}{}
	return State{dates: set}
}

func (s State) without(d calendar.Date) State {
	set := make(map[calendar.Date]struct{}, len(s.dates))
	for k := range s.dates {
		if k != d {
			set[k] = struct{}{}
		}
	}
	return State{dates: set}
}
