// Package events keeps the host's events-by-day mapping and imports events
// from ICS documents.
package events

import (
	"sort"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
)

// Store maps a normalized day to its events in insertion order. It satisfies
// calendar.EventLookup. Store is not safe for concurrent mutation; the picker
// has a single writer.
type Store struct {
	byDay map[calendar.Date][]calendar.Event
	count int
}

// NewStore returns a store seeded with events.
func NewStore(seed ...calendar.Event) *Store {
	s := &Store{byDay: make(map[calendar.Date][]calendar.Event)}
	for _, e := range seed {
		s.Add(e)
	}
	return s
}

// Add appends e to the events of its day.
func (s *Store) Add(e calendar.Event) {
	if s.byDay == nil {
		s.byDay = make(map[calendar.Date][]calendar.Event)
	}
	s.byDay[e.Date] = append(s.byDay[e.Date], e)
	s.count++
}

// Remove deletes the event with id. A day left without events is dropped
// from the mapping. It reports whether anything was removed.
func (s *Store) Remove(id string) (calendar.Event, bool) {
	for day, list := range s.byDay {
		for i, e := range list {
			if e.ID != id {
				continue
			}
			rest := append(list[:i:i], list[i+1:]...)
			if len(rest) == 0 {
				delete(s.byDay, day)
			} else {
				s.byDay[day] = rest
			}
			s.count--
			return e, true
		}
	}
	return calendar.Event{}, false
}

// EventsOn returns a copy of the events recorded for d.
func (s *Store) EventsOn(d calendar.Date) []calendar.Event {
	if s == nil {
		return nil
	}
	list := s.byDay[d]
	if len(list) == 0 {
		return nil
	}
	out := make([]calendar.Event, len(list))
	copy(out, list)
	return out
}

// Days returns the days that carry at least one event, in order.
func (s *Store) Days() []calendar.Date {
	days := make([]calendar.Date, 0, len(s.byDay))
	for d := range s.byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Month lists the events of anchor's month ordered by day, then insertion.
func (s *Store) Month(anchor calendar.Date) []calendar.Event {
	var out []calendar.Event
	for _, d := range s.Days() {
		if d.SameMonth(anchor) {
			out = append(out, s.byDay[d]...)
		}
	}
	return out
}

// Len returns the total number of events.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

var _ calendar.EventLookup = (*Store)(nil)
