package calendar

import (
	"fmt"
	"strings"
)

// SelectionMode decides how taps mutate the selection.
type SelectionMode int

const (
	SelectSingle SelectionMode = iota
	SelectMultiple
	SelectRange
	SelectNone
)

var selectionModeNames = map[SelectionMode]string{
	SelectSingle:   "single",
	SelectMultiple: "multiple",
	SelectRange:    "range",
	SelectNone:     "none",
}

func (m SelectionMode) String() string {
	if name, ok := selectionModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("SelectionMode(%d)", int(m))
}

// Next cycles through the modes in declaration order.
func (m SelectionMode) Next() SelectionMode {
	return (m + 1) % (SelectNone + 1)
}

// ParseSelectionMode resolves a mode name. The empty string maps to single.
func ParseSelectionMode(value string) (SelectionMode, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return SelectSingle, nil
	}
	for mode, name := range selectionModeNames {
		if name == v {
			return mode, nil
		}
	}
	return SelectSingle, fmt.Errorf("unknown selection mode %q", value)
}

// DisplayMode picks the layout a renderer uses for the month.
type DisplayMode int

const (
	DisplayMonth DisplayMode = iota
	DisplayWeek
	DisplayAgenda
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayWeek:
		return "week"
	case DisplayAgenda:
		return "agenda"
	default:
		return "month"
	}
}

// ParseDisplayMode resolves a display mode name. The empty string maps to month.
func ParseDisplayMode(value string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "month":
		return DisplayMonth, nil
	case "week":
		return DisplayWeek, nil
	case "agenda":
		return DisplayAgenda, nil
	default:
		return DisplayMonth, fmt.Errorf("unknown display mode %q", value)
	}
}

// Configuration is immutable per calendar instance. A selection is only
// meaningful under the configuration that produced it, so hosts replace the
// whole value and clear the selection together.
type Configuration struct {
	SelectionMode        SelectionMode
	DisplayMode          DisplayMode
	FirstDayOfWeek       Weekday
	ShowWeekNumbers      bool
	AllowPastSelection   bool
	AllowFutureSelection bool
	MinimumDate          *Date
	MaximumDate          *Date
}

// DefaultConfiguration returns single selection, month display, weeks
// starting on Sunday and no date restrictions.
func DefaultConfiguration() Configuration {
	return Configuration{
		SelectionMode:        SelectSingle,
		DisplayMode:          DisplayMonth,
		FirstDayOfWeek:       Sunday,
		AllowPastSelection:   true,
		AllowFutureSelection: true,
	}
}

// WithSelectionMode returns a copy of c using mode.
func (c Configuration) WithSelectionMode(mode SelectionMode) Configuration {
	c.SelectionMode = mode
	return c
}

// WithBounds returns a copy of c restricted to [minimum, maximum]. Either
// bound may be nil.
func (c Configuration) WithBounds(minimum, maximum *Date) Configuration {
	c.MinimumDate = cloneDate(minimum)
	c.MaximumDate = cloneDate(maximum)
	return c
}

// WeekStart returns FirstDayOfWeek, falling back to Sunday for the zero value.
func (c Configuration) WeekStart() Weekday {
	if !c.FirstDayOfWeek.Valid() {
		return Sunday
	}
	return c.FirstDayOfWeek
}

func cloneDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
