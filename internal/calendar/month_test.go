package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dateSet map[Date]bool

func (s dateSet) Contains(d Date) bool { return s[d] }

type eventMap map[Date][]Event

func (m eventMap) EventsOn(d Date) []Event { return m[d] }

func TestAssembleMonthFlags(t *testing.T) {
	t.Parallel()

	anchor := NewDate(2024, time.March, 1)
	today := NewDate(2024, time.March, 12)
	selected := dateSet{NewDate(2024, time.March, 15): true}

	month := AssembleMonth(anchor, DefaultConfiguration(), selected, nil, today)

	require.Equal(t, "March", month.Name)
	require.Equal(t, 2024, month.Year)
	require.Equal(t, "March 2024", month.Title())
	require.Equal(t, anchor, month.Anchor)

	first := month.Weeks[0][0]
	require.Equal(t, NewDate(2024, time.February, 25), first.Date)
	require.Equal(t, 25, first.Number)
	require.False(t, first.IsCurrentMonth)
	require.True(t, first.IsWeekend)

	day, ok := month.DayAt(NewDate(2024, time.March, 12))
	require.True(t, ok)
	require.True(t, day.IsToday)
	require.True(t, day.IsCurrentMonth)
	require.False(t, day.IsWeekend)

	count := 0
	for _, week := range month.Weeks {
		for _, d := range week {
			if d.IsSelected {
				count++
				require.Equal(t, NewDate(2024, time.March, 15), d.Date)
			}
			require.NotNil(t, d.Events)
		}
	}
	require.Equal(t, 1, count)
}

func TestAssembleMonthEventsLookup(t *testing.T) {
	t.Parallel()

	target := NewDate(2024, time.March, 15)
	events := eventMap{target: {NewEvent("Review", target, ColorRed, TypeMeeting)}}

	month := AssembleMonth(target, DefaultConfiguration(), nil, events, NewDate(2024, time.January, 1))

	for _, week := range month.Weeks {
		for _, d := range week {
			if d.Date == target {
				assert.Len(t, d.Events, 1)
				assert.Equal(t, "Review", d.Events[0].Title)
			} else {
				assert.Empty(t, d.Events, d.Date.String())
			}
		}
	}
}

func TestAssembleMonthIsPure(t *testing.T) {
	t.Parallel()

	anchor := NewDate(2024, time.July, 4)
	selected := dateSet{NewDate(2024, time.July, 4): true}
	cfg := DefaultConfiguration()
	cfg.FirstDayOfWeek = Monday

	a := AssembleMonth(anchor, cfg, selected, eventMap{}, anchor)
	b := AssembleMonth(anchor, cfg, selected, eventMap{}, anchor)
	require.Equal(t, a, b)
	require.Equal(t, Monday, a.Weeks[0][0].Date.Weekday())
	require.Equal(t, 0, a.Row(NewDate(2024, time.July, 1)))
	require.Equal(t, -1, a.Row(NewDate(2024, time.September, 1)))
}

func TestEventMetadata(t *testing.T) {
	t.Parallel()

	event := NewEvent("Test Event", NewDate(2026, time.October, 14), ColorBlue, TypeMeeting)
	require.NotEmpty(t, event.ID)
	require.NotEqual(t, event.ID, NewEvent("Test Event", event.Date, ColorBlue, TypeMeeting).ID)

	require.Equal(t, "red", ColorRed.Name())
	require.Len(t, AllEventColors, 8)
	require.Equal(t, "Meeting", TypeMeeting.Name())
	require.Equal(t, "Birthday", TypeBirthday.Name())
	require.Len(t, AllEventTypes, 5)

	c, err := ParseEventColor("Purple")
	require.NoError(t, err)
	require.Equal(t, ColorPurple, c)
	c, err = ParseEventColor("")
	require.NoError(t, err)
	require.Equal(t, ColorBlue, c)
	_, err = ParseEventColor("mauve")
	require.Error(t, err)

	typ, err := ParseEventType("holiday")
	require.NoError(t, err)
	require.Equal(t, TypeHoliday, typ)
	_, err = ParseEventType("party")
	require.Error(t, err)
}

func TestConfigurationDefaultsAndParsing(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfiguration()
	require.Equal(t, SelectSingle, cfg.SelectionMode)
	require.Equal(t, DisplayMonth, cfg.DisplayMode)
	require.Equal(t, Sunday, cfg.FirstDayOfWeek)
	require.True(t, cfg.AllowPastSelection)
	require.True(t, cfg.AllowFutureSelection)
	require.Nil(t, cfg.MinimumDate)
	require.Equal(t, Sunday, Configuration{}.WeekStart())

	mode, err := ParseSelectionMode("Range")
	require.NoError(t, err)
	require.Equal(t, SelectRange, mode)
	_, err = ParseSelectionMode("many")
	require.Error(t, err)
	require.Equal(t, SelectMultiple, SelectSingle.Next())
	require.Equal(t, SelectSingle, SelectNone.Next())

	display, err := ParseDisplayMode("agenda")
	require.NoError(t, err)
	require.Equal(t, DisplayAgenda, display)
	_, err = ParseDisplayMode("year")
	require.Error(t, err)

	lo, hi := NewDate(2024, time.March, 1), NewDate(2024, time.March, 31)
	bounded := cfg.WithBounds(&lo, &hi)
	lo = NewDate(2000, time.January, 1)
	require.Equal(t, NewDate(2024, time.March, 1), *bounded.MinimumDate)
	require.Nil(t, cfg.MinimumDate)
}
