package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeeksMarch2024SundayStart(t *testing.T) {
	t.Parallel()

	weeks := BuildWeeks(NewDate(2024, time.March, 15), Sunday)

	require.Len(t, weeks, 6)
	require.Equal(t, NewDate(2024, time.February, 25), weeks[0][0])
	require.Equal(t, Sunday, weeks[0][0].Weekday())
	require.Equal(t, NewDate(2024, time.March, 31), weeks[5][0])
	require.Equal(t, NewDate(2024, time.April, 6), weeks[5][6])
}

func TestBuildWeeksNoLeadingDaysWhenMonthStartsOnFirstDay(t *testing.T) {
	t.Parallel()

	// February 2015 starts on a Sunday and ends on a Saturday.
	weeks := BuildWeeks(NewDate(2015, time.February, 1), Sunday)

	require.Len(t, weeks, 4)
	require.Equal(t, NewDate(2015, time.February, 1), weeks[0][0])
	require.Equal(t, NewDate(2015, time.February, 28), weeks[3][6])

	monday := BuildWeeks(NewDate(2015, time.February, 1), Monday)
	require.Len(t, monday, 5)
	require.Equal(t, NewDate(2015, time.January, 26), monday[0][0])
	require.Equal(t, NewDate(2015, time.March, 1), monday[4][6])
}

func TestBuildWeeksNeverEmitsWeekOutsideMonth(t *testing.T) {
	t.Parallel()

	// February 2026 also fills exactly four Sunday-first rows.
	weeks := BuildWeeks(NewDate(2026, time.February, 10), Sunday)
	require.Len(t, weeks, 4)

	for _, week := range weeks {
		inside := false
		for _, d := range week {
			if d.SameMonth(NewDate(2026, time.February, 1)) {
				inside = true
			}
		}
		assert.True(t, inside)
	}
}

func TestBuildWeeksProperties(t *testing.T) {
	t.Parallel()

	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			for _, first := range AllWeekdays {
				anchor := NewDate(year, month, 1)
				weeks := BuildWeeks(anchor, first)

				require.GreaterOrEqual(t, len(weeks), 4)
				require.LessOrEqual(t, len(weeks), MaxWeeks)

				start := weeks[0][0]
				lead := DaysBetween(start, anchor)
				require.GreaterOrEqual(t, lead, 0)
				require.LessOrEqual(t, lead, 6)
				require.Equal(t, first, start.Weekday())

				prev := start.AddDays(-1)
				for _, week := range weeks {
					require.Len(t, week, DaysPerWeek)
					for _, d := range week {
						require.Equal(t, 1, DaysBetween(prev, d))
						prev = d
					}
				}
				require.False(t, prev.Before(anchor.LastOfMonth()))
				require.Equal(t, -1, RowOf(weeks, anchor.LastOfMonth().AddDays(7)))
			}
		}
	}
}

func TestBuildWeeksMondayFirstAlignment(t *testing.T) {
	t.Parallel()

	for _, anchor := range []Date{
		NewDate(2024, time.March, 15),
		NewDate(2024, time.September, 1),
		NewDate(2025, time.June, 30),
		NewDate(2026, time.October, 14),
	} {
		weeks := BuildWeeks(anchor, Monday)
		assert.Equal(t, Monday, weeks[0][0].Weekday(), anchor.String())
	}
}

func TestBuildWeeksAcrossDaylightSavingTransition(t *testing.T) {
	t.Parallel()

	// US clocks change on 2024-03-10 and EU clocks on 2024-03-31; civil day
	// arithmetic must still land on every calendar day exactly once.
	weeks := BuildWeeks(NewDate(2024, time.March, 1), Sunday)

	seen := make(map[Date]bool)
	for _, week := range weeks {
		for _, d := range week {
			require.False(t, seen[d], d.String())
			seen[d] = true
		}
	}
	for day := 1; day <= 31; day++ {
		require.True(t, seen[NewDate(2024, time.March, day)])
	}
}

func TestGridStartInvalidWeekdayFallsBackToSunday(t *testing.T) {
	t.Parallel()

	require.Equal(t, NewDate(2024, time.February, 25), GridStart(NewDate(2024, time.March, 9), Weekday(0)))
}

func TestRowOf(t *testing.T) {
	t.Parallel()

	weeks := BuildWeeks(NewDate(2024, time.March, 1), Sunday)
	assert.Equal(t, 0, RowOf(weeks, NewDate(2024, time.March, 1)))
	assert.Equal(t, 2, RowOf(weeks, NewDate(2024, time.March, 15)))
	assert.Equal(t, 5, RowOf(weeks, NewDate(2024, time.March, 31)))
	assert.Equal(t, -1, RowOf(weeks, NewDate(2024, time.May, 1)))
}
