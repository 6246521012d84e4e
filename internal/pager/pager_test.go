package pager

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
)

var today = calendar.NewDate(2024, time.March, 12)

func newPager() *Pager {
	return New(today, calendar.Sunday, DefaultMetrics())
}

func TestNewStartsOnTodayWithCentredWindow(t *testing.T) {
	t.Parallel()

	p := newPager()
	require.Equal(t, StartPage, p.Current())
	require.Equal(t, today, p.Active())
	require.Equal(t, calendar.NewDate(2024, time.March, 1), p.Anchor())

	lo, hi := p.Window()
	require.Equal(t, 497, lo)
	require.Equal(t, 503, hi)
	require.Equal(t, []int{497, 498, 499, 500, 501, 502, 503}, p.Visible())
}

func TestPageForDate(t *testing.T) {
	t.Parallel()

	p := newPager()
	tests := []struct {
		name string
		date calendar.Date
		want int
	}{
		{"today", today, StartPage},
		{"same month other day", calendar.NewDate(2024, time.March, 31), StartPage},
		{"previous year", calendar.NewDate(2023, time.December, 1), 497},
		{"next year", calendar.NewDate(2025, time.March, 1), 512},
		{"far past clamps", calendar.NewDate(1900, time.January, 1), 0},
		{"far future clamps", calendar.NewDate(2200, time.January, 1), MaxPage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.PageForDate(tt.date), tt.name)
	}
}

func TestMonthForPageClampsDay(t *testing.T) {
	t.Parallel()

	p := New(calendar.NewDate(2024, time.January, 31), calendar.Sunday, DefaultMetrics())
	require.Equal(t, calendar.NewDate(2024, time.February, 29), p.MonthForPage(StartPage+1))
	require.Equal(t, calendar.NewDate(2023, time.February, 28), p.MonthForPage(StartPage-11))
	require.Equal(t, calendar.NewDate(2024, time.April, 30), p.MonthForPage(StartPage+3))
}

func TestNextAndPreviousShiftActiveDate(t *testing.T) {
	t.Parallel()

	p := New(calendar.NewDate(2024, time.January, 31), calendar.Sunday, DefaultMetrics())
	require.True(t, p.Next())
	require.Equal(t, 501, p.Current())
	require.Equal(t, calendar.NewDate(2024, time.February, 29), p.Active())

	require.True(t, p.Previous())
	require.True(t, p.Previous())
	require.Equal(t, 499, p.Current())
	require.Equal(t, time.December, p.Active().Month)
	require.Equal(t, 2023, p.Active().Year)
}

func TestNavigationRefusedAtBounds(t *testing.T) {
	t.Parallel()

	p := newPager()
	require.True(t, p.GoTo(MaxPage))
	layout := p.Layout()
	for i := 0; i < 3; i++ {
		require.False(t, p.Next())
	}
	require.Equal(t, MaxPage, p.Current())
	require.Equal(t, layout, p.Layout())

	require.True(t, p.GoTo(-40))
	require.Equal(t, 0, p.Current())
	require.False(t, p.Previous())
	require.Equal(t, 0, p.Current())

	lo, hi := p.Window()
	require.Equal(t, 0, lo)
	require.Equal(t, WindowSize-1, hi)
}

func TestGoToSamePageIsNoOp(t *testing.T) {
	t.Parallel()

	p := newPager()
	require.False(t, p.GoTo(StartPage))
	require.False(t, p.GoToDate(calendar.NewDate(2024, time.March, 2)))
	require.Equal(t, calendar.NewDate(2024, time.March, 2), p.Active())
}

func TestGoToDateBindsActiveDate(t *testing.T) {
	t.Parallel()

	p := newPager()
	target := calendar.NewDate(2024, time.July, 4)
	require.True(t, p.GoToDate(target))
	require.Equal(t, 504, p.Current())
	require.Equal(t, target, p.Active())

	require.True(t, p.GoToDate(calendar.NewDate(2300, time.May, 5)))
	require.Equal(t, MaxPage, p.Current())
	require.Equal(t, p.MonthForPage(MaxPage), p.Active())
}

func TestWindowSlidesByMinimum(t *testing.T) {
	t.Parallel()

	p := newPager()
	require.True(t, p.Next())
	require.True(t, p.Next())
	lo, _ := p.Window()
	require.Equal(t, 497, lo, "interior moves do not slide")

	require.True(t, p.Next())
	lo, hi := p.Window()
	require.Equal(t, 498, lo)
	require.Equal(t, 504, hi)
}

func TestWindowInvariantUnderRandomNavigation(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	p := newPager()
	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0:
			p.Next()
		case 1:
			p.Previous()
		case 2:
			p.GoTo(rng.Intn(MaxPage+200) - 100)
		default:
			for j := 0; j < 20; j++ {
				p.Next()
			}
		}

		lo, hi := p.Window()
		cur := p.Current()
		require.GreaterOrEqual(t, cur, 0)
		require.LessOrEqual(t, cur, MaxPage)
		require.LessOrEqual(t, lo, cur)
		require.GreaterOrEqual(t, hi, cur)
		require.GreaterOrEqual(t, lo, 0)
		require.LessOrEqual(t, hi, MaxPage)
		if cur > 0 && cur < MaxPage {
			require.Less(t, lo, cur)
			require.Greater(t, hi, cur)
		}
		require.True(t, p.MonthForPage(cur).SameMonth(p.Active()))
	}
}

func TestRecomputeMarch2024(t *testing.T) {
	t.Parallel()

	p := newPager()
	layout := p.Recompute(calendar.NewDate(2024, time.March, 12), true)
	require.Equal(t, 6, layout.Rows)
	require.Equal(t, 2, layout.SelectedRow)
	require.Equal(t, (40+10)*6-5+10+20, layout.Height)

	again := p.Recompute(calendar.NewDate(2024, time.March, 12), true)
	require.Equal(t, layout, again)

	collapsed := p.Recompute(calendar.NewDate(2024, time.March, 12), false)
	require.Equal(t, 40+30+10, collapsed.Height)
	require.Equal(t, 2, collapsed.SelectedRow)
	require.False(t, collapsed.Expanded)

	outside := p.Recompute(calendar.NewDate(2024, time.May, 1), true)
	require.Equal(t, 0, outside.SelectedRow)
}

func TestRecomputeHonorsFirstDay(t *testing.T) {
	t.Parallel()

	p := New(calendar.NewDate(2015, time.February, 10), calendar.Sunday, DefaultMetrics())
	require.Equal(t, 4, p.Recompute(p.Active(), true).Rows)

	p.SetFirstDay(calendar.Monday)
	layout := p.Recompute(p.Active(), true)
	require.Equal(t, 5, layout.Rows)
	require.Equal(t, 2, layout.SelectedRow)
}

func TestMetricsHeight(t *testing.T) {
	t.Parallel()

	m := Metrics{RowHeight: 1, RowSpacing: 0, HeaderHeight: 2, TopSpacing: 1}
	require.Equal(t, 9, m.Height(6, true))
	require.Equal(t, 2, m.Height(6, false))
}
