// Package pager maps a bounded range of virtual page indexes onto months
// relative to today and tracks the small window of pages a host keeps
// realized.
package pager

import "github.com/alexisbeaulieu97/magicalendar/internal/calendar"

const (
	// StartPage is the page that shows today's month.
	StartPage = 500
	// MaxPage is the last valid page index. Pages run from 0 to MaxPage.
	MaxPage = 999
	// WindowSize is the number of pages kept realized around the current one.
	WindowSize = 7
)

// Metrics are the row and chrome sizes used to compute the display height.
// Units are whatever the host renders in.
type Metrics struct {
	RowHeight        int
	RowSpacing       int
	TrailingTrim     int
	HeaderHeight     int
	CollapsedPadding int
	TopSpacing       int
}

// DefaultMetrics returns point-based sizes for a graphical host.
func DefaultMetrics() Metrics {
	return Metrics{
		RowHeight:        40,
		RowSpacing:       10,
		TrailingTrim:     5,
		HeaderHeight:     20,
		CollapsedPadding: 30,
		TopSpacing:       10,
	}
}

// Height returns the display height for rows week rows.
func (m Metrics) Height(rows int, expanded bool) int {
	if !expanded {
		return m.RowHeight + m.CollapsedPadding + m.TopSpacing
	}
	return (m.RowHeight+m.RowSpacing)*rows - m.TrailingTrim + m.TopSpacing + m.HeaderHeight
}

// Layout is the result of a recompute for the current page.
type Layout struct {
	Rows        int
	SelectedRow int
	Height      int
	Expanded    bool
}

// Pager holds the current page, the realized window and the active date.
// Moves that would leave [0, MaxPage] are refused.
type Pager struct {
	origin      calendar.Date
	firstDay    calendar.Weekday
	metrics     Metrics
	current     int
	windowStart int
	active      calendar.Date
	layout      Layout
}

// New returns a pager positioned on today's month with the window centred on
// StartPage.
func New(today calendar.Date, firstDay calendar.Weekday, metrics Metrics) *Pager {
	p := &Pager{
		origin:      today,
		firstDay:    firstDay,
		metrics:     metrics,
		current:     StartPage,
		windowStart: StartPage - WindowSize/2,
		active:      today,
	}
	p.layout = p.Recompute(today, true)
	return p
}

// Current returns the current page index.
func (p *Pager) Current() int { return p.current }

// Active returns the date that the current page is bound to.
func (p *Pager) Active() calendar.Date { return p.active }

// Anchor returns the first day of the current page's month.
func (p *Pager) Anchor() calendar.Date { return p.active.FirstOfMonth() }

// Origin returns the date that StartPage is anchored to.
func (p *Pager) Origin() calendar.Date { return p.origin }

// Layout returns the result of the last recompute.
func (p *Pager) Layout() Layout { return p.layout }

// Metrics returns the sizes used for height computation.
func (p *Pager) Metrics() Metrics { return p.metrics }

// SetFirstDay changes the weekday grids start on.
func (p *Pager) SetFirstDay(first calendar.Weekday) { p.firstDay = first }

// SetMetrics replaces the sizes used for height computation.
func (p *Pager) SetMetrics(m Metrics) { p.metrics = m }

// PageForDate returns the page showing d's month, clamped to the valid range.
func (p *Pager) PageForDate(d calendar.Date) int {
	return clamp(StartPage+calendar.MonthsBetween(p.origin, d), 0, MaxPage)
}

// MonthForPage returns the origin shifted by the page's month offset. The day
// is clamped to the target month's length.
func (p *Pager) MonthForPage(page int) calendar.Date {
	return p.origin.AddMonths(page - StartPage)
}

// Next advances one month. It reports false and does nothing on the last page.
func (p *Pager) Next() bool {
	if p.current >= MaxPage {
		return false
	}
	p.current++
	p.active = p.active.AddMonths(1)
	p.slide()
	return true
}

// Previous goes back one month. It reports false and does nothing on page 0.
func (p *Pager) Previous() bool {
	if p.current <= 0 {
		return false
	}
	p.current--
	p.active = p.active.AddMonths(-1)
	p.slide()
	return true
}

// GoTo jumps to page after clamping it. It reports whether the page changed.
func (p *Pager) GoTo(page int) bool {
	page = clamp(page, 0, MaxPage)
	if page == p.current {
		return false
	}
	p.current = page
	p.active = p.MonthForPage(page)
	p.slide()
	return true
}

// GoToDate jumps to the page showing d and binds the active date to d when
// d's month is within range.
func (p *Pager) GoToDate(d calendar.Date) bool {
	page := p.PageForDate(d)
	changed := page != p.current
	p.current = page
	if p.MonthForPage(page).SameMonth(d) {
		p.active = d
	} else {
		p.active = p.MonthForPage(page)
	}
	p.slide()
	return changed
}

// Window returns the first and last realized page, inclusive.
func (p *Pager) Window() (int, int) {
	return p.windowStart, p.windowStart + WindowSize - 1
}

// Visible returns the realized page indexes in order.
func (p *Pager) Visible() []int {
	pages := make([]int, WindowSize)
	for i := range pages {
		pages[i] = p.windowStart + i
	}
	return pages
}

// Weeks returns the grid of the current page's month.
func (p *Pager) Weeks() [][calendar.DaysPerWeek]calendar.Date {
	return calendar.BuildWeeks(p.Anchor(), p.firstDay)
}

// Recompute derives the selected row and display height for the current
// page. selected outside the grid maps to row 0. Calling it again with the
// same inputs yields the same Layout.
func (p *Pager) Recompute(selected calendar.Date, expanded bool) Layout {
	weeks := p.Weeks()
	row := calendar.RowOf(weeks, selected)
	if row < 0 {
		row = 0
	}
	p.layout = Layout{
		Rows:        len(weeks),
		SelectedRow: row,
		Height:      p.metrics.Height(len(weeks), expanded),
		Expanded:    expanded,
	}
	return p.layout
}

// slide moves the window by the least amount that keeps the current page off
// the window edges, except at the absolute bounds.
func (p *Pager) slide() {
	lo, hi := p.Window()
	switch {
	case p.current <= lo:
		p.windowStart = p.current - 1
	case p.current >= hi:
		p.windowStart = p.current + 1 - (WindowSize - 1)
	}
	p.windowStart = clamp(p.windowStart, 0, MaxPage-WindowSize+1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
