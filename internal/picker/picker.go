// Package picker ties configuration, selection, events and paging together
// and regenerates the visible month after every change.
package picker

import (
	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
	"github.com/alexisbeaulieu97/magicalendar/internal/events"
	"github.com/alexisbeaulieu97/magicalendar/internal/logger"
	"github.com/alexisbeaulieu97/magicalendar/internal/pager"
	"github.com/alexisbeaulieu97/magicalendar/internal/selection"
)

// Hooks are host callbacks. Each is optional and runs synchronously after
// the picker state has been regenerated.
type Hooks struct {
	OnDateSelected     func(calendar.Date)
	OnDateLongPress    func(calendar.Date)
	OnSelectionChanged func(selection.State)
	OnEventsChanged    func()
	OnPageChanged      func(page int, anchor calendar.Date)
}

// Picker is the calendar controller. It is not safe for concurrent use.
type Picker struct {
	config    calendar.Configuration
	selection selection.State
	store     *events.Store
	pager     *pager.Pager
	clock     calendar.Clock
	log       *logger.Logger
	hooks     Hooks
	metrics   pager.Metrics
	expanded  bool
	focus     *calendar.Date

	today  calendar.Date
	month  calendar.Month
	layout pager.Layout
}

// Option configures a Picker.
type Option func(*Picker)

// WithConfiguration sets the initial configuration.
func WithConfiguration(cfg calendar.Configuration) Option {
	return func(p *Picker) {
		p.config = cfg
	}
}

// WithClock overrides the source of "today".
func WithClock(c calendar.Clock) Option {
	return func(p *Picker) {
		p.clock = c
	}
}

// WithLogger injects a logger.
func WithLogger(log *logger.Logger) Option {
	return func(p *Picker) {
		p.log = log
	}
}

// WithStore shares an existing event store.
func WithStore(s *events.Store) Option {
	return func(p *Picker) {
		p.store = s
	}
}

// WithEvents seeds the event store.
func WithEvents(evts ...calendar.Event) Option {
	return func(p *Picker) {
		if p.store == nil {
			p.store = events.NewStore()
		}
		for _, e := range evts {
			p.store.Add(e)
		}
	}
}

// WithHooks installs host callbacks.
func WithHooks(h Hooks) Option {
	return func(p *Picker) {
		p.hooks = h
	}
}

// WithMetrics sets the sizes used for layout height.
func WithMetrics(m pager.Metrics) Option {
	return func(p *Picker) {
		p.metrics = m
	}
}

// WithExpanded sets whether the picker starts expanded to the full month.
func WithExpanded(expanded bool) Option {
	return func(p *Picker) {
		p.expanded = expanded
	}
}

// New builds a picker on today's month.
func New(opts ...Option) *Picker {
	p := &Picker{
		config:   calendar.DefaultConfiguration(),
		clock:    calendar.SystemClock{},
		log:      logger.Nop(),
		metrics:  pager.DefaultMetrics(),
		expanded: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.store == nil {
		p.store = events.NewStore()
	}

	p.today = calendar.Today(p.clock)
	p.pager = pager.New(p.today, p.config.WeekStart(), p.metrics)
	p.regenerate()
	return p
}

// Tap applies the selection policy to d. OnDateSelected fires for every tap;
// OnSelectionChanged only when the selection actually changed. It reports
// whether the selection changed.
func (p *Picker) Tap(d calendar.Date) bool {
	next := selection.Select(d, p.selection, p.config, p.today)
	changed := !next.Equal(p.selection)
	if changed {
		p.selection = next
		p.focus = &d
	}
	p.regenerate()

	p.log.Debug("date tapped", "date", d.String(), "mode", p.config.SelectionMode.String(), "changed", changed, "selected", p.selection.Len())
	if p.hooks.OnDateSelected != nil {
		p.hooks.OnDateSelected(d)
	}
	if changed && p.hooks.OnSelectionChanged != nil {
		p.hooks.OnSelectionChanged(p.selection)
	}
	return changed
}

// LongPress notifies the host and returns the events on d.
func (p *Picker) LongPress(d calendar.Date) []calendar.Event {
	p.log.Debug("date long pressed", "date", d.String())
	if p.hooks.OnDateLongPress != nil {
		p.hooks.OnDateLongPress(d)
	}
	return p.store.EventsOn(d)
}

// ClearSelection empties the selection.
func (p *Picker) ClearSelection() {
	if p.selection.IsEmpty() {
		return
	}
	p.selection = selection.State{}
	p.focus = nil
	p.regenerate()
	if p.hooks.OnSelectionChanged != nil {
		p.hooks.OnSelectionChanged(p.selection)
	}
}

// AddEvent records e and regenerates the month.
func (p *Picker) AddEvent(e calendar.Event) {
	p.store.Add(e)
	p.regenerate()
	p.log.Debug("event added", "id", e.ID, "date", e.Date.String())
	if p.hooks.OnEventsChanged != nil {
		p.hooks.OnEventsChanged()
	}
}

// RemoveEvent deletes the event with id. It reports whether it existed.
func (p *Picker) RemoveEvent(id string) bool {
	if _, ok := p.store.Remove(id); !ok {
		return false
	}
	p.regenerate()
	p.log.Debug("event removed", "id", id)
	if p.hooks.OnEventsChanged != nil {
		p.hooks.OnEventsChanged()
	}
	return true
}

// UpdateConfiguration replaces the configuration and clears the selection.
func (p *Picker) UpdateConfiguration(cfg calendar.Configuration) {
	hadSelection := !p.selection.IsEmpty()
	p.config = cfg
	p.selection = selection.State{}
	p.focus = nil
	p.pager.SetFirstDay(cfg.WeekStart())
	p.regenerate()

	p.log.Debug("configuration replaced", "mode", cfg.SelectionMode.String(), "first_day", cfg.WeekStart().String())
	if hadSelection && p.hooks.OnSelectionChanged != nil {
		p.hooks.OnSelectionChanged(p.selection)
	}
}

// Next shows the following month. It reports false at the last page.
func (p *Picker) Next() bool { return p.navigate(p.pager.Next()) }

// Previous shows the preceding month. It reports false at the first page.
func (p *Picker) Previous() bool { return p.navigate(p.pager.Previous()) }

// GoToPage jumps to page, clamped to the valid range.
func (p *Picker) GoToPage(page int) bool { return p.navigate(p.pager.GoTo(page)) }

// GoToDate shows d's month.
func (p *Picker) GoToDate(d calendar.Date) bool { return p.navigate(p.pager.GoToDate(d)) }

// GoToToday shows the current month.
func (p *Picker) GoToToday() bool { return p.GoToDate(calendar.Today(p.clock)) }

func (p *Picker) navigate(moved bool) bool {
	if !moved {
		return false
	}
	p.regenerate()
	page, anchor := p.pager.Current(), p.pager.Anchor()
	p.log.Debug("page changed", "page", page, "month", p.month.Title())
	if p.hooks.OnPageChanged != nil {
		p.hooks.OnPageChanged(page, anchor)
	}
	return true
}

// ToggleExpanded switches between the full month and the single selected
// row and returns the new state.
func (p *Picker) ToggleExpanded() bool {
	p.SetExpanded(!p.expanded)
	return p.expanded
}

// SetExpanded sets the expanded state.
func (p *Picker) SetExpanded(expanded bool) {
	if p.expanded == expanded {
		return
	}
	p.expanded = expanded
	p.regenerate()
}

// SetMetrics changes the sizes used for layout height.
func (p *Picker) SetMetrics(m pager.Metrics) {
	p.metrics = m
	p.pager.SetMetrics(m)
	p.regenerate()
}

func (p *Picker) Month() calendar.Month                 { return p.month }
func (p *Picker) Layout() pager.Layout                  { return p.layout }
func (p *Picker) Selection() selection.State            { return p.selection }
func (p *Picker) Configuration() calendar.Configuration { return p.config }
func (p *Picker) Page() int                             { return p.pager.Current() }
func (p *Picker) Visible() []int                        { return p.pager.Visible() }
func (p *Picker) Active() calendar.Date                 { return p.pager.Active() }
func (p *Picker) Today() calendar.Date                  { return p.today }
func (p *Picker) Expanded() bool                        { return p.expanded }
func (p *Picker) Store() *events.Store                  { return p.store }

// CanSelect reports whether a tap on d could change the selection.
func (p *Picker) CanSelect(d calendar.Date) bool {
	return p.config.SelectionMode != calendar.SelectNone && selection.CanSelect(d, p.config, p.today)
}

// MonthAt assembles the month shown on page without navigating to it.
func (p *Picker) MonthAt(page int) calendar.Month {
	anchor := p.pager.MonthForPage(page).FirstOfMonth()
	return calendar.AssembleMonth(anchor, p.config, p.selection, p.store, p.today)
}

// regenerate rebuilds the month and layout from the current state.
func (p *Picker) regenerate() {
	p.today = calendar.Today(p.clock)
	p.month = calendar.AssembleMonth(p.pager.Anchor(), p.config, p.selection, p.store, p.today)
	p.layout = p.pager.Recompute(p.focusDate(), p.expanded)
}

// focusDate is the last tapped date when it lies on the current grid, else
// the pager's active date.
func (p *Picker) focusDate() calendar.Date {
	if p.focus != nil && p.month.Row(*p.focus) >= 0 {
		return *p.focus
	}
	return p.pager.Active()
}
