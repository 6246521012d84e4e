// Package tui renders the calendar picker as a bubbletea program.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
	"github.com/alexisbeaulieu97/magicalendar/internal/logger"
	"github.com/alexisbeaulieu97/magicalendar/internal/picker"
	"github.com/alexisbeaulieu97/magicalendar/internal/theme"
)

// Result is what the user settled on when the program exits.
type Result struct {
	Confirmed bool
	Dates     []calendar.Date
}

// Model is the bubbletea model for the interactive picker. The picker it
// drives is shared between copies of the model.
type Model struct {
	picker   *picker.Picker
	theme    theme.Theme
	renderer DayRenderer
	keys     KeyMap
	help     help.Model
	log      *logger.Logger

	cursor     calendar.Date
	detailDay  *calendar.Date
	detail     []calendar.Event
	confirmed  bool
	quitting   bool
	statusLine string

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithRenderer replaces the day cell renderer.
func WithRenderer(r DayRenderer) Option {
	return func(m *Model) {
		if r != nil {
			m.renderer = r
		}
	}
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// WithLogger injects a logger.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// NewModel builds a model around p. The cursor starts on the picker's active
// date and week display mode starts collapsed.
func NewModel(p *picker.Picker, th theme.Theme, opts ...Option) Model {
	m := Model{
		picker:   p,
		theme:    th,
		renderer: DefaultRenderer{},
		keys:     DefaultKeyMap,
		help:     help.New(),
		log:      logger.Nop(),
		cursor:   p.Active(),
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if p.Configuration().DisplayMode == calendar.DisplayWeek {
		p.SetExpanded(false)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Picker exposes the underlying controller.
func (m Model) Picker() *picker.Picker { return m.picker }

// Cursor returns the day under the keyboard cursor.
func (m Model) Cursor() calendar.Date { return m.cursor }

// Result reports whether the user confirmed and the selection at exit.
func (m Model) Result() Result {
	return Result{Confirmed: m.confirmed, Dates: m.picker.Selection().Dates()}
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

// moveCursor shifts the cursor by days and follows it across month pages.
func (m *Model) moveCursor(days int) {
	m.setCursor(m.cursor.AddDays(days))
}

func (m *Model) setCursor(d calendar.Date) {
	m.cursor = d
	if !d.SameMonth(m.picker.Month().Anchor) {
		m.picker.GoToDate(d)
		// GoToDate clamps at the page bounds; keep the cursor on the shown month.
		if !m.cursor.SameMonth(m.picker.Month().Anchor) {
			m.cursor = m.picker.Active()
		}
	}
}
