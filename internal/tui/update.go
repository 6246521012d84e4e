package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.picker
	m.statusLine = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		m.confirmed = true
		m.quitting = true
		m.log.Info("selection confirmed", "count", p.Selection().Len())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Close):
		m.detailDay, m.detail = nil, nil
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.PrevMonth):
		if p.Previous() {
			m.cursor = keepDay(m.cursor, p.Active())
		} else {
			m.statusLine = "first page reached"
		}
	case key.Matches(msg, m.keys.NextMonth):
		if p.Next() {
			m.cursor = keepDay(m.cursor, p.Active())
		} else {
			m.statusLine = "last page reached"
		}
	case key.Matches(msg, m.keys.Today):
		p.GoToToday()
		m.cursor = p.Today()
	case key.Matches(msg, m.keys.Select):
		if !p.Tap(m.cursor) && !p.CanSelect(m.cursor) {
			m.statusLine = fmt.Sprintf("%s cannot be selected", m.cursor)
		}
	case key.Matches(msg, m.keys.Details):
		d := m.cursor
		m.detailDay = &d
		m.detail = p.LongPress(d)
	case key.Matches(msg, m.keys.Collapse):
		p.ToggleExpanded()
	case key.Matches(msg, m.keys.Mode):
		cfg := p.Configuration()
		p.UpdateConfiguration(cfg.WithSelectionMode(cfg.SelectionMode.Next()))
		m.statusLine = "selection mode: " + p.Configuration().SelectionMode.String()
	}
	return m, nil
}

// keepDay moves d into target's month, keeping d's day where the month is
// long enough.
func keepDay(d, target calendar.Date) calendar.Date {
	return d.AddMonths(calendar.MonthsBetween(d, target))
}
