package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
	"github.com/alexisbeaulieu97/magicalendar/internal/selection"
)

const weekNumberWidth = 4

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.theme.Container().Render(m.renderCalendar()))

	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	if m.detailDay != nil {
		sections = append(sections, m.renderDetail())
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderMonth renders the calendar body without status, detail or help.
// Non-interactive commands print this.
func (m Model) RenderMonth() string {
	return m.theme.Container().Render(m.renderCalendar())
}

func (m Model) renderCalendar() string {
	month := m.picker.Month()
	cfg := m.picker.Configuration()

	var lines []string
	lines = append(lines, m.theme.HeaderLine(month.Title(), m.gridWidth()))
	for i := 0; i < m.theme.Spacing.HeaderSpacing; i++ {
		lines = append(lines, "")
	}

	if cfg.DisplayMode == calendar.DisplayAgenda {
		lines = append(lines, m.renderAgenda(month))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, m.renderWeekdays(cfg))
	for i, row := range m.visibleRows(month) {
		if i > 0 {
			for s := 0; s < m.theme.Spacing.WeekSpacing; s++ {
				lines = append(lines, "")
			}
		}
		lines = append(lines, m.renderWeek(month.Weeks[row], cfg))
	}
	return strings.Join(lines, "\n")
}

// visibleRows is every row when expanded, otherwise the row holding the
// cursor or the layout's selected row.
func (m Model) visibleRows(month calendar.Month) []int {
	if m.picker.Expanded() {
		rows := make([]int, len(month.Weeks))
		for i := range rows {
			rows[i] = i
		}
		return rows
	}
	row := month.Row(m.cursor)
	if row < 0 {
		row = m.picker.Layout().SelectedRow
	}
	if row >= len(month.Weeks) {
		row = 0
	}
	return []int{row}
}

func (m Model) gridWidth() int {
	w := calendar.DaysPerWeek*m.theme.Sizing.DaySize + (calendar.DaysPerWeek-1)*m.theme.Spacing.DaySpacing
	if m.picker.Configuration().ShowWeekNumbers {
		w += weekNumberWidth
	}
	return w
}

func (m Model) renderWeekdays(cfg calendar.Configuration) string {
	cells := make([]string, 0, calendar.DaysPerWeek+1)
	if cfg.ShowWeekNumbers {
		cells = append(cells, weekNumberStyle.Width(weekNumberWidth).Render("Wk"))
	}
	for _, wd := range calendar.OrderedFrom(cfg.WeekStart()) {
		cells = append(cells, m.theme.WeekdayStyle(wd).
			Width(m.theme.Sizing.DaySize).
			Align(lipgloss.Center).
			Render(wd.ShortName()[:2]))
	}
	return m.joinCells(cells, cfg.ShowWeekNumbers)
}

func (m Model) renderWeek(week calendar.Week, cfg calendar.Configuration) string {
	cells := make([]string, 0, calendar.DaysPerWeek+1)
	if cfg.ShowWeekNumbers {
		cells = append(cells, weekNumberStyle.Width(weekNumberWidth).Render(fmt.Sprintf("%2d", isoWeek(week))))
	}
	for _, day := range week {
		cells = append(cells, m.renderDay(day))
	}
	return m.joinCells(cells, cfg.ShowWeekNumbers)
}

func (m Model) joinCells(cells []string, leading bool) string {
	sep := strings.Repeat(" ", m.theme.Spacing.DaySpacing)
	if leading && len(cells) > 0 {
		return cells[0] + strings.Join(cells[1:], sep)
	}
	return strings.Join(cells, sep)
}

// renderDay runs the injected renderer and overlays cursor and disabled
// highlighting.
func (m Model) renderDay(day calendar.Day) string {
	cell := m.renderer.RenderDay(day, m.theme)

	cfg := m.picker.Configuration()
	switch {
	case day.Date == m.cursor:
		return m.theme.CursorStyle(lipgloss.NewStyle()).Render(ansi.Strip(cell))
	case day.IsCurrentMonth && !selection.CanSelect(day.Date, cfg, m.picker.Today()):
		return m.theme.DisabledStyle().Render(ansi.Strip(cell))
	default:
		return cell
	}
}

func (m Model) renderAgenda(month calendar.Month) string {
	evts := m.picker.Store().Month(month.Anchor)
	if len(evts) == 0 {
		return mutedStyle.Render("No events this month")
	}

	var lines []string
	var last calendar.Date
	for _, e := range evts {
		if e.Date != last {
			marker := "  "
			if e.Date == m.cursor {
				marker = "> "
			}
			lines = append(lines, marker+dateStyle.Render(formatDay(e.Date)))
			last = e.Date
		}
		lines = append(lines, "    "+m.theme.EventStyle(e).Render("• "+e.Title)+mutedStyle.Render(" ("+e.Type.Name()+")"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	var parts []string
	cfg := m.picker.Configuration()
	parts = append(parts, "mode: "+cfg.SelectionMode.String())
	if sel := describeSelection(m.picker.Selection()); sel != "" {
		parts = append(parts, sel)
	}
	if m.statusLine != "" {
		parts = append(parts, m.statusLine)
	}
	return mutedStyle.Render(strings.Join(parts, " · "))
}

func (m Model) renderDetail() string {
	title := sectionStyle.Render(formatDay(*m.detailDay))
	if len(m.detail) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render("  no events"))
	}
	lines := []string{title}
	for _, e := range m.detail {
		lines = append(lines, "  "+m.theme.EventStyle(e).Render("• "+e.Title)+mutedStyle.Render(" ("+e.Type.Name()+", "+e.Color.Name()+")"))
	}
	return strings.Join(lines, "\n")
}

func describeSelection(s selection.State) string {
	switch s.Len() {
	case 0:
		return ""
	case 1:
		d, _ := s.First()
		return "selected: " + d.String()
	}
	lo, hi, _ := s.Bounds()
	if s.IsContiguous() {
		return fmt.Sprintf("selected: %s → %s (%d days)", lo, hi, s.Len())
	}
	return fmt.Sprintf("selected: %d days", s.Len())
}

func formatDay(d calendar.Date) string {
	return d.Time(time.UTC).Format("Mon Jan 2, 2006")
}

// isoWeek numbers a grid row by the ISO week of its Monday.
func isoWeek(week calendar.Week) int {
	for _, day := range week {
		if day.Date.Weekday() == calendar.Monday {
			_, w := day.Date.Time(time.UTC).ISOWeek()
			return w
		}
	}
	return 0
}
