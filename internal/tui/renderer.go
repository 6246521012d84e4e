package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
	"github.com/alexisbeaulieu97/magicalendar/internal/theme"
)

// DayRenderer draws one day cell. Hosts inject their own to change how days
// look; the model adds cursor and disabled highlighting on top.
type DayRenderer interface {
	RenderDay(day calendar.Day, th theme.Theme) string
}

// DayRendererFunc adapts a function to DayRenderer.
type DayRendererFunc func(day calendar.Day, th theme.Theme) string

// RenderDay implements DayRenderer.
func (f DayRendererFunc) RenderDay(day calendar.Day, th theme.Theme) string {
	return f(day, th)
}

// DefaultRenderer frames the day number according to the theme's box style
// and appends the event marker.
type DefaultRenderer struct{}

// RenderDay implements DayRenderer.
func (DefaultRenderer) RenderDay(day calendar.Day, th theme.Theme) string {
	content := theme.Frame(th.BoxFor(day), day.Number) + th.Marker(day.Events)
	width := th.Sizing.DaySize
	if w := lipgloss.Width(content); w > width {
		width = w
	}
	return th.DayStyle(day).Width(width).Align(lipgloss.Center).Render(content)
}
