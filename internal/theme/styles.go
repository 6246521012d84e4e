package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
)

var eventColors = map[calendar.EventColor]lipgloss.Color{
	calendar.ColorRed:    lipgloss.Color("#ef4444"),
	calendar.ColorBlue:   lipgloss.Color("#3b82f6"),
	calendar.ColorGreen:  lipgloss.Color("#22c55e"),
	calendar.ColorOrange: lipgloss.Color("#f97316"),
	calendar.ColorPurple: lipgloss.Color("#a855f7"),
	calendar.ColorPink:   lipgloss.Color("#ec4899"),
	calendar.ColorYellow: lipgloss.Color("#eab308"),
	calendar.ColorGray:   lipgloss.Color("#64748b"),
}

// EventColor maps an event colour onto a terminal colour.
func EventColor(c calendar.EventColor) lipgloss.Color {
	if col, ok := eventColors[c]; ok {
		return col
	}
	return eventColors[calendar.ColorBlue]
}

// DayStyle returns the style for a day cell. Selection wins over today,
// today over out-of-month dimming, and that over weekend colouring.
func (t Theme) DayStyle(day calendar.Day) lipgloss.Style {
	base := t.Typography.Day.apply(lipgloss.NewStyle().Foreground(t.Colors.OnSurface))

	switch {
	case day.IsSelected:
		s := base.Foreground(t.Colors.SelectedForeground).Bold(true)
		if t.SelectedBox == BoxFilled || t.SelectedBox == BoxClear {
			s = s.Background(t.Colors.SelectedBackground)
		}
		return s
	case day.IsToday:
		return base.Foreground(t.Colors.TodayForeground).Background(t.Colors.TodayBackground).Bold(true)
	case !day.IsCurrentMonth:
		return base.Foreground(t.Colors.DisabledForeground).Faint(true)
	case day.IsWeekend:
		return base.Foreground(t.Colors.WeekendForeground)
	default:
		return base
	}
}

// DisabledStyle is used for days that cannot be selected.
func (t Theme) DisabledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Colors.DisabledForeground).Strikethrough(true)
}

// CursorStyle highlights the keyboard cursor on top of a day style.
func (t Theme) CursorStyle(s lipgloss.Style) lipgloss.Style {
	return s.Reverse(true)
}

// BoxFor picks the box for a day: SelectedBox for selected days, DayBox
// otherwise.
func (t Theme) BoxFor(day calendar.Day) DateBoxStyle {
	if day.IsSelected {
		return t.SelectedBox
	}
	return t.DayBox
}

// Frame wraps a day number in box. Every box is four cells wide.
func Frame(box DateBoxStyle, number int) string {
	n := fmt.Sprintf("%2d", number)
	switch box {
	case BoxBracketed:
		return "[" + n + "]"
	case BoxParenthesized:
		return "(" + n + ")"
	case BoxDotted:
		return "·" + n + "·"
	default:
		return " " + n + " "
	}
}

// Marker renders the event marker for evts, or spaces of the same width
// when there are none.
func (t Theme) Marker(evts []calendar.Event) string {
	size := t.Sizing.EventIndicatorSize
	if size < 1 {
		size = 1
	}
	if len(evts) == 0 {
		return strings.Repeat(" ", size)
	}

	switch t.Indicator {
	case IndicatorBadge:
		label := fmt.Sprintf("%d", len(evts))
		if len(label) > size {
			label = strings.Repeat("+", size)
		}
		badge := lipgloss.NewStyle().Foreground(t.Colors.EventIndicator).Bold(true).Render(label)
		return badge + strings.Repeat(" ", size-len(label))
	case IndicatorBar:
		return lipgloss.NewStyle().Foreground(t.Colors.EventIndicator).Render(strings.Repeat("▏", size))
	default:
		var b strings.Builder
		for i := 0; i < size; i++ {
			if i >= len(evts) {
				b.WriteString(" ")
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(EventColor(evts[i].Color)).Render("•"))
		}
		return b.String()
	}
}

// WeekdayStyle is used for the weekday header row.
func (t Theme) WeekdayStyle(wd calendar.Weekday) lipgloss.Style {
	s := t.Typography.Weekday.apply(lipgloss.NewStyle().Foreground(t.Colors.Secondary))
	if wd == calendar.Saturday || wd == calendar.Sunday {
		s = s.Foreground(t.Colors.WeekendForeground)
	}
	return s
}

// EventStyle is used for event titles in lists.
func (t Theme) EventStyle(e calendar.Event) lipgloss.Style {
	return t.Typography.Event.apply(lipgloss.NewStyle().Foreground(EventColor(e.Color)))
}

// HeaderLine renders the month title and navigation buttons across width cells.
func (t Theme) HeaderLine(title string, width int) string {
	text := t.Typography.Header.apply(lipgloss.NewStyle().Foreground(t.Colors.Primary)).Render(title)
	if t.Header == HeaderNone {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
	}

	buttons := lipgloss.NewStyle().Foreground(t.Colors.Secondary)
	prev, next := buttons.Render("‹"), buttons.Render("›")
	inner := width - 4
	if inner < lipgloss.Width(text) {
		inner = lipgloss.Width(text)
	}

	switch t.Header {
	case HeaderStart:
		return lipgloss.PlaceHorizontal(inner, lipgloss.Left, text) + " " + prev + " " + next
	case HeaderEnd:
		return prev + " " + next + " " + lipgloss.PlaceHorizontal(inner, lipgloss.Right, text)
	default:
		return prev + " " + lipgloss.PlaceHorizontal(inner, lipgloss.Center, text) + " " + next
	}
}

// Container frames the rendered calendar body according to the sizing
// table. A zero border width renders no border.
func (t Theme) Container() lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, t.Spacing.Small)
	if t.Sizing.BorderWidth <= 0 {
		return s
	}
	border := lipgloss.NormalBorder()
	switch {
	case t.Sizing.CornerRadius >= 2:
		border = lipgloss.DoubleBorder()
	case t.Sizing.CornerRadius == 1:
		border = lipgloss.RoundedBorder()
	}
	if t.Sizing.BorderWidth > 1 {
		border = lipgloss.ThickBorder()
	}
	return s.BorderStyle(border).BorderForeground(t.Colors.Border)
}
