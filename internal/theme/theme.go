// Package theme holds the immutable style tables the calendar renders with.
// Core packages never branch on a theme; only renderers read it.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors are the semantic colour slots of a theme.
type Colors struct {
	Primary            lipgloss.AdaptiveColor
	Secondary          lipgloss.AdaptiveColor
	Background         lipgloss.AdaptiveColor
	Surface            lipgloss.AdaptiveColor
	OnPrimary          lipgloss.AdaptiveColor
	OnSecondary        lipgloss.AdaptiveColor
	OnBackground       lipgloss.AdaptiveColor
	OnSurface          lipgloss.AdaptiveColor
	SelectedBackground lipgloss.AdaptiveColor
	SelectedForeground lipgloss.AdaptiveColor
	TodayBackground    lipgloss.AdaptiveColor
	TodayForeground    lipgloss.AdaptiveColor
	WeekendForeground  lipgloss.AdaptiveColor
	DisabledForeground lipgloss.AdaptiveColor
	EventIndicator     lipgloss.AdaptiveColor
	Border             lipgloss.AdaptiveColor
}

// TextStyle is the emphasis applied to one kind of text.
type TextStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
}

func (ts TextStyle) apply(s lipgloss.Style) lipgloss.Style {
	return s.Bold(ts.Bold).Italic(ts.Italic).Underline(ts.Underline)
}

// Typography groups text emphasis per element.
type Typography struct {
	Header  TextStyle
	Day     TextStyle
	Weekday TextStyle
	Event   TextStyle
}

// Spacing values are in terminal cells or lines.
type Spacing struct {
	Small         int
	Medium        int
	Large         int
	DaySpacing    int
	WeekSpacing   int
	HeaderSpacing int
}

// Sizing values are in terminal cells.
type Sizing struct {
	DaySize            int
	EventIndicatorSize int
	CornerRadius       int
	BorderWidth        int
}

// DateBoxStyle is how a day number is framed.
type DateBoxStyle int

const (
	BoxClear DateBoxStyle = iota
	BoxFilled
	BoxBracketed
	BoxParenthesized
	BoxDotted
)

var dateBoxNames = map[DateBoxStyle]string{
	BoxClear:         "clear",
	BoxFilled:        "filled",
	BoxBracketed:     "bracketed",
	BoxParenthesized: "parenthesized",
	BoxDotted:        "dotted",
}

func (b DateBoxStyle) String() string { return dateBoxNames[b] }

// ParseDateBoxStyle resolves a box style name.
func ParseDateBoxStyle(value string) (DateBoxStyle, error) {
	for b, name := range dateBoxNames {
		if strings.EqualFold(name, strings.TrimSpace(value)) {
			return b, nil
		}
	}
	return BoxClear, fmt.Errorf("unknown date box style %q", value)
}

// EventIndicator is how a day's events are marked.
type EventIndicator int

const (
	IndicatorDot EventIndicator = iota
	IndicatorBadge
	IndicatorBar
)

func (e EventIndicator) String() string {
	switch e {
	case IndicatorBadge:
		return "badge"
	case IndicatorBar:
		return "bar"
	default:
		return "dot"
	}
}

// HeaderStyle positions the month title and decides whether navigation
// buttons are shown.
type HeaderStyle int

const (
	HeaderCenter HeaderStyle = iota
	HeaderStart
	HeaderEnd
	HeaderNone
)

// ParseHeaderStyle accepts center, start, end and none.
func ParseHeaderStyle(value string) (HeaderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "center":
		return HeaderCenter, nil
	case "start":
		return HeaderStart, nil
	case "end":
		return HeaderEnd, nil
	case "none":
		return HeaderNone, nil
	default:
		return HeaderCenter, fmt.Errorf("unknown header style %q", value)
	}
}

func (h HeaderStyle) String() string {
	switch h {
	case HeaderStart:
		return "start"
	case HeaderEnd:
		return "end"
	case HeaderNone:
		return "none"
	default:
		return "center"
	}
}

// Theme is a complete, immutable style table. Copy and modify a preset to
// build a custom one.
type Theme struct {
	Name        string
	Colors      Colors
	Typography  Typography
	Spacing     Spacing
	Sizing      Sizing
	DayBox      DateBoxStyle
	SelectedBox DateBoxStyle
	Indicator   EventIndicator
	Header      HeaderStyle
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Default is the light-on-dark adaptive theme.
func Default() Theme {
	return Theme{
		Name: "default",
		Colors: Colors{
			Primary:            ac("#3b82f6", "#60a5fa"),
			Secondary:          ac("#a855f7", "#c084fc"),
			Background:         ac("#ffffff", "#0b1120"),
			Surface:            ac("#f9fafb", "#111827"),
			OnPrimary:          ac("#f8fafc", "#0b1120"),
			OnSecondary:        ac("#f8fafc", "#1f2937"),
			OnBackground:       ac("#111827", "#f9fafb"),
			OnSurface:          ac("#111827", "#e5e7eb"),
			SelectedBackground: ac("#3b82f6", "#60a5fa"),
			SelectedForeground: ac("#f8fafc", "#0b1120"),
			TodayBackground:    ac("#dbeafe", "#1e3a8a"),
			TodayForeground:    ac("#1d4ed8", "#bfdbfe"),
			WeekendForeground:  ac("#dc2626", "#f87171"),
			DisabledForeground: ac("#cbd5e1", "#475569"),
			EventIndicator:     ac("#ef4444", "#f87171"),
			Border:             ac("#e2e8f0", "#334155"),
		},
		Typography: Typography{
			Header:  TextStyle{Bold: true},
			Weekday: TextStyle{Bold: true},
		},
		Spacing:     Spacing{Small: 1, Medium: 2, Large: 3, DaySpacing: 0, WeekSpacing: 0, HeaderSpacing: 1},
		Sizing:      Sizing{DaySize: 6, EventIndicatorSize: 2, CornerRadius: 1, BorderWidth: 1},
		DayBox:      BoxClear,
		SelectedBox: BoxFilled,
		Indicator:   IndicatorDot,
		Header:      HeaderCenter,
	}
}

// Dark forces dark surfaces regardless of the terminal background.
func Dark() Theme {
	t := Default()
	t.Name = "dark"
	t.Colors.Background = ac("#0b1120", "#0b1120")
	t.Colors.Surface = ac("#111827", "#111827")
	t.Colors.OnBackground = ac("#f9fafb", "#f9fafb")
	t.Colors.OnSurface = ac("#e5e7eb", "#e5e7eb")
	t.Colors.SelectedBackground = ac("#818cf8", "#818cf8")
	t.Colors.SelectedForeground = ac("#0b1120", "#0b1120")
	t.Colors.TodayBackground = ac("#312e81", "#312e81")
	t.Colors.TodayForeground = ac("#e0e7ff", "#e0e7ff")
	t.Colors.DisabledForeground = ac("#475569", "#475569")
	t.Colors.Border = ac("#334155", "#334155")
	return t
}

// Minimal drops borders, colour fills and event dots in favour of brackets.
func Minimal() Theme {
	t := Default()
	t.Name = "minimal"
	t.Colors.WeekendForeground = t.Colors.OnSurface
	t.Colors.TodayBackground = ac("", "")
	t.Colors.SelectedBackground = ac("", "")
	t.Colors.SelectedForeground = t.Colors.OnSurface
	t.Typography = Typography{Header: TextStyle{Underline: true}}
	t.Sizing = Sizing{DaySize: 5, EventIndicatorSize: 1}
	t.SelectedBox = BoxBracketed
	t.Indicator = IndicatorBar
	t.Header = HeaderStart
	return t
}

// Colorful uses saturated fills and numeric event badges.
func Colorful() Theme {
	t := Default()
	t.Name = "colorful"
	t.Colors.Primary = ac("#db2777", "#f472b6")
	t.Colors.Secondary = ac("#0891b2", "#22d3ee")
	t.Colors.SelectedBackground = ac("#db2777", "#f472b6")
	t.Colors.SelectedForeground = ac("#fdf2f8", "#1f2937")
	t.Colors.TodayBackground = ac("#fef3c7", "#854d0e")
	t.Colors.TodayForeground = ac("#a16207", "#fde68a")
	t.Colors.WeekendForeground = ac("#7c3aed", "#c084fc")
	t.Colors.EventIndicator = ac("#16a34a", "#4ade80")
	t.Colors.Border = ac("#f472b6", "#db2777")
	t.Typography.Day = TextStyle{Bold: true}
	t.Typography.Event = TextStyle{Italic: true}
	t.SelectedBox = BoxParenthesized
	t.Indicator = IndicatorBadge
	t.Sizing.CornerRadius = 2
	return t
}

var presets = map[string]func() Theme{
	"default":  Default,
	"dark":     Dark,
	"minimal":  Minimal,
	"colorful": Colorful,
}

// Lookup returns the preset with the given name. An empty name selects the
// default theme.
func Lookup(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Default(), nil
	}
	build, ok := presets[key]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// Names lists the preset names in order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
