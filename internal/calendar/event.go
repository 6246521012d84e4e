package calendar

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// EventColor is a color tag attached to an event. Rendering maps it to an
// actual color through the active theme.
type EventColor int

const (
	ColorBlue EventColor = iota
	ColorRed
	ColorGreen
	ColorOrange
	ColorPurple
	ColorPink
	ColorYellow
	ColorGray
)

// AllEventColors lists every color tag in declaration order.
var AllEventColors = []EventColor{ColorRed, ColorBlue, ColorGreen, ColorOrange, ColorPurple, ColorPink, ColorYellow, ColorGray}

func (c EventColor) Name() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorOrange:
		return "orange"
	case ColorPurple:
		return "purple"
	case ColorPink:
		return "pink"
	case ColorYellow:
		return "yellow"
	case ColorGray:
		return "gray"
	default:
		return "blue"
	}
}

func (c EventColor) String() string { return c.Name() }

// ParseEventColor resolves a color name. The empty string maps to blue.
func ParseEventColor(value string) (EventColor, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return ColorBlue, nil
	}
	if v == "grey" {
		return ColorGray, nil
	}
	for _, c := range AllEventColors {
		if c.Name() == v {
			return c, nil
		}
	}
	return ColorBlue, fmt.Errorf("unknown event color %q", value)
}

// EventType classifies an event.
type EventType int

const (
	TypeEvent EventType = iota
	TypeReminder
	TypeBirthday
	TypeHoliday
	TypeMeeting
)

// AllEventTypes lists every event type in declaration order.
var AllEventTypes = []EventType{TypeEvent, TypeReminder, TypeBirthday, TypeHoliday, TypeMeeting}

func (t EventType) Name() string {
	switch t {
	case TypeReminder:
		return "Reminder"
	case TypeBirthday:
		return "Birthday"
	case TypeHoliday:
		return "Holiday"
	case TypeMeeting:
		return "Meeting"
	default:
		return "Event"
	}
}

func (t EventType) String() string { return t.Name() }

// ParseEventType resolves a type name case-insensitively. The empty string
// maps to TypeEvent.
func ParseEventType(value string) (EventType, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return TypeEvent, nil
	}
	for _, t := range AllEventTypes {
		if strings.EqualFold(t.Name(), v) {
			return t, nil
		}
	}
	return TypeEvent, fmt.Errorf("unknown event type %q", value)
}

// Event is a day-granularity annotation owned by the host's event store.
type Event struct {
	ID    string
	Title string
	Date  Date
	Color EventColor
	Type  EventType
}

// NewEvent creates an event with a fresh identity.
func NewEvent(title string, date Date, color EventColor, typ EventType) Event {
	return Event{
		ID:    uuid.NewString(),
		Title: title,
		Date:  date,
		Color: color,
		Type:  typ,
	}
}
