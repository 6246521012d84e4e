package config

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
)

// Config represents the full magicalendar configuration document.
type Config struct {
	Calendar    CalendarSettings `yaml:"calendar"`
	Theme       string           `yaml:"theme,omitempty" validate:"omitempty,oneof=default dark minimal colorful"`
	HeaderStyle string           `yaml:"header_style,omitempty" validate:"omitempty,oneof=center start end none"`
	Events      []EventSpec      `yaml:"events,omitempty" validate:"omitempty,dive"`
	ICS         []string         `yaml:"ics,omitempty" validate:"omitempty,dive,required"`
	Log         LogSettings      `yaml:"log,omitempty"`
}

// CalendarSettings mirrors calendar.Configuration with string-typed values.
type CalendarSettings struct {
	SelectionMode        string `yaml:"selection_mode,omitempty" validate:"omitempty,oneof=single multiple range none"`
	DisplayMode          string `yaml:"display_mode,omitempty" validate:"omitempty,oneof=month week agenda"`
	FirstDayOfWeek       string `yaml:"first_day_of_week,omitempty" validate:"omitempty,weekday"`
	ShowWeekNumbers      bool   `yaml:"show_week_numbers,omitempty"`
	AllowPastSelection   *bool  `yaml:"allow_past_selection,omitempty"`
	AllowFutureSelection *bool  `yaml:"allow_future_selection,omitempty"`
	MinimumDate          string `yaml:"minimum_date,omitempty" validate:"omitempty,civil_date"`
	MaximumDate          string `yaml:"maximum_date,omitempty" validate:"omitempty,civil_date"`
}

// EventSpec is an event declared inline in the config file.
type EventSpec struct {
	Title string `yaml:"title" validate:"required,max=200"`
	Date  string `yaml:"date" validate:"required,civil_date"`
	Color string `yaml:"color,omitempty" validate:"omitempty,event_color"`
	Type  string `yaml:"type,omitempty" validate:"omitempty,event_type"`
}

// LogSettings controls diagnostic output.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Default returns an in-memory default configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Normalize()
	return cfg
}

// Normalize fills in missing values with defaults. Values that are present
// are lower-cased but otherwise left for validation.
func (c *Config) Normalize() {
	s := &c.Calendar
	s.SelectionMode = lowerOr(s.SelectionMode, "single")
	s.DisplayMode = lowerOr(s.DisplayMode, "month")
	s.FirstDayOfWeek = lowerOr(s.FirstDayOfWeek, "sunday")
	s.MinimumDate = strings.TrimSpace(s.MinimumDate)
	s.MaximumDate = strings.TrimSpace(s.MaximumDate)
	if s.AllowPastSelection == nil {
		s.AllowPastSelection = boolPtr(true)
	}
	if s.AllowFutureSelection == nil {
		s.AllowFutureSelection = boolPtr(true)
	}

	c.Theme = lowerOr(c.Theme, "default")
	c.HeaderStyle = lowerOr(c.HeaderStyle, "center")
	c.Log.Level = lowerOr(c.Log.Level, "info")
}

// CalendarConfiguration converts the validated settings. Call Normalize and
// ValidateConfig first; malformed values are reported as errors.
func (c *Config) CalendarConfiguration() (calendar.Configuration, error) {
	s := c.Calendar
	cfg := calendar.DefaultConfiguration()

	var err error
	if cfg.SelectionMode, err = calendar.ParseSelectionMode(s.SelectionMode); err != nil {
		return cfg, err
	}
	if cfg.DisplayMode, err = calendar.ParseDisplayMode(s.DisplayMode); err != nil {
		return cfg, err
	}
	if cfg.FirstDayOfWeek, err = calendar.ParseWeekday(s.FirstDayOfWeek); err != nil {
		return cfg, err
	}
	cfg.ShowWeekNumbers = s.ShowWeekNumbers
	if s.AllowPastSelection != nil {
		cfg.AllowPastSelection = *s.AllowPastSelection
	}
	if s.AllowFutureSelection != nil {
		cfg.AllowFutureSelection = *s.AllowFutureSelection
	}

	if cfg.MinimumDate, err = optionalDate(s.MinimumDate); err != nil {
		return cfg, fmt.Errorf("minimum_date: %w", err)
	}
	if cfg.MaximumDate, err = optionalDate(s.MaximumDate); err != nil {
		return cfg, fmt.Errorf("maximum_date: %w", err)
	}
	return cfg, nil
}

// SeedEvents converts the inline events.
func (c *Config) SeedEvents() ([]calendar.Event, error) {
	out := make([]calendar.Event, 0, len(c.Events))
	for i, spec := range c.Events {
		date, err := calendar.ParseDate(spec.Date)
		if err != nil {
			return nil, fmt.Errorf("events[%d].date: %w", i, err)
		}
		color, err := calendar.ParseEventColor(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("events[%d].color: %w", i, err)
		}
		typ, err := calendar.ParseEventType(spec.Type)
		if err != nil {
			return nil, fmt.Errorf("events[%d].type: %w", i, err)
		}
		out = append(out, calendar.NewEvent(spec.Title, date, color, typ))
	}
	return out, nil
}

func optionalDate(value string) (*calendar.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := calendar.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func lowerOr(value, fallback string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return fallback
	}
	return v
}

func boolPtr(v bool) *bool { return &v }
