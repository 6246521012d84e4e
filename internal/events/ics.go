package events

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
	"github.com/alexisbeaulieu97/magicalendar/internal/logger"
	calerrors "github.com/alexisbeaulieu97/magicalendar/pkg/errors"
)

const icsDateLayout = "20060102"

var errMissingStart = errors.New("missing DTSTART")

// Importer turns ICS documents into calendar events.
type Importer struct {
	loc *time.Location
	log *logger.Logger
}

// NewImporter returns an importer that places timed events on the day they
// fall on in loc. A nil loc means time.Local.
func NewImporter(loc *time.Location, log *logger.Logger) *Importer {
	if loc == nil {
		loc = time.Local
	}
	return &Importer{loc: loc, log: log}
}

// ParseICS reads every VEVENT from r. Events without a usable DTSTART are
// skipped and logged. Recurrence rules are not expanded; a recurring event
// lands on its first occurrence only.
func (im *Importer) ParseICS(source string, r io.Reader) ([]calendar.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, calerrors.NewImportError(source, err)
	}

	log := im.log.With("source", source)
	out := make([]calendar.Event, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		ev, perr := im.convert(ve)
		if perr != nil {
			log.Warn("skipping vevent", "error", perr.Error(), "uid", propValue(ve, ical.ComponentPropertyUniqueId))
			continue
		}
		if ve.GetProperty(ical.ComponentPropertyRrule) != nil {
			log.Debug("recurrence not expanded", "uid", ev.ID)
		}
		out = append(out, ev)
	}

	log.Info("ics import completed", "event_count", len(out))
	return out, nil
}

// ImportFile opens path and parses it.
func (im *Importer) ImportFile(path string) ([]calendar.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, calerrors.NewImportError(path, err)
	}
	defer f.Close()
	return im.ParseICS(path, f)
}

func (im *Importer) convert(ve *ical.VEvent) (calendar.Event, error) {
	day, err := im.startDay(ve)
	if err != nil {
		return calendar.Event{}, err
	}

	ev := calendar.Event{
		ID:    propValue(ve, ical.ComponentPropertyUniqueId),
		Title: propValue(ve, ical.ComponentPropertySummary),
		Date:  day,
		Color: calendar.ColorBlue,
		Type:  calendar.TypeEvent,
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if c, cerr := calendar.ParseEventColor(propValue(ve, ical.ComponentProperty("COLOR"))); cerr == nil {
		ev.Color = c
	}
	ev.Type = typeFromCategories(propValue(ve, ical.ComponentProperty("CATEGORIES")))
	return ev, nil
}

// startDay resolves DTSTART at day granularity. Date-only values are taken
// literally; date-times are converted into the importer's location first.
func (im *Importer) startDay(ve *ical.VEvent) (calendar.Date, error) {
	prop := ve.GetProperty(ical.ComponentPropertyDtStart)
	if prop == nil || strings.TrimSpace(prop.Value) == "" {
		return calendar.Date{}, errMissingStart
	}

	value := strings.TrimSpace(prop.Value)
	if isAllDay(prop) {
		t, err := time.Parse(icsDateLayout, value[:min(len(value), len(icsDateLayout))])
		if err != nil {
			return calendar.Date{}, fmt.Errorf("parse all-day DTSTART %q: %w", value, err)
		}
		return calendar.Normalize(t), nil
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return calendar.Date{}, fmt.Errorf("parse DTSTART %q: %w", value, err)
	}
	return calendar.Normalize(start.In(im.loc)), nil
}

func isAllDay(prop *ical.IANAProperty) bool {
	if vs, ok := prop.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(prop.Value, "T")
}

// typeFromCategories picks the first category that names a known event type.
func typeFromCategories(value string) calendar.EventType {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if t, err := calendar.ParseEventType(part); err == nil {
			return t
		}
	}
	return calendar.TypeEvent
}

func propValue(ve *ical.VEvent, name ical.ComponentProperty) string {
	if p := ve.GetProperty(name); p != nil {
		return strings.TrimSpace(p.Value)
	}
	return ""
}
