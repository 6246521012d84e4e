package selection

import "github.com/alexisbeaulieu97/magicalendar/internal/calendar"

// CanSelect applies the configuration's date restrictions at day
// granularity. Minimum and maximum bounds are inclusive.
func CanSelect(d calendar.Date, cfg calendar.Configuration, today calendar.Date) bool {
	if !cfg.AllowPastSelection && d.Before(today) {
		return false
	}
	if !cfg.AllowFutureSelection && d.After(today) {
		return false
	}
	if cfg.MinimumDate != nil && d.Before(*cfg.MinimumDate) {
		return false
	}
	if cfg.MaximumDate != nil && d.After(*cfg.MaximumDate) {
		return false
	}
	return true
}

// Select applies cfg's selection mode to state for a tap on d. A date that
// fails CanSelect, or the none mode, returns state unchanged.
func Select(d calendar.Date, state State, cfg calendar.Configuration, today calendar.Date) State {
	if !CanSelect(d, cfg, today) {
		return state
	}

	switch cfg.SelectionMode {
	case calendar.SelectSingle:
		return Of(d)
	case calendar.SelectMultiple:
		if state.Contains(d) {
			return state.without(d)
		}
		return state.with(d)
	case calendar.SelectRange:
		return selectRange(d, state)
	default:
		return state
	}
}

// selectRange: an empty selection starts a range at d, a single anchor
// completes it, and a completed range restarts from d.
func selectRange(d calendar.Date, state State) State {
	switch state.Len() {
	case 0:
		return Of(d)
	case 1:
		anchor, _ := state.First()
		return Span(anchor, d)
	default:
		return Of(d)
	}
}
