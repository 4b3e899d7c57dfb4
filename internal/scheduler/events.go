package scheduler

import (
	"time"

	"github.com/julianstephens/grove/internal/models"
	"github.com/julianstephens/grove/internal/timeutil"
)

// normalizedEvent is a calendar event mapped onto one day of the target week.
type normalizedEvent struct {
	day   int // 0=Sunday .. 6=Saturday
	start int // minutes from midnight
	end   int
	typ   models.EventType
}

// timestampLayouts are the absolute-event formats accepted from calendar
// providers, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseTimestamp(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeEvent maps a calendar event onto the week anchored at the given
// Monday. Events that are malformed or fall outside the seven anchored days
// are dropped, not clamped.
func normalizeEvent(ev models.CalendarEvent, anchor time.Time) (normalizedEvent, bool) {
	if ev.DayIndex != nil {
		day := *ev.DayIndex
		if day < 0 || day > 6 {
			return normalizedEvent{}, false
		}
		start := timeutil.ToMinutes(ev.Start)
		end := timeutil.ToMinutes(ev.End)
		if end <= start {
			return normalizedEvent{}, false
		}
		return normalizedEvent{day: day, start: start, end: end, typ: ev.Type}, true
	}

	start, ok := parseTimestamp(ev.Start, anchor.Location())
	if !ok {
		return normalizedEvent{}, false
	}
	end, ok := parseTimestamp(ev.End, anchor.Location())
	if !ok {
		return normalizedEvent{}, false
	}

	offset := int(timeutil.DateOnly(start).Sub(anchor).Hours() / 24)
	if offset < 0 || offset > 6 {
		return normalizedEvent{}, false
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if !timeutil.DateOnly(end).Equal(timeutil.DateOnly(start)) || endMin <= startMin {
		// Midnight-spanning events have no single-day representation.
		return normalizedEvent{}, false
	}

	return normalizedEvent{
		day:   int(start.Weekday()),
		start: startMin,
		end:   endMin,
		typ:   ev.Type,
	}, true
}

// normalizeEvents maps every resolvable event onto its weekday.
func normalizeEvents(events []models.CalendarEvent, anchor time.Time) []normalizedEvent {
	var normalized []normalizedEvent
	for _, ev := range events {
		if n, ok := normalizeEvent(ev, anchor); ok {
			normalized = append(normalized, n)
		}
	}
	return normalized
}
