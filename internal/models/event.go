package models

type EventType string

const (
	EventStorm EventType = "storm"
	EventLeaf  EventType = "leaf"
	EventSun   EventType = "sun"
)

// CalendarEvent is an externally-sourced busy interval. Two shapes are
// accepted in the same list: absolute timestamps (Start/End hold RFC 3339
// datetimes, DayIndex nil) or recurring wall-clock form (DayIndex set,
// Start/End hold HH:MM). Events are owned by the caller and read-only here.
type CalendarEvent struct {
	Title    string    `json:"title,omitempty"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
	DayIndex *int      `json:"day_index,omitempty"` // 0=Sunday .. 6=Saturday
	Type     EventType `json:"type,omitempty"`
}
