package scheduler

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/grove/internal/constants"
	"github.com/julianstephens/grove/internal/models"
	"github.com/julianstephens/grove/internal/timeutil"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// MaterializeWeek expands an abstract week plan (goal hours per weekday)
// into concrete per-date assignments, consuming each day's open windows
// hour by hour. Hours that find no window are dropped. Goal IDs absent from
// the goal list are skipped; the engine never invents identities.
func (s *Scheduler) MaterializeWeek(plan models.WeekPlan, goals []models.Goal, events []models.CalendarEvent, weekStart time.Time) map[string]models.Assignment {
	anchor := timeutil.WeekAnchor(weekStart)
	windows := s.OpenWindows(events, nil, anchor, s.opts.StormBufferMin)

	goalsByID := make(map[string]models.Goal, len(goals))
	for _, g := range goals {
		goalsByID[g.ID] = g
	}

	// Normalize weekday keys once so "Monday" and "monday" both resolve.
	entriesByDay := make(map[time.Weekday][]models.WeekPlanEntry)
	for name, entries := range plan {
		if weekday, ok := weekdayNames[strings.ToLower(name)]; ok {
			entriesByDay[weekday] = append(entriesByDay[weekday], entries...)
		}
	}

	result := make(map[string]models.Assignment)
	for offset := 0; offset < constants.DaysPerWeek; offset++ {
		date := anchor.AddDate(0, 0, offset)
		entries := entriesByDay[date.Weekday()]
		if len(entries) == 0 {
			continue
		}

		assignment := s.materializeDay(entries, goalsByID, windowsForDay(windows, int(date.Weekday()), 0))
		if len(assignment) > 0 {
			result[date.Format(constants.DateFormat)] = assignment
		}
	}

	return result
}

func (s *Scheduler) materializeDay(entries []models.WeekPlanEntry, goalsByID map[string]models.Goal, windows []models.TimeWindow) models.Assignment {
	assignment := models.Assignment{}

	hours := openHours(windows)
	idx := 0
	for _, entry := range entries {
		goal, ok := goalsByID[entry.GoalID]
		if !ok {
			continue
		}
		for h := 0; h < entry.Hours && idx < len(hours); h++ {
			assignment[timeutil.HourKey(hours[idx])] = models.AssignmentEntry{
				ID:        uuid.NewString(),
				GoalID:    goal.ID,
				Title:     goal.Title,
				Kind:      models.EntryRoutine,
				SpoonCost: goal.EffectiveSpoonCost(),
			}
			idx++
		}
	}

	return assignment
}

// openHours lists the full hours covered by the windows, in order.
func openHours(windows []models.TimeWindow) []int {
	var hours []int
	for _, w := range windows {
		first := (w.Start + 59) / 60
		last := w.End / 60
		for h := first; h < last; h++ {
			hours = append(hours, h)
		}
	}
	return hours
}
