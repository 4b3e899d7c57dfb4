package scheduler

import (
	"fmt"
	"time"

	"github.com/julianstephens/grove/internal/constants"
	"github.com/julianstephens/grove/internal/models"
	"github.com/julianstephens/grove/internal/timeutil"
)

// CheckDeadlines flags every deadline-bound subtask whose remaining work
// exceeds the open-window minutes between now and the deadline. Advisory
// only; it never blocks scheduling. Availability is computed without storm
// buffers so the figure reflects genuinely workable time.
func (s *Scheduler) CheckDeadlines(goals []models.Goal, events []models.CalendarEvent) []models.DeadlineWarning {
	now := s.now()
	anchor := timeutil.WeekAnchor(now)
	windows := s.OpenWindows(events, nil, anchor, 0)

	var warnings []models.DeadlineWarning
	for _, goal := range goals {
		if goal.Kind == models.GoalKindVitality {
			continue
		}
		for _, st := range goal.Subtasks {
			if st.Deadline == "" {
				continue
			}
			remaining := st.RemainingMinutes()
			if remaining <= 0 {
				continue
			}
			deadline, err := time.ParseInLocation(constants.DateFormat, st.Deadline, now.Location())
			if err != nil {
				continue
			}

			workable := s.workableMinutes(windows, now, deadline)
			if remaining <= workable {
				continue
			}

			warnings = append(warnings, models.DeadlineWarning{
				GoalID:       goal.ID,
				GoalTitle:    goal.Title,
				SubtaskID:    st.ID,
				SubtaskTitle: st.Title,
				Message: fmt.Sprintf(
					"%q needs %d min of work before %s but only %d min are open",
					st.Title, remaining, st.Deadline, workable,
				),
			})
		}
	}

	return warnings
}

// workableMinutes sums the open-window minutes from now through the deadline
// date inclusive. Days beyond the anchored week reuse the weekly availability
// pattern; today's windows are clipped to the current time.
func (s *Scheduler) workableMinutes(windows []models.TimeWindow, now, deadline time.Time) int {
	today := timeutil.DateOnly(now)
	end := timeutil.DateOnly(deadline)
	if end.Before(today) {
		return 0
	}

	nowMin := now.Hour()*60 + now.Minute()
	total := 0
	for d := today; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := int(d.Weekday())
		fromMin := 0
		if d.Equal(today) {
			fromMin = nowMin
		}
		for _, w := range windowsForDay(windows, day, fromMin) {
			total += w.Minutes()
		}
	}

	return total
}
