package scheduler

import (
	"time"

	"github.com/julianstephens/grove/internal/models"
	"github.com/julianstephens/grove/internal/timeutil"
)

// OpenWindows computes the free spans per weekday inside the working-hour
// window, after blocking out calendar events for the anchored week and any
// already-placed blocks. Storm events are padded by stormBufferMin on each
// side before blocking. Windows never overlap and are ordered by day then
// start time.
func (s *Scheduler) OpenWindows(events []models.CalendarEvent, placed []models.ScheduledBlock, anchor time.Time, stormBufferMin int) []models.TimeWindow {
	blockedByDay := make(map[int][]interval)

	for _, n := range normalizeEvents(events, anchor) {
		iv := interval{start: n.start, end: n.end}
		if n.typ == models.EventStorm && stormBufferMin > 0 {
			iv.start -= stormBufferMin
			iv.end += stormBufferMin
		}
		blockedByDay[n.day] = append(blockedByDay[n.day], iv)
	}

	for _, block := range placed {
		if block.Day < 0 || block.Day > 6 {
			continue
		}
		start := timeutil.ToMinutes(block.Start)
		end := timeutil.ToMinutes(block.End)
		if end <= start {
			continue
		}
		blockedByDay[block.Day] = append(blockedByDay[block.Day], interval{start: start, end: end})
	}

	dayStart := s.opts.WorkStartHour * 60
	dayEnd := s.opts.WorkEndHour * 60

	var windows []models.TimeWindow
	for day := 0; day < 7; day++ {
		blocked := mergeIntervals(blockedByDay[day])
		for _, open := range subtractIntervals(dayStart, dayEnd, blocked) {
			windows = append(windows, models.TimeWindow{Day: day, Start: open.start, End: open.end})
		}
	}

	return windows
}

// windowsForDay filters windows to one weekday, clipping away everything
// before fromMin.
func windowsForDay(windows []models.TimeWindow, day, fromMin int) []models.TimeWindow {
	var out []models.TimeWindow
	for _, w := range windows {
		if w.Day != day || w.End <= fromMin {
			continue
		}
		if w.Start < fromMin {
			w.Start = fromMin
		}
		out = append(out, w)
	}
	return out
}
