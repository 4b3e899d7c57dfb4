package scheduler

import (
	"sort"

	"github.com/julianstephens/grove/internal/constants"
	"github.com/julianstephens/grove/internal/models"
	"github.com/julianstephens/grove/internal/timeutil"
)

// ScheduleLiquid fills open windows with 60- or 120-minute blocks for a
// flexible goal. When any subtask carries a deadline and remaining work, the
// subtasks are packed earliest-deadline-first; otherwise the goal's weekly
// target is filled greedily. Blocks are never shorter than an hour, so small
// remainders round up: slight overallocation is preferred to underallocation.
func (s *Scheduler) ScheduleLiquid(goal models.Goal, windows []models.TimeWindow) []models.ScheduledBlock {
	open := orderWindows(windows, goal.Preference)

	deadlined := deadlineSubtasks(goal)
	if len(deadlined) > 0 {
		return s.packSubtasks(goal, deadlined, open)
	}

	target := goal.TargetMinutes()
	if target <= 0 {
		return nil
	}
	return s.packTarget(goal, target, open)
}

// orderWindows keeps days chronological but reorders each day's windows by
// the goal's time-of-day preference. Afternoon goals see late windows first.
func orderWindows(windows []models.TimeWindow, pref models.TimePreference) []models.TimeWindow {
	ordered := make([]models.TimeWindow, len(windows))
	copy(ordered, windows)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Day != ordered[j].Day {
			return ordered[i].Day < ordered[j].Day
		}
		if pref == models.PreferAfternoon {
			return ordered[i].Start > ordered[j].Start
		}
		return ordered[i].Start < ordered[j].Start
	})

	return ordered
}

func deadlineSubtasks(goal models.Goal) []models.Subtask {
	var due []models.Subtask
	for _, st := range goal.Subtasks {
		if st.Deadline != "" && st.RemainingMinutes() > 0 {
			due = append(due, st)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Deadline < due[j].Deadline
	})
	return due
}

// blockSize picks the next quantized block: two hours when both the window
// and the need allow, otherwise one.
func blockSize(windowMin, needMin int) int {
	if windowMin >= constants.MaxBlockMin && needMin >= constants.MaxBlockMin {
		return constants.MaxBlockMin
	}
	return constants.MinBlockMin
}

func (s *Scheduler) packSubtasks(goal models.Goal, subtasks []models.Subtask, windows []models.TimeWindow) []models.ScheduledBlock {
	var blocks []models.ScheduledBlock
	taskIdx := 0
	need := subtasks[0].RemainingMinutes()

	for _, w := range windows {
		cursor := w.Start
		for taskIdx < len(subtasks) && w.End-cursor >= constants.MinBlockMin {
			size := blockSize(w.End-cursor, need)
			st := subtasks[taskIdx]
			blocks = append(blocks, models.ScheduledBlock{
				Day:          w.Day,
				Start:        timeutil.ToTimeString(cursor),
				End:          timeutil.ToTimeString(cursor + size),
				DurationMin:  size,
				GoalID:       goal.ID,
				Title:        goal.Title,
				SubtaskID:    st.ID,
				SubtaskTitle: st.Title,
			})
			cursor += size
			need -= size
			if need <= 0 {
				taskIdx++
				if taskIdx < len(subtasks) {
					need = subtasks[taskIdx].RemainingMinutes()
				}
			}
		}
		if taskIdx >= len(subtasks) {
			break
		}
	}

	return blocks
}

func (s *Scheduler) packTarget(goal models.Goal, targetMin int, windows []models.TimeWindow) []models.ScheduledBlock {
	var blocks []models.ScheduledBlock
	need := targetMin

	for _, w := range windows {
		cursor := w.Start
		for need > 0 && w.End-cursor >= constants.MinBlockMin {
			size := blockSize(w.End-cursor, need)
			blocks = append(blocks, models.ScheduledBlock{
				Day:         w.Day,
				Start:       timeutil.ToTimeString(cursor),
				End:         timeutil.ToTimeString(cursor + size),
				DurationMin: size,
				GoalID:      goal.ID,
				Title:       goal.Title,
			})
			cursor += size
			need -= size
		}
		if need <= 0 {
			break
		}
	}

	return blocks
}
