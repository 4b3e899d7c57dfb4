package scheduler

import (
	"github.com/julianstephens/grove/internal/models"
	"github.com/julianstephens/grove/internal/timeutil"
)

// ScheduleSolid emits one fixed block per configured weekday, verbatim.
// Solid goals are assumed pre-cleared by the user, so no conflict checking
// happens here; collisions surface when the blocks join the blocked set for
// other goals.
func (s *Scheduler) ScheduleSolid(goal models.Goal) []models.ScheduledBlock {
	if goal.Solid == nil {
		return nil
	}

	start := timeutil.ToMinutes(goal.Solid.Start)
	end := timeutil.ToMinutes(goal.Solid.End)
	if end <= start {
		return nil
	}

	var blocks []models.ScheduledBlock
	for _, day := range goal.Solid.Days {
		if day < 0 || day > 6 {
			continue
		}
		blocks = append(blocks, models.ScheduledBlock{
			Day:         day,
			Start:       goal.Solid.Start,
			End:         goal.Solid.End,
			DurationMin: end - start,
			GoalID:      goal.ID,
			Title:       goal.Title,
		})
	}

	return blocks
}
