package scheduler

import (
	"fmt"
	"time"

	"github.com/julianstephens/grove/internal/constants"
	"github.com/julianstephens/grove/internal/models"
)

// StormImpact quantifies the capacity cost of storm events on one weekday.
// The reduction is capped so a single bad day never zeroes capacity.
func (s *Scheduler) StormImpact(events []models.CalendarEvent, anchor time.Time, day int) models.StormImpact {
	count := 0
	blockedMin := 0
	for _, n := range normalizeEvents(events, anchor) {
		if n.day != day || n.typ != models.EventStorm {
			continue
		}
		count++
		blockedMin += (n.end - n.start) + 2*s.opts.StormBufferMin
	}

	reduction := count * s.opts.StormCostPerEvent
	if reduction > constants.MaxStormCapacityReduction {
		reduction = constants.MaxStormCapacityReduction
	}

	reason := "No storm events today."
	if count > 0 {
		reason = fmt.Sprintf(
			"%d storm event(s) today reduce capacity by %d spoon(s); %d min set aside as buffer.",
			count, reduction, blockedMin,
		)
	}

	return models.StormImpact{
		StormCount:        count,
		CapacityReduction: reduction,
		BufferMinutesUsed: blockedMin,
		Reason:            reason,
	}
}
