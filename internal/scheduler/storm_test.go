package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/grove/internal/models"
)

func TestStormImpact_CountsOnlyStormsOnDay(t *testing.T) {
	s := testScheduler(fixedNow)
	events := []models.CalendarEvent{
		{DayIndex: intPtr(3), Start: "09:00", End: "10:00", Type: models.EventStorm},
		{DayIndex: intPtr(3), Start: "14:00", End: "15:00", Type: models.EventStorm},
		{DayIndex: intPtr(3), Start: "11:00", End: "12:00", Type: models.EventLeaf},
		{DayIndex: intPtr(4), Start: "09:00", End: "10:00", Type: models.EventStorm},
	}

	impact := s.StormImpact(events, testAnchor, 3)
	assert.Equal(t, 2, impact.StormCount)
	assert.Equal(t, 2, impact.CapacityReduction)
	// Each storm blocks its 60 min plus a 30 min buffer on both sides.
	assert.Equal(t, 2*(60+2*30), impact.BufferMinutesUsed)
	assert.NotEmpty(t, impact.Reason)
}

func TestStormImpact_ReductionCapped(t *testing.T) {
	s := testScheduler(fixedNow)
	var events []models.CalendarEvent
	for i := 0; i < 8; i++ {
		events = append(events, models.CalendarEvent{
			DayIndex: intPtr(2),
			Start:    "06:00",
			End:      "07:00",
			Type:     models.EventStorm,
		})
	}

	impact := s.StormImpact(events, testAnchor, 2)
	assert.Equal(t, 8, impact.StormCount)
	assert.Equal(t, 6, impact.CapacityReduction, "a bad day never zeroes capacity entirely")
}

func TestStormImpact_CleanDay(t *testing.T) {
	s := testScheduler(fixedNow)
	impact := s.StormImpact(nil, testAnchor, 0)
	assert.Equal(t, 0, impact.StormCount)
	assert.Equal(t, 0, impact.CapacityReduction)
	assert.Equal(t, "No storm events today.", impact.Reason)
}
