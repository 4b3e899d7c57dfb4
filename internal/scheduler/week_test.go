package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/grove/internal/models"
)

func TestMaterializeWeek_AssignsRequestedHoursInWindowOrder(t *testing.T) {
	s := testScheduler(fixedNow)
	goals := []models.Goal{
		{ID: "write", Title: "Writing", Kind: models.GoalKindRoutine, SpoonCost: 2},
		{ID: "read", Title: "Reading", Kind: models.GoalKindRoutine, SpoonCost: 1},
	}
	plan := models.WeekPlan{
		"wednesday": {{GoalID: "write", Hours: 2}, {GoalID: "read", Hours: 1}},
	}

	result := s.MaterializeWeek(plan, goals, nil, fixedNow)
	require.Contains(t, result, "2025-12-31")
	assignment := result["2025-12-31"]
	require.Len(t, assignment, 3)

	// Hours fill from the start of the working window.
	assert.Equal(t, "write", assignment["06:00"].GoalID)
	assert.Equal(t, "write", assignment["07:00"].GoalID)
	assert.Equal(t, "read", assignment["08:00"].GoalID)
	assert.Equal(t, 2, assignment["06:00"].SpoonCost)
}

func TestMaterializeWeek_WeekdayNamesAreCaseInsensitive(t *testing.T) {
	s := testScheduler(fixedNow)
	goals := []models.Goal{{ID: "g", Title: "Goal", Kind: models.GoalKindRoutine}}
	plan := models.WeekPlan{
		"Monday": {{GoalID: "g", Hours: 1}},
	}

	result := s.MaterializeWeek(plan, goals, nil, fixedNow)
	assert.Contains(t, result, "2025-12-29")
}

func TestMaterializeWeek_EventsConsumeWindows(t *testing.T) {
	s := testScheduler(fixedNow)
	goals := []models.Goal{{ID: "g", Title: "Goal", Kind: models.GoalKindRoutine, SpoonCost: 1}}
	plan := models.WeekPlan{
		"thursday": {{GoalID: "g", Hours: 2}},
	}
	events := []models.CalendarEvent{
		{DayIndex: intPtr(4), Start: "06:00", End: "09:00", Type: models.EventLeaf},
	}

	result := s.MaterializeWeek(plan, goals, events, fixedNow)
	require.Contains(t, result, "2026-01-01")
	assignment := result["2026-01-01"]
	assert.Contains(t, assignment, "09:00")
	assert.Contains(t, assignment, "10:00")
	assert.NotContains(t, assignment, "06:00")
}

func TestMaterializeWeek_UnplaceableHoursDropped(t *testing.T) {
	s := testScheduler(fixedNow)
	goals := []models.Goal{{ID: "g", Title: "Goal", Kind: models.GoalKindRoutine}}
	plan := models.WeekPlan{
		"friday": {{GoalID: "g", Hours: 10}},
	}
	// Friday is fully booked except two hours.
	events := []models.CalendarEvent{
		{DayIndex: intPtr(5), Start: "06:00", End: "21:00", Type: models.EventLeaf},
	}

	result := s.MaterializeWeek(plan, goals, events, fixedNow)
	require.Contains(t, result, "2026-01-02")
	assert.Len(t, result["2026-01-02"], 2, "hours beyond capacity are dropped")
}

func TestMaterializeWeek_UnknownGoalsSkipped(t *testing.T) {
	s := testScheduler(fixedNow)
	plan := models.WeekPlan{
		"tuesday": {{GoalID: "ghost", Hours: 3}},
	}

	result := s.MaterializeWeek(plan, nil, nil, fixedNow)
	assert.Empty(t, result, "the engine never invents goal identities")
}
