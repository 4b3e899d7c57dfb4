package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/grove/internal/models"
)

func TestValidateGoals_DuplicateIDsAndTitles(t *testing.T) {
	validator := New()

	goals := []models.Goal{
		{ID: "1", Title: "Goal A"},
		{ID: "2", Title: "Goal B"},
		{ID: "1", Title: "Goal C"},
		{ID: "3", Title: "Goal A"},
	}

	result := validator.ValidateGoals(goals)
	require.True(t, result.HasConflicts())

	var types []ConflictType
	for _, c := range result.Conflicts {
		types = append(types, c.Type)
	}
	assert.Contains(t, types, ConflictDuplicateGoalID)
	assert.Contains(t, types, ConflictDuplicateGoalTitle)
}

func TestValidateGoals_SolidTimeChecks(t *testing.T) {
	validator := New()

	goals := []models.Goal{
		{
			ID:           "1",
			Title:        "Broken",
			ScheduleMode: models.ScheduleModeSolid,
			Solid:        &models.SolidSchedule{Days: []int{1}, Start: "nine", End: "10:00"},
		},
		{
			ID:           "2",
			Title:        "Unconfigured",
			ScheduleMode: models.ScheduleModeSolid,
		},
	}

	result := validator.ValidateGoals(goals)
	require.True(t, result.HasConflicts())

	var types []ConflictType
	for _, c := range result.Conflicts {
		types = append(types, c.Type)
	}
	assert.Contains(t, types, ConflictInvalidTime)
	assert.Contains(t, types, ConflictSolidWithoutSchedule)
}

func TestValidateGoals_OverlappingSolidGoals(t *testing.T) {
	validator := New()

	goals := []models.Goal{
		{
			ID:           "gym",
			Title:        "Gym",
			ScheduleMode: models.ScheduleModeSolid,
			Solid:        &models.SolidSchedule{Days: []int{1, 3}, Start: "09:00", End: "10:30"},
		},
		{
			ID:           "standup",
			Title:        "Standup",
			ScheduleMode: models.ScheduleModeSolid,
			Solid:        &models.SolidSchedule{Days: []int{3}, Start: "10:00", End: "11:00"},
		},
	}

	result := validator.ValidateGoals(goals)
	require.True(t, result.HasConflicts())
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, ConflictOverlappingSolid, result.Conflicts[0].Type)
	assert.ElementsMatch(t, []string{"gym", "standup"}, result.Conflicts[0].GoalIDs)
}

func TestValidateGoals_SpoonCostRange(t *testing.T) {
	validator := New()

	result := validator.ValidateGoals([]models.Goal{{ID: "1", Title: "Pricey", SpoonCost: 7}})
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, ConflictSpoonCostOutOfRange, result.Conflicts[0].Type)
}

func TestValidateGoals_CleanListHasNoConflicts(t *testing.T) {
	validator := New()

	goals := []models.Goal{
		{ID: "1", Title: "Liquid", ScheduleMode: models.ScheduleModeLiquid, WeeklyTargetMinutes: 120, SpoonCost: 2},
		{
			ID:           "2",
			Title:        "Solid",
			ScheduleMode: models.ScheduleModeSolid,
			Solid:        &models.SolidSchedule{Days: []int{2}, Start: "09:00", End: "10:00"},
		},
	}

	result := validator.ValidateGoals(goals)
	assert.False(t, result.HasConflicts())
	assert.Equal(t, "No conflicts detected.", result.FormatReport())
}
