package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/grove/internal/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestJSONFiles_LoadsGoalsAndEvents(t *testing.T) {
	dir := t.TempDir()
	goalsPath := writeFile(t, dir, "goals.json", `[
		{"id": "g1", "title": "Writing", "kind": "routine", "schedule_mode": "liquid", "weekly_target_minutes": 180}
	]`)
	eventsPath := writeFile(t, dir, "events.json", `[
		{"day_index": 3, "start": "09:00", "end": "10:00", "type": "storm"},
		{"start": "2025-12-31T14:00:00Z", "end": "2025-12-31T15:00:00Z", "type": "leaf"}
	]`)

	store := NewJSONFiles(goalsPath, eventsPath)

	goals, err := store.Goals()
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, models.GoalKindRoutine, goals[0].Kind)
	assert.Equal(t, 180, goals[0].WeeklyTargetMinutes)

	events, err := store.Events()
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.NotNil(t, events[0].DayIndex)
	assert.Equal(t, 3, *events[0].DayIndex)
	assert.Nil(t, events[1].DayIndex)
}

func TestJSONFiles_EmptyPathsYieldEmptyInputs(t *testing.T) {
	store := &JSONFiles{}

	goals, err := store.Goals()
	require.NoError(t, err)
	assert.Empty(t, goals)

	events, err := store.Events()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestJSONFiles_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "goals.json", "{not json")

	store := NewJSONFiles(path, "")
	_, err := store.Goals()
	assert.Error(t, err)
}

func TestJSONFiles_MissingFile(t *testing.T) {
	store := NewJSONFiles("/nonexistent/goals.json", "")
	_, err := store.Goals()
	assert.Error(t, err)
}
