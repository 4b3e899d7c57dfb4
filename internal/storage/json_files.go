package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/grove/internal/models"
)

// JSONFiles reads engine inputs from caller-supplied JSON documents. Paths
// left empty simply yield empty inputs, so callers only wire what a command
// needs.
type JSONFiles struct {
	GoalsPath      string
	EventsPath     string
	WeekPlanPath   string
	AssignmentPath string
}

var _ Provider = (*JSONFiles)(nil)

func NewJSONFiles(goalsPath, eventsPath string) *JSONFiles {
	return &JSONFiles{GoalsPath: goalsPath, EventsPath: eventsPath}
}

func (s *JSONFiles) Goals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := readJSON(s.GoalsPath, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *JSONFiles) Events() ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	if err := readJSON(s.EventsPath, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *JSONFiles) WeekPlan() (models.WeekPlan, error) {
	var plan models.WeekPlan
	if err := readJSON(s.WeekPlanPath, &plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *JSONFiles) Assignment() (models.Assignment, error) {
	var assignment models.Assignment
	if err := readJSON(s.AssignmentPath, &assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func readJSON(path string, target any) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
