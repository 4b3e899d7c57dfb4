package validation

import (
	"fmt"
	"sort"

	"github.com/julianstephens/grove/internal/models"
	"github.com/julianstephens/grove/internal/timeutil"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateGoalID      ConflictType = "duplicate_goal_id"
	ConflictDuplicateGoalTitle   ConflictType = "duplicate_goal_title"
	ConflictInvalidTime          ConflictType = "invalid_time"
	ConflictOverlappingSolid     ConflictType = "overlapping_solid_goals"
	ConflictSpoonCostOutOfRange  ConflictType = "spoon_cost_out_of_range"
	ConflictSolidWithoutSchedule ConflictType = "solid_without_schedule"
)

// Conflict represents a detected problem in the goal list. All conflicts are
// advisory; the engine still plans around them.
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // goal titles involved
	GoalIDs     []string
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks goal lists for configuration problems
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateGoals checks a goal list for conflicts.
func (v *Validator) ValidateGoals(goals []models.Goal) Result {
	result := Result{Conflicts: []Conflict{}}

	byID := make(map[string][]string)
	byTitle := make(map[string][]string)
	for _, goal := range goals {
		if goal.ID != "" {
			byID[goal.ID] = append(byID[goal.ID], goal.Title)
		}
		if goal.Title != "" {
			byTitle[goal.Title] = append(byTitle[goal.Title], goal.ID)
		}
	}

	for id, titles := range byID {
		if len(titles) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateGoalID,
				Description: fmt.Sprintf("Duplicate goal ID %q used by %v", id, titles),
				Items:       titles,
				GoalIDs:     []string{id},
			})
		}
	}
	for title, ids := range byTitle {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateGoalTitle,
				Description: fmt.Sprintf("Duplicate goal title %q (IDs: %v)", title, ids),
				Items:       []string{title},
				GoalIDs:     ids,
			})
		}
	}

	for _, goal := range goals {
		v.checkGoal(goal, &result)
	}
	v.checkSolidOverlaps(goals, &result)

	// Map iteration above is unordered; keep reports stable.
	sort.SliceStable(result.Conflicts, func(i, j int) bool {
		if result.Conflicts[i].Type != result.Conflicts[j].Type {
			return result.Conflicts[i].Type < result.Conflicts[j].Type
		}
		return result.Conflicts[i].Description < result.Conflicts[j].Description
	})

	return result
}

func (v *Validator) checkGoal(goal models.Goal, result *Result) {
	if goal.SpoonCost != 0 && (goal.SpoonCost < 1 || goal.SpoonCost > 4) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictSpoonCostOutOfRange,
			Description: fmt.Sprintf("Goal %q has spoon cost %d outside 1-4; it will be clamped", goal.Title, goal.SpoonCost),
			Items:       []string{goal.Title},
			GoalIDs:     []string{goal.ID},
		})
	}

	if goal.ScheduleMode != models.ScheduleModeSolid {
		return
	}

	if goal.Solid == nil || len(goal.Solid.Days) == 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictSolidWithoutSchedule,
			Description: fmt.Sprintf("Solid goal %q has no days or times configured", goal.Title),
			Items:       []string{goal.Title},
			GoalIDs:     []string{goal.ID},
		})
		return
	}

	for _, value := range []string{goal.Solid.Start, goal.Solid.End} {
		if !isValidTime(value) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTime,
				Description: fmt.Sprintf("Solid goal %q has invalid time %q", goal.Title, value),
				Items:       []string{goal.Title},
				GoalIDs:     []string{goal.ID},
			})
		}
	}
}

// checkSolidOverlaps flags solid goals that collide on the same weekday. The
// solid scheduler places blocks verbatim, so this is the only place a user
// learns about a double-booking before it lands in a plan.
func (v *Validator) checkSolidOverlaps(goals []models.Goal, result *Result) {
	type placed struct {
		goal       models.Goal
		start, end int
	}
	byDay := make(map[int][]placed)

	for _, goal := range goals {
		if goal.ScheduleMode != models.ScheduleModeSolid || goal.Solid == nil {
			continue
		}
		start := timeutil.ToMinutes(goal.Solid.Start)
		end := timeutil.ToMinutes(goal.Solid.End)
		if end <= start {
			continue
		}
		for _, day := range goal.Solid.Days {
			byDay[day] = append(byDay[day], placed{goal: goal, start: start, end: end})
		}
	}

	for day, entries := range byDay {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].start < entries[j].start })
		for i := 1; i < len(entries); i++ {
			prev, cur := entries[i-1], entries[i]
			if cur.start < prev.end {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type: ConflictOverlappingSolid,
					Description: fmt.Sprintf("Solid goals %q and %q overlap on weekday %d (%s-%s vs %s-%s)",
						prev.goal.Title, cur.goal.Title, day,
						timeutil.ToTimeString(prev.start), timeutil.ToTimeString(prev.end),
						timeutil.ToTimeString(cur.start), timeutil.ToTimeString(cur.end)),
					Items:   []string{prev.goal.Title, cur.goal.Title},
					GoalIDs: []string{prev.goal.ID, cur.goal.ID},
				})
			}
		}
	}
}

func isValidTime(value string) bool {
	if value == "" {
		return false
	}
	minutes := timeutil.ToMinutes(value)
	if minutes == 0 && value != "00:00" && value != "0:00" {
		return false
	}
	return minutes < 24*60
}
