package models

type GoalKind string

const (
	GoalKindRoutine  GoalKind = "routine"
	GoalKindProject  GoalKind = "project"
	GoalKindKaizen   GoalKind = "kaizen"
	GoalKindVitality GoalKind = "vitality"
)

type ScheduleMode string

const (
	ScheduleModeSolid  ScheduleMode = "solid"
	ScheduleModeLiquid ScheduleMode = "liquid"
)

type ScheduleCategory string

const (
	CategoryWork        ScheduleCategory = "work"
	CategoryNourishment ScheduleCategory = "nourishment"
)

type EnergyType string

const (
	EnergyHighFocus   EnergyType = "high-focus"
	EnergyMaintenance EnergyType = "maintenance"
	EnergyRestorative EnergyType = "restorative"
)

type TimePreference string

const (
	PreferMorning   TimePreference = "morning"
	PreferAfternoon TimePreference = "afternoon"
	PreferBalanced  TimePreference = "balanced"
)

// Subtask is a unit of project work, optionally deadline-bound.
type Subtask struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	EstimatedHours float64 `json:"estimated_hours"`
	CompletedHours float64 `json:"completed_hours"`
	Deadline       string  `json:"deadline,omitempty"` // YYYY-MM-DD format
}

// RemainingMinutes returns the outstanding work on the subtask, never negative.
func (s Subtask) RemainingMinutes() int {
	remaining := s.EstimatedHours - s.CompletedHours
	if remaining <= 0 {
		return 0
	}
	return int(remaining * 60)
}

// SolidSchedule pins a goal to explicit weekdays and times.
type SolidSchedule struct {
	Days  []int  `json:"days"`  // 0=Sunday .. 6=Saturday
	Start string `json:"start"` // HH:MM format
	End   string `json:"end"`   // HH:MM format
}

// Goal is a recurring practice or project the engine places into time blocks.
type Goal struct {
	ID                   string           `json:"id"`
	Title                string           `json:"title"`
	Kind                 GoalKind         `json:"kind"`
	ScheduleMode         ScheduleMode     `json:"schedule_mode,omitempty"`
	Solid                *SolidSchedule   `json:"solid,omitempty"`
	WeeklyTargetMinutes  int              `json:"weekly_target_minutes,omitempty"`
	MonthlyTargetMinutes int              `json:"monthly_target_minutes,omitempty"`
	Category             ScheduleCategory `json:"category,omitempty"`
	EnergyType           EnergyType       `json:"energy_type,omitempty"`
	SpoonCost            int              `json:"spoon_cost,omitempty"`
	Preference           TimePreference   `json:"preference,omitempty"`
	Subtasks             []Subtask        `json:"subtasks,omitempty"`
}

// EffectiveCategory applies the work default for goals that never set one.
func (g Goal) EffectiveCategory() ScheduleCategory {
	if g.Category == CategoryNourishment {
		return CategoryNourishment
	}
	return CategoryWork
}

// EffectiveEnergyType applies the maintenance default.
func (g Goal) EffectiveEnergyType() EnergyType {
	switch g.EnergyType {
	case EnergyHighFocus, EnergyRestorative:
		return g.EnergyType
	default:
		return EnergyMaintenance
	}
}

// EffectiveSpoonCost clamps the configured cost into the 1..4 range,
// defaulting to 1 when unset.
func (g Goal) EffectiveSpoonCost() int {
	if g.SpoonCost < 1 {
		return 1
	}
	if g.SpoonCost > 4 {
		return 4
	}
	return g.SpoonCost
}

// TargetMinutes resolves the weekly planning target. Monthly targets are
// spread evenly over four weeks.
func (g Goal) TargetMinutes() int {
	if g.WeeklyTargetMinutes > 0 {
		return g.WeeklyTargetMinutes
	}
	if g.MonthlyTargetMinutes > 0 {
		return g.MonthlyTargetMinutes / 4
	}
	return 0
}
