package models

type EntryKind string

const (
	EntryRoutine  EntryKind = "routine"
	EntryRecovery EntryKind = "recovery"
)

// TimeWindow is a contiguous open span within working hours on one day.
// Start and End are minutes from midnight. Derived, never persisted.
type TimeWindow struct {
	Day   int `json:"day"` // 0=Sunday .. 6=Saturday
	Start int `json:"start"`
	End   int `json:"end"`
}

// Minutes returns the window length.
func (w TimeWindow) Minutes() int {
	return w.End - w.Start
}

// ScheduledBlock is one placed stretch of goal work.
type ScheduledBlock struct {
	Day          int    `json:"day"`
	Start        string `json:"start"` // HH:MM format
	End          string `json:"end"`   // HH:MM format
	DurationMin  int    `json:"duration_min"`
	GoalID       string `json:"goal_id"`
	Title        string `json:"title"`
	SubtaskID    string `json:"subtask_id,omitempty"`
	SubtaskTitle string `json:"subtask_title,omitempty"`
}

// AssignmentEntry is one occupied hour slot in a day plan. Recovery entries
// carry no goal reference and zero cost.
type AssignmentEntry struct {
	ID           string    `json:"id"`
	GoalID       string    `json:"goal_id,omitempty"`
	Title        string    `json:"title"`
	Kind         EntryKind `json:"kind"`
	SpoonCost    int       `json:"spoon_cost"`
	SubtaskID    string    `json:"subtask_id,omitempty"`
	SubtaskTitle string    `json:"subtask_title,omitempty"`
}

// Assignment maps "HH:00" slot keys to entries; at most one entry per key.
type Assignment map[string]AssignmentEntry

// SpoonTotal sums the cost of all non-recovery entries.
func (a Assignment) SpoonTotal() int {
	total := 0
	for _, entry := range a {
		if entry.Kind != EntryRecovery {
			total += entry.SpoonCost
		}
	}
	return total
}

// WeekPlan is an abstract allocation produced upstream: weekday name
// ("monday".."sunday") to the goals and hour counts wanted that day.
type WeekPlan map[string][]WeekPlanEntry

type WeekPlanEntry struct {
	GoalID string `json:"goal_id"`
	Hours  int    `json:"hours"`
}

// DeadlineWarning flags a subtask whose remaining work exceeds the open
// time before its deadline. Advisory only.
type DeadlineWarning struct {
	GoalID       string `json:"goal_id"`
	GoalTitle    string `json:"goal_title"`
	SubtaskID    string `json:"subtask_id"`
	SubtaskTitle string `json:"subtask_title"`
	Message      string `json:"message"`
}

// StormImpact quantifies how storm events on a day reduce capacity.
type StormImpact struct {
	StormCount        int    `json:"storm_count"`
	CapacityReduction int    `json:"capacity_reduction"`
	BufferMinutesUsed int    `json:"buffer_minutes_used"`
	Reason            string `json:"reason"`
}

// RemovedItem records one slot dropped by the load-lightening pass.
type RemovedItem struct {
	Hour       string     `json:"hour"`
	Title      string     `json:"title"`
	EnergyType EnergyType `json:"energy_type"`
	Reason     string     `json:"reason"`
}

// LightenResult is the structured diff returned when a day was over budget.
type LightenResult struct {
	Assignments  Assignment    `json:"assignments"`
	RemovedItems []RemovedItem `json:"removed_items"`
}
