package scheduler

import (
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/grove/internal/constants"
	"github.com/julianstephens/grove/internal/models"
	"github.com/julianstephens/grove/internal/timeutil"
)

type energyLevel int

const (
	energyLow energyLevel = iota
	energyNormal
	energyHigh
)

// EnergyBudget expresses a day's capacity either as a raw spoon count (1-12)
// or as the legacy signed modifier (-2..+1). Both forms are accepted
// everywhere a budget is taken.
type EnergyBudget struct {
	spoons      int
	modifier    int
	useModifier bool
}

func SpoonBudget(spoons int) EnergyBudget {
	return EnergyBudget{spoons: spoons}
}

func ModifierBudget(modifier int) EnergyBudget {
	return EnergyBudget{modifier: modifier, useModifier: true}
}

// resolve maps either form onto a concrete spoon count and energy level.
// A modifier shifts the baseline budget by two spoons per step.
func (b EnergyBudget) resolve() (int, energyLevel) {
	if b.useModifier {
		spoons := clampSpoons(constants.BaselineSpoonBudget + 2*b.modifier)
		switch {
		case b.modifier <= -2:
			return spoons, energyLow
		case b.modifier >= 1:
			return spoons, energyHigh
		default:
			return spoons, energyNormal
		}
	}

	spoons := clampSpoons(b.spoons)
	switch {
	case spoons <= constants.LowEnergySpoonMax:
		return spoons, energyLow
	case spoons >= constants.HighEnergySpoonMin:
		return spoons, energyHigh
	default:
		return spoons, energyNormal
	}
}

func clampSpoons(n int) int {
	if n < constants.MinSpoonBudget {
		return constants.MinSpoonBudget
	}
	if n > constants.MaxSpoonBudget {
		return constants.MaxSpoonBudget
	}
	return n
}

// candidate is one hour of goal work proposed for today's plan.
type candidate struct {
	startMin     int
	goalID       string
	title        string
	subtaskID    string
	subtaskTitle string
	cost         int
	category     models.ScheduleCategory
}

// ComposeDay turns a goal list and an energy budget into today's hour-keyed
// assignment map. Storm events shrink the budget, the plan starts at the
// next full hour, the energy level steers the work/nourishment mix, and a
// recovery slot is forced after any block costing at least the recovery
// threshold. The total cost of non-recovery entries never exceeds the
// resolved budget.
func (s *Scheduler) ComposeDay(goals []models.Goal, events []models.CalendarEvent, budget EnergyBudget) models.Assignment {
	spoons, level := budget.resolve()

	now := s.now()
	anchor := timeutil.WeekAnchor(now)
	today := int(now.Weekday())

	if len(events) > 0 {
		spoons -= s.StormImpact(events, anchor, today).CapacityReduction
		if spoons < 0 {
			spoons = 0
		}
	}

	fromMin := (now.Hour() + 1) * 60
	windows := windowsForDay(s.OpenWindows(events, nil, anchor, s.opts.StormBufferMin), today, fromMin)

	candidates := s.dayCandidates(goals, windows, today)
	picked := pickCandidates(candidates, spoons, level)
	return s.fillSlots(picked, windows)
}

// dayCandidates expands every routine goal's blocks for today into per-hour
// candidates, ordered chronologically.
func (s *Scheduler) dayCandidates(goals []models.Goal, windows []models.TimeWindow, today int) []candidate {
	var candidates []candidate

	for _, goal := range goals {
		if goal.Kind != models.GoalKindRoutine {
			continue
		}

		var blocks []models.ScheduledBlock
		if goal.ScheduleMode == models.ScheduleModeSolid {
			blocks = s.ScheduleSolid(goal)
		} else {
			blocks = s.ScheduleLiquid(goal, windows)
		}

		cost := goal.EffectiveSpoonCost()
		category := goal.EffectiveCategory()
		for _, block := range blocks {
			if block.Day != today {
				continue
			}
			start := timeutil.ToMinutes(block.Start)
			end := timeutil.ToMinutes(block.End)
			for m := start; m < end; m += 60 {
				candidates = append(candidates, candidate{
					startMin:     m,
					goalID:       block.GoalID,
					title:        block.Title,
					subtaskID:    block.SubtaskID,
					subtaskTitle: block.SubtaskTitle,
					cost:         cost,
					category:     category,
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].startMin < candidates[j].startMin
	})

	return candidates
}

// pickCandidates orders and budget-caps candidates according to the energy
// level:
//   - low reserves one spoon for at most one nourishment slot and spends the
//     rest on work in chronological order
//   - high interleaves both categories, forcing a nourishment slot after
//     every run of four work slots
//   - normal merges both categories chronologically
func pickCandidates(candidates []candidate, budget int, level energyLevel) []candidate {
	var work, nourish []candidate
	for _, c := range candidates {
		if c.category == models.CategoryNourishment {
			nourish = append(nourish, c)
		} else {
			work = append(work, c)
		}
	}

	switch level {
	case energyLow:
		return pickLowEnergy(work, nourish, budget)
	case energyHigh:
		return pickHighEnergy(work, nourish, budget)
	default:
		return pickWithinBudget(candidates, budget)
	}
}

func pickWithinBudget(candidates []candidate, budget int) []candidate {
	var picked []candidate
	used := 0
	for _, c := range candidates {
		if used+c.cost > budget {
			continue
		}
		picked = append(picked, c)
		used += c.cost
	}
	return picked
}

func pickLowEnergy(work, nourish []candidate, budget int) []candidate {
	workBudget := budget
	var reserved *candidate
	if len(nourish) > 0 {
		reserved = &nourish[0]
		workBudget--
	}

	picked := pickWithinBudget(work, workBudget)

	if reserved != nil {
		used := 0
		for _, c := range picked {
			used += c.cost
		}
		if used+reserved.cost <= budget {
			picked = append(picked, *reserved)
			sort.SliceStable(picked, func(i, j int) bool {
				return picked[i].startMin < picked[j].startMin
			})
		}
	}

	return picked
}

func pickHighEnergy(work, nourish []candidate, budget int) []candidate {
	var picked []candidate
	used := 0
	run := 0
	wi, ni := 0, 0

	for wi < len(work) || ni < len(nourish) {
		takeNourish := false
		switch {
		case run >= constants.WorkRunBeforeNourishment && ni < len(nourish):
			takeNourish = true
		case wi >= len(work):
			takeNourish = true
		case ni < len(nourish) && nourish[ni].startMin < work[wi].startMin:
			takeNourish = true
		}

		var c candidate
		if takeNourish {
			c = nourish[ni]
			ni++
		} else {
			c = work[wi]
			wi++
		}

		if used+c.cost > budget {
			continue
		}
		picked = append(picked, c)
		used += c.cost
		if takeNourish {
			run = 0
		} else {
			run++
		}
	}

	return picked
}

// fillSlots walks the picked candidates across the open hour slots. A slot
// following a block that cost at least the recovery threshold is forced to a
// zero-cost recovery placeholder regardless of remaining budget.
func (s *Scheduler) fillSlots(picked []candidate, windows []models.TimeWindow) models.Assignment {
	assignment := models.Assignment{}
	idx := 0
	forceRecovery := false

	for _, hour := range openHours(windows) {
		if idx >= len(picked) && !forceRecovery {
			break
		}
		key := timeutil.HourKey(hour)
		if forceRecovery {
			assignment[key] = recoveryEntry()
			forceRecovery = false
			continue
		}
		c := picked[idx]
		idx++
		assignment[key] = models.AssignmentEntry{
			ID:           uuid.NewString(),
			GoalID:       c.goalID,
			Title:        c.title,
			Kind:         models.EntryRoutine,
			SpoonCost:    c.cost,
			SubtaskID:    c.subtaskID,
			SubtaskTitle: c.subtaskTitle,
		}
		if c.cost >= s.opts.RecoveryThreshold {
			forceRecovery = true
		}
	}

	return assignment
}

func recoveryEntry() models.AssignmentEntry {
	return models.AssignmentEntry{
		ID:        uuid.NewString(),
		Title:     "Recovery break",
		Kind:      models.EntryRecovery,
		SpoonCost: 0,
	}
}
