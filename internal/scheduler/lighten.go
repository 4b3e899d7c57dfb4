package scheduler

import (
	"fmt"
	"sort"

	"github.com/julianstephens/grove/internal/models"
)

// removal priority tables keyed on energy type; lower rank is removed first.
var (
	lowEnergyRemovalRank = map[models.EnergyType]int{
		models.EnergyHighFocus:   0,
		models.EnergyMaintenance: 1,
		models.EnergyRestorative: 2,
	}
	highEnergyRemovalRank = map[models.EnergyType]int{
		models.EnergyRestorative: 0,
		models.EnergyMaintenance: 1,
		models.EnergyHighFocus:   2,
	}
)

type removableSlot struct {
	hour   string
	entry  models.AssignmentEntry
	energy models.EnergyType
}

// LightenLoad trims an over-budget day down to the target spoon budget,
// removing filled slots in an energy-aware priority order. Low energy sheds
// high-focus work first; high energy sheds restorative time first; neutral
// energy trims from the end of the day. Recovery slots are never removed.
// Returns nil when the day already fits.
func (s *Scheduler) LightenLoad(assignments models.Assignment, goals []models.Goal, budget int, modifier int) *models.LightenResult {
	total := assignments.SpoonTotal()
	if total <= budget {
		return nil
	}

	goalsByID := make(map[string]models.Goal, len(goals))
	for _, g := range goals {
		goalsByID[g.ID] = g
	}

	var removable []removableSlot
	for hour, entry := range assignments {
		if entry.Kind == models.EntryRecovery || entry.SpoonCost <= 0 {
			continue
		}
		energy := models.EnergyMaintenance
		if g, ok := goalsByID[entry.GoalID]; ok {
			energy = g.EffectiveEnergyType()
		}
		removable = append(removable, removableSlot{hour: hour, entry: entry, energy: energy})
	}

	sortRemovable(removable, modifier)

	lightened := make(models.Assignment, len(assignments))
	for hour, entry := range assignments {
		lightened[hour] = entry
	}

	var removed []models.RemovedItem
	for _, slot := range removable {
		if total <= budget {
			break
		}
		delete(lightened, slot.hour)
		total -= slot.entry.SpoonCost
		removed = append(removed, models.RemovedItem{
			Hour:       slot.hour,
			Title:      slot.entry.Title,
			EnergyType: slot.energy,
			Reason:     removalReason(slot.energy, modifier),
		})
	}

	return &models.LightenResult{Assignments: lightened, RemovedItems: removed}
}

func sortRemovable(removable []removableSlot, modifier int) {
	switch {
	case modifier < 0:
		sort.SliceStable(removable, func(i, j int) bool {
			ri, rj := lowEnergyRemovalRank[removable[i].energy], lowEnergyRemovalRank[removable[j].energy]
			if ri != rj {
				return ri < rj
			}
			return removable[i].hour > removable[j].hour
		})
	case modifier > 0:
		sort.SliceStable(removable, func(i, j int) bool {
			ri, rj := highEnergyRemovalRank[removable[i].energy], highEnergyRemovalRank[removable[j].energy]
			if ri != rj {
				return ri < rj
			}
			return removable[i].hour > removable[j].hour
		})
	default:
		// Neutral energy trims the latest hours first.
		sort.SliceStable(removable, func(i, j int) bool {
			return removable[i].hour > removable[j].hour
		})
	}
}

func removalReason(energy models.EnergyType, modifier int) string {
	switch {
	case modifier < 0:
		return fmt.Sprintf("Removed %s activity to protect a low-energy day", energy)
	case modifier > 0:
		return fmt.Sprintf("Removed %s activity; high-energy days favor focused work", energy)
	default:
		return "Removed the latest scheduled activity to fit the budget"
	}
}
