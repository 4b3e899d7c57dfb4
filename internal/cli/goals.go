package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/grove/internal/models"
)

type GoalsCmd struct {
	JSON bool `help:"Emit the parsed goal list as JSON."`
}

func (c *GoalsCmd) Run(ctx *Context) error {
	goals, err := ctx.Store.Goals()
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(goals)
	}

	if len(goals) == 0 {
		fmt.Println("No goals configured")
		return nil
	}

	for _, goal := range goals {
		fmt.Printf("%s  %-25s  %s\n", headerStyle.Render(goal.ID), goal.Title, describeGoal(goal))
	}
	return nil
}

func describeGoal(goal models.Goal) string {
	var parts []string
	parts = append(parts, string(goal.Kind))

	switch goal.ScheduleMode {
	case models.ScheduleModeSolid:
		if goal.Solid != nil {
			parts = append(parts, fmt.Sprintf("solid %s-%s on %v", goal.Solid.Start, goal.Solid.End, goal.Solid.Days))
		} else {
			parts = append(parts, "solid (unconfigured)")
		}
	case models.ScheduleModeLiquid:
		parts = append(parts, fmt.Sprintf("liquid %d min/week", goal.TargetMinutes()))
	}

	parts = append(parts, fmt.Sprintf("%d spoon(s)", goal.EffectiveSpoonCost()))
	if goal.EffectiveCategory() == models.CategoryNourishment {
		parts = append(parts, "nourishment")
	}
	if len(goal.Subtasks) > 0 {
		parts = append(parts, fmt.Sprintf("%d subtask(s)", len(goal.Subtasks)))
	}

	return strings.Join(parts, ", ")
}
