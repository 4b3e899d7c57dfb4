package cli

import (
	"fmt"

	"github.com/julianstephens/grove/internal/scheduler"
)

type PlanCmd struct {
	Spoons   int  `help:"Spoon budget for today (1-12)." default:"8"`
	Modifier *int `help:"Legacy energy modifier (-2..+1); overrides --spoons when set."`
	JSON     bool `help:"Emit the assignment map as JSON."`
}

func (c *PlanCmd) Run(ctx *Context) error {
	goals, err := ctx.Store.Goals()
	if err != nil {
		return err
	}
	events, err := ctx.Store.Events()
	if err != nil {
		return err
	}

	budget := scheduler.SpoonBudget(c.Spoons)
	if c.Modifier != nil {
		budget = scheduler.ModifierBudget(*c.Modifier)
	}

	assignment := ctx.Scheduler.ComposeDay(goals, events, budget)

	if c.JSON {
		return printJSON(assignment)
	}

	fmt.Println(headerStyle.Render("Today's plan"))
	printAssignment(assignment)
	fmt.Printf("\nTotal cost: %d spoon(s)\n", assignment.SpoonTotal())
	return nil
}
