package cli

import (
	"fmt"

	"github.com/julianstephens/grove/internal/validation"
)

type CheckCmd struct {
	JSON bool `help:"Emit warnings and conflicts as JSON."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	goals, err := ctx.Store.Goals()
	if err != nil {
		return err
	}
	events, err := ctx.Store.Events()
	if err != nil {
		return err
	}

	result := validation.New().ValidateGoals(goals)
	warnings := ctx.Scheduler.CheckDeadlines(goals, events)

	if c.JSON {
		return printJSON(map[string]any{
			"conflicts":         result.Conflicts,
			"deadline_warnings": warnings,
		})
	}

	fmt.Println(headerStyle.Render("Goal configuration"))
	fmt.Println(result.FormatReport())

	fmt.Println(headerStyle.Render("Deadline feasibility"))
	if len(warnings) == 0 {
		fmt.Println("All deadlines look reachable.")
		return nil
	}
	for _, w := range warnings {
		fmt.Println(warnStyle.Render("! " + w.Message))
	}
	return nil
}
