package cli

import (
	"fmt"
)

type LightenCmd struct {
	Assignments string `arg:"" help:"Path to an existing day assignment JSON document." type:"path"`
	Budget      int    `help:"Target spoon budget." default:"8"`
	Modifier    int    `help:"Energy modifier steering removal order (-2..+1)." default:"0"`
	JSON        bool   `help:"Emit the lightened plan as JSON."`
}

func (c *LightenCmd) Run(ctx *Context) error {
	goals, err := ctx.Store.Goals()
	if err != nil {
		return err
	}

	ctx.Store.AssignmentPath = c.Assignments
	assignment, err := ctx.Store.Assignment()
	if err != nil {
		return err
	}

	result := ctx.Scheduler.LightenLoad(assignment, goals, c.Budget, c.Modifier)
	if result == nil {
		fmt.Printf("Day already fits within %d spoon(s); no change.\n", c.Budget)
		return nil
	}

	if c.JSON {
		return printJSON(result)
	}

	fmt.Println(headerStyle.Render("Lightened plan"))
	printAssignment(result.Assignments)

	fmt.Println()
	fmt.Println(headerStyle.Render("Removed"))
	for _, item := range result.RemovedItems {
		fmt.Printf("%s  %s\n", hourStyle.Render(item.Hour), warnStyle.Render(item.Title+" ("+item.Reason+")"))
	}
	return nil
}
