package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/grove/internal/constants"
)

type WeekCmd struct {
	Plan  string `arg:"" help:"Path to a week plan JSON document (weekday name to goal hours)." type:"path"`
	Start string `help:"Any date inside the target week (YYYY-MM-DD); defaults to this week." default:""`
	JSON  bool   `help:"Emit the per-date assignments as JSON."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	goals, err := ctx.Store.Goals()
	if err != nil {
		return err
	}
	events, err := ctx.Store.Events()
	if err != nil {
		return err
	}

	ctx.Store.WeekPlanPath = c.Plan
	plan, err := ctx.Store.WeekPlan()
	if err != nil {
		return err
	}

	weekStart := time.Now()
	if c.Start != "" {
		weekStart, err = time.Parse(constants.DateFormat, c.Start)
		if err != nil {
			return fmt.Errorf("invalid start date, use YYYY-MM-DD: %w", err)
		}
	}

	result := ctx.Scheduler.MaterializeWeek(plan, goals, events, weekStart)

	if c.JSON {
		return printJSON(result)
	}

	dates := make([]string, 0, len(result))
	for d := range result {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, date := range dates {
		fmt.Println(headerStyle.Render(date))
		printAssignment(result[date])
		fmt.Println()
	}
	if len(dates) == 0 {
		fmt.Println("Nothing to materialize")
	}
	return nil
}
