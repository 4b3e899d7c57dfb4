package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/grove/internal/cli"
	"github.com/julianstephens/grove/internal/scheduler"
	"github.com/julianstephens/grove/internal/storage"
)

var CLI struct {
	Version    kong.VersionFlag
	GoalsFile  string `help:"Path to the goal list JSON document." type:"path"`
	EventsFile string `help:"Path to the calendar events JSON document." type:"path"`

	Plan    cli.PlanCmd    `cmd:"" help:"Compose today's hour-by-hour plan."`
	Week    cli.WeekCmd    `cmd:"" help:"Materialize an abstract week plan into dated assignments."`
	Check   cli.CheckCmd   `cmd:"" help:"Validate goals and check deadline feasibility."`
	Lighten cli.LightenCmd `cmd:"" help:"Trim an over-budget day down to a spoon budget."`
	Goals   cli.GoalsCmd   `cmd:"" name:"goals" help:"List the parsed goals."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("grove"),
		kong.Description("Energy-aware time-blocking planner"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx := &cli.Context{
		Store:     storage.NewJSONFiles(CLI.GoalsFile, CLI.EventsFile),
		Scheduler: scheduler.New(),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
