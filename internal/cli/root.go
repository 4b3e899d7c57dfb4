package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/grove/internal/models"
	"github.com/julianstephens/grove/internal/scheduler"
	"github.com/julianstephens/grove/internal/storage"
)

type Context struct {
	Store     *storage.JSONFiles
	Scheduler *scheduler.Scheduler
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	hourStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	recoveryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)

// printAssignment renders one day's hour-keyed plan in time order.
func printAssignment(assignment models.Assignment) {
	if len(assignment) == 0 {
		fmt.Println("  Nothing scheduled")
		return
	}

	hours := make([]string, 0, len(assignment))
	for h := range assignment {
		hours = append(hours, h)
	}
	sort.Strings(hours)

	for _, hour := range hours {
		entry := assignment[hour]
		if entry.Kind == models.EntryRecovery {
			fmt.Printf("%s  %s\n", hourStyle.Render(hour), recoveryStyle.Render(entry.Title))
			continue
		}
		line := fmt.Sprintf("%-30s  %d spoon(s)", entry.Title, entry.SpoonCost)
		if entry.SubtaskTitle != "" {
			line = fmt.Sprintf("%-30s  %d spoon(s)", entry.Title+" / "+entry.SubtaskTitle, entry.SpoonCost)
		}
		fmt.Printf("%s  %s\n", hourStyle.Render(hour), line)
	}
}

// printJSON writes any result as indented JSON for machine consumers.
func printJSON(value any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
