package scheduler

import (
	"sort"
	"time"

	"github.com/julianstephens/grove/internal/models"
)

// fixedNow is the reference clock for scenario tests: Wednesday, Dec 31 2025
// at 08:30 local. Plans composed "now" therefore start at 09:00.
var fixedNow = time.Date(2025, 12, 31, 8, 30, 0, 0, time.UTC)

func testScheduler(now time.Time) *Scheduler {
	return NewWithOptions(Options{Now: func() time.Time { return now }})
}

func intPtr(n int) *int {
	return &n
}

// sortedHours returns the occupied "HH:00" keys in chronological order.
// Zero-padded keys sort lexicographically into time order.
func sortedHours(a models.Assignment) []string {
	hours := make([]string, 0, len(a))
	for h := range a {
		hours = append(hours, h)
	}
	sort.Strings(hours)
	return hours
}
