package scheduler

import "sort"

// interval is a half-open [start, end) span in minutes from midnight.
type interval struct {
	start int
	end   int
}

// mergeIntervals collapses overlapping or touching intervals into a minimal
// sorted set. The input is not modified.
func mergeIntervals(intervals []interval) []interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].start != sorted[j].start {
			return sorted[i].start < sorted[j].start
		}
		return sorted[i].end < sorted[j].end
	})

	merged := []interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.start <= last.end {
			if iv.end > last.end {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}

// subtractIntervals returns the open spans left inside [from, to) after
// removing the merged blocked set.
func subtractIntervals(from, to int, blocked []interval) []interval {
	if to <= from {
		return nil
	}

	var open []interval
	cursor := from
	for _, b := range blocked {
		if b.end <= cursor || b.start >= to {
			continue
		}
		if b.start > cursor {
			open = append(open, interval{start: cursor, end: b.start})
		}
		if b.end > cursor {
			cursor = b.end
		}
	}
	if cursor < to {
		open = append(open, interval{start: cursor, end: to})
	}

	return open
}
