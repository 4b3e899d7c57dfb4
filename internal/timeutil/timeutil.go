package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/grove/internal/constants"
)

// ToMinutes converts an "HH:MM" string to minutes from midnight. Malformed
// input yields 0; this is an internal utility with no user-facing error path.
func ToMinutes(timeStr string) int {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	if hour < 0 || minute < 0 {
		return 0
	}
	return hour*constants.MinutesPerHour + minute
}

// ToTimeString converts minutes from midnight back to "HH:MM". Negative
// input yields "00:00".
func ToTimeString(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/constants.MinutesPerHour, minutes%constants.MinutesPerHour)
}

// HourKey returns the "HH:00" assignment key for an hour of the day.
func HourKey(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// WeekAnchor returns the Monday of the week containing t, at midnight in
// t's location.
func WeekAnchor(t time.Time) time.Time {
	day := t.Weekday()
	offset := int(day - time.Monday)
	if day == time.Sunday {
		offset = 6
	}
	anchored := t.AddDate(0, 0, -offset)
	return time.Date(anchored.Year(), anchored.Month(), anchored.Day(), 0, 0, 0, 0, t.Location())
}

// DateOnly truncates t to midnight in its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
