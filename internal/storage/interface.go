package storage

import "github.com/julianstephens/grove/internal/models"

// Provider supplies the engine's inputs. The engine never fetches or
// persists anything itself; whoever owns the data hands it over through
// this interface and consumes the returned plans directly.
type Provider interface {
	Goals() ([]models.Goal, error)
	Events() ([]models.CalendarEvent, error)
	WeekPlan() (models.WeekPlan, error)
	Assignment() (models.Assignment, error)
}
