package scheduler

import (
	"time"

	"github.com/julianstephens/grove/internal/constants"
)

// Options tunes the engine. Zero values fall back to the defaults in the
// constants package, so callers only set what they care about.
type Options struct {
	WorkStartHour     int
	WorkEndHour       int
	StormBufferMin    int
	StormCostPerEvent int
	RecoveryThreshold int

	// Now supplies the clock. Injectable so plans are reproducible in tests.
	Now func() time.Time
}

func DefaultOptions() Options {
	return Options{
		WorkStartHour:     constants.DefaultWorkStartHour,
		WorkEndHour:       constants.DefaultWorkEndHour,
		StormBufferMin:    constants.DefaultStormBufferMin,
		StormCostPerEvent: constants.DefaultStormCostPerEvent,
		RecoveryThreshold: constants.RecoverySpoonThreshold,
		Now:               time.Now,
	}
}

// Scheduler is the capacity-constrained slot-allocation engine. It performs
// no I/O and holds no mutable state; every method is a pure computation over
// its inputs and the injected clock.
type Scheduler struct {
	opts Options
}

func New() *Scheduler {
	return NewWithOptions(DefaultOptions())
}

func NewWithOptions(opts Options) *Scheduler {
	defaults := DefaultOptions()
	if opts.WorkStartHour == 0 && opts.WorkEndHour == 0 {
		opts.WorkStartHour = defaults.WorkStartHour
		opts.WorkEndHour = defaults.WorkEndHour
	}
	if opts.StormBufferMin == 0 {
		opts.StormBufferMin = defaults.StormBufferMin
	}
	if opts.StormCostPerEvent == 0 {
		opts.StormCostPerEvent = defaults.StormCostPerEvent
	}
	if opts.RecoveryThreshold == 0 {
		opts.RecoveryThreshold = defaults.RecoveryThreshold
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Scheduler{opts: opts}
}

func (s *Scheduler) now() time.Time {
	return s.opts.Now()
}
