package constants

const (
	// Working-hour window the planner fills when the caller supplies none.
	DefaultWorkStartHour = 6
	DefaultWorkEndHour   = 23

	// Storm handling defaults: minutes of buffer padded on each side of a
	// storm event, and the spoon cost charged per storm event on a day.
	DefaultStormBufferMin     = 30
	DefaultStormCostPerEvent  = 1
	MaxStormCapacityReduction = 6

	// Spoon budget bounds and the legacy energy-modifier mapping baseline.
	MinSpoonBudget      = 1
	MaxSpoonBudget      = 12
	BaselineSpoonBudget = 8

	// Energy-level thresholds on the resolved spoon count.
	LowEnergySpoonMax  = 4
	HighEnergySpoonMin = 9

	// RecoverySpoonThreshold is the per-slot cost at or above which the
	// composer forces the following hour to be a recovery slot.
	RecoverySpoonThreshold = 3

	// WorkRunBeforeNourishment caps consecutive work slots on high-energy
	// days before a nourishment slot is interleaved.
	WorkRunBeforeNourishment = 4

	// Liquid block quantization: blocks are one or two hours, never shorter.
	MinBlockMin = 60
	MaxBlockMin = 120

	// Spoon cost bounds on a single goal.
	MinSpoonCost = 1
	MaxSpoonCost = 4
)
