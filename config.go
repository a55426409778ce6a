package shikaku

import "time"

// Config holds annealing and escalation tuning parameters. Adjust these to
// trade solve time for success rate.
type Config struct {
	// InitTemp is the starting temperature of one annealing run.
	InitTemp float64
	// Decay is the geometric cooling factor applied after every iteration.
	// Must be in (0,1).
	Decay float64
	// KMax is the iteration ceiling of one annealing run.
	KMax int
	// MaxTime optionally bounds one run's wall-clock time; 0 means no bound.
	// The budget is checked at the top of each iteration, so the best-seen
	// assignment stays valid on cutoff.
	MaxTime time.Duration
	// KMaxCeiling is the iteration budget at which escalation gives up.
	KMaxCeiling int
	// TempGrowth multiplies InitTemp between escalation rounds.
	TempGrowth float64
	// BudgetGrowth multiplies KMax between escalation rounds.
	BudgetGrowth int
}

// DefaultConfig returns the tuning used by the CLI and the benchmarks.
func DefaultConfig() Config {
	return Config{
		InitTemp:     1.0,
		Decay:        0.999,
		KMax:         1000,
		KMaxCeiling:  10_000_000,
		TempGrowth:   100,
		BudgetGrowth: 10,
	}
}
