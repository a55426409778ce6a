package shikaku

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// EscalateResult reports the outcome of an escalation run: the final best
// tiling, whether it is optimal, and the elapsed time summed over every
// round, not just the last.
type EscalateResult struct {
	Optimal    bool
	Rounds     int
	Iterations int // total iterations across all rounds
	Energy     int
	Rects      []Rect
	Elapsed    time.Duration
}

// Escalate repeatedly runs the annealer with a geometrically growing budget
// (KMax × cfg.BudgetGrowth, InitTemp × cfg.TempGrowth per round) until a run
// reaches the optimal energy or KMax would exceed cfg.KMaxCeiling. Every
// round starts from a fresh random assignment; a stalled search is never
// resumed.
func Escalate(g Grid, seed int64, cfg Config) (EscalateResult, error) {
	a, err := NewAnnealer(g, rand.New(rand.NewSource(seed)))
	if err != nil {
		return EscalateResult{}, err
	}

	var res EscalateResult
	res.Energy = -1
	for cfg.KMax <= cfg.KMaxCeiling {
		r := a.Run(cfg)
		res.Rounds++
		res.Iterations += r.Iterations
		res.Elapsed += r.Elapsed
		if res.Energy < 0 || r.Energy < res.Energy {
			res.Energy = r.Energy
			res.Rects = r.Rects
		}
		log.WithFields(logrus.Fields{
			"round":  res.Rounds,
			"kmax":   cfg.KMax,
			"temp":   cfg.InitTemp,
			"energy": r.Energy,
		}).Debug("annealing round done")
		if r.Optimal {
			res.Optimal = true
			return res, nil
		}
		cfg.KMax *= cfg.BudgetGrowth
		cfg.InitTemp *= cfg.TempGrowth
	}
	return res, nil
}

// SolveAnneal runs Escalate and adapts its outcome to the common Result
// shape. A non-optimal outcome at the budget ceiling yields Solved=false
// with StatusUnknown: the heuristic cannot prove infeasibility.
func SolveAnneal(g Grid, seed int64, cfg Config) (Result, error) {
	start := time.Now()
	er, err := Escalate(g, seed, cfg)
	if err != nil {
		return Result{Status: StatusInfeasible, Elapsed: time.Since(start)}, err
	}
	res := Result{
		Status:  StatusUnknown,
		Elapsed: er.Elapsed,
	}
	if er.Optimal {
		res.Solved = true
		res.Status = StatusFeasible
		res.Rects = er.Rects
	}
	return res, nil
}
