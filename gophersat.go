package shikaku

import (
	"time"

	"github.com/crillab/gophersat/solver"
)

// GophersatBackend solves the exact-cover model with the gophersat
// pseudo-Boolean solver. The exactly-one constraints map directly to
// cardinality constraints, no CNF expansion needed.
type GophersatBackend struct{}

func (GophersatBackend) Name() string { return "gophersat" }

// Solve builds the cardinality problem and runs the solver. gophersat has no
// interruption hook, so the cutoff is enforced by abandoning the solve
// goroutine once the timer fires; the result is then "no conclusion".
func (GophersatBackend) Solve(m *Model, timeout time.Duration) (Status, []bool, error) {
	constrs := make([]solver.CardConstr, 0, 2*(len(m.ClueVars)+len(m.CellVars)))
	for _, vars := range m.ClueVars {
		constrs = append(constrs, exactlyOne(vars)...)
	}
	for _, vars := range m.CellVars {
		constrs = append(constrs, exactlyOne(vars)...)
	}

	s := solver.New(solver.ParseCardConstrs(constrs))

	done := make(chan solver.Status, 1)
	go func() { done <- s.Solve() }()

	var st solver.Status
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case st = <-done:
		case <-timer.C:
			return StatusUnknown, nil, nil
		}
	} else {
		st = <-done
	}

	switch st {
	case solver.Sat:
		model := s.Model()
		values := make([]bool, m.NumVars())
		copy(values, model)
		return StatusFeasible, values, nil
	case solver.Unsat:
		return StatusInfeasible, nil, nil
	default:
		return StatusUnknown, nil, nil
	}
}

// exactlyOne builds the two cardinality constraints forcing exactly one of
// the given model variables true. Literals are 1-based. Each constraint gets
// its own slice: gophersat's AtMost1 negates literals in place.
func exactlyOne(vars []int) []solver.CardConstr {
	atLeast := make([]int, len(vars))
	atMost := make([]int, len(vars))
	for i, v := range vars {
		atLeast[i] = v + 1
		atMost[i] = v + 1
	}
	return []solver.CardConstr{
		solver.AtLeast1(atLeast...),
		solver.AtMost1(atMost...),
	}
}
