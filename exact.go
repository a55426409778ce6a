package shikaku

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Status is the terminal outcome of an exact solve.
type Status int

const (
	// StatusUnknown means the backend reached its cutoff or otherwise
	// stopped without a conclusion.
	StatusUnknown Status = iota
	// StatusFeasible means a valid tiling was found.
	StatusFeasible
	// StatusInfeasible means the backend proved no tiling exists.
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Backend is any solver capable of binary feasibility search over an
// exact-cover model. On StatusFeasible the returned slice holds the value of
// every model variable. A non-nil error is a backend failure (crash,
// unsupported state) and is never conflated with infeasibility.
type Backend interface {
	Name() string
	Solve(m *Model, timeout time.Duration) (Status, []bool, error)
}

// Result is the outcome of one solve, by either path.
type Result struct {
	Solved  bool
	Status  Status
	Rects   []Rect
	Elapsed time.Duration
}

// SolveExact generates candidates, builds the exact-cover model, dispatches
// it to the backend and reconstructs the tiling from the true variables.
// A zero timeout means no cutoff. Elapsed time is wall-clock and is reported
// on every path, including failures.
func SolveExact(g Grid, b Backend, timeout time.Duration) (Result, error) {
	start := time.Now()

	clues, sets, err := CandidateSets(g)
	if err != nil {
		// A clue without candidates is proven infeasibility, not an error.
		return Result{Status: StatusInfeasible, Elapsed: time.Since(start)}, nil
	}
	m := BuildModel(g, clues, sets)

	log.WithFields(logrus.Fields{
		"backend": b.Name(),
		"clues":   len(clues),
		"vars":    m.NumVars(),
	}).Debug("dispatching exact-cover model")

	status, values, err := b.Solve(m, timeout)
	elapsed := time.Since(start)
	if err != nil {
		return Result{Elapsed: elapsed}, fmt.Errorf("backend %s: %w", b.Name(), err)
	}
	if status != StatusFeasible {
		return Result{Status: status, Elapsed: elapsed}, nil
	}

	rects, err := rectsFromModel(m, values)
	if err != nil {
		return Result{Elapsed: elapsed}, fmt.Errorf("backend %s: %w", b.Name(), err)
	}
	return Result{Solved: true, Status: StatusFeasible, Rects: rects, Elapsed: elapsed}, nil
}

// rectsFromModel rebuilds one rectangle per clue from the active variables:
// the bounding box over all cells covered by the clue's chosen candidate.
func rectsFromModel(m *Model, values []bool) ([]Rect, error) {
	if len(values) < m.NumVars() {
		return nil, fmt.Errorf("model has %d variables, backend returned %d values", m.NumVars(), len(values))
	}
	rects := make([]Rect, len(m.Clues))
	chosen := make([]bool, len(m.Clues))
	for v, ref := range m.Vars {
		if !values[v] {
			continue
		}
		if chosen[ref.Clue] {
			return nil, fmt.Errorf("clue %d has more than one active candidate", ref.Clue)
		}
		chosen[ref.Clue] = true
		rect := Rect{RowMin: m.Rows, ColMin: m.Cols, RowMax: -1, ColMax: -1}
		for cell, vars := range m.CellVars {
			for _, cv := range vars {
				if cv != v {
					continue
				}
				i, j := cell/m.Cols, cell%m.Cols
				rect.RowMin = min(rect.RowMin, i)
				rect.ColMin = min(rect.ColMin, j)
				rect.RowMax = max(rect.RowMax, i)
				rect.ColMax = max(rect.ColMax, j)
			}
		}
		rects[ref.Clue] = rect
	}
	for k, ok := range chosen {
		if !ok {
			return nil, fmt.Errorf("clue %d has no active candidate", k)
		}
	}
	return rects, nil
}
