package shikaku

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// GiniBackend solves the exact-cover model with the gini CNF solver. Each
// exactly-one constraint becomes one at-least-one clause plus pairwise
// at-most-one clauses.
type GiniBackend struct{}

func (GiniBackend) Name() string { return "gini" }

func (GiniBackend) Solve(m *Model, timeout time.Duration) (Status, []bool, error) {
	g := gini.New()
	lit := func(v int) z.Lit { return z.Var(v + 1).Pos() }

	exactlyOne := func(vars []int) {
		for _, v := range vars {
			g.Add(lit(v))
		}
		g.Add(0)
		for i := 0; i < len(vars); i++ {
			for j := i + 1; j < len(vars); j++ {
				g.Add(lit(vars[i]).Not())
				g.Add(lit(vars[j]).Not())
				g.Add(0)
			}
		}
	}
	for _, vars := range m.ClueVars {
		exactlyOne(vars)
	}
	for _, vars := range m.CellVars {
		exactlyOne(vars)
	}

	var res int
	if timeout > 0 {
		res = g.GoSolve().Try(timeout)
	} else {
		res = g.Solve()
	}

	switch res {
	case 1:
		values := make([]bool, m.NumVars())
		for v := range values {
			values[v] = g.Value(lit(v))
		}
		return StatusFeasible, values, nil
	case -1:
		return StatusInfeasible, nil, nil
	default:
		return StatusUnknown, nil, nil
	}
}
