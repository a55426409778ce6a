package shikaku

import "fmt"

// VarRef identifies a binary decision variable as a (clue, candidate) pair.
type VarRef struct {
	Clue, Cand int
}

// Model is the exact-cover formulation of an instance: one binary variable
// per (clue, candidate) pair, an exactly-one constraint per clue and an
// exactly-one constraint per cell. It is a pure feasibility problem with no
// objective, expressible against any backend that can do binary feasibility
// search.
type Model struct {
	Rows, Cols int
	Clues      []Clue
	Sets       [][]Rect

	// Vars maps variable index to its (clue, candidate) pair.
	Vars []VarRef
	// ClueVars[k] lists the variable indices belonging to clue k.
	ClueVars [][]int
	// CellVars[i*Cols+j] lists the variables whose rectangle covers (i,j).
	CellVars [][]int
}

// BuildModel assembles the exact-cover model from per-clue candidate sets.
func BuildModel(g Grid, clues []Clue, sets [][]Rect) *Model {
	m := &Model{
		Rows:     g.Rows(),
		Cols:     g.Cols(),
		Clues:    clues,
		Sets:     sets,
		ClueVars: make([][]int, len(clues)),
		CellVars: make([][]int, g.Rows()*g.Cols()),
	}
	for k, set := range sets {
		for l, rect := range set {
			v := len(m.Vars)
			m.Vars = append(m.Vars, VarRef{Clue: k, Cand: l})
			m.ClueVars[k] = append(m.ClueVars[k], v)
			for i := rect.RowMin; i <= rect.RowMax; i++ {
				for j := rect.ColMin; j <= rect.ColMax; j++ {
					cell := i*m.Cols + j
					m.CellVars[cell] = append(m.CellVars[cell], v)
				}
			}
		}
	}
	return m
}

// NumVars returns the number of decision variables.
func (m *Model) NumVars() int { return len(m.Vars) }

// Rect returns the rectangle behind variable v.
func (m *Model) Rect(v int) Rect {
	ref := m.Vars[v]
	return m.Sets[ref.Clue][ref.Cand]
}

// Verify checks that rects is a valid solution of g: one rectangle per clue
// in scan order, each containing its clue with area equal to the clue value,
// and every grid cell covered exactly once.
func Verify(g Grid, rects []Rect) error {
	clues := g.Clues()
	if len(rects) != len(clues) {
		return fmt.Errorf("got %d rectangles, want %d (one per clue)", len(rects), len(clues))
	}
	counts := make([]int, g.Rows()*g.Cols())
	for k, rect := range rects {
		c := clues[k]
		if rect.RowMin < 0 || rect.ColMin < 0 || rect.RowMax >= g.Rows() || rect.ColMax >= g.Cols() {
			return fmt.Errorf("rectangle %s out of bounds", rect)
		}
		if rect.Area() != c.Value {
			return fmt.Errorf("rectangle %s has area %d, clue at (%d,%d) wants %d",
				rect, rect.Area(), c.Row, c.Col, c.Value)
		}
		if !rect.Contains(c.Row, c.Col) {
			return fmt.Errorf("rectangle %s does not contain its clue at (%d,%d)", rect, c.Row, c.Col)
		}
		for i := rect.RowMin; i <= rect.RowMax; i++ {
			for j := rect.ColMin; j <= rect.ColMax; j++ {
				counts[i*g.Cols()+j]++
			}
		}
	}
	for cell, n := range counts {
		if n != 1 {
			return fmt.Errorf("cell (%d,%d) covered %d times", cell/g.Cols(), cell%g.Cols(), n)
		}
	}
	return nil
}
