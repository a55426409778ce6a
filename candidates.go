package shikaku

import (
	"errors"
	"fmt"
)

// ErrInfeasible reports an instance where some clue has no candidate
// rectangle at all, so no tiling can exist.
var ErrInfeasible = errors.New("infeasible instance")

// Rect is an axis-aligned rectangle with inclusive bounds.
type Rect struct {
	RowMin, ColMin int
	RowMax, ColMax int
}

// Area returns the number of cells the rectangle covers.
func (r Rect) Area() int {
	return (r.RowMax - r.RowMin + 1) * (r.ColMax - r.ColMin + 1)
}

// Contains reports whether the cell (row, col) lies inside the rectangle.
func (r Rect) Contains(row, col int) bool {
	return row >= r.RowMin && row <= r.RowMax && col >= r.ColMin && col <= r.ColMax
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.RowMin, r.ColMin, r.RowMax, r.ColMax)
}

// Candidates enumerates every rectangle of area clue.Value that fits in the
// grid, contains the clue's cell and contains no other clue. Rectangles
// swallowing a foreign clue can never appear in a valid tiling (that clue's
// own rectangle would have to cover the same cell again), so they are pruned
// for both solving paths. The whole interior is scanned for foreign clues,
// not just the clue's column.
func Candidates(g Grid, clue Clue) []Rect {
	rows, cols := g.Rows(), g.Cols()
	var out []Rect
	for _, d := range dims(clue.Value) {
		h, w := d[0], d[1]
		if h > rows || w > cols {
			continue
		}
		// Slide the top-left corner over every placement that still
		// contains the clue cell.
		for r0 := max(0, clue.Row-h+1); r0 <= min(clue.Row, rows-h); r0++ {
			for c0 := max(0, clue.Col-w+1); c0 <= min(clue.Col, cols-w); c0++ {
				rect := Rect{RowMin: r0, ColMin: c0, RowMax: r0 + h - 1, ColMax: c0 + w - 1}
				if !containsForeignClue(g, rect, clue) {
					out = append(out, rect)
				}
			}
		}
	}
	return out
}

// dims returns every (height, width) pair with height*width == v, both
// orientations included. Trial division up to √v yields each pair once.
func dims(v int) [][2]int {
	var ds [][2]int
	for d := 1; d*d <= v; d++ {
		if v%d != 0 {
			continue
		}
		ds = append(ds, [2]int{d, v / d})
		if d != v/d {
			ds = append(ds, [2]int{v / d, d})
		}
	}
	return ds
}

func containsForeignClue(g Grid, rect Rect, clue Clue) bool {
	for i := rect.RowMin; i <= rect.RowMax; i++ {
		for j := rect.ColMin; j <= rect.ColMax; j++ {
			if g[i][j] > 0 && !(i == clue.Row && j == clue.Col) {
				return true
			}
		}
	}
	return false
}

// CandidateSets builds the candidate list of every clue in scan order.
// It fails with ErrInfeasible as soon as one clue has no candidate.
func CandidateSets(g Grid) ([]Clue, [][]Rect, error) {
	clues := g.Clues()
	sets := make([][]Rect, len(clues))
	for k, c := range clues {
		sets[k] = Candidates(g, c)
		if len(sets[k]) == 0 {
			return nil, nil, fmt.Errorf("clue %d at (%d,%d): %w", c.Value, c.Row, c.Col, ErrInfeasible)
		}
	}
	return clues, sets, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
