// Package shikaku solves and generates Shikaku rectangle-partition puzzles:
// a grid of cells, some marked with a positive integer clue, must be
// partitioned into axis-aligned rectangles, each containing exactly one clue
// and covering exactly that clue's value in cells.
package shikaku

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Grid is an m×n matrix of non-negative integers. A cell with a positive
// value is a clue whose value is the area of the rectangle that must contain
// it; zero cells are unconstrained filler.
type Grid [][]int

// Clue is a clue cell: its position and the required rectangle area.
type Clue struct {
	Row, Col int
	Value    int
}

// Rows returns the number of grid rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of grid columns, 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clues scans the grid in row-major order and returns every clue. The scan
// order is deterministic: it defines the clue indices used by the model and
// the annealer, and the rectangle order in formatted output.
func (g Grid) Clues() []Clue {
	var clues []Clue
	for i, row := range g {
		for j, v := range row {
			if v > 0 {
				clues = append(clues, Clue{Row: i, Col: j, Value: v})
			}
		}
	}
	return clues
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i, row := range g {
		c[i] = append([]int(nil), row...)
	}
	return c
}

// ParseGrid reads a rectangular block of non-negative integers, one row per
// line, separated by spaces, tabs or commas. Blank lines and lines starting
// with '#' are skipped. Ragged rows, negative values, non-integer tokens and
// grids without a single clue are all load-time errors: a malformed grid
// never reaches the solving components.
func ParseGrid(r io.Reader) (Grid, error) {
	var g Grid
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			if f == "." { // rendered form of a non-clue cell
				row = append(row, 0)
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid cell %q", lineNo, f)
			}
			if v < 0 {
				return nil, fmt.Errorf("line %d: negative cell value %d", lineNo, v)
			}
			row = append(row, v)
		}
		if len(g) > 0 && len(row) != len(g[0]) {
			return nil, fmt.Errorf("line %d: row has %d cells, want %d", lineNo, len(row), len(g[0]))
		}
		g = append(g, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(g) == 0 {
		return nil, errors.New("empty grid")
	}
	if len(g.Clues()) == 0 {
		return nil, errors.New("grid has no clues")
	}
	return g, nil
}

// LoadGrid reads a grid from a file.
func LoadGrid(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// String renders the grid with aligned columns, zero cells as dots.
func (g Grid) String() string {
	width := 1
	for _, row := range g {
		for _, v := range row {
			if w := len(strconv.Itoa(v)); w > width {
				width = w
			}
		}
	}
	var sb strings.Builder
	for _, row := range g {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				sb.WriteString(strings.Repeat(" ", width-1) + ".")
			} else {
				fmt.Fprintf(&sb, "%*d", width, v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
