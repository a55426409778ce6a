package shikaku

import (
	"fmt"
	"strings"
	"time"
)

// FormatSolution renders the textual solve report: the input grid, one
// rectangle per clue in scan order, and the solve metadata. It is also used
// for failed solves, where the rectangle list is omitted.
func FormatSolution(g Grid, res Result) string {
	var sb strings.Builder
	sb.WriteString(g.String())
	if res.Solved {
		sb.WriteString("\nrectangles (rowMin,colMin,rowMax,colMax):\n")
		for k, r := range res.Rects {
			fmt.Fprintf(&sb, "  %2d: %s\n", k, r)
		}
		sb.WriteString("\n" + RenderRegions(g, res.Rects) + "\n")
	}
	fmt.Fprintf(&sb, "status: %s\n", res.Status)
	fmt.Fprintf(&sb, "elapsed: %s\n", res.Elapsed.Round(time.Microsecond))
	return sb.String()
}

// RenderRegions draws the tiling as a letter grid, one letter per rectangle,
// cycling through the alphabet. Uncovered cells show as '?'.
func RenderRegions(g Grid, rects []Rect) string {
	rows, cols := g.Rows(), g.Cols()
	cells := make([]byte, rows*cols)
	for i := range cells {
		cells[i] = '?'
	}
	for k, r := range rects {
		letter := byte('a' + k%26)
		for i := r.RowMin; i <= r.RowMax; i++ {
			for j := r.ColMin; j <= r.ColMax; j++ {
				cells[i*cols+j] = letter
			}
		}
	}
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cells[i*cols+j])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
