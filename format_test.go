package shikaku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSolution(t *testing.T) {
	g := mustParse(t, "4 0 0 4\n0 0 0 0\n0 0 0 0\n0 8 0 0\n")
	res, err := SolveExact(g, GophersatBackend{}, 0)
	require.NoError(t, err)
	require.True(t, res.Solved)

	out := FormatSolution(g, res)
	assert.Contains(t, out, "rectangles (rowMin,colMin,rowMax,colMax):")
	assert.Contains(t, out, "status: feasible")
	assert.Contains(t, out, "elapsed:")
	for _, r := range res.Rects {
		assert.Contains(t, out, r.String())
	}
}

func TestFormatSolutionFailure(t *testing.T) {
	g := Grid{{2, 0}, {0, 0}}
	res, err := SolveExact(g, GophersatBackend{}, 0)
	require.NoError(t, err)

	out := FormatSolution(g, res)
	assert.Contains(t, out, "status: infeasible")
	assert.NotContains(t, out, "rectangles")
}

func TestRenderRegions(t *testing.T) {
	g := mustParse(t, "2 0\n2 0\n")
	rects := []Rect{
		{RowMin: 0, ColMin: 0, RowMax: 0, ColMax: 1},
		{RowMin: 1, ColMin: 0, RowMax: 1, ColMax: 1},
	}
	out := RenderRegions(g, rects)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a a", lines[0])
	assert.Equal(t, "b b", lines[1])
}
