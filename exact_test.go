package shikaku

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var backends = []Backend{GophersatBackend{}, GiniBackend{}}

func TestSolveExactFeasible(t *testing.T) {
	g := mustParse(t, "4 0 0 4\n0 0 0 0\n0 0 0 0\n0 8 0 0\n")
	for _, b := range backends {
		t.Run(b.Name(), func(t *testing.T) {
			res, err := SolveExact(g, b, 0)
			require.NoError(t, err)
			assert.True(t, res.Solved)
			assert.Equal(t, StatusFeasible, res.Status)
			assert.NoError(t, Verify(g, res.Rects))
			assert.Greater(t, res.Elapsed.Nanoseconds(), int64(0))
		})
	}
}

func TestSolveExactProvenInfeasible(t *testing.T) {
	// The single clue's candidates can never reach cell (1,1): the backend
	// must prove infeasibility, not error out.
	g := Grid{{2, 0}, {0, 0}}
	for _, b := range backends {
		t.Run(b.Name(), func(t *testing.T) {
			res, err := SolveExact(g, b, 0)
			require.NoError(t, err)
			assert.False(t, res.Solved)
			assert.Equal(t, StatusInfeasible, res.Status)
		})
	}
}

func TestSolveExactEmptyCandidateSet(t *testing.T) {
	// The 3-clue's only area-3 placement swallows the 1-clue, so its
	// candidate set is empty: infeasible before any backend runs.
	g := Grid{{3, 1, 0, 0}}
	for _, b := range backends {
		t.Run(b.Name(), func(t *testing.T) {
			res, err := SolveExact(g, b, 0)
			require.NoError(t, err)
			assert.False(t, res.Solved)
			assert.Equal(t, StatusInfeasible, res.Status)
			assert.Greater(t, res.Elapsed.Nanoseconds(), int64(0))
		})
	}
}

func TestSolveExactGenerated(t *testing.T) {
	// Generated instances are feasible by construction; both backends must
	// tile every one of them.
	for _, b := range backends {
		t.Run(b.Name(), func(t *testing.T) {
			for seed := int64(0); seed < 5; seed++ {
				rng := rand.New(rand.NewSource(seed))
				g := Generate(7, 7, 4, 2, rng)
				res, err := SolveExact(g, b, 0)
				require.NoError(t, err, "seed %d", seed)
				require.True(t, res.Solved, "seed %d:\n%s", seed, g)
				assert.NoError(t, Verify(g, res.Rects), "seed %d", seed)
			}
		})
	}
}
