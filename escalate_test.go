package shikaku

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscalateGrowsBudgetUntilSuccess(t *testing.T) {
	// Start with a budget far too small for an 8x8 instance: the first
	// rounds must fail and escalation has to regrow KMax until a run
	// converges. The reported elapsed time accumulates over every round.
	g := Generate(8, 8, 5, 2, rand.New(rand.NewSource(11)))

	cfg := DefaultConfig()
	cfg.KMax = 10

	res, err := Escalate(g, 5, cfg)
	require.NoError(t, err)
	require.True(t, res.Optimal, "energy %d after %d rounds", res.Energy, res.Rounds)
	assert.GreaterOrEqual(t, res.Rounds, 2)
	assert.Greater(t, res.Iterations, 10)
	assert.Greater(t, res.Elapsed.Nanoseconds(), int64(0))
	assert.NoError(t, Verify(g, res.Rects))
}

func TestEscalateCeiling(t *testing.T) {
	// With the ceiling below the starting budget no round can run twice;
	// a single failed round is reported as a non-optimal outcome.
	g := Generate(12, 12, 7, 4, rand.New(rand.NewSource(13)))

	cfg := DefaultConfig()
	cfg.KMax = 1
	cfg.KMaxCeiling = 1

	res, err := Escalate(g, 5, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rounds)
	if !res.Optimal {
		assert.Greater(t, res.Energy, g.Rows()*g.Cols())
	}
}

func TestEscalateInfeasible(t *testing.T) {
	g := Grid{{3, 1, 0, 0}}
	_, err := Escalate(g, 1, DefaultConfig())
	require.ErrorIs(t, err, ErrInfeasible)
}

func TestSolveAnneal(t *testing.T) {
	g := mustParse(t, "4 0 0 4\n0 0 0 0\n0 0 0 0\n0 8 0 0\n")
	res, err := SolveAnneal(g, 9, DefaultConfig())
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Equal(t, StatusFeasible, res.Status)
	assert.NoError(t, Verify(g, res.Rects))
}
