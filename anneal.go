package shikaku

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// SearchResult reports the outcome of one annealing run. Reaching the
// iteration ceiling without the optimal energy is a normal outcome, not an
// error: Optimal is false and Rects holds the best-seen (possibly invalid)
// tiling.
type SearchResult struct {
	Optimal    bool
	Energy     int // energy of the best-seen assignment
	Iterations int
	Rects      []Rect
	Elapsed    time.Duration
}

// Annealer is a simulated-annealing search for a perfect tiling. It owns one
// mutable assignment (a chosen candidate index per clue) and is not safe for
// concurrent use; run one Annealer per goroutine.
//
// The energy of an assignment is Σ count(i,j)² over the coverage-count grid.
// Its lower bound is rows*cols, reached exactly when every cell is covered
// once, so hitting the bound certifies a valid tiling.
type Annealer struct {
	grid  Grid
	clues []Clue
	sets  [][]Rect
	rng   *rand.Rand

	rows, cols int
	lower      int // rows*cols, the proven energy lower bound

	assign     []int // current candidate index per clue
	counts     []int // coverage count per cell under assign
	energy     int
	best       []int // best-seen assignment; never worsens
	bestEnergy int
}

// NewAnnealer builds the candidate sets for g and prepares a search using the
// given random source. A seeded source makes runs reproducible. Fails with
// ErrInfeasible if any clue has no candidates.
func NewAnnealer(g Grid, rng *rand.Rand) (*Annealer, error) {
	clues, sets, err := CandidateSets(g)
	if err != nil {
		return nil, err
	}
	// A tiling covers every cell exactly once, so the clue areas must sum to
	// the grid area. Without this guard an under-covering assignment could
	// reach an energy below rows*cols and fake optimality.
	total := 0
	for _, c := range clues {
		total += c.Value
	}
	if total != g.Rows()*g.Cols() {
		return nil, fmt.Errorf("clue areas sum to %d, grid has %d cells: %w",
			total, g.Rows()*g.Cols(), ErrInfeasible)
	}
	return &Annealer{
		grid:   g,
		clues:  clues,
		sets:   sets,
		rng:    rng,
		rows:   g.Rows(),
		cols:   g.Cols(),
		lower:  g.Rows() * g.Cols(),
		assign: make([]int, len(clues)),
		best:   make([]int, len(clues)),
		counts: make([]int, g.Rows()*g.Cols()),
	}, nil
}

// reset draws a fresh uniform random assignment and rasterizes it.
func (a *Annealer) reset() {
	for i := range a.counts {
		a.counts[i] = 0
	}
	a.energy = 0
	for k, set := range a.sets {
		a.assign[k] = a.rng.Intn(len(set))
		a.energy += a.raster(set[a.assign[k]], 1)
	}
	copy(a.best, a.assign)
	a.bestEnergy = a.energy
}

// raster adds d to the coverage count of every cell of r and returns the
// resulting energy change.
func (a *Annealer) raster(r Rect, d int) int {
	delta := 0
	for i := r.RowMin; i <= r.RowMax; i++ {
		base := i * a.cols
		for j := r.ColMin; j <= r.ColMax; j++ {
			c := a.counts[base+j]
			n := c + d
			a.counts[base+j] = n
			delta += n*n - c*c
		}
	}
	return delta
}

// move reassigns clue k to candidate cand and returns the energy change.
func (a *Annealer) move(k, cand int) int {
	delta := a.raster(a.sets[k][a.assign[k]], -1)
	a.assign[k] = cand
	delta += a.raster(a.sets[k][cand], 1)
	a.energy += delta
	return delta
}

// Run performs one annealing run from a fresh random assignment: at each
// iteration one random clue is reassigned to a random candidate, accepted by
// the Metropolis criterion (always if the energy drops, with probability
// exp(-ΔE/T) otherwise), then T is multiplied by cfg.Decay. The run stops as
// soon as the energy reaches the lower bound or the iteration or wall-clock
// budget is spent.
func (a *Annealer) Run(cfg Config) SearchResult {
	start := time.Now()
	a.reset()

	t := cfg.InitTemp
	k := 0
	for ; k < cfg.KMax && a.energy > a.lower; k++ {
		if cfg.MaxTime > 0 && time.Since(start) > cfg.MaxTime {
			break
		}
		clue := a.rng.Intn(len(a.clues))
		prev := a.assign[clue]
		delta := a.move(clue, a.rng.Intn(len(a.sets[clue])))
		if delta > 0 && a.rng.Float64() >= math.Exp(-float64(delta)/t) {
			a.move(clue, prev)
		} else if a.energy < a.bestEnergy {
			a.bestEnergy = a.energy
			copy(a.best, a.assign)
		}
		t *= cfg.Decay
	}

	rects := make([]Rect, len(a.clues))
	for i, cand := range a.best {
		rects[i] = a.sets[i][cand]
	}
	return SearchResult{
		Optimal:    a.bestEnergy <= a.lower,
		Energy:     a.bestEnergy,
		Iterations: k,
		Rects:      rects,
		Elapsed:    time.Since(start),
	}
}

// Energy computes Σ count² for an arbitrary assignment of candidate indices.
// Exposed for property checks; Run tracks energy incrementally.
func (a *Annealer) Energy(assign []int) (int, error) {
	if len(assign) != len(a.clues) {
		return 0, fmt.Errorf("assignment has %d entries, want %d", len(assign), len(a.clues))
	}
	counts := make([]int, a.rows*a.cols)
	for k, cand := range assign {
		if cand < 0 || cand >= len(a.sets[k]) {
			return 0, fmt.Errorf("clue %d: candidate index %d out of range", k, cand)
		}
		r := a.sets[k][cand]
		for i := r.RowMin; i <= r.RowMax; i++ {
			for j := r.ColMin; j <= r.ColMax; j++ {
				counts[i*a.cols+j]++
			}
		}
	}
	e := 0
	for _, c := range counts {
		e += c * c
	}
	return e, nil
}
