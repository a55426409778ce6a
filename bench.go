package shikaku

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// SweepPoint is one benchmark parameter combination: grid size, recursion
// depth of the instance generator and its merge-iteration count.
type SweepPoint struct {
	Size       int
	Depth      int
	MergeIters int
}

// GroupBy selects which sweep dimension keys the aggregation.
type GroupBy int

const (
	BySize GroupBy = iota
	ByDepth
	ByMergeIters
)

func (p SweepPoint) key(g GroupBy) int {
	switch g {
	case ByDepth:
		return p.Depth
	case ByMergeIters:
		return p.MergeIters
	default:
		return p.Size
	}
}

// BenchRow aggregates every instance sharing one grouping-key value.
type BenchRow struct {
	Key         int     `json:"key"`
	Instances   int     `json:"instances"`
	OptimalFrac float64 `json:"optimalFrac"`
	MeanTimeMs  float64 `json:"meanTimeMs"`
}

// Sweep generates perPoint instances for every parameter combination, solves
// each with the method, and aggregates per grouping-key value the fraction
// solved optimally and the mean solve time. Instances are solved by a pool
// of workers; each solve owns its grid and search state, nothing is shared.
func Sweep(points []SweepPoint, perPoint int, m Method, seed int64, group GroupBy, workers int) []BenchRow {
	type job struct {
		point SweepPoint
		seed  int64
	}
	type outcome struct {
		key    int
		solved bool
		timeMs int64
	}

	jobs := make(chan job, len(points)*perPoint)
	results := make(chan outcome, len(points)*perPoint)
	n := 0
	for _, p := range points {
		for i := 0; i < perPoint; i++ {
			jobs <- job{point: p, seed: seed + int64(n)}
			n++
		}
	}
	close(jobs)

	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				rng := rand.New(rand.NewSource(j.seed))
				g := Generate(j.point.Size, j.point.Size, j.point.Depth, j.point.MergeIters, rng)
				res, err := m.Solve(g)
				if err != nil {
					log.WithFields(logrus.Fields{
						"method": m.Name,
						"size":   j.point.Size,
					}).WithError(err).Warn("solve failed")
				}
				results <- outcome{
					key:    j.point.key(group),
					solved: res.Solved,
					timeMs: res.Elapsed.Milliseconds(),
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	type agg struct {
		instances int
		optimal   int
		totalMs   int64
	}
	byKey := map[int]*agg{}
	for r := range results {
		a := byKey[r.key]
		if a == nil {
			a = &agg{}
			byKey[r.key] = a
		}
		a.instances++
		if r.solved {
			a.optimal++
		}
		a.totalMs += r.timeMs
	}

	keys := make([]int, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	rows := make([]BenchRow, 0, len(keys))
	for _, k := range keys {
		a := byKey[k]
		rows = append(rows, BenchRow{
			Key:         k,
			Instances:   a.instances,
			OptimalFrac: float64(a.optimal) / float64(a.instances),
			MeanTimeMs:  float64(a.totalMs) / float64(a.instances),
		})
	}
	return rows
}
