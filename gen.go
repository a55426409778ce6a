package shikaku

import "math/rand"

// Generate builds a random feasible instance: the grid is recursively split
// into rectangular regions to the given depth, adjacent regions whose union
// is again a rectangle are then merged for mergeIters rounds, and finally one
// clue per region is placed at a random cell inside it, valued at the region
// area. The emitted grid is solvable by construction (the regions themselves
// are a valid tiling).
func Generate(rows, cols, depth, mergeIters int, rng *rand.Rand) Grid {
	regions := split(Rect{RowMax: rows - 1, ColMax: cols - 1}, depth, rng)
	regions = merge(regions, mergeIters, rng)

	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]int, cols)
	}
	for _, r := range regions {
		row := r.RowMin + rng.Intn(r.RowMax-r.RowMin+1)
		col := r.ColMin + rng.Intn(r.ColMax-r.ColMin+1)
		g[row][col] = r.Area()
	}
	return g
}

// split cuts r at a random row or column and recurses, depth levels deep.
// Single-row or single-column rectangles can only be cut one way; 1×1
// rectangles stop early.
func split(r Rect, depth int, rng *rand.Rand) []Rect {
	h := r.RowMax - r.RowMin + 1
	w := r.ColMax - r.ColMin + 1
	if depth == 0 || h*w == 1 {
		return []Rect{r}
	}

	horizontal := h > 1 && (w == 1 || rng.Intn(2) == 0)
	var a, b Rect
	if horizontal {
		cut := r.RowMin + 1 + rng.Intn(h-1) // first row of the lower half
		a = Rect{RowMin: r.RowMin, ColMin: r.ColMin, RowMax: cut - 1, ColMax: r.ColMax}
		b = Rect{RowMin: cut, ColMin: r.ColMin, RowMax: r.RowMax, ColMax: r.ColMax}
	} else {
		cut := r.ColMin + 1 + rng.Intn(w-1)
		a = Rect{RowMin: r.RowMin, ColMin: r.ColMin, RowMax: r.RowMax, ColMax: cut - 1}
		b = Rect{RowMin: r.RowMin, ColMin: cut, RowMax: r.RowMax, ColMax: r.ColMax}
	}
	return append(split(a, depth-1, rng), split(b, depth-1, rng)...)
}

// merge performs iters attempts at fusing two regions whose union is a
// rectangle (same row span and touching columns, or the transpose). Larger
// merged regions have more candidate rectangles, which makes the instance
// harder for the heuristic.
func merge(regions []Rect, iters int, rng *rand.Rand) []Rect {
	for n := 0; n < iters && len(regions) > 1; n++ {
		i := rng.Intn(len(regions))
		j := -1
		for k, r := range regions {
			if k != i && unionIsRect(regions[i], r) {
				j = k
				break
			}
		}
		if j < 0 {
			continue
		}
		a, b := regions[i], regions[j]
		fused := Rect{
			RowMin: min(a.RowMin, b.RowMin),
			ColMin: min(a.ColMin, b.ColMin),
			RowMax: max(a.RowMax, b.RowMax),
			ColMax: max(a.ColMax, b.ColMax),
		}
		if i > j {
			i, j = j, i
		}
		regions[i] = fused
		regions = append(regions[:j], regions[j+1:]...)
	}
	return regions
}

func unionIsRect(a, b Rect) bool {
	sameRows := a.RowMin == b.RowMin && a.RowMax == b.RowMax
	sameCols := a.ColMin == b.ColMin && a.ColMax == b.ColMax
	if sameRows {
		return a.ColMax+1 == b.ColMin || b.ColMax+1 == a.ColMin
	}
	if sameCols {
		return a.RowMax+1 == b.RowMin || b.RowMax+1 == a.RowMin
	}
	return false
}
