package outline

import (
	"fmt"

	"github.com/lsst/skyborder/skymap"
)

// side is a canonical cell side: an unordered vertex-id pair stored with
// lo < hi.
type side struct {
	lo, hi int
}

// canonical orders a vertex-id pair.
func canonical(a, b int) side {
	if a > b {
		return side{b, a}
	}

	return side{a, b}
}

// sidePair accumulates the (at most two) cells flanking one physical side.
type sidePair struct {
	side
	cells [2]int
	n     int
}

// boundarySet is the output of edge extraction: per-region boundary edge
// tables in deterministic order, plus the count of physical boundary
// edges (each counted once).
type boundarySet struct {
	regions map[skymap.Label][]side
	count   int
}

// extractBoundaries derives every cell side, pairs the two flanking cells
// of each physical side, and keeps the sides separating differently
// labeled cells, grouped under every non-sentinel region they touch.
//
// Determinism: sides are registered in cell order (sides in corner order
// within a cell), and the per-region tables list edges in that first-seen
// order, so the edge-table index used by line assembly is reproducible.
//
// Returns ErrUnpairedSide when a side has no partner (the grid does not
// tile the sphere) and ErrSideMultiplicity when more than two cells claim
// one side.
// Complexity: O(N·c) time and memory.
func extractBoundaries(r *skymap.Raster, cells [][]int) (*boundarySet, error) {
	// 1. Register every cell side under its canonical vertex-id pair,
	//    in first-seen order.
	index := make(map[side]int, 2*len(cells))
	pairs := make([]sidePair, 0, 2*len(cells))
	for cell, corners := range cells {
		n := len(corners)
		for k := 0; k < n; k++ {
			s := canonical(corners[k], corners[(k+1)%n])
			at, ok := index[s]
			if !ok {
				at = len(pairs)
				index[s] = at
				pairs = append(pairs, sidePair{side: s})
			}
			p := &pairs[at]
			if p.n == 2 {
				return nil, fmt.Errorf("%w: side (%d,%d) claimed by cells %d, %d, %d",
					ErrSideMultiplicity, s.lo, s.hi, p.cells[0], p.cells[1], cell)
			}
			p.cells[p.n] = cell
			p.n++
		}
	}

	// 2. A full tiling pairs every side exactly twice.
	for _, p := range pairs {
		if p.n != 2 {
			return nil, fmt.Errorf("%w: side (%d,%d) of cell %d",
				ErrUnpairedSide, p.lo, p.hi, p.cells[0])
		}
	}

	// 3. Keep sides flanked by differing labels; group them under both
	//    region labels, skipping the Unassigned sentinel (it bounds edges
	//    but produces no outline of its own).
	out := &boundarySet{regions: make(map[skymap.Label][]side)}
	for _, p := range pairs {
		la, lb := r.Label(p.cells[0]), r.Label(p.cells[1])
		if la == lb {
			continue
		}
		out.count++
		if la != skymap.Unassigned {
			out.regions[la] = append(out.regions[la], p.side)
		}
		if lb != skymap.Unassigned {
			out.regions[lb] = append(out.regions[lb], p.side)
		}
	}

	return out, nil
}
