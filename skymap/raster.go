package skymap

import (
	"fmt"
	"sort"

	"github.com/golang/geo/s2"
)

// Raster couples a Grid with one Label per cell. It is immutable once
// built: labels are copied on construction and never exposed mutably.
type Raster struct {
	grid    Grid
	labels  []Label
	regions []Label // sorted, distinct, Unassigned excluded
}

// NewRaster validates and binds labels to grid cells.
// Returns ErrNilGrid for a nil grid, ErrLabelCount when len(labels)
// differs from grid.NumCells(), and ErrTooFewCorners when any cell
// reports fewer than 3 corners. These are the only hard failures of the
// whole pipeline; everything downstream degrades gracefully.
// Complexity: O(N) time and memory, N = number of cells.
func NewRaster(grid Grid, labels []Label) (*Raster, error) {
	// 1. Reject the nil provider outright.
	if grid == nil {
		return nil, ErrNilGrid
	}

	// 2. One label per cell, no more, no fewer.
	n := grid.NumCells()
	if len(labels) != n {
		return nil, fmt.Errorf("%w: got %d labels for %d cells", ErrLabelCount, len(labels), n)
	}

	// 3. Every cell must be a proper spherical polygon.
	for i := 0; i < n; i++ {
		if c := len(grid.CellCorners(i)); c < 3 {
			return nil, fmt.Errorf("%w: cell %d has %d", ErrTooFewCorners, i, c)
		}
	}

	// 4. Copy labels and precompute the sorted distinct region set.
	own := make([]Label, n)
	copy(own, labels)
	seen := make(map[Label]struct{}, 8)
	regions := make([]Label, 0, 8)
	for _, l := range own {
		if l == Unassigned {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		regions = append(regions, l)
	}
	sort.Slice(regions, func(a, b int) bool { return regions[a] < regions[b] })

	return &Raster{grid: grid, labels: own, regions: regions}, nil
}

// Paint builds a Raster by evaluating fn at every cell center of q.
// Complexity: O(N) calls of fn.
func Paint(q *QuadSphere, fn func(cell int, center s2.Point) Label) (*Raster, error) {
	if q == nil {
		return nil, ErrNilGrid
	}
	labels := make([]Label, q.NumCells())
	for i := range labels {
		labels[i] = fn(i, q.Center(i))
	}

	return NewRaster(q, labels)
}

// NumCells reports the number of cells.
func (r *Raster) NumCells() int { return r.grid.NumCells() }

// Label returns the region label of cell i.
func (r *Raster) Label(i int) Label { return r.labels[i] }

// Regions returns the distinct region labels present in the raster, in
// ascending order, excluding the Unassigned sentinel. The slice is a copy.
// Complexity: O(R).
func (r *Raster) Regions() []Label {
	out := make([]Label, len(r.regions))
	copy(out, r.regions)

	return out
}

// Corners returns the ordered corner unit vectors of cell i, straight from
// the underlying Grid.
func (r *Raster) Corners(i int) []s2.Point { return r.grid.CellCorners(i) }

// Scale reports the characteristic angular cell size in degrees, straight
// from the underlying Grid.
func (r *Raster) Scale() float64 { return r.grid.Scale() }

// Grid exposes the underlying tessellation provider.
func (r *Raster) Grid() Grid { return r.grid }
