package outline

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lsst/skyborder/skymap"
)

// Trace runs the full boundary vectorization pipeline over a labeled
// raster: vertex deduplication, boundary-edge extraction, and — per
// region — greedy line assembly followed by tolerance-escalating loop
// closure.
//
// Only input-contract violations fail the call (nil raster, invalid
// tolerance sequence, a grid whose sides do not pair). A region whose
// boundary cannot fully close is not an error: its RegionBoundary reports
// Stabilized=false, carries the open chains in Unclosed, and — when
// opts.Logger is set — a warning is logged. Open chains never appear in
// Loops.
//
// Regions share no mutable state; with opts.Workers > 1 they are traced
// concurrently through an errgroup with identical output.
//
// Complexity: O(N·c) for the shared stages plus O(E²) per region.
func Trace(r *skymap.Raster, opts Options) (*Result, error) {
	// 1. Validate input contracts.
	if r == nil {
		return nil, ErrNilRaster
	}
	if !validTolerances(opts.Tolerances) {
		return nil, fmt.Errorf("%w: %v", ErrBadTolerance, opts.Tolerances)
	}
	tolerances := opts.Tolerances
	if len(tolerances) == 0 {
		tolerances = DefaultTolerances(r.Scale())
	}
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	// 2. Vertex deduplication over all cell corners.
	vs, cells := indexCorners(r)

	// 3. Boundary-edge extraction, grouped per region.
	bs, err := extractBoundaries(r, cells)
	if err != nil {
		return nil, err
	}

	// 4. Per-region line assembly and loop closure, in ascending label
	//    order. Each region owns its edge table; nothing is shared.
	regions := r.Regions()
	bounds := make([]RegionBoundary, len(regions))
	trace := func(i int) {
		bounds[i] = traceRegion(regions[i], bs.regions[regions[i]], vs, tolerances, maxIter)
	}
	if workers > 1 {
		var g errgroup.Group
		g.SetLimit(workers)
		for i := range regions {
			i := i
			g.Go(func() error {
				trace(i)

				return nil
			})
		}
		_ = g.Wait() // workers never return errors
	} else {
		for i := range regions {
			trace(i)
		}
	}

	// 5. Report stabilization failures (deterministic order, after the
	//    fan-out has settled).
	if opts.Logger != nil {
		for _, b := range bounds {
			if !b.Stabilized {
				opts.Logger.Warn("outline: loop closure did not stabilize",
					"region", string(b.Region),
					"loops", len(b.Loops),
					"unclosed", len(b.Unclosed))
			}
		}
	}

	return &Result{
		Boundaries:       bounds,
		NumVertices:      vs.Len(),
		NumBoundaryEdges: bs.count,
	}, nil
}

// traceRegion assembles and closes one region's boundary. The edge table
// is consumed; loops are materialized with full vertex records in
// loop_index order.
func traceRegion(region skymap.Label, edges []side, vs *VertexSet, tolerances []float64, maxIter int) RegionBoundary {
	lines := assembleLines(edges)
	c := closeLoops(lines, vs, tolerances, maxIter)

	b := RegionBoundary{Region: region, Stabilized: c.stabilized}
	for _, ids := range c.loops {
		b.Loops = append(b.Loops, materialize(ids, vs))
	}
	for _, ids := range c.unclosed {
		b.Unclosed = append(b.Unclosed, Line{IDs: ids})
	}

	return b
}

// materialize resolves a closed id cycle into the output Loop record.
func materialize(ids []int, vs *VertexSet) Loop {
	l := Loop{IDs: ids, Vertices: make([]Vertex, len(ids))}
	for i, id := range ids {
		l.Vertices[i] = vs.record(id)
	}

	return l
}
