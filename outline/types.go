// Package outline defines options, result types, and sentinel errors for
// the boundary vectorization pipeline.
package outline

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/lsst/skyborder/skymap"
)

// Sentinel errors for outline operations.
var (
	// ErrNilRaster indicates Trace was called with a nil raster.
	ErrNilRaster = errors.New("outline: raster must not be nil")
	// ErrBadTolerance indicates a tolerance sequence that is negative or
	// not ascending.
	ErrBadTolerance = errors.New("outline: tolerances must be non-negative and ascending")
	// ErrUnpairedSide indicates a cell side with no matching side in any
	// other cell — the grid does not tile the sphere (missing adjacency).
	ErrUnpairedSide = errors.New("outline: cell side has no matching neighbor side")
	// ErrSideMultiplicity indicates a cell side shared by more than two
	// cells — the grid is not a proper tessellation.
	ErrSideMultiplicity = errors.New("outline: cell side shared by more than two cells")
)

// DefaultMaxIterations bounds the fixed-point iteration of loop closure at
// each tolerance level. It is a termination valve for pathological inputs,
// not a timeout.
const DefaultMaxIterations = 100

// Options configures Trace.
//
// Fields:
//   - Tolerances    — ascending angular thresholds in degrees, starting at 0,
//     used by loop closure to treat near-coincident line endpoints as one
//     vertex. Empty means DefaultTolerances(raster.Scale()).
//   - MaxIterations — fixed-point iteration bound per tolerance level
//     (≤ 0 means DefaultMaxIterations).
//   - Workers       — number of regions traced concurrently (≤ 1 means
//     sequential). Regions share no mutable state, so the result is
//     identical for any worker count.
//   - Logger        — optional structured logger for the non-fatal
//     "loop closure did not stabilize" warning; nil stays silent.
type Options struct {
	Tolerances    []float64
	MaxIterations int
	Workers       int
	Logger        *slog.Logger
}

// DefaultOptions returns Options with the documented defaults: tolerances
// derived from the raster scale at call time, DefaultMaxIterations, and
// sequential processing.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations, Workers: 1}
}

// DefaultTolerances derives the escalation sequence from a characteristic
// angular cell size in degrees: exact matching first, then four
// pixel-scale fractions up to half a cell.
func DefaultTolerances(scaleDeg float64) []float64 {
	return []float64{0, scaleDeg / 16, scaleDeg / 8, scaleDeg / 4, scaleDeg / 2}
}

// validTolerances rejects negative or non-ascending sequences.
func validTolerances(tol []float64) bool {
	for i, t := range tol {
		if t < 0 || (i > 0 && t < tol[i-1]) {
			return false
		}
	}

	return true
}

// Vertex is one point of an output loop: its stable id in the deduplicated
// vertex table, the three Cartesian unit-vector components, and the
// spherical projection in degrees.
type Vertex struct {
	ID       int
	X, Y, Z  float64
	Lon, Lat float64
}

// Loop is one closed component of a region's outline. IDs is the ordered
// vertex-id cycle with the first id repeated as the last; Vertices carries
// the matching coordinate records.
type Loop struct {
	IDs      []int
	Vertices []Vertex
}

// Line is an open chain of vertex ids. Lines appear in results only as
// Unclosed diagnostics after a failed stabilization.
type Line struct {
	IDs []int
}

// RegionBoundary is the traced outline of one region: its loops in
// loop_index order, any chains that could not be closed, and whether loop
// closure reached a clean fixed point with no open lines left.
type RegionBoundary struct {
	Region     skymap.Label
	Loops      []Loop
	Unclosed   []Line
	Stabilized bool
}

// Result is the output of Trace: one RegionBoundary per region in
// ascending label order, plus pipeline-wide diagnostics.
type Result struct {
	Boundaries []RegionBoundary
	// NumVertices is the size of the deduplicated vertex table.
	NumVertices int
	// NumBoundaryEdges counts physical boundary edges once each.
	NumBoundaryEdges int
}

// Boundary looks up the RegionBoundary of label.
// The second result is false when the label has no traced boundary.
// Complexity: O(log R).
func (r *Result) Boundary(label skymap.Label) (RegionBoundary, bool) {
	i := sort.Search(len(r.Boundaries), func(i int) bool {
		return r.Boundaries[i].Region >= label
	})
	if i < len(r.Boundaries) && r.Boundaries[i].Region == label {
		return r.Boundaries[i], true
	}

	return RegionBoundary{}, false
}
