// Package skymap defines core types and sentinel errors for the labeled
// spherical raster consumed by the outline package.
package skymap

import (
	"errors"

	"github.com/golang/geo/s2"
)

// Sentinel errors for skymap operations.
var (
	// ErrBadLevel indicates a requested S2 level outside [0, MaxLevel].
	ErrBadLevel = errors.New("skymap: level must be in [0, 30]")
	// ErrNilGrid indicates Raster construction with a nil Grid.
	ErrNilGrid = errors.New("skymap: grid must not be nil")
	// ErrLabelCount indicates the label slice length differs from the grid's cell count.
	ErrLabelCount = errors.New("skymap: one label per cell required")
	// ErrTooFewCorners indicates a cell with fewer than 3 corners.
	ErrTooFewCorners = errors.New("skymap: cell must have at least 3 corners")
)

// Label is a region category assigned to raster cells.
// The zero value Unassigned is the explicit "no region" sentinel: it still
// determines which cell sides are boundaries, but produces no outline of
// its own.
type Label string

// Unassigned marks a cell that belongs to no region.
const Unassigned Label = ""

// Grid is the tessellation provider: a full tiling of the sphere by cells
// with ordered corner positions.
//
// Contract:
//   - CellCorners returns ≥ 3 ordered corner unit vectors for the cell;
//     consecutive corners (wrapping last→first) bound one cell side.
//   - Corners shared by neighboring cells are bit-identical across those
//     cells, so exact coordinate equality identifies shared vertices.
//   - The cells tile the full sphere: every cell side is shared with
//     exactly one side of exactly one other cell.
type Grid interface {
	// NumCells reports the number of cells in the tessellation.
	NumCells() int
	// CellCorners returns the ordered corner unit vectors of cell.
	// The returned slice is owned by the caller.
	CellCorners(cell int) []s2.Point
	// Scale reports the characteristic angular cell size, in degrees.
	Scale() float64
}
