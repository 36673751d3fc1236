// Package skymap models a labeled raster over the surface of the sphere:
// a tessellation provider (Grid), one production provider (QuadSphere),
// and a Raster binding exactly one region label to every cell.
//
// What:
//
//   - Grid is the tessellation contract: cell count, ordered corner unit
//     vectors per cell, and a characteristic angular cell size. Corners
//     shared by neighboring cells must be bit-identical, so that exact
//     coordinate equality recovers the shared vertex set downstream.
//   - QuadSphere tiles the full sphere with the quadrilateral cells of a
//     single S2 level. It owns a deduplicated corner table, guaranteeing
//     the bit-identity contract even across cube-face seams.
//   - Raster couples a Grid with a per-cell Label. Construction validates
//     the caller contract (one label per cell, ≥ 3 corners per cell) and
//     is immutable afterwards.
//   - Paint builds a Raster from an analytic labeling function over cell
//     centers.
//
// Why:
//
//   - Survey footprints: regions of a sky map assigned per observation
//     program, traced into outlines by the outline package.
//   - Coverage diagnostics: which tiles carry which classification.
//   - Any categorical field on the sphere whose borders must be drawn.
//
// Complexity:
//
//   - NewQuadSphere: O(N) time and memory, N = 6·4^level cells.
//   - NewRaster:     O(N) validation, O(N) label copy.
//   - Paint:         O(N) calls of the labeling function.
//
// Errors:
//
//   - ErrBadLevel:      requested S2 level outside [0, 30].
//   - ErrNilGrid:       Raster construction with a nil Grid.
//   - ErrLabelCount:    label slice length differs from the cell count.
//   - ErrTooFewCorners: a cell reports fewer than 3 corners.
package skymap
