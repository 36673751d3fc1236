// Package skyborder turns a labeled raster on the sphere into closed
// vector outlines — from raw cell corners to per-region boundary loops.
//
// 🚀 What is skyborder?
//
//	An in-memory library that traces the borders between labeled regions
//	of a tessellated sphere:
//		• skymap/  — the labeled raster: a Grid provider interface, a
//		  production QuadSphere grid over the S2 cell hierarchy, and a
//		  validated Raster binding one label to every cell
//		• outline/ — the four-stage vectorization core: vertex
//		  deduplication, boundary-edge extraction, greedy line assembly,
//		  and tolerance-escalating loop closure
//		• overlay/ — export of traced loops as orb rings/polygons and
//		  GeoJSON features for sky-projection plotting layers
//
// ✨ Why choose skyborder?
//
//   - Deterministic – explicit iteration order everywhere; identical
//     loops on every run, with any worker count
//   - Graceful – only malformed input fails a call; a boundary that
//     cannot fully close degrades into diagnostics, not an error
//   - Pure Go – no cgo; geometry via github.com/golang/geo
//
// Quick ASCII example:
//
//	    ┌───┬───┐
//	    │ A │ B │     two labels on a quad tiling — skyborder returns
//	    ├───┼───┤     one closed loop per connected border component,
//	    │ A │ A │     here the staircase outline between A and B.
//	    └───┴───┘
//
// Dive into each package's doc.go for algorithms, options and error
// contracts.
//
//	go get github.com/lsst/skyborder
package skyborder
