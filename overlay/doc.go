// Package overlay exports traced region boundaries in the geometry
// vocabulary of downstream sky-projection plotting layers: orb rings and
// polygons, and GeoJSON feature collections.
//
// What:
//
//   - Ring / Polygon convert outline loops into orb geometries in
//     (longitude, latitude) degrees. Winding order is whatever the trace
//     produced; consumers must not assume one (loops can be as small as a
//     single cell).
//   - FeatureCollection emits one GeoJSON feature per (region, loop_index)
//     pair, tagged with "region" and "loop" properties. The feature
//     geometry is selected by Kind — a closed enum statically mapped to
//     its builder, never discovered at runtime.
//   - SimplifyRing optionally thins a ring with Douglas–Peucker for
//     display at coarse projections. It is a display-side convenience and
//     is never applied inside the trace pipeline.
//
// Errors:
//
//   - ErrUnknownKind: FeatureCollection with a Kind outside the enum.
package overlay
