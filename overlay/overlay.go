// Package overlay converts outline results into orb/GeoJSON geometries.
package overlay

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"

	"github.com/lsst/skyborder/outline"
)

// ErrUnknownKind indicates a Kind outside the declared enum.
var ErrUnknownKind = errors.New("overlay: unknown feature kind")

// Kind selects the GeoJSON geometry emitted per loop.
type Kind int

const (
	// KindLine draws each loop as a closed LineString border.
	KindLine Kind = iota
	// KindPatch draws each loop as a filled single-ring Polygon.
	KindPatch
)

// featureBuilders is the closed Kind→builder mapping. Adding a Kind means
// adding exactly one entry here; nothing is looked up at runtime beyond
// this table.
var featureBuilders = map[Kind]func(orb.Ring) orb.Geometry{
	KindLine:  func(r orb.Ring) orb.Geometry { return orb.LineString(r) },
	KindPatch: func(r orb.Ring) orb.Geometry { return orb.Polygon{r} },
}

// Ring converts one loop into an orb.Ring of (lon, lat) degrees, closing
// repeat included.
// Complexity: O(n).
func Ring(l outline.Loop) orb.Ring {
	ring := make(orb.Ring, len(l.Vertices))
	for i, v := range l.Vertices {
		ring[i] = orb.Point{v.Lon, v.Lat}
	}

	return ring
}

// Polygon converts a region boundary into an orb.Polygon with one ring
// per loop, in loop_index order. Winding order is unspecified.
// Complexity: O(total vertices).
func Polygon(b outline.RegionBoundary) orb.Polygon {
	poly := make(orb.Polygon, len(b.Loops))
	for i, l := range b.Loops {
		poly[i] = Ring(l)
	}

	return poly
}

// FeatureCollection emits one feature per (region, loop_index) pair of
// res, with geometry chosen by kind and properties "region" (label) and
// "loop" (index). Features appear in ascending region order, loops in
// loop_index order.
// Returns ErrUnknownKind for a kind outside the enum.
// Complexity: O(total vertices).
func FeatureCollection(res *outline.Result, kind Kind) (*geojson.FeatureCollection, error) {
	build, ok := featureBuilders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	fc := geojson.NewFeatureCollection()
	for _, b := range res.Boundaries {
		for i, l := range b.Loops {
			f := geojson.NewFeature(build(Ring(l)))
			f.Properties["region"] = string(b.Region)
			f.Properties["loop"] = i
			fc.Append(f)
		}
	}

	return fc, nil
}

// SimplifyRing thins ring with Douglas–Peucker at the given tolerance in
// degrees, for display at coarse projections. Rings that would collapse
// below 3 distinct vertices are returned unchanged.
// Complexity: O(n log n) expected.
func SimplifyRing(ring orb.Ring, toleranceDeg float64) orb.Ring {
	s := simplify.DouglasPeucker(toleranceDeg).Simplify(ring.Clone())
	out, ok := s.(orb.Ring)
	if !ok || len(out) < 4 {
		return ring
	}

	return out
}
