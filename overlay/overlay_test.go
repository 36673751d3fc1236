package overlay

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/lsst/skyborder/outline"
	"github.com/lsst/skyborder/skymap"
)

// squareBoundary builds a small synthetic boundary without running the
// trace pipeline.
func squareBoundary() outline.RegionBoundary {
	loop := outline.Loop{
		IDs: []int{0, 1, 2, 3, 0},
		Vertices: []outline.Vertex{
			{ID: 0, X: 1, Lon: 0, Lat: 0},
			{ID: 1, Y: 1, Lon: 90, Lat: 0},
			{ID: 2, X: 1, Z: 1, Lon: 0, Lat: 45}, // unnormalized coords irrelevant here
			{ID: 3, X: 1, Lon: -90, Lat: 0},
			{ID: 0, X: 1, Lon: 0, Lat: 0},
		},
	}

	return outline.RegionBoundary{Region: "patch", Loops: []outline.Loop{loop}, Stabilized: true}
}

func TestRing(t *testing.T) {
	ring := Ring(squareBoundary().Loops[0])
	require.Equal(t, orb.Ring{{0, 0}, {90, 0}, {0, 45}, {-90, 0}, {0, 0}}, ring)
	require.True(t, ring.Closed())
}

func TestPolygon(t *testing.T) {
	b := squareBoundary()
	b.Loops = append(b.Loops, b.Loops[0])

	poly := Polygon(b)
	require.Len(t, poly, 2)
	require.Equal(t, Ring(b.Loops[0]), poly[0])
}

func TestFeatureCollection_Kinds(t *testing.T) {
	res := &outline.Result{Boundaries: []outline.RegionBoundary{squareBoundary()}}

	lines, err := FeatureCollection(res, KindLine)
	require.NoError(t, err)
	require.Len(t, lines.Features, 1)
	require.IsType(t, orb.LineString{}, lines.Features[0].Geometry)
	require.Equal(t, "patch", lines.Features[0].Properties["region"])
	require.Equal(t, 0, lines.Features[0].Properties["loop"])

	patches, err := FeatureCollection(res, KindPatch)
	require.NoError(t, err)
	require.IsType(t, orb.Polygon{}, patches.Features[0].Geometry)
}

func TestFeatureCollection_UnknownKind(t *testing.T) {
	_, err := FeatureCollection(&outline.Result{}, Kind(99))
	require.ErrorIs(t, err, ErrUnknownKind)
}

// TestFeatureCollection_FromTrace runs the real pipeline end to end into
// GeoJSON: one feature per (region, loop) pair.
func TestFeatureCollection_FromTrace(t *testing.T) {
	q, err := skymap.NewQuadSphere(1)
	require.NoError(t, err)
	labels := make([]skymap.Label, q.NumCells())
	for i := range labels {
		labels[i] = "ocean"
	}
	labels[5] = "island"
	r, err := skymap.NewRaster(q, labels)
	require.NoError(t, err)

	res, err := outline.Trace(r, outline.DefaultOptions())
	require.NoError(t, err)

	fc, err := FeatureCollection(res, KindPatch)
	require.NoError(t, err)
	require.Len(t, fc.Features, 2, "island loop + ocean loop")

	data, err := fc.MarshalJSON()
	require.NoError(t, err)
	require.Contains(t, string(data), `"region":"island"`)
}

func TestSimplifyRing(t *testing.T) {
	// A ring with a redundant midpoint on a straight segment.
	ring := orb.Ring{{0, 0}, {5, 0.001}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}

	out := SimplifyRing(ring, 0.1)
	require.Less(t, len(out), len(ring), "collinear-ish midpoint removed")
	require.True(t, out.Closed())

	// A minimal ring must come back unchanged rather than collapse.
	small := orb.Ring{{0, 0}, {1, 0}, {0, 1}, {0, 0}}
	require.Equal(t, small, SimplifyRing(small, 10))
}
