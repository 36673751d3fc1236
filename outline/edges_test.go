package outline

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/require"

	"github.com/lsst/skyborder/skymap"
)

// islandRaster paints a single "island" cell into an "ocean" covering the
// rest of a level-1 quad sphere.
func islandRaster(t *testing.T, island int) *skymap.Raster {
	t.Helper()
	q, err := skymap.NewQuadSphere(1)
	require.NoError(t, err)
	r, err := skymap.Paint(q, func(cell int, _ s2.Point) skymap.Label {
		if cell == island {
			return "island"
		}

		return "ocean"
	})
	require.NoError(t, err)

	return r
}

func TestExtractBoundaries_Island(t *testing.T) {
	r := islandRaster(t, 7)
	vs, cells := indexCorners(r)
	require.Equal(t, r.NumCells()+2, vs.Len(), "Euler count of a quad tiling")

	bs, err := extractBoundaries(r, cells)
	require.NoError(t, err)

	// The island has 4 sides; each bounds both regions.
	require.Equal(t, 4, bs.count)
	require.Len(t, bs.regions[skymap.Label("island")], 4)
	require.Len(t, bs.regions[skymap.Label("ocean")], 4)
	require.ElementsMatch(t,
		bs.regions[skymap.Label("island")],
		bs.regions[skymap.Label("ocean")],
		"a shared border is the same canonical edge set on both sides")

	for _, e := range bs.regions[skymap.Label("island")] {
		require.Less(t, e.lo, e.hi, "sides are canonicalized lo < hi")
	}
}

func TestExtractBoundaries_SingleRegionHasNoEdges(t *testing.T) {
	q, err := skymap.NewQuadSphere(1)
	require.NoError(t, err)
	r, err := skymap.Paint(q, func(int, s2.Point) skymap.Label { return "all" })
	require.NoError(t, err)

	_, cells := indexCorners(r)
	bs, err := extractBoundaries(r, cells)
	require.NoError(t, err)
	require.Equal(t, 0, bs.count)
	require.Empty(t, bs.regions)
}

// TestExtractBoundaries_SentinelBoundsButGetsNoGroup checks that cells
// labeled Unassigned still create boundary edges for their neighbors
// while producing no outline group of their own.
func TestExtractBoundaries_SentinelBoundsButGetsNoGroup(t *testing.T) {
	q, err := skymap.NewQuadSphere(1)
	require.NoError(t, err)
	r, err := skymap.Paint(q, func(cell int, _ s2.Point) skymap.Label {
		if cell == 3 {
			return "spot"
		}

		return skymap.Unassigned
	})
	require.NoError(t, err)

	_, cells := indexCorners(r)
	bs, err := extractBoundaries(r, cells)
	require.NoError(t, err)
	require.Equal(t, 4, bs.count)
	require.Len(t, bs.regions[skymap.Label("spot")], 4)
	_, ok := bs.regions[skymap.Unassigned]
	require.False(t, ok, "the sentinel label owns no edge group")
}

// brokenGrid exposes hand-built cells that do not tile the sphere.
type brokenGrid struct {
	cells [][]s2.Point
}

func (g *brokenGrid) NumCells() int                   { return len(g.cells) }
func (g *brokenGrid) CellCorners(cell int) []s2.Point { return g.cells[cell] }
func (g *brokenGrid) Scale() float64                  { return 90 }

func quad() []s2.Point {
	return []s2.Point{
		s2.PointFromCoords(1, 0, 0),
		s2.PointFromCoords(0, 1, 0),
		s2.PointFromCoords(-1, 0, 0),
		s2.PointFromCoords(0, -1, 0),
	}
}

func TestExtractBoundaries_UnpairedSide(t *testing.T) {
	r, err := skymap.NewRaster(&brokenGrid{cells: [][]s2.Point{quad()}}, []skymap.Label{"a"})
	require.NoError(t, err)

	_, cells := indexCorners(r)
	_, err = extractBoundaries(r, cells)
	require.ErrorIs(t, err, ErrUnpairedSide)
}

func TestExtractBoundaries_SideMultiplicity(t *testing.T) {
	r, err := skymap.NewRaster(
		&brokenGrid{cells: [][]s2.Point{quad(), quad(), quad()}},
		[]skymap.Label{"a", "b", "c"})
	require.NoError(t, err)

	_, cells := indexCorners(r)
	_, err = extractBoundaries(r, cells)
	require.ErrorIs(t, err, ErrSideMultiplicity)
}
