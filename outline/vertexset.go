package outline

import (
	"github.com/golang/geo/s2"

	"github.com/lsst/skyborder/skymap"
)

// VertexSet maps bit-identical Cartesian corner coordinates to stable
// integer ids. Two corners resolve to the same id iff their unit vectors
// are exactly equal — no tolerance is applied here (tolerance enters only
// at loop closure). Ids are assigned in first-seen order, which is
// deterministic because callers feed corners in cell order.
type VertexSet struct {
	ids  map[s2.Point]int
	pts  []s2.Point
	ll   []s2.LatLng
	refs []int
}

// NewVertexSet returns an empty vertex table.
func NewVertexSet() *VertexSet {
	return &VertexSet{ids: make(map[s2.Point]int)}
}

// Add registers p and returns its stable id, reusing the existing id on an
// exact coordinate match. The reference count tracks how many corners
// mapped to the vertex (diagnostics only).
// Complexity: O(1) amortized.
func (vs *VertexSet) Add(p s2.Point) int {
	if id, ok := vs.ids[p]; ok {
		vs.refs[id]++

		return id
	}
	id := len(vs.pts)
	vs.ids[p] = id
	vs.pts = append(vs.pts, p)
	vs.ll = append(vs.ll, s2.LatLngFromPoint(p))
	vs.refs = append(vs.refs, 1)

	return id
}

// Len reports the number of unique vertices.
func (vs *VertexSet) Len() int { return len(vs.pts) }

// Point returns the unit vector of vertex id.
func (vs *VertexSet) Point(id int) s2.Point { return vs.pts[id] }

// LatLng returns the spherical projection of vertex id.
func (vs *VertexSet) LatLng(id int) s2.LatLng { return vs.ll[id] }

// Refs reports how many corners mapped to vertex id.
func (vs *VertexSet) Refs(id int) int { return vs.refs[id] }

// Separation returns the angular distance between vertices a and b, in
// degrees. It is computed through the chord between the two unit vectors,
// 2·arcsin(chord/2), which is exact on the unit sphere and stable for the
// small angles the tolerance escalation cares about.
// Complexity: O(1).
func (vs *VertexSet) Separation(a, b int) float64 {
	return s2.ChordAngleBetweenPoints(vs.pts[a], vs.pts[b]).Angle().Degrees()
}

// record materializes the output Vertex of id.
func (vs *VertexSet) record(id int) Vertex {
	p := vs.pts[id]
	ll := vs.ll[id]

	return Vertex{
		ID:  id,
		X:   p.X,
		Y:   p.Y,
		Z:   p.Z,
		Lon: ll.Lng.Degrees(),
		Lat: ll.Lat.Degrees(),
	}
}

// indexCorners runs vertex deduplication over the whole raster: it builds
// the VertexSet and, per cell, the ordered corner-vertex ids.
// Complexity: O(N·c) time and memory, c = corners per cell.
func indexCorners(r *skymap.Raster) (*VertexSet, [][]int) {
	vs := NewVertexSet()
	cells := make([][]int, r.NumCells())
	for i := range cells {
		corners := r.Corners(i)
		ids := make([]int, len(corners))
		for k, p := range corners {
			ids[k] = vs.Add(p)
		}
		cells[i] = ids
	}

	return vs, cells
}
