package skymap

import (
	"math"

	"github.com/golang/geo/s2"
)

// cornerScale quantizes corner coordinates for the canonical-corner lookup.
// 2^40 ≈ 1e12 buckets per unit axis: numerically-equal corners computed from
// different cube faces land within one bucket of each other, while distinct
// corners of any level ≤ 30 cell stay thousands of buckets apart.
const cornerScale = 1 << 40

// cornerKey is the quantized coordinate triple used to unify corner
// computations that are mathematically equal but not bit-identical.
type cornerKey [3]int64

// cornerKeyOf maps a unit vector to its quantized bucket.
func cornerKeyOf(p s2.Point) cornerKey {
	return cornerKey{
		int64(math.Round(p.X * cornerScale)),
		int64(math.Round(p.Y * cornerScale)),
		int64(math.Round(p.Z * cornerScale)),
	}
}

// QuadSphere tiles the full sphere with all S2 cells of a single level.
// Every cell is a spherical quadrilateral with 4 ordered (CCW) corners.
//
// QuadSphere owns a deduplicated corner table: each geometric corner is
// computed once and every cell touching it hands out the same s2.Point
// value, making shared corners bit-identical even across cube-face seams
// (where the raw per-face computations differ in the last bits). This is
// what lets downstream vertex deduplication use exact equality.
//
// A QuadSphere is immutable after construction.
type QuadSphere struct {
	level     int
	ids       []s2.CellID       // ascending CellID order; index = cell id
	index     map[s2.CellID]int // inverse of ids
	verts     []s2.Point        // canonical corner table
	cellVerts []int             // 4 entries per cell, indices into verts
}

// NewQuadSphere builds the grid of all S2 cells at the given level.
// Returns ErrBadLevel if level is outside [0, 30].
// Complexity: O(N) time and memory, N = 6·4^level.
func NewQuadSphere(level int) (*QuadSphere, error) {
	// 1. Validate the level against the S2 hierarchy bounds.
	if level < 0 || level > s2.MaxLevel {
		return nil, ErrBadLevel
	}

	// 2. Enumerate all cells of the level in ascending CellID order.
	n := 6 << (2 * uint(level))
	q := &QuadSphere{
		level:     level,
		ids:       make([]s2.CellID, 0, n),
		index:     make(map[s2.CellID]int, n),
		cellVerts: make([]int, 0, 4*n),
	}
	end := s2.CellIDFromFace(5).ChildEndAtLevel(level)
	for ci := s2.CellIDFromFace(0).ChildBeginAtLevel(level); ci != end; ci = ci.Next() {
		q.index[ci] = len(q.ids)
		q.ids = append(q.ids, ci)
	}

	// 3. Build the canonical corner table: first computation of a corner
	//    wins; later computations of the same geometric corner (possibly
	//    from another cube face) resolve to the stored point.
	lookup := make(map[cornerKey]int, 4*n)
	for _, ci := range q.ids {
		cell := s2.CellFromCellID(ci)
		for k := 0; k < 4; k++ {
			p := cell.Vertex(k)
			id, ok := findCorner(lookup, p)
			if !ok {
				id = len(q.verts)
				q.verts = append(q.verts, p)
				lookup[cornerKeyOf(p)] = id
			}
			q.cellVerts = append(q.cellVerts, id)
		}
	}

	return q, nil
}

// findCorner resolves p to an already-registered corner id. Besides the
// exact bucket it probes the 26 adjacent buckets, so a corner that rounds
// across a bucket boundary on one face still unifies with its twin.
func findCorner(lookup map[cornerKey]int, p s2.Point) (int, bool) {
	key := cornerKeyOf(p)
	if id, ok := lookup[key]; ok {
		return id, true
	}
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				if id, ok := lookup[cornerKey{key[0] + dx, key[1] + dy, key[2] + dz}]; ok {
					return id, true
				}
			}
		}
	}

	return 0, false
}

// NumCells reports the number of cells: 6·4^level.
// Complexity: O(1).
func (q *QuadSphere) NumCells() int { return len(q.ids) }

// CellCorners returns the 4 ordered (CCW) canonical corner unit vectors of
// cell. The slice is freshly allocated and owned by the caller; the points
// themselves come from the shared corner table, so equal corners of
// neighboring cells compare bit-identical.
// Complexity: O(1).
func (q *QuadSphere) CellCorners(cell int) []s2.Point {
	base := 4 * cell
	out := make([]s2.Point, 4)
	for k := 0; k < 4; k++ {
		out[k] = q.verts[q.cellVerts[base+k]]
	}

	return out
}

// Scale reports the average angular edge length of a cell at this level,
// in degrees.
// Complexity: O(1).
func (q *QuadSphere) Scale() float64 {
	return s2.AvgEdgeMetric.Value(q.level) * 180 / math.Pi
}

// Level reports the S2 level of the tiling.
func (q *QuadSphere) Level() int { return q.level }

// CellID returns the S2 CellID of cell i.
func (q *QuadSphere) CellID(i int) s2.CellID { return q.ids[i] }

// IndexOf maps an S2 CellID back to its cell index.
// The second result is false when id is not a cell of this grid.
// Complexity: O(1).
func (q *QuadSphere) IndexOf(id s2.CellID) (int, bool) {
	i, ok := q.index[id]

	return i, ok
}

// Center returns the center unit vector of cell i.
// Complexity: O(1).
func (q *QuadSphere) Center(i int) s2.Point { return q.ids[i].Point() }

// Neighbors returns the indices of the 4 edge-adjacent cells of cell i,
// in S2 edge order (down, right, up, left).
// Complexity: O(1).
func (q *QuadSphere) Neighbors(i int) []int {
	nbrs := q.ids[i].EdgeNeighbors()
	out := make([]int, 0, len(nbrs))
	for _, id := range nbrs {
		out = append(out, q.index[id])
	}

	return out
}
