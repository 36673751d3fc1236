package outline

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/require"

	"github.com/lsst/skyborder/skymap"
)

// loopSides decomposes closed loops back into canonical sides.
func loopSides(loops []Loop) map[side]int {
	out := make(map[side]int)
	for _, l := range loops {
		for i := 0; i+1 < len(l.IDs); i++ {
			out[canonical(l.IDs[i], l.IDs[i+1])]++
		}
	}

	return out
}

// TestTrace_EdgeConservation: per region, the multiset of sides obtained
// by cutting all loops back into consecutive vertex pairs equals the
// boundary edge set extracted for that region (direction ignored).
func TestTrace_EdgeConservation(t *testing.T) {
	for name, paint := range map[string]func(cell int, c s2.Point) skymap.Label{
		"hemispheres": func(_ int, c s2.Point) skymap.Label {
			if c.Z >= 0 {
				return "north"
			}

			return "south"
		},
		"island": func(cell int, _ s2.Point) skymap.Label {
			if cell == 42 {
				return "island"
			}

			return "ocean"
		},
		"quadrants": func(_ int, c s2.Point) skymap.Label {
			switch {
			case c.X >= 0 && c.Y >= 0:
				return "q1"
			case c.X < 0 && c.Y >= 0:
				return "q2"
			case c.X < 0:
				return "q3"
			default:
				return "q4"
			}
		},
	} {
		t.Run(name, func(t *testing.T) {
			q, err := skymap.NewQuadSphere(2)
			require.NoError(t, err)
			r, err := skymap.Paint(q, paint)
			require.NoError(t, err)

			_, cells := indexCorners(r)
			bs, err := extractBoundaries(r, cells)
			require.NoError(t, err)

			res, err := Trace(r, DefaultOptions())
			require.NoError(t, err)

			for _, b := range res.Boundaries {
				require.True(t, b.Stabilized, "region %s", b.Region)

				want := make(map[side]int)
				for _, e := range bs.regions[b.Region] {
					want[e]++
				}
				require.Equal(t, want, loopSides(b.Loops), "region %s", b.Region)
			}
		})
	}
}
