package skymap_test

import (
	"fmt"

	"github.com/golang/geo/s2"

	"github.com/lsst/skyborder/skymap"
)

// ExampleNewQuadSphere enumerates the coarse levels of the quad tiling.
func ExampleNewQuadSphere() {
	for level := 0; level <= 2; level++ {
		q, _ := skymap.NewQuadSphere(level)
		fmt.Printf("level %d: %d cells\n", level, q.NumCells())
	}
	// Output:
	// level 0: 6 cells
	// level 1: 24 cells
	// level 2: 96 cells
}

// ExamplePaint labels the two hemispheres of a level-1 grid.
func ExamplePaint() {
	q, _ := skymap.NewQuadSphere(1)
	r, _ := skymap.Paint(q, func(_ int, center s2.Point) skymap.Label {
		if center.Z >= 0 {
			return "north"
		}

		return "south"
	})
	fmt.Println(r.Regions())
	// Output:
	// [north south]
}
