package outline

// closure is the outcome of loop closure for one region: the closed loops
// in creation order, any chains left open, and whether the escalation
// ended with every chain closed.
type closure struct {
	loops      [][]int
	unclosed   [][]int
	stabilized bool
}

// closeLoops runs the two-phase fixed-point iteration over the open
// chains of one region, at each tolerance level in turn:
//
//   - Separate-loops pass: a chain whose endpoints are the same vertex is
//     already a loop; a chain of ≥ 3 vertices whose endpoints lie within
//     the active tolerance is sealed by appending its first vertex. Either
//     way it moves to the loop list and never comes back.
//   - Join-lines pass: scan all chain pairs (outer index ascending, inner
//     ascending); on the first endpoint match — exact id, or within the
//     active tolerance — splice the two chains into one, reversing a side
//     as needed to preserve connectivity, and restart the pair scan.
//
// The two passes repeat until neither the chain count nor the loop count
// changes (a fixed point), bounded by maxIter per level as a termination
// valve. After the last level, chains still open are abandoned: they are
// returned for diagnostics and the closure reports stabilized=false.
//
// Complexity: O(L²·V) per fixed-point round (L chains, V chain length).
func closeLoops(lines [][]int, vs *VertexSet, tolerances []float64, maxIter int) closure {
	c := closure{}
	for _, tol := range tolerances {
		for iter := 0; iter < maxIter; iter++ {
			prevLines, prevLoops := len(lines), len(c.loops)

			// 1. Separate-loops pass.
			open := lines[:0]
			for _, line := range lines {
				if closed, ok := seal(line, vs, tol); ok {
					c.loops = append(c.loops, closed)
					continue
				}
				open = append(open, line)
			}
			lines = open

			// 2. Join-lines pass: first match wins, restart after every
			//    splice.
			for joined := true; joined; {
				joined = false
			scan:
				for i := 0; i < len(lines); i++ {
					for j := i + 1; j < len(lines); j++ {
						merged, ok := splice(lines[i], lines[j], vs, tol)
						if !ok {
							continue
						}
						lines[i] = merged
						lines = append(lines[:j], lines[j+1:]...)
						joined = true

						break scan
					}
				}
			}

			// 3. Fixed point at this tolerance level.
			if len(lines) == prevLines && len(c.loops) == prevLoops {
				break
			}
		}
	}
	c.unclosed = lines
	c.stabilized = len(lines) == 0

	return c
}

// seal reports whether line is closeable at the given tolerance and, if
// so, returns it in closed form (first vertex repeated as last). A chain
// whose two endpoints are distinct ids within tolerance needs at least 3
// vertices to close into a non-degenerate loop.
func seal(line []int, vs *VertexSet, tolDeg float64) ([]int, bool) {
	first, last := line[0], line[len(line)-1]
	if first == last && len(line) >= 3 {
		return line, true
	}
	if len(line) >= 3 && endsMatch(first, last, vs, tolDeg) {
		return append(line, first), true
	}

	return nil, false
}

// splice merges chains a and b when an endpoint of one matches an endpoint
// of the other, reversing a side as needed so the junction sits between
// the two halves. Match precedence follows endpoint order: a-tail↔b-head,
// a-tail↔b-tail, a-head↔b-tail, a-head↔b-head.
func splice(a, b []int, vs *VertexSet, tolDeg float64) ([]int, bool) {
	a0, a1 := a[0], a[len(a)-1]
	b0, b1 := b[0], b[len(b)-1]
	switch {
	case endsMatch(a1, b0, vs, tolDeg):
		return join(a, b), true
	case endsMatch(a1, b1, vs, tolDeg):
		return join(a, reversed(b)), true
	case endsMatch(a0, b1, vs, tolDeg):
		return join(b, a), true
	case endsMatch(a0, b0, vs, tolDeg):
		return join(reversed(b), a), true
	}

	return nil, false
}

// endsMatch treats two vertex ids as one junction when they are the same
// id, or when the active tolerance is positive and their angular
// separation lies strictly below it.
func endsMatch(a, b int, vs *VertexSet, tolDeg float64) bool {
	if a == b {
		return true
	}

	return tolDeg > 0 && vs.Separation(a, b) < tolDeg
}

// join concatenates x then y at a matched junction. An exact id match
// collapses the duplicated junction vertex; a tolerance match keeps both
// ids so no boundary edge silently disappears from the chain.
func join(x, y []int) []int {
	if x[len(x)-1] == y[0] {
		y = y[1:]
	}
	out := make([]int, 0, len(x)+len(y))
	out = append(out, x...)

	return append(out, y...)
}

// reversed returns a new chain with the elements of line in reverse order.
func reversed(line []int) []int {
	out := make([]int, len(line))
	for i := range line {
		out[i] = line[len(line)-1-i]
	}

	return out
}
