package outline

// assembleLines greedily walks one region's boundary edges into maximal
// open chains of vertex ids. It takes ownership of edges: every edge is
// consumed by exactly one chain, and no used/remaining view escapes.
//
// Walk policy (all deterministic):
//   - A new chain seeds at the lowest-numbered endpoint over the unused
//     edges, lowest edge-table index breaking ties.
//   - The chain extends by scanning unused edges in ascending table index
//     and splicing the first edge incident to either end — appended after
//     the tail or prepended before the head, whichever end matched.
//   - When no unused edge touches either end the chain is finished.
//
// In a well-formed labeling each vertex carries at most two boundary-edge
// incidences per region, so the chains are simple degree-≤2 paths. Where
// three or more regions meet at one vertex the walk still terminates and
// consumes every edge, but which chain owns which edge follows the scan
// order above — loop closure later stitches the pieces back together.
//
// Complexity: O(E²) time, O(E) memory (E = edges of one region; region
// boundaries are small relative to the raster).
func assembleLines(edges []side) [][]int {
	used := make([]bool, len(edges))
	remaining := len(edges)
	var lines [][]int
	for remaining > 0 {
		// 1. Seed at the lowest-numbered endpoint among unused edges.
		seed := -1
		for i, e := range edges {
			if used[i] {
				continue
			}
			if seed < 0 || e.lo < seed {
				seed = e.lo
			}
		}
		line := []int{seed}

		// 2. Extend at either end until stuck.
		for {
			extended := false
			for i, e := range edges {
				if used[i] {
					continue
				}
				head := line[len(line)-1]
				tail := line[0]
				switch {
				case e.lo == head:
					line = append(line, e.hi)
				case e.hi == head:
					line = append(line, e.lo)
				case e.lo == tail:
					line = prepend(line, e.hi)
				case e.hi == tail:
					line = prepend(line, e.lo)
				default:
					continue
				}
				used[i] = true
				remaining--
				extended = true

				break
			}
			if !extended {
				break
			}
		}
		lines = append(lines, line)
	}

	return lines
}

// prepend inserts v before the first element of line.
func prepend(line []int, v int) []int {
	line = append(line, 0)
	copy(line[1:], line)
	line[0] = v

	return line
}
