package outline

// CanonicalCycle maps a loop's vertex-id sequence to a signature that is
// independent of starting point and traversal direction: the
// lexicographically minimal rotation over both orientations of the cycle.
// A trailing repeat of the first id (the closed form produced by Trace) is
// stripped first. Two loops are the same cycle iff their CanonicalCycle
// results are equal, which is what the idempotence and two-sided-border
// comparisons need.
// Time Complexity: O(n) via Booth's minimal-rotation algorithm.
func CanonicalCycle(ids []int) []int {
	// 1. Strip the closing repeat, if present.
	if n := len(ids); n > 1 && ids[0] == ids[n-1] {
		ids = ids[:n-1]
	}
	if len(ids) == 0 {
		return nil
	}

	// 2. Canonicalize both orientations and keep the smaller.
	fwd := minimalRotation(ids)
	bwd := minimalRotation(reversed(ids))
	if compare(bwd, fwd) < 0 {
		return bwd
	}

	return fwd
}

// compare lexicographically compares two equal-length id slices.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
// Time Complexity: O(n).
func compare(a, b []int) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// minimalRotation implements Booth's algorithm over int ids.
// It returns a new slice of length len(s) holding the lexicographically
// minimal rotation of s.
// Algorithm overview:
//  1. Duplicate the sequence (doubled) to length 2n.
//  2. Maintain an array f of failure links initialized to -1.
//  3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
//  4. After scanning, extract the rotation starting at index k.
//
// Time Complexity: O(n).
func minimalRotation(s []int) []int {
	doubled := append(append(make([]int, 0, 2*len(s)), s...), s...)
	n := len(s)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]int, n)
	copy(res, doubled[k:k+n])

	return res
}
