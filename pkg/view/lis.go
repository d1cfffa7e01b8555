package view

// longestIncreasingSubsequence returns the set of positions in sources
// that form the longest strictly increasing run of defined (>= 0) values.
// Negative entries are sentinels for freshly created items and never
// participate.
//
// Patience sorting, O(n log n): for each defined value, binary-search the
// tails array for its insertion point, remember the predecessor, then
// reconstruct by walking predecessors back from the longest tail. The
// search uses strict inequality so equal values replace rather than
// extend; only true position-preserving runs survive.
func longestIncreasingSubsequence(sources []int) map[int]bool {
	var tails []int // positions in sources; sources[tails] is increasing
	preds := make([]int, len(sources))

	for i, v := range sources {
		if v < 0 {
			continue
		}

		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if sources[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}

		if lo > 0 {
			preds[i] = tails[lo-1]
		} else {
			preds[i] = -1
		}

		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}

	member := make(map[int]bool, len(tails))
	if len(tails) == 0 {
		return member
	}
	for cur := tails[len(tails)-1]; cur >= 0; cur = preds[cur] {
		member[cur] = true
	}
	return member
}
