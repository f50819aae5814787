package kmp

// ComputeFailure returns the prefix table for pattern: failure[i] is the
// length of the longest proper prefix of pattern[:i+1] that is also a
// suffix of it. The table for an empty pattern is empty.
//
// Example:
//
//	Pattern: A B A B A C
//	Index:   0 1 2 3 4 5
//	Table:   0 0 1 2 3 0
//
// The table drives every mismatch recovery in this package: after matching
// j bytes and failing, the scan resumes at pattern position failure[j-1]
// without moving backwards in the text.
func ComputeFailure(pattern []byte) []int {
	m := len(pattern)
	if m == 0 {
		return nil
	}

	failure := make([]int, m)

	// k is the length of the longest proper prefix-suffix seen so far.
	k := 0
	for i := 1; i < m; i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = failure[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		failure[i] = k
	}
	return failure
}

// ComputeFailureOptimized returns a prefix table with the nextval
// refinement: when the byte following position i equals the byte at the
// border length k, the stored value collapses to failure[k-1], because
// falling back to k would immediately re-compare an identical byte and
// fail again.
//
// The table has the same length as the basic one and is interchangeable
// with it for matching: collapsing only ever removes fallback steps that
// are doomed on the byte that triggered them. The final entry, the one
// consulted when continuing past a complete match, is never collapsed.
func ComputeFailureOptimized(pattern []byte) []int {
	m := len(pattern)
	if m == 0 {
		return nil
	}

	failure := make([]int, m)
	k := 0
	for i := 1; i < m; i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = failure[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		if k > 0 && i+1 < m && pattern[i+1] == pattern[k] {
			failure[i] = failure[k-1]
			continue
		}
		failure[i] = k
	}
	return failure
}
