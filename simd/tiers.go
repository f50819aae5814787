package simd

// The tier kernels below share one loop shape and differ only in stride.
// Candidate starts live in [0, n-m]; the first-byte scan is clamped to
// that window, while the verify step may read up to pattern-length bytes
// past it, which is always inside the text.
//
// After a partial match of length got, the next candidate that could
// still succeed starts got-failure[got-1] bytes further on. The scan
// found the first byte at the candidate, so got >= 1 and the skip is
// always positive; the got == 0 branch is kept as a guard.

// indexSSE42 is the baseline tier: 16-byte striding for the first byte,
// then a plain byte-at-a-time verify.
func indexSSE42(text, pattern []byte, failure []int) int {
	n, m := len(text), len(pattern)
	limit := n - m + 1
	first := pattern[0]
	pos := 0
	for pos < limit {
		rel := firstByte16(text[pos:limit], first)
		if rel < 0 {
			return -1
		}
		cand := pos + rel
		j := 0
		for j < m && text[cand+j] == pattern[j] {
			j++
		}
		if j == m {
			return cand
		}
		skip := 1
		if j > 0 {
			skip = j - failure[j-1]
		}
		pos = cand + skip
	}
	return -1
}

// indexAVX2 is the medium tier: 32-byte striding for both the first-byte
// scan and the verify compare.
func indexAVX2(text, pattern []byte, failure []int) int {
	n, m := len(text), len(pattern)
	limit := n - m + 1
	first := pattern[0]
	pos := 0
	for pos < limit {
		rel := firstByte32(text[pos:limit], first)
		if rel < 0 {
			return -1
		}
		cand := pos + rel
		got := mismatch32(text[cand:], pattern, m)
		if got == m {
			return cand
		}
		skip := 1
		if got > 0 {
			skip = got - failure[got-1]
		}
		pos = cand + skip
	}
	return -1
}

// indexAVX512 is the wide tier: 64-byte striding.
func indexAVX512(text, pattern []byte, failure []int) int {
	n, m := len(text), len(pattern)
	limit := n - m + 1
	first := pattern[0]
	pos := 0
	for pos < limit {
		rel := firstByte64(text[pos:limit], first)
		if rel < 0 {
			return -1
		}
		cand := pos + rel
		got := mismatch64(text[cand:], pattern, m)
		if got == m {
			return cand
		}
		skip := 1
		if got > 0 {
			skip = got - failure[got-1]
		}
		pos = cand + skip
	}
	return -1
}
