// Package simd accelerates exact substring search with wide byte scanning.
//
// The search kernels follow the classic scan/verify/skip scheme: broadcast
// the pattern's first byte, sweep the text in lane-sized strides until a
// candidate position carries that byte, verify the remaining pattern bytes
// at the candidate, and on a partial match of length L resynchronize by the
// prefix-function skip L-failure[L-1] so no text byte is ever revisited.
//
// Three tiers differ only in stride width: 16, 32, or 64 bytes per step.
// All kernels are portable Go built on the SWAR (SIMD within a register)
// technique over 64-bit words; the processor feature level detected on
// first use selects the widest stride worth running, mirroring the vector
// register width the hardware offers.
package simd

// Threshold is the minimum text length for the tiered scan kernels.
// Shorter texts run the plain two-pointer scan: below this size the
// per-candidate setup costs more than it saves.
const Threshold = 64

// Index returns the byte offset of the first occurrence of pattern in text,
// or -1 if the pattern does not occur. failure must be the prefix table of
// pattern, as produced by the kmp package.
//
// An empty pattern matches at offset 0 of any text, including empty text.
// Texts shorter than Threshold bytes take the scalar path directly; longer
// texts dispatch to the widest tier the processor supports.
func Index(text, pattern []byte, failure []int) int {
	if len(pattern) == 0 {
		return 0
	}
	if len(text) < len(pattern) {
		return -1
	}
	if len(text) < Threshold {
		return indexScalar(text, pattern, failure)
	}
	switch BestLevel() {
	case LevelAVX512:
		return indexAVX512(text, pattern, failure)
	case LevelAVX2:
		return indexAVX2(text, pattern, failure)
	case LevelSSE42:
		return indexSSE42(text, pattern, failure)
	default:
		return indexScalar(text, pattern, failure)
	}
}

// indexScalar is the classic two-pointer scan over text: on a mismatch at
// pattern position j it falls back through the prefix table instead of
// rewinding the text pointer. O(n+m) for any input.
func indexScalar(text, pattern []byte, failure []int) int {
	m := len(pattern)
	if m == 0 {
		return 0
	}
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != pattern[j] {
			j = failure[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == m {
			return i - m + 1
		}
	}
	return -1
}
