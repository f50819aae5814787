// Package kmp implements linear-time exact substring search and a
// backtracking-free regular expression engine.
//
// Exact search pairs the classic prefix-function scan with wide
// first-byte scanning kernels selected by processor capability at run
// time (see the simd package). Regular expressions compile through a
// Thompson NFA into a dense DFA (see the nfa and dfa packages), so
// matching never backtracks and is immune to pathological patterns.
//
// Basic usage:
//
//	// One-shot search
//	pos := kmp.Search([]byte("abracadabra"), []byte("abra")) // 0
//
//	// Every occurrence, overlaps included
//	it := kmp.SearchAll([]byte("aaaa"), []byte("aa"))
//	for p, ok := it.Next(); ok; p, ok = it.Next() {
//	    fmt.Println(p) // 0, 1, 2
//	}
//
//	// Compiled forms for repeated use
//	lit := kmp.CompileLiteral([]byte("needle"))
//	re := kmp.MustCompile(`[a-z]+@[a-z]+\.[a-z]+`)
//
// All compiled forms are immutable and safe for concurrent use.
package kmp

import "github.com/TechieQuokka/kmp-go/simd"

// Search returns the byte offset of the first occurrence of pattern in
// text, or -1 if the pattern does not occur. An empty pattern matches at
// offset 0 of any text, including empty text.
//
// Texts at or above simd.Threshold bytes are scanned with the widest
// kernel the processor supports; shorter texts use the plain
// prefix-function scan. Either way the cost is O(n+m).
func Search(text, pattern []byte) int {
	return simd.Index(text, pattern, ComputeFailure(pattern))
}

// SearchString is Search for strings.
func SearchString(text, pattern string) int {
	return Search([]byte(text), []byte(pattern))
}

// SearchAll returns an iterator over the positions of every occurrence of
// pattern in text, in strictly ascending order. Occurrences may overlap:
//
//	kmp.SearchAll([]byte("aaaa"), []byte("aa")) // yields 0, 1, 2
//
// The iterator is lazy; no positions are computed before Next is called.
// An empty pattern yields the single position 0. Call SearchAll again to
// restart the sequence from the beginning.
func SearchAll(text, pattern []byte) *Iter {
	return &Iter{text: text, pattern: pattern, failure: ComputeFailure(pattern)}
}

// SearchAllString is SearchAll for strings.
func SearchAllString(text, pattern string) *Iter {
	return SearchAll([]byte(text), []byte(pattern))
}

// Count returns the number of occurrences of pattern in text, overlaps
// included. It is the length of the sequence SearchAll produces.
func Count(text, pattern []byte) int {
	it := SearchAll(text, pattern)
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// CountString is Count for strings.
func CountString(text, pattern string) int {
	return Count([]byte(text), []byte(pattern))
}

// Contains reports whether pattern occurs in text. Equivalent to
// Search(text, pattern) >= 0.
func Contains(text, pattern []byte) bool {
	return Search(text, pattern) >= 0
}

// ContainsString is Contains for strings.
func ContainsString(text, pattern string) bool {
	return Contains([]byte(text), []byte(pattern))
}

// Iter enumerates occurrence positions of one pattern in one text.
// Positions come out in strictly ascending order and may belong to
// overlapping occurrences.
//
// An Iter is single-use: once exhausted it keeps reporting no more
// results. It holds references to the text and pattern it was created
// with, which must not be mutated while the iterator is live.
type Iter struct {
	text    []byte
	pattern []byte
	failure []int
	i, j    int
	done    bool
}

// Next returns the next occurrence position. The second result is false
// when the sequence is exhausted, and from then on every call returns
// (-1, false).
//
// The scan keeps its prefix-function state between calls, so draining the
// whole sequence costs O(n+m) total regardless of how many occurrences
// there are. After reporting a match the internal state falls back to the
// longest border of the pattern, which is what permits overlapping
// occurrences.
func (it *Iter) Next() (int, bool) {
	if it.done {
		return -1, false
	}
	m := len(it.pattern)
	if m == 0 {
		// Found at offset 0, and there is no way to advance.
		it.done = true
		return 0, true
	}
	for ; it.i < len(it.text); it.i++ {
		for it.j > 0 && it.text[it.i] != it.pattern[it.j] {
			it.j = it.failure[it.j-1]
		}
		if it.text[it.i] == it.pattern[it.j] {
			it.j++
		}
		if it.j == m {
			pos := it.i - m + 1
			it.j = it.failure[m-1]
			it.i++
			return pos, true
		}
	}
	it.done = true
	return -1, false
}

// Positions drains the iterator and returns all remaining positions.
// Returns nil if the iterator is already exhausted or has no matches.
func (it *Iter) Positions() []int {
	var out []int
	for pos, ok := it.Next(); ok; pos, ok = it.Next() {
		out = append(out, pos)
	}
	return out
}
