package nfa

import "math/bits"

// AlphabetSize is the number of byte values the automaton alphabet covers.
//
// Character classes and DFA transition tables are indexed by bytes
// 0..AlphabetSize-1 (7-bit ASCII). Bytes at or above the bound never match
// a class test and immediately kill a DFA walk. Exact literal search in the
// root package is unaffected and covers the full 0-255 byte range; that
// asymmetry is deliberate and documented rather than papered over.
const AlphabetSize = 128

// ByteSet is a fixed-width bit-vector over the byte codes 0..AlphabetSize-1.
//
// It backs character-class states: [a-z], [^abc], the shorthand classes and
// the '.' atom. The zero value is the empty set.
type ByteSet struct {
	// bits is a 128-bit bitset where bit i is set if byte i is a member
	bits [2]uint64
}

// Add inserts a single byte code. Codes outside the alphabet are ignored.
func (s *ByteSet) Add(b byte) {
	if b < AlphabetSize {
		s.bits[b>>6] |= 1 << (b & 63)
	}
}

// AddRange inserts every code in the inclusive range [lo, hi], clipped to
// the alphabet bound. An inverted range (lo > hi) inserts nothing.
func (s *ByteSet) AddRange(lo, hi byte) {
	for c := int(lo); c <= int(hi) && c < AlphabetSize; c++ {
		s.bits[c>>6] |= 1 << (uint(c) & 63)
	}
}

// Union adds every member of other to the set.
func (s *ByteSet) Union(other ByteSet) {
	s.bits[0] |= other.bits[0]
	s.bits[1] |= other.bits[1]
}

// Complement inverts membership within the alphabet. Codes at or above
// AlphabetSize stay out of the set.
func (s *ByteSet) Complement() {
	s.bits[0] = ^s.bits[0]
	s.bits[1] = ^s.bits[1]
}

// Remove deletes a single byte code from the set.
func (s *ByteSet) Remove(b byte) {
	if b < AlphabetSize {
		s.bits[b>>6] &^= 1 << (b & 63)
	}
}

// Contains reports whether the byte code is a member.
// Codes outside the alphabet are never members.
func (s ByteSet) Contains(b byte) bool {
	return b < AlphabetSize && s.bits[b>>6]&(1<<(b&63)) != 0
}

// Len returns the number of members.
func (s ByteSet) Len() int {
	return bits.OnesCount64(s.bits[0]) + bits.OnesCount64(s.bits[1])
}

// Digit returns the \d class: '0'-'9'.
func Digit() ByteSet {
	var s ByteSet
	s.AddRange('0', '9')
	return s
}

// Word returns the \w class: 'a'-'z', 'A'-'Z', '0'-'9' and '_'.
func Word() ByteSet {
	var s ByteSet
	s.AddRange('a', 'z')
	s.AddRange('A', 'Z')
	s.AddRange('0', '9')
	s.Add('_')
	return s
}

// Space returns the \s class: space, '\t', '\n', '\r', '\f' and '\v'.
func Space() ByteSet {
	var s ByteSet
	for _, b := range []byte{' ', '\t', '\n', '\r', '\f', '\v'} {
		s.Add(b)
	}
	return s
}

// AnyChar returns the '.' class: every alphabet byte except '\n'.
func AnyChar() ByteSet {
	var s ByteSet
	s.AddRange(0, AlphabetSize-1)
	s.Remove('\n')
	return s
}
