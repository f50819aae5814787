package kmp

import "github.com/TechieQuokka/kmp-go/simd"

// LiteralPattern is a literal byte pattern compiled for repeated
// searches: the prefix table is computed once at compile time instead of
// on every call.
//
// A LiteralPattern is immutable and safe for concurrent use.
//
// Example:
//
//	p := kmp.CompileLiteral([]byte("abra"))
//	p.Find([]byte("abracadabra"))  // 0
//	p.Count([]byte("abracadabra")) // 2
type LiteralPattern struct {
	pattern []byte
	failure []int
}

// CompileLiteral compiles a literal pattern. Compilation never fails; an
// empty pattern is valid and matches at offset 0 of any text.
//
// The pattern bytes are copied, so the caller's slice may be reused.
func CompileLiteral(pattern []byte) *LiteralPattern {
	p := make([]byte, len(pattern))
	copy(p, pattern)
	return &LiteralPattern{pattern: p, failure: ComputeFailure(p)}
}

// CompileLiteralString compiles a literal pattern given as a string.
func CompileLiteralString(pattern string) *LiteralPattern {
	return CompileLiteral([]byte(pattern))
}

// Find returns the offset of the first occurrence of the pattern in
// text, or -1 if it does not occur.
func (p *LiteralPattern) Find(text []byte) int {
	return simd.Index(text, p.pattern, p.failure)
}

// FindAll returns an iterator over every occurrence of the pattern in
// text, overlaps included, in strictly ascending order.
func (p *LiteralPattern) FindAll(text []byte) *Iter {
	return &Iter{text: text, pattern: p.pattern, failure: p.failure}
}

// Count returns the number of occurrences of the pattern in text,
// overlaps included.
func (p *LiteralPattern) Count(text []byte) int {
	it := p.FindAll(text)
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// Contains reports whether the pattern occurs in text.
func (p *LiteralPattern) Contains(text []byte) bool {
	return p.Find(text) >= 0
}

// Pattern returns the compiled pattern bytes. The slice is shared and
// must not be modified.
func (p *LiteralPattern) Pattern() []byte {
	return p.pattern
}

// Failure returns the pattern's prefix table, as built by
// ComputeFailure. The slice is shared and must not be modified.
func (p *LiteralPattern) Failure() []int {
	return p.failure
}

// Len returns the pattern length in bytes.
func (p *LiteralPattern) Len() int {
	return len(p.pattern)
}

// IsEmpty reports whether the pattern is empty.
func (p *LiteralPattern) IsEmpty() bool {
	return len(p.pattern) == 0
}

// String returns the pattern as a string.
func (p *LiteralPattern) String() string {
	return string(p.pattern)
}
