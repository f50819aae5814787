package kmp

import (
	"errors"

	"github.com/coregx/ahocorasick"
)

// Multi-pattern errors reported by CompileLiteralSet.
var (
	// ErrNoPatterns is returned when compiling an empty pattern set.
	ErrNoPatterns = errors.New("literal set requires at least one pattern")
	// ErrEmptyPattern is returned when a pattern in the set is empty.
	ErrEmptyPattern = errors.New("literal set patterns must be non-empty")
)

// LiteralSet searches one text for any of several literal patterns in a
// single pass, using an Aho-Corasick automaton. For k patterns of total
// length M it costs O(M) to build and O(n) per search, against O(k*n)
// for running k separate scans.
//
// A LiteralSet is immutable and safe for concurrent use.
//
// Example:
//
//	set, _ := kmp.CompileLiteralSet([][]byte{
//	    []byte("GET"), []byte("POST"), []byte("PUT"),
//	})
//	start, end, ok := set.Find([]byte("a POST request"))
//	// start=2, end=6, ok=true
type LiteralSet struct {
	auto     *ahocorasick.Automaton
	patterns [][]byte
}

// CompileLiteralSet compiles a set of literal patterns for simultaneous
// search. The set must contain at least one pattern and every pattern
// must be non-empty; an empty pattern would match everywhere and has no
// useful leftmost-match semantics across a set.
//
// The pattern bytes are copied, so the caller's slices may be reused.
func CompileLiteralSet(patterns [][]byte) (*LiteralSet, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	copied := make([][]byte, len(patterns))
	builder := ahocorasick.NewBuilder()
	for i, pat := range patterns {
		if len(pat) == 0 {
			return nil, ErrEmptyPattern
		}
		c := make([]byte, len(pat))
		copy(c, pat)
		copied[i] = c
		builder.AddPattern(c)
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &LiteralSet{auto: auto, patterns: copied}, nil
}

// CompileLiteralSetStrings is CompileLiteralSet for string patterns.
func CompileLiteralSetStrings(patterns []string) (*LiteralSet, error) {
	bs := make([][]byte, len(patterns))
	for i, p := range patterns {
		bs[i] = []byte(p)
	}
	return CompileLiteralSet(bs)
}

// Find returns the span [start, end) of the leftmost occurrence of any
// pattern in text. ok is false if no pattern occurs.
func (s *LiteralSet) Find(text []byte) (start, end int, ok bool) {
	return s.FindAt(text, 0)
}

// FindAt is Find starting the scan at byte offset at.
func (s *LiteralSet) FindAt(text []byte, at int) (start, end int, ok bool) {
	if at < 0 || at >= len(text) {
		return -1, -1, false
	}
	m := s.auto.Find(text, at)
	if m == nil {
		return -1, -1, false
	}
	return m.Start, m.End, true
}

// IsMatch reports whether any pattern in the set occurs in text.
func (s *LiteralSet) IsMatch(text []byte) bool {
	return s.auto.IsMatch(text)
}

// Count returns the number of non-overlapping occurrences of the set's
// patterns in text, scanning left to right and resuming after the end of
// each occurrence.
func (s *LiteralSet) Count(text []byte) int {
	n := 0
	at := 0
	for {
		_, end, ok := s.FindAt(text, at)
		if !ok {
			return n
		}
		n++
		at = end
	}
}

// Len returns the number of patterns in the set.
func (s *LiteralSet) Len() int {
	return len(s.patterns)
}

// Patterns returns the compiled patterns. The slices are shared and must
// not be modified.
func (s *LiteralSet) Patterns() [][]byte {
	return s.patterns
}
