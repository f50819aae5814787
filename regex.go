package kmp

import (
	"github.com/TechieQuokka/kmp-go/dfa"
	"github.com/TechieQuokka/kmp-go/nfa"
)

// Regex is a compiled regular expression backed by a dense DFA.
//
// Matching walks exactly one table row per input byte and never
// backtracks, so pathological patterns cannot blow up match time. The
// price is paid once, at compile time, where subset construction is
// bounded by a configurable state ceiling.
//
// A Regex is immutable and safe for concurrent use.
//
// Example:
//
//	re := kmp.MustCompile(`[a-z]+@[a-z]+\.[a-z]+`)
//	re.MatchString("user@example.com") // true
type Regex struct {
	dfa     *dfa.DFA
	pattern string
}

// Compile compiles a regular expression pattern with the default
// configuration.
//
// Supported syntax: literal bytes, '.', '*', '+', '?', '[...]' and
// '[^...]' with ranges, '|', '(...)', the shorthand classes \d \D \w \W
// \s \S, and backslash-escaped literals. '^' and '$' are accepted but
// carry no anchoring semantics. Capture groups, backreferences, and
// lookaround are not supported.
//
// A malformed pattern returns a *nfa.ParseError; a pattern whose DFA
// would exceed the state ceiling returns a *dfa.CompileError.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, dfa.DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom DFA configuration.
//
// Example:
//
//	cfg := dfa.DefaultConfig().WithMaxStates(100000)
//	re, err := kmp.CompileWithConfig(`(a|b|c)+d`, cfg)
func CompileWithConfig(pattern string, config dfa.Config) (*Regex, error) {
	n, err := nfa.Parse(pattern)
	if err != nil {
		return nil, err
	}
	d, err := dfa.Compile(n, config)
	if err != nil {
		return nil, err
	}
	return &Regex{dfa: d, pattern: pattern}, nil
}

// MustCompile is Compile but panics if the pattern does not compile.
// It is intended for patterns known to be valid, typically package-level
// variables.
//
// Example:
//
//	var email = kmp.MustCompile(`[a-z]+@[a-z]+\.[a-z]+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("kmp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// Match reports whether the pattern matches the whole of b.
//
// Matching is anchored at both ends: `abc` matches "abc" but not
// "xabcx". Use Search for substring semantics.
func (r *Regex) Match(b []byte) bool {
	return r.dfa.Matches(b)
}

// MatchString is Match for strings.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Search returns the offset of the leftmost position in b where a match
// of the pattern begins, or -1 if there is none.
//
// Example:
//
//	re := kmp.MustCompile(`\d+`)
//	re.Search([]byte("age: 42")) // 5
func (r *Regex) Search(b []byte) int {
	return r.dfa.Search(b)
}

// SearchString is Search for strings.
func (r *Regex) SearchString(s string) int {
	return r.Search([]byte(s))
}

// StateCount returns the number of DFA states the pattern compiled to.
// Useful for judging how close a pattern sits to the configured ceiling.
func (r *Regex) StateCount() int {
	return r.dfa.StateCount()
}

// String returns the source text the expression was compiled from.
func (r *Regex) String() string {
	return r.pattern
}
