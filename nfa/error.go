// Package nfa builds Thompson NFAs from a byte-level regex syntax.
//
// A recursive-descent parser turns the pattern into fragments with
// dangling transition slots; fragments are wired together in an
// append-only arena of states addressed by integer handles. The finished
// NFA is the input to the dfa package's subset construction. Parsing is
// eager: syntax errors surface as *ParseError and no partial automaton is
// ever returned.
package nfa

import (
	"errors"
	"fmt"
)

// Regex syntax errors reported by Parse.
var (
	// ErrUnexpectedEnd indicates the pattern ended where an atom was required
	ErrUnexpectedEnd = errors.New("unexpected end of pattern")

	// ErrUnmatchedParen indicates a group '(' without a closing ')'
	ErrUnmatchedParen = errors.New("unmatched parenthesis")

	// ErrUnclosedClass indicates a character class '[' without a closing ']'
	ErrUnclosedClass = errors.New("unclosed character class")

	// ErrTrailingEscape indicates a '\' with nothing after it
	ErrTrailingEscape = errors.New("incomplete escape sequence")
)

// ParseError reports a malformed pattern together with the byte position
// the parser stopped at. It wraps one of the syntax sentinel errors above.
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("regex parse failed for pattern %q at byte %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during NFA construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}
