// Package dfa compiles Thompson NFAs into dense deterministic automata via
// subset construction and executes them without backtracking.
//
// Each DFA state stands for an epsilon-closed set of NFA states. The
// construction is worklist-driven and bounded: a configurable state-count
// ceiling turns worst-case exponential blowup into a deterministic
// *CompileError instead of unbounded memory growth. Compiled automata are
// immutable and safe for concurrent readers.
package dfa

import (
	"errors"
	"fmt"
)

// Compilation errors reported by Compile.
var (
	// ErrStateLimit indicates subset construction exceeded the configured
	// state ceiling
	ErrStateLimit = errors.New("DFA state limit exceeded - pattern too complex")

	// ErrInvalidConfig indicates configuration validation failed
	ErrInvalidConfig = errors.New("invalid DFA configuration")
)

// CompileError reports a subset construction that hit the configured state
// ceiling. It is deterministic for a given NFA and ceiling. It wraps
// ErrStateLimit for errors.Is checks.
type CompileError struct {
	States int   // states allocated when the ceiling was hit
	Limit  int   // configured ceiling
	Err    error // underlying sentinel
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("DFA compilation failed: %v (%d states, limit %d)", e.Err, e.States, e.Limit)
}

// Unwrap returns the underlying sentinel error
func (e *CompileError) Unwrap() error {
	return e.Err
}
