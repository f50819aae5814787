package nfa

import (
	"fmt"
)

// StateID uniquely identifies an NFA state.
// States address each other by handle into an append-only arena, never by
// pointer, so quantifier back-edges form no reference cycles.
type StateID uint32

// InvalidState marks an unset transition slot.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of NFA state and determines which guard and
// transition slots are meaningful.
type StateKind uint8

const (
	// StateEpsilon is a zero-width state with up to two successors.
	// With both slots wired it acts as a split (alternation, quantifier
	// loop); with one it is plain sequencing glue.
	StateEpsilon StateKind = iota

	// StateByte consumes one input byte equal to its guard byte.
	StateByte

	// StateClass consumes one input byte admitted by its ByteSet guard.
	StateClass

	// StateMatch is the designated accepting state appended when a parse
	// finishes. It has no successors.
	StateMatch
)

// String returns a human-readable representation of the StateKind
func (k StateKind) String() string {
	switch k {
	case StateEpsilon:
		return "Epsilon"
	case StateByte:
		return "Byte"
	case StateClass:
		return "Class"
	case StateMatch:
		return "Match"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State represents a single NFA state with its guard and transitions.
// Byte and class states use next1 only; epsilon states may use both slots;
// match states use neither.
type State struct {
	id   StateID
	kind StateKind

	// For Byte: the single guard byte. For Class: the guard set.
	b     byte
	class ByteSet

	next1 StateID
	next2 StateID
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's type
func (s *State) Kind() StateKind {
	return s.kind
}

// IsMatch returns true if this is the accepting state
func (s *State) IsMatch() bool {
	return s.kind == StateMatch
}

// Byte returns the guard byte for Byte states.
// Returns 0 for non-Byte states.
func (s *State) Byte() byte {
	if s.kind == StateByte {
		return s.b
	}
	return 0
}

// Class returns the guard set for Class states.
// Returns the empty set for non-Class states.
func (s *State) Class() ByteSet {
	if s.kind == StateClass {
		return s.class
	}
	return ByteSet{}
}

// Next returns both successor slots. Unset slots are InvalidState.
func (s *State) Next() (next1, next2 StateID) {
	return s.next1, s.next2
}

// Admits reports whether the state's guard accepts the byte b.
// Epsilon and match states admit nothing; they consume no input.
func (s *State) Admits(b byte) bool {
	switch s.kind {
	case StateByte:
		return s.b == b
	case StateClass:
		return s.class.Contains(b)
	default:
		return false
	}
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	switch s.kind {
	case StateEpsilon:
		return fmt.Sprintf("State(%d, Epsilon -> [%d, %d])", s.id, s.next1, s.next2)
	case StateByte:
		return fmt.Sprintf("State(%d, Byte %q -> %d)", s.id, s.b, s.next1)
	case StateClass:
		return fmt.Sprintf("State(%d, Class %d bytes -> %d)", s.id, s.class.Len(), s.next1)
	case StateMatch:
		return fmt.Sprintf("State(%d, Match)", s.id)
	default:
		return fmt.Sprintf("State(%d, Unknown)", s.id)
	}
}

// NFA is a compiled Thompson automaton: an arena of states plus the handle
// of the start state. It is immutable once built and safe for concurrent
// readers; the dfa package consumes it during subset construction and
// discards it afterwards.
type NFA struct {
	states []State
	start  StateID
}

// Start returns the starting state ID of the NFA
func (n *NFA) Start() StateID {
	return n.start
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsMatch returns true if the given state is the accepting state
func (n *NFA) IsMatch(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.IsMatch()
	}
	return false
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d}", len(n.states), n.start)
}
