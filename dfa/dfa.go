package dfa

import (
	"fmt"

	"github.com/TechieQuokka/kmp-go/nfa"
)

// StateID is a DFA state index.
type StateID uint32

// DeadState marks a transition with no valid continuation. Reaching it
// fails the current match attempt immediately.
const DeadState StateID = 0xFFFFFFFF

// stride is the width of one state's row in the transition table.
const stride = nfa.AlphabetSize

// DFA is a dense deterministic automaton produced by Compile.
//
// The transition table is organized as:
//
//	table[stateID * nfa.AlphabetSize + byte] -> StateID
//
// Each entry is either a successor state or DeadState. State 0 is always
// the start state. A DFA holds no reference to the NFA it was compiled
// from and is immutable, so concurrent readers need no locking.
type DFA struct {
	table   []StateID
	accepts []bool
	count   int
}

// Matches reports whether the automaton accepts text as a whole, walking
// one transition per input byte from state 0. A byte outside the alphabet
// or a dead transition fails immediately. Total time O(len(text)).
func (d *DFA) Matches(text []byte) bool {
	if d.count == 0 {
		return false
	}

	state := StateID(0)
	for _, b := range text {
		if b >= nfa.AlphabetSize {
			return false
		}
		next := d.table[int(state)*stride+int(b)]
		if next == DeadState {
			return false
		}
		state = next
	}
	return d.accepts[state]
}

// Search returns the offset of the first match of the automaton inside
// text, or -1 if there is none. A pattern that accepts the empty string
// matches at offset 0 of any non-empty text; empty text yields no match.
//
// Every offset is attempted independently from state 0, each attempt
// stopping at its first accepting state or dead transition. The aggregate
// worst case is therefore O(n^2), not the O(n) a single pass over a
// start-self-looped automaton would give; the restart behavior and its
// cost profile are deliberate.
func (d *DFA) Search(text []byte) int {
	if d.count == 0 {
		return -1
	}

	startAccepts := d.accepts[0]
	for start := 0; start < len(text); start++ {
		state := StateID(0)

		for i := start; i < len(text); i++ {
			b := text[i]
			if b >= nfa.AlphabetSize {
				break
			}
			next := d.table[int(state)*stride+int(b)]
			if next == DeadState {
				break
			}
			state = next
			if d.accepts[state] {
				return start
			}
		}

		if startAccepts {
			return start
		}
	}

	return -1
}

// StateCount returns the number of DFA states
func (d *DFA) StateCount() int {
	return d.count
}

// String returns a human-readable representation of the DFA
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d, alphabet: %d}", d.count, stride)
}
