package nfa

import (
	"fmt"

	"github.com/TechieQuokka/kmp-go/internal/conv"
)

// PatchSlot names one dangling transition produced during construction: a
// state handle plus which of its two successor slots is still unset.
// Slot 0 is the primary successor, slot 1 the secondary (epsilon only).
type PatchSlot struct {
	State StateID
	Slot  int
}

// Fragment is a partially wired piece of an automaton under construction:
// a start handle plus the ordered list of dangling transitions a later
// construction step patches to a successor. Carrying explicit slots keeps
// the wiring independent of the two-slots-per-state representation.
type Fragment struct {
	Start StateID
	Out   []PatchSlot
}

// Builder constructs NFAs incrementally using a low-level API.
// The parser drives it; tests and the dfa package can also use it directly
// to assemble automata by hand.
type Builder struct {
	states []State
	start  StateID
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
		start:  InvalidState,
	}
}

// nextID returns the handle the next appended state will get.
func (b *Builder) nextID() StateID {
	return StateID(conv.IntToUint32(len(b.states)))
}

// AddEpsilon adds a zero-width state with up to two successors and returns
// its ID. Pass InvalidState for a slot that a later Patch will fill.
func (b *Builder) AddEpsilon(next1, next2 StateID) StateID {
	id := b.nextID()
	b.states = append(b.states, State{
		id:    id,
		kind:  StateEpsilon,
		next1: next1,
		next2: next2,
	})
	return id
}

// AddByte adds a state that consumes the single byte c. Its successor slot
// starts unset.
func (b *Builder) AddByte(c byte) StateID {
	id := b.nextID()
	b.states = append(b.states, State{
		id:    id,
		kind:  StateByte,
		b:     c,
		next1: InvalidState,
		next2: InvalidState,
	})
	return id
}

// AddClass adds a state that consumes one byte admitted by set. Its
// successor slot starts unset.
func (b *Builder) AddClass(set ByteSet) StateID {
	id := b.nextID()
	b.states = append(b.states, State{
		id:    id,
		kind:  StateClass,
		class: set,
		next1: InvalidState,
		next2: InvalidState,
	})
	return id
}

// AddMatch adds the accepting state and returns its ID
func (b *Builder) AddMatch() StateID {
	id := b.nextID()
	b.states = append(b.states, State{
		id:    id,
		kind:  StateMatch,
		next1: InvalidState,
		next2: InvalidState,
	})
	return id
}

// Patch wires the dangling slot at to target. Byte, class and match states
// only have a primary slot; a second successor is an epsilon-only feature.
func (b *Builder) Patch(at PatchSlot, target StateID) error {
	if int(at.State) >= len(b.states) {
		return &BuildError{
			Message: "state ID out of bounds",
			StateID: at.State,
		}
	}

	s := &b.states[at.State]
	switch at.Slot {
	case 0:
		if s.next1 != InvalidState {
			return &BuildError{
				Message: "primary slot already wired",
				StateID: at.State,
			}
		}
		s.next1 = target
	case 1:
		if s.kind != StateEpsilon {
			return &BuildError{
				Message: fmt.Sprintf("state of kind %s has no secondary slot", s.kind),
				StateID: at.State,
			}
		}
		if s.next2 != InvalidState {
			return &BuildError{
				Message: "secondary slot already wired",
				StateID: at.State,
			}
		}
		s.next2 = target
	default:
		return &BuildError{
			Message: fmt.Sprintf("invalid slot %d", at.Slot),
			StateID: at.State,
		}
	}
	return nil
}

// PatchAll wires every dangling slot in out to target
func (b *Builder) PatchAll(out []PatchSlot, target StateID) error {
	for _, at := range out {
		if err := b.Patch(at, target); err != nil {
			return err
		}
	}
	return nil
}

// wire is the unchecked form of PatchAll for slots the parser created
// itself; callers guarantee validity.
func (b *Builder) wire(out []PatchSlot, target StateID) {
	for _, at := range out {
		if at.Slot == 0 {
			b.states[at.State].next1 = target
		} else {
			b.states[at.State].next2 = target
		}
	}
}

// SetStart sets the starting state for the NFA
func (b *Builder) SetStart(start StateID) {
	b.start = start
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks that the NFA is well-formed:
// - Start state is set and valid
// - All state references point to valid states or are unset
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set", StateID: InvalidState}
	}
	if int(b.start) >= len(b.states) {
		return &BuildError{
			Message: "start state out of bounds",
			StateID: b.start,
		}
	}

	for i, s := range b.states {
		id := StateID(i)
		if s.next1 != InvalidState && int(s.next1) >= len(b.states) {
			return &BuildError{
				Message: fmt.Sprintf("invalid next state %d", s.next1),
				StateID: id,
			}
		}
		if s.next2 != InvalidState && int(s.next2) >= len(b.states) {
			return &BuildError{
				Message: fmt.Sprintf("invalid next state %d", s.next2),
				StateID: id,
			}
		}
	}

	return nil
}

// Build finalizes and returns the constructed NFA
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &NFA{
		states: b.states,
		start:  b.start,
	}, nil
}
