// Package sparse provides a sparse set over dense integer handles.
//
// A sparse set supports O(1) insertion, membership testing and clearing
// while keeping a dense slice of members for iteration. Subset
// construction uses it as the epsilon-closure scratch set over NFA state
// handles: clear between input symbols, insert during traversal, then read
// the members back out of the dense slice.
package sparse

// Set is a set of uint32 handles drawn from a fixed universe [0, capacity).
// The sparse array maps a handle to its position in the dense array; a
// handle is a member iff that position round-trips. Neither array is ever
// zeroed wholesale, which is what makes Clear O(1).
type Set struct {
	sparse []uint32 // Maps handle -> index in dense
	dense  []uint32 // Members in insertion order
}

// NewSet creates a sparse set able to hold handles in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a handle to the set. Inserting a member again is a no-op.
// Handles at or above the set's capacity panic.
func (s *Set) Insert(handle uint32) {
	if s.Contains(handle) {
		return
	}
	s.sparse[handle] = uint32(len(s.dense))
	s.dense = append(s.dense, handle)
}

// Contains reports whether the handle is a member.
// Handles outside the capacity are never members.
func (s *Set) Contains(handle uint32) bool {
	if handle >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[handle]
	return idx < uint32(len(s.dense)) && s.dense[idx] == handle
}

// Clear removes all members in O(1) time
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty returns true if the set has no members
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the members in insertion order.
// The returned slice aliases the set and is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
