package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/TechieQuokka/kmp-go/internal/conv"
	"github.com/TechieQuokka/kmp-go/internal/sparse"
	"github.com/TechieQuokka/kmp-go/nfa"
)

// Compile turns a Thompson NFA into a dense DFA via subset construction.
//
// Every DFA state corresponds to an epsilon-closed set of NFA handles,
// canonically keyed by the sorted handle list so equivalent sets share one
// state. The worklist loop explores each discovered set across the whole
// alphabet; symbols with no reachable successor keep their dead
// transition. Compilation is total: it either terminates with a complete
// automaton or fails with a *CompileError once the state count passes the
// configured ceiling. No partial DFA is ever returned.
func Compile(n *nfa.NFA, cfg Config) (*DFA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if n == nil || n.States() == 0 {
		return &DFA{}, nil
	}

	c := &compiler{
		nfa:     n,
		limit:   int(cfg.MaxStates),
		indexOf: make(map[string]StateID),
		closure: sparse.NewSet(conv.IntToUint32(n.States())),
	}
	if err := c.run(); err != nil {
		return nil, err
	}

	return &DFA{
		table:   c.table,
		accepts: c.accepts,
		count:   c.count,
	}, nil
}

// compiler holds the working state of one subset construction.
type compiler struct {
	nfa   *nfa.NFA
	limit int

	table   []StateID
	accepts []bool
	count   int

	// worklist holds the epsilon-closed NFA handle set backing each DFA
	// state, in allocation order; entries up to the loop cursor are done.
	worklist [][]uint32
	indexOf  map[string]StateID

	closure *sparse.Set
	stack   []uint32
}

func (c *compiler) run() error {
	seed := c.closed([]uint32{uint32(c.nfa.Start())})
	c.alloc(setKey(seed), seed)

	for processed := 0; processed < len(c.worklist); processed++ {
		if c.count > c.limit {
			return &CompileError{States: c.count, Limit: c.limit, Err: ErrStateLimit}
		}

		current := c.worklist[processed]
		row := processed * stride

		for sym := 0; sym < nfa.AlphabetSize; sym++ {
			next := c.move(current, byte(sym))
			if len(next) == 0 {
				continue
			}

			key := setKey(next)
			id, ok := c.indexOf[key]
			if !ok {
				id = c.alloc(key, next)
			}
			c.table[row+sym] = id
		}
	}

	return nil
}

// move returns the epsilon-closed set of handles reachable from current by
// consuming the byte b, or nil if no guard admits it.
func (c *compiler) move(current []uint32, b byte) []uint32 {
	var targets []uint32
	for _, h := range current {
		s := c.nfa.State(nfa.StateID(h))
		if s == nil || !s.Admits(b) {
			continue
		}
		if next1, _ := s.Next(); next1 != nfa.InvalidState {
			targets = append(targets, uint32(next1))
		}
	}
	if len(targets) == 0 {
		return nil
	}
	return c.closed(targets)
}

// closed returns the epsilon closure of seed as a sorted, deduplicated
// handle slice. Closure follows both successor slots of epsilon states and
// is bounded by the NFA state count.
func (c *compiler) closed(seed []uint32) []uint32 {
	c.closure.Clear()
	c.stack = append(c.stack[:0], seed...)
	for _, h := range seed {
		c.closure.Insert(h)
	}

	for len(c.stack) > 0 {
		h := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]

		s := c.nfa.State(nfa.StateID(h))
		if s == nil || s.Kind() != nfa.StateEpsilon {
			continue
		}
		next1, next2 := s.Next()
		if next1 != nfa.InvalidState && !c.closure.Contains(uint32(next1)) {
			c.closure.Insert(uint32(next1))
			c.stack = append(c.stack, uint32(next1))
		}
		if next2 != nfa.InvalidState && !c.closure.Contains(uint32(next2)) {
			c.closure.Insert(uint32(next2))
			c.stack = append(c.stack, uint32(next2))
		}
	}

	out := append([]uint32(nil), c.closure.Values()...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// alloc creates a DFA state for the canonical set: one dead-initialized
// transition row, the accept flag, and a worklist entry.
func (c *compiler) alloc(key string, set []uint32) StateID {
	id := StateID(conv.IntToUint32(c.count))
	c.indexOf[key] = id
	c.worklist = append(c.worklist, set)
	c.count++

	off := len(c.table)
	c.table = append(c.table, make([]StateID, stride)...)
	for i := off; i < len(c.table); i++ {
		c.table[i] = DeadState
	}

	accept := false
	for _, h := range set {
		if c.nfa.IsMatch(nfa.StateID(h)) {
			accept = true
			break
		}
	}
	c.accepts = append(c.accepts, accept)

	return id
}

// setKey builds the canonical map key for a sorted handle set.
func setKey(set []uint32) string {
	var sb strings.Builder
	sb.Grow(len(set) * 4)
	for _, h := range set {
		sb.WriteString(strconv.FormatUint(uint64(h), 10))
		sb.WriteByte(',')
	}
	return sb.String()
}
