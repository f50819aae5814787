// Package conv provides checked narrowing conversions for automaton
// handles.
//
// State handles and transition-table indices are stored as uint32; these
// helpers guard the int-to-handle narrowing at allocation sites. Overflow
// means an automaton far beyond any configured ceiling, so it panics
// rather than returning an error.
package conv

import "math"

// IntToUint32 converts n to uint32. Panics if n < 0 or n does not fit.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so the bound also works on 32-bit platforms where
	// int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
