package simd

import (
	"encoding/binary"
	"math/bits"
)

// SWAR constants for the zero-byte detection formula
// (v - lo8) & ^v & hi8, which sets the high bit of every byte of v
// that is zero.
const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// broadcast replicates b into every byte of a uint64.
// Example: b=0x42 -> 0x4242424242424242.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// zeroByteMask returns a mask whose high bit is set in every zero byte
// of w. XORing a word against a broadcast needle first turns matching
// bytes into zero bytes, so this doubles as an equality detector.
func zeroByteMask(w uint64) uint64 {
	return (w - lo8) & ^w & hi8
}

// firstByte16 returns the index of the first occurrence of needle in
// haystack, or -1. It reads 16 bytes per stride as two 64-bit words and
// finishes the sub-stride tail one byte at a time. Word loads are
// little-endian, so the lowest set bit of the match mask belongs to the
// earliest matching byte.
func firstByte16(haystack []byte, needle byte) int {
	mask := broadcast(needle)
	i := 0
	for ; i+16 <= len(haystack); i += 16 {
		w0 := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroByteMask(w0 ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
		w1 := binary.LittleEndian.Uint64(haystack[i+8:])
		if z := zeroByteMask(w1 ^ mask); z != 0 {
			return i + 8 + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// firstByte32 is firstByte16 at double the stride: four words per step,
// with tails shorter than 32 bytes handed down to the narrower kernel.
func firstByte32(haystack []byte, needle byte) int {
	mask := broadcast(needle)
	i := 0
	for ; i+32 <= len(haystack); i += 32 {
		for off := 0; off < 32; off += 8 {
			w := binary.LittleEndian.Uint64(haystack[i+off:])
			if z := zeroByteMask(w ^ mask); z != 0 {
				return i + off + bits.TrailingZeros64(z)/8
			}
		}
	}
	if rest := firstByte16(haystack[i:], needle); rest >= 0 {
		return i + rest
	}
	return -1
}

// firstByte64 scans eight words per step, then hands tails down through
// the narrower kernels.
func firstByte64(haystack []byte, needle byte) int {
	mask := broadcast(needle)
	i := 0
	for ; i+64 <= len(haystack); i += 64 {
		for off := 0; off < 64; off += 8 {
			w := binary.LittleEndian.Uint64(haystack[i+off:])
			if z := zeroByteMask(w ^ mask); z != 0 {
				return i + off + bits.TrailingZeros64(z)/8
			}
		}
	}
	if rest := firstByte32(haystack[i:], needle); rest >= 0 {
		return i + rest
	}
	return -1
}

// mismatch32 compares a[:n] against b[:n] in 32-byte strides and returns
// the index of the first differing byte, or n if the prefixes are equal.
// Both slices must hold at least n bytes.
func mismatch32(a, b []byte, n int) int {
	i := 0
	for ; i+32 <= n; i += 32 {
		for off := 0; off < 32; off += 8 {
			wa := binary.LittleEndian.Uint64(a[i+off:])
			wb := binary.LittleEndian.Uint64(b[i+off:])
			if x := wa ^ wb; x != 0 {
				return i + off + bits.TrailingZeros64(x)/8
			}
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// mismatch64 is mismatch32 at double the stride, delegating the final
// sub-stride region to the narrower kernel.
func mismatch64(a, b []byte, n int) int {
	i := 0
	for ; i+64 <= n; i += 64 {
		for off := 0; off < 64; off += 8 {
			wa := binary.LittleEndian.Uint64(a[i+off:])
			wb := binary.LittleEndian.Uint64(b[i+off:])
			if x := wa ^ wb; x != 0 {
				return i + off + bits.TrailingZeros64(x)/8
			}
		}
	}
	if i < n {
		return i + mismatch32(a[i:], b[i:], n-i)
	}
	return n
}
