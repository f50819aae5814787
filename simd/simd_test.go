package simd

import (
	"bytes"
	"fmt"
	"math/rand"
	"sync"
	"testing"
)

// prefixTable builds the KMP prefix-function table the tier kernels
// consume. The exported builder lives in the root package, which this
// package cannot import.
func prefixTable(pattern []byte) []int {
	m := len(pattern)
	if m == 0 {
		return nil
	}
	failure := make([]int, m)
	k := 0
	for i := 1; i < m; i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = failure[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		failure[i] = k
	}
	return failure
}

// kernels lists every search kernel under its tier name. All kernels are
// portable Go, so every tier is exercised regardless of the host CPU.
var kernels = []struct {
	name string
	fn   func(text, pattern []byte, failure []int) int
}{
	{"scalar", indexScalar},
	{"sse42", indexSSE42},
	{"avx2", indexAVX2},
	{"avx512", indexAVX512},
}

// TestIndexBasic tests core Index semantics against the standard library.
func TestIndexBasic(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    int
	}{
		// Empty inputs
		{"empty text and pattern", "", "", 0},
		{"empty pattern", "hello", "", 0},
		{"empty text", "", "a", -1},

		// Basic positions
		{"match at start", "hello world", "hello", 0},
		{"match at middle", "hello world", "lo wo", 3},
		{"match at end", "hello world", "world", 6},
		{"single byte", "hello", "e", 1},
		{"whole text", "hello", "hello", 0},
		{"not found", "hello", "xyz", -1},
		{"pattern longer than text", "hi", "hello", -1},

		// Self-overlapping patterns
		{"overlapping prefix", "aaab", "aab", 1},
		{"periodic pattern", "abababc", "ababc", 2},
		{"classic kmp example", "ABABDABACDABABCABAB", "ABABCABAB", 10},
		{"repeated byte", "aaaa", "aa", 0},

		// First byte repeats but full match is late
		{"late match", "aaaaaaaaab", "ab", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := []byte(tt.text)
			pattern := []byte(tt.pattern)
			got := Index(text, pattern, prefixTable(pattern))
			if got != tt.want {
				t.Errorf("Index(%q, %q) = %d, want %d", tt.text, tt.pattern, got, tt.want)
			}

			// Cross-verify with stdlib
			stdGot := bytes.Index(text, pattern)
			if got != stdGot {
				t.Errorf("Index(%q, %q) = %d, stdlib = %d", tt.text, tt.pattern, got, stdGot)
			}
		})
	}
}

// TestIndexTiers runs every kernel on the same inputs and checks each
// against the standard library. The tiers must be observably identical.
func TestIndexTiers(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
	}{
		{"short match", "hello world", "world"},
		{"short miss", "hello world", "worlds"},
		{"one byte", "abcdefgh", "h"},
		{"pattern equals text", "abcdefgh", "abcdefgh"},
		{"pattern longer", "abc", "abcd"},
		{"periodic", "abababababababab", "abab"},
		{"partial then match", "aabaabaaab", "aaab"},
		{"span word boundary", "xxxxxxxabcxxxxxxx", "abc"},
		{"match at 15", "xxxxxxxxxxxxxxxab", "ab"},
		{"match at 16", "xxxxxxxxxxxxxxxxab", "ab"},
		{"match at 31", "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxab", "ab"},
		{"match at 63", "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxab", "ab"},
	}

	for _, tt := range tests {
		text := []byte(tt.text)
		pattern := []byte(tt.pattern)
		failure := prefixTable(pattern)
		want := bytes.Index(text, pattern)

		for _, k := range kernels {
			t.Run(tt.name+"/"+k.name, func(t *testing.T) {
				if got := k.fn(text, pattern, failure); got != want {
					t.Errorf("%s(%q, %q) = %d, want %d", k.name, tt.text, tt.pattern, got, want)
				}
			})
		}
	}
}

// TestIndexSizes tests text sizes around stride and page boundaries.
func TestIndexSizes(t *testing.T) {
	sizes := []int{
		1, 2, 3, 4, 5, 6, 7, 8,
		15, 16, 17,
		31, 32, 33,
		63, 64, 65, // scalar/tier threshold
		127, 128, 129,
		255, 256, 257,
		1023, 1024, 1025,
		4095, 4096, 4097,
		16383, 16384,
	}

	pattern := []byte("ab")
	failure := prefixTable(pattern)

	for _, size := range sizes {
		if size < len(pattern) {
			continue
		}

		t.Run(fmt.Sprintf("size_%d_at_end", size), func(t *testing.T) {
			text := bytes.Repeat([]byte{'x'}, size)
			copy(text[size-len(pattern):], pattern)
			checkAllKernels(t, text, pattern, failure)
		})

		t.Run(fmt.Sprintf("size_%d_at_start", size), func(t *testing.T) {
			text := bytes.Repeat([]byte{'x'}, size)
			copy(text, pattern)
			checkAllKernels(t, text, pattern, failure)
		})

		t.Run(fmt.Sprintf("size_%d_not_found", size), func(t *testing.T) {
			text := bytes.Repeat([]byte{'x'}, size)
			checkAllKernels(t, text, pattern, failure)
		})
	}
}

// checkAllKernels runs Index plus every kernel and compares each result
// to bytes.Index.
func checkAllKernels(t *testing.T, text, pattern []byte, failure []int) {
	t.Helper()
	want := bytes.Index(text, pattern)

	if got := Index(text, pattern, failure); got != want {
		t.Errorf("Index(len=%d, %q) = %d, want %d", len(text), pattern, got, want)
	}
	for _, k := range kernels {
		if got := k.fn(text, pattern, failure); got != want {
			t.Errorf("%s(len=%d, %q) = %d, want %d", k.name, len(text), pattern, got, want)
		}
	}
}

// TestIndexAlignment tests matches at every small offset so stride
// boundaries inside the kernels are crossed at each phase.
func TestIndexAlignment(t *testing.T) {
	pattern := []byte("needle")
	failure := prefixTable(pattern)

	for offset := 0; offset <= 80; offset++ {
		t.Run(fmt.Sprintf("offset_%d", offset), func(t *testing.T) {
			text := bytes.Repeat([]byte{'x'}, 160)
			copy(text[offset:], pattern)
			checkAllKernels(t, text, pattern, failure)
		})
	}
}

// TestIndexAllByteValues tests patterns over the full byte range,
// including values with the high bit set.
func TestIndexAllByteValues(t *testing.T) {
	text := make([]byte, 256)
	for i := range text {
		text[i] = byte(i)
	}

	for i := 0; i < 256; i++ {
		pattern := []byte{byte(i)}
		failure := prefixTable(pattern)
		want := i

		for _, k := range kernels {
			if got := k.fn(text, pattern, failure); got != want {
				t.Errorf("%s: byte %d found at %d, want %d", k.name, i, got, want)
			}
		}
		if got := Index(text, pattern, failure); got != want {
			t.Errorf("Index: byte %d found at %d, want %d", i, got, want)
		}
	}
}

// TestIndexSkipAdvance tests inputs engineered to take the partial-match
// skip path: long shared prefixes between candidates and the pattern.
func TestIndexSkipAdvance(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
	}{
		{"partial repeats", "aaacaaacaaacaaab" + "aaab", "aaab"},
		{"bordered pattern", "abcabcabdabcabcabcabd", "abcabcabd"},
		{"no border", "abcdabcdabceabcdabcf", "abcf"},
		{"all same byte miss", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "aaaab"},
		{"all same byte hit", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaab", "aaaab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := []byte(tt.pattern)
			checkAllKernels(t, []byte(tt.text), pattern, prefixTable(pattern))
		})
	}
}

// TestIndexRandomized cross-checks all kernels against the standard
// library on pseudorandom low-alphabet text, where partial matches and
// overlaps are dense.
func TestIndexRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	text := make([]byte, 8192)
	for i := range text {
		text[i] = byte('a' + rng.Intn(3))
	}

	for trial := 0; trial < 200; trial++ {
		m := 1 + rng.Intn(12)
		var pattern []byte
		if trial%4 == 0 {
			// Absent pattern: legal alphabet plus a byte the text never has.
			pattern = append(bytes.Repeat([]byte{'a'}, m), 'z')
		} else {
			start := rng.Intn(len(text) - m)
			pattern = append([]byte(nil), text[start:start+m]...)
		}
		failure := prefixTable(pattern)
		want := bytes.Index(text, pattern)

		for _, k := range kernels {
			if got := k.fn(text, pattern, failure); got != want {
				t.Fatalf("trial %d: %s(%q) = %d, want %d", trial, k.name, pattern, got, want)
			}
		}
		if got := Index(text, pattern, failure); got != want {
			t.Fatalf("trial %d: Index(%q) = %d, want %d", trial, pattern, got, want)
		}
	}
}

// TestFirstByteKernels tests the first-byte scan kernels against
// bytes.IndexByte across stride-straddling sizes.
func TestFirstByteKernels(t *testing.T) {
	scans := []struct {
		name string
		fn   func(haystack []byte, needle byte) int
	}{
		{"firstByte16", firstByte16},
		{"firstByte32", firstByte32},
		{"firstByte64", firstByte64},
	}

	sizes := []int{0, 1, 2, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 127, 128, 129, 255, 256, 1024}

	for _, s := range scans {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("%s/size_%d", s.name, size), func(t *testing.T) {
				// Needle at each position, plus absent.
				for pos := 0; pos < size; pos++ {
					haystack := bytes.Repeat([]byte{'x'}, size)
					haystack[pos] = 'q'
					want := bytes.IndexByte(haystack, 'q')
					if got := s.fn(haystack, 'q'); got != want {
						t.Fatalf("%s(size=%d, pos=%d) = %d, want %d", s.name, size, pos, got, want)
					}
				}
				haystack := bytes.Repeat([]byte{'x'}, size)
				if got := s.fn(haystack, 'q'); got != -1 {
					t.Errorf("%s(size=%d, absent) = %d, want -1", s.name, size, got)
				}
			})
		}
	}
}

// TestFirstByteHighBit tests scan kernels on byte values where the SWAR
// zero-byte formula is easiest to get wrong.
func TestFirstByteHighBit(t *testing.T) {
	needles := []byte{0x00, 0x01, 0x7F, 0x80, 0x81, 0xFE, 0xFF}

	for _, needle := range needles {
		t.Run(fmt.Sprintf("byte_0x%02X", needle), func(t *testing.T) {
			haystack := bytes.Repeat([]byte{needle ^ 0x55}, 100)
			haystack[73] = needle
			want := bytes.IndexByte(haystack, needle)

			if got := firstByte16(haystack, needle); got != want {
				t.Errorf("firstByte16 = %d, want %d", got, want)
			}
			if got := firstByte32(haystack, needle); got != want {
				t.Errorf("firstByte32 = %d, want %d", got, want)
			}
			if got := firstByte64(haystack, needle); got != want {
				t.Errorf("firstByte64 = %d, want %d", got, want)
			}
		})
	}
}

// TestMismatchKernels tests the prefix-compare kernels: first differing
// index, or n when the prefixes are equal.
func TestMismatchKernels(t *testing.T) {
	compares := []struct {
		name string
		fn   func(a, b []byte, n int) int
	}{
		{"mismatch32", mismatch32},
		{"mismatch64", mismatch64},
	}

	lengths := []int{0, 1, 2, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 127, 128, 129, 200}

	for _, c := range compares {
		for _, n := range lengths {
			t.Run(fmt.Sprintf("%s/n_%d", c.name, n), func(t *testing.T) {
				a := bytes.Repeat([]byte{'a'}, n)
				b := bytes.Repeat([]byte{'a'}, n)

				if got := c.fn(a, b, n); got != n {
					t.Errorf("%s(equal, n=%d) = %d, want %d", c.name, n, got, n)
				}

				// Flip each position in turn.
				for pos := 0; pos < n; pos++ {
					b[pos] = 'b'
					if got := c.fn(a, b, n); got != pos {
						t.Fatalf("%s(diff at %d, n=%d) = %d, want %d", c.name, pos, n, got, pos)
					}
					b[pos] = 'a'
				}
			})
		}
	}
}

// TestMismatchPartialWindow tests that bytes beyond n never influence the
// result even when the slices keep differing there.
func TestMismatchPartialWindow(t *testing.T) {
	a := bytes.Repeat([]byte{'a'}, 96)
	b := bytes.Repeat([]byte{'a'}, 96)
	copy(b[40:], bytes.Repeat([]byte{'z'}, 56))

	if got := mismatch32(a, b, 40); got != 40 {
		t.Errorf("mismatch32(n=40) = %d, want 40", got)
	}
	if got := mismatch64(a, b, 40); got != 40 {
		t.Errorf("mismatch64(n=40) = %d, want 40", got)
	}
}

// TestZeroByteMask tests the SWAR detector on words with zero bytes at
// each lane.
func TestZeroByteMask(t *testing.T) {
	if zeroByteMask(0xFFFFFFFFFFFFFFFF) != 0 {
		t.Error("zeroByteMask(all ones) != 0")
	}
	for lane := 0; lane < 8; lane++ {
		w := ^uint64(0) &^ (0xFF << (8 * lane))
		z := zeroByteMask(w)
		if z == 0 {
			t.Fatalf("zeroByteMask(lane %d zero) = 0, want nonzero", lane)
		}
		if got := trailingZeroLane(z); got != lane {
			t.Errorf("zero byte reported in lane %d, want %d", got, lane)
		}
	}
}

func trailingZeroLane(z uint64) int {
	lane := 0
	for z&0x80 == 0 {
		z >>= 8
		lane++
	}
	return lane
}

// TestBroadcast tests the needle replication helper.
func TestBroadcast(t *testing.T) {
	tests := []struct {
		b    byte
		want uint64
	}{
		{0x00, 0x0000000000000000},
		{0x01, 0x0101010101010101},
		{0x42, 0x4242424242424242},
		{0xFF, 0xFFFFFFFFFFFFFFFF},
	}
	for _, tt := range tests {
		if got := broadcast(tt.b); got != tt.want {
			t.Errorf("broadcast(0x%02X) = 0x%016X, want 0x%016X", tt.b, got, tt.want)
		}
	}
}

// TestFeatureHas tests the bitmask query.
func TestFeatureHas(t *testing.T) {
	tests := []struct {
		name string
		f    Feature
		want Feature
		has  bool
	}{
		{"empty has nothing", 0, FeatureSSE42, false},
		{"empty has empty", 0, 0, true},
		{"single bit", FeatureAVX2, FeatureAVX2, true},
		{"missing bit", FeatureAVX2, FeatureSSE42, false},
		{"requires both, has both", FeatureAVX512F | FeatureAVX512BW, FeatureAVX512F | FeatureAVX512BW, true},
		{"requires both, has one", FeatureAVX512F, FeatureAVX512F | FeatureAVX512BW, false},
		{"superset", FeatureSSE42 | FeatureAVX2 | FeatureAVX512F, FeatureAVX2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Has(tt.want); got != tt.has {
				t.Errorf("Feature(%b).Has(%b) = %v, want %v", tt.f, tt.want, got, tt.has)
			}
		})
	}
}

// TestLevelString tests tier names.
func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelScalar, "scalar"},
		{LevelSSE42, "sse42"},
		{LevelAVX2, "avx2"},
		{LevelAVX512, "avx512"},
		{Level(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

// TestBestLevelMatchesFeatures tests that the cached tier selection is
// exactly what the detected feature bits imply.
func TestBestLevelMatchesFeatures(t *testing.T) {
	f := Features()

	var want Level
	switch {
	case f.Has(FeatureAVX512F | FeatureAVX512BW):
		want = LevelAVX512
	case f.Has(FeatureAVX2):
		want = LevelAVX2
	case f.Has(FeatureSSE42):
		want = LevelSSE42
	default:
		want = LevelScalar
	}

	if got := BestLevel(); got != want {
		t.Errorf("BestLevel() = %v, features %b imply %v", got, f, want)
	}
}

// TestDetectionStable tests that repeated and concurrent reads of the
// cached detection agree.
func TestDetectionStable(t *testing.T) {
	wantLevel := BestLevel()
	wantFeatures := Features()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := BestLevel(); got != wantLevel {
					t.Errorf("BestLevel() = %v, want %v", got, wantLevel)
					return
				}
				if got := Features(); got != wantFeatures {
					t.Errorf("Features() = %b, want %b", got, wantFeatures)
					return
				}
			}
		}()
	}
	wg.Wait()
}
