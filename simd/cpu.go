package simd

import "sync"

// Feature is a bitmask of processor capabilities relevant to the scan
// kernels. The zero value means no vector support at all.
type Feature uint32

// Individual capability bits. AVX-512 usability requires both the
// foundation and the byte/word instruction subsets, so it is represented
// by two bits that must be present together.
const (
	FeatureSSE42 Feature = 1 << iota
	FeatureAVX2
	FeatureAVX512F
	FeatureAVX512BW
)

// Has reports whether every bit in want is present in f.
func (f Feature) Has(want Feature) bool {
	return f&want == want
}

// Level identifies the widest scan tier a processor can run. Levels are
// ordered: a higher level implies support for every lower one.
type Level uint8

const (
	// LevelScalar runs the plain two-pointer scan with no wide strides.
	LevelScalar Level = iota
	// LevelSSE42 scans 16 bytes per stride.
	LevelSSE42
	// LevelAVX2 scans 32 bytes per stride.
	LevelAVX2
	// LevelAVX512 scans 64 bytes per stride.
	LevelAVX512
)

// String returns the conventional lowercase tier name.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE42:
		return "sse42"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// Detection runs once per process. The cached values are immutable
// afterwards, so concurrent readers need no further synchronization.
var (
	features = sync.OnceValue(detectFeatures)
	level    = sync.OnceValue(func() Level {
		f := features()
		switch {
		case f.Has(FeatureAVX512F | FeatureAVX512BW):
			return LevelAVX512
		case f.Has(FeatureAVX2):
			return LevelAVX2
		case f.Has(FeatureSSE42):
			return LevelSSE42
		default:
			return LevelScalar
		}
	})
)

// Features returns the capability bits detected on this processor.
func Features() Feature {
	return features()
}

// BestLevel returns the widest tier this processor supports. The result
// is computed once and cached for the lifetime of the process.
func BestLevel() Level {
	return level()
}
