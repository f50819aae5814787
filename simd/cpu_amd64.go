//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// detectFeatures reads the processor capability bits. The x/sys/cpu package
// performs the CPUID queries and the XGETBV check confirming the operating
// system preserves the wider vector register state across context switches,
// so a bit reported here means the whole tier is actually usable.
func detectFeatures() Feature {
	var f Feature
	if cpu.X86.HasSSE42 {
		f |= FeatureSSE42
	}
	if cpu.X86.HasAVX2 {
		f |= FeatureAVX2
	}
	if cpu.X86.HasAVX512F {
		f |= FeatureAVX512F
	}
	if cpu.X86.HasAVX512BW {
		f |= FeatureAVX512BW
	}
	return f
}
