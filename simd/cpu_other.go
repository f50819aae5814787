//go:build !amd64

package simd

// detectFeatures reports no capability bits on non-x86 builds; every
// search runs the scalar path.
func detectFeatures() Feature {
	return 0
}
