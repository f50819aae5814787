package conv

import (
	"math"
	"testing"
)

func TestIntToUint32(t *testing.T) {
	for _, n := range []int{0, 1, 255, 1 << 20, math.MaxInt32} {
		if got := IntToUint32(n); got != uint32(n) {
			t.Errorf("IntToUint32(%d) = %d", n, got)
		}
	}
}

func TestIntToUint32Negative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("IntToUint32(-1) did not panic")
		}
	}()
	IntToUint32(-1)
}

func TestIntToUint32Overflow(t *testing.T) {
	if uint64(math.MaxInt) <= math.MaxUint32 {
		t.Skip("int cannot exceed uint32 on this platform")
	}
	defer func() {
		if recover() == nil {
			t.Error("IntToUint32 above MaxUint32 did not panic")
		}
	}()
	big := uint64(math.MaxUint32) + 1
	IntToUint32(int(big))
}
