package marching

import "testing"

func TestCornerMaskBitOrder(t *testing.T) {
	for i := 0; i < 8; i++ {
		var corners [8]float64
		for j := range corners {
			corners[j] = -1
		}
		corners[i] = 1
		if got := CornerMask(corners, 0); got != 1<<uint(i) {
			t.Fatalf("corner %d active: mask = %#02x, want %#02x", i, got, 1<<uint(i))
		}
	}
}

func TestCornerMaskAllStates(t *testing.T) {
	all := [8]float64{1, 1, 1, 1, 1, 1, 1, 1}
	if got := CornerMask(all, 0); got != 0xFF {
		t.Fatalf("all active: mask = %#02x, want 0xFF", got)
	}
	none := [8]float64{-1, -1, -1, -1, -1, -1, -1, -1}
	if got := CornerMask(none, 0); got != 0x00 {
		t.Fatalf("none active: mask = %#02x, want 0x00", got)
	}
}

// TestCornerMaskStrictInequality: a sample exactly at the surface level is
// outside.
func TestCornerMaskStrictInequality(t *testing.T) {
	corners := [8]float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	if got := CornerMask(corners, 0.5); got != 0 {
		t.Fatalf("samples equal to level: mask = %#02x, want 0", got)
	}
	corners[3] = 0.5000001
	if got := CornerMask(corners, 0.5); got != 1<<3 {
		t.Fatalf("one sample just above level: mask = %#02x, want %#02x", got, 1<<3)
	}
}
