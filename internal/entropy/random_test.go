package entropy

import "testing"

func TestResolveKeepsFixedSeed(t *testing.T) {
	if got := Resolve(42); got != 42 {
		t.Errorf("Resolve(42) = %d, want 42", got)
	}
}

func TestResolveDrawsSeedForZero(t *testing.T) {
	if got := Resolve(0); got == 0 {
		t.Error("Resolve(0) returned 0, want a fresh seed")
	}
}

func TestSeedNonNegative(t *testing.T) {
	for i := 0; i < 100; i++ {
		if s := Seed(); s <= 0 {
			t.Fatalf("Seed() = %d, want > 0", s)
		}
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, seedA := NewRand(7)
	b, seedB := NewRand(7)
	if seedA != 7 || seedB != 7 {
		t.Fatalf("seeds = %d, %d, want 7", seedA, seedB)
	}
	for i := 0; i < 20; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}
