package rng

import "testing"

func TestRandDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("Float64 diverged at draw %d", i)
		}
		if a.Intn(7) != b.Intn(7) {
			t.Fatalf("Intn diverged at draw %d", i)
		}
	}
}

func TestRandSeed(t *testing.T) {
	if got := New(7).Seed(); got != 7 {
		t.Errorf("Seed() = %d, expected 7", got)
	}
}

func TestRandZeroSeedUsesTime(t *testing.T) {
	if New(0).Seed() == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestRandIntnNonPositive(t *testing.T) {
	r := New(1)
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn with n <= 0 should return 0")
	}
}

func TestFixedSequence(t *testing.T) {
	f := &Fixed{Floats: []float64{0.1, 0.9}, Ints: []int{5, -1}}

	if f.Float64() != 0.1 || f.Float64() != 0.9 || f.Float64() != 0.9 {
		t.Error("Fixed should replay floats then repeat the last")
	}
	if f.FloatCalls() != 2 {
		t.Errorf("FloatCalls() = %d, expected 2", f.FloatCalls())
	}
	if got := f.Intn(3); got != 2 {
		t.Errorf("Intn(3) = %d, expected 5 mod 3 = 2", got)
	}
	if got := f.Intn(3); got != 2 {
		t.Errorf("Intn(3) = %d, expected -1 wrapped to 2", got)
	}

	var empty Fixed
	if empty.Float64() != 0 || empty.Intn(4) != 0 {
		t.Error("empty Fixed should return zeros")
	}
}
