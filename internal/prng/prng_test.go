package prng

import "testing"

func TestFloat64Range(t *testing.T) {
	r := New(1)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %f, want [0,1)", v)
		}
	}
}

func TestDeterminism(t *testing.T) {
	r1 := New(42)
	r2 := New(42)
	for i := 0; i < 1000; i++ {
		a, b := r1.Uint64(), r2.Uint64()
		if a != b {
			t.Fatalf("draw %d diverged: %d vs %d", i, a, b)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	r1 := New(1)
	r2 := New(2)
	if r1.Uint64() == r2.Uint64() {
		t.Fatalf("distinct seeds produced the same first draw")
	}
}

func TestIntRangeBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.IntRange(3, 9)
		if v < 3 || v >= 9 {
			t.Fatalf("IntRange(3,9) = %d, out of bounds", v)
		}
	}
}

func TestIntRangePanicsOnEmptyRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for hi <= lo")
		}
	}()
	New(1).IntRange(5, 5)
}
