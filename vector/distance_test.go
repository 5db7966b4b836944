package vector

import (
	"math"
	"testing"
)

func TestSquaredL2(t *testing.T) {
	a := []float32{0, 0}
	b := []float32{3, 4}

	d, err := SquaredL2(a, b)
	if err != nil {
		t.Fatalf("SquaredL2 failed: %v", err)
	}
	if d != 25 {
		t.Fatalf("SquaredL2(0,0)-(3,4) = %v, want 25", d)
	}

	if _, err := SquaredL2(a, []float32{1}); err == nil {
		t.Fatalf("expected dimension mismatch error")
	}
}

func TestL2Distance(t *testing.T) {
	a := []float32{0, 0}
	b := []float32{3, 4}

	d, err := L2Distance(a, b)
	if err != nil {
		t.Fatalf("L2Distance failed: %v", err)
	}
	if math.Abs(d-5) > 1e-6 {
		t.Fatalf("L2Distance(0,0)-(3,4) = %v, want 5", d)
	}

	if _, err := L2Distance(a, []float32{1, 2, 3}); err == nil {
		t.Fatalf("expected dimension mismatch error")
	}
}

func TestDistanceFunction(t *testing.T) {
	for _, name := range []string{"", "squared_l2", "l2", "euclidean"} {
		if _, err := ParseDistanceFunction(name); err != nil {
			t.Fatalf("ParseDistanceFunction(%q) failed: %v", name, err)
		}
	}
	if _, err := ParseDistanceFunction("cosine"); err == nil {
		t.Fatalf("ParseDistanceFunction(cosine) expected error")
	}
	if d, _ := ParseDistanceFunction("euclidean"); d != DistanceFunctionL2 {
		t.Fatalf("euclidean resolved to %q, want %q", d, DistanceFunctionL2)
	}
}
