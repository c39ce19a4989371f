package spheres3d

import (
	"math"
	"testing"
)

func TestVectorOps(t *testing.T) {
	v := Vector3{1, 2, 3}
	w := Vector3{-1, 0.5, 2}
	s := Real(3)

	if add := v.Add(w); add != (Vector3{0, 2.5, 5}) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	sub := v.Sub(w)
	if sub != (Vector3{2, 1.5, 1}) {
		t.Fatalf("Sub mismatch: %+v", sub)
	}
	if mul := v.Mul(s); mul != (Vector3{3, 6, 9}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	if dot := v.Dot(w); dot != 6 {
		t.Fatalf("Dot mismatch: got %.12g want 6", dot)
	}
	if l := v.Len(); math.Abs(l-math.Sqrt(14)) > 1e-12 {
		t.Fatalf("Len mismatch: %.12g", l)
	}
	if n := v.Norm(); math.Abs(n.Len()-1) > 1e-12 {
		t.Fatalf("Norm not unit: %.12g", n.Len())
	}
	if inv := v.Invert(); inv != (Vector3{-1, -2, -3}) {
		t.Fatalf("Invert mismatch: %+v", inv)
	}
	if d := FromTwoPoints(w, v); d != sub {
		t.Fatalf("FromTwoPoints should be head - tail: %+v", d)
	}
}

func TestNormZeroVector(t *testing.T) {
	n := Vector3{}.Norm()
	if n != (Vector3{}) {
		t.Fatalf("zero vector should normalize to zero, got %+v", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
		t.Fatal("NaN leaked from Norm")
	}
	if !(Vector3{}).IsZero() || (Vector3{0, 1e-300, 0}).IsZero() {
		t.Fatal("IsZero wrong")
	}
}

func TestVectorValueSemantics(t *testing.T) {
	a := Vector3{1, 1, 1}
	b := a.Mul(2).Add(Vector3{1, 0, 0}).Invert()
	if a != (Vector3{1, 1, 1}) {
		t.Fatalf("receiver mutated: %+v", a)
	}
	if b != (Vector3{-3, -2, -2}) {
		t.Fatalf("chain wrong: %+v", b)
	}
}
