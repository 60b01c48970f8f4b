package math

import (
	"errors"
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3CrossAntiCommutes(t *testing.T) {
	pairs := [][2]Vec3{
		{{1, 2, 3}, {-4, 0.5, 7}},
		{{0.1, -0.2, 9}, {3, 3, 3}},
		{{-1e3, 2e-3, 5}, {0, 0, -1}},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if a.Cross(b) != b.Cross(a).Neg() {
			t.Errorf("cross(%v, %v) = %v, -cross(b, a) = %v", a, b, a.Cross(b), b.Cross(a).Neg())
		}
		if a.Dot(b) != b.Dot(a) {
			t.Errorf("dot(%v, %v) not symmetric", a, b)
		}
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	for _, v := range []Vec3{{3, 4, 0}, {0, 0, -1}, {1e-6, 2e-6, -3e-6}, {1e6, -1e6, 5}} {
		n, err := v.Normalize()
		if err != nil {
			t.Fatalf("Normalize(%v): %v", v, err)
		}
		if l := n.Length(); math.Abs(l-1) > 1e-12 {
			t.Errorf("Normalize(%v).Length() = %v, want ~1", v, l)
		}
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	n, err := Vec3{}.Normalize()
	if !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("expected ErrDegenerateVector, got %v", err)
	}
	if !n.IsFinite() {
		t.Errorf("Normalize(zero) returned non-finite %v", n)
	}
}

func TestVec3NormalizeNonFinite(t *testing.T) {
	_, err := Vec3{math.Inf(1), 0, 0}.Normalize()
	if !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("expected ErrDegenerateVector for infinite input, got %v", err)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, -1}
	b := Vec3{1, 0, -1}
	if got := a.Lerp(b, 0.5); got != (Vec3{0.5, 0, -1}) {
		t.Errorf("Lerp = %v, want (0.5, 0, -1)", got)
	}
}
