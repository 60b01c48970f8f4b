package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformDirection(Vec3{0, 0, -1})
	if got != (Vec3{0, 0, -1}) {
		t.Errorf("TransformDirection: got %v, want (0, 0, -1)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(math.Pi / 2)
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if !near(result.X, 0) || !near(result.Y, 0) || !near(result.Z, -1) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateX90(t *testing.T) {
	result := RotateX(math.Pi / 2).TransformPoint(Vec3{0, 1, 0})
	if !near(result.X, 0) || !near(result.Y, 0) || !near(result.Z, 1) {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", result)
	}
}

func TestPerspectiveMatchesMathgl(t *testing.T) {
	got := Perspective(Radians(35), 1.6, 1, 50)
	want := mgl64.Perspective(mgl64.DegToRad(35), 1.6, 1, 50)
	assertMatEqual(t, "Perspective", got, [16]float64(want))

	if got[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", got[11])
	}
	if got[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", got[15])
	}
}

func TestOrthoMatchesMathgl(t *testing.T) {
	got := Ortho(-16, 16, -10, 10, 0, 100)
	want := mgl64.Ortho(-16, 16, -10, 10, 0, 100)
	assertMatEqual(t, "Ortho", got, [16]float64(want))
}

func TestLookAtMatchesMathgl(t *testing.T) {
	got, err := LookAt(Vec3{3, 1, -5}, Vec3{0, 0, -2.5}, Vec3{0, 1, 0})
	if err != nil {
		t.Fatalf("LookAt: %v", err)
	}
	want := mgl64.LookAtV(mgl64.Vec3{3, 1, -5}, mgl64.Vec3{0, 0, -2.5}, mgl64.Vec3{0, 1, 0})
	assertMatEqual(t, "LookAt", got, [16]float64(want))
}

func TestLookAtDegenerate(t *testing.T) {
	if _, err := LookAt(Vec3{1, 1, 1}, Vec3{1, 1, 1}, Vec3{0, 1, 0}); err == nil {
		t.Error("expected error when eye equals center")
	}
	if _, err := LookAt(Vec3{0, 0, 0}, Vec3{0, 5, 0}, Vec3{0, 1, 0}); err == nil {
		t.Error("expected error when up is parallel to the view direction")
	}
}

func TestRotationChainMatchesMathgl(t *testing.T) {
	got := Translate(0, 0, -5).
		Mul(RotateX(Radians(30))).
		Mul(RotateY(Radians(47))).
		Mul(Translate(0, 0, 2.5))
	want := mgl64.Translate3D(0, 0, -5).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(30))).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(47))).
		Mul4(mgl64.Translate3D(0, 0, 2.5))
	assertMatEqual(t, "orbit chain", got, [16]float64(want))
}

func TestBasisColumns(t *testing.T) {
	x := Vec3{0, 0, -1}
	y := Vec3{1, 0, 0}
	z := Vec3{0, -1, 0}
	m := Basis(x, y, z)

	if m.Column(0) != x || m.Column(1) != y || m.Column(2) != z {
		t.Errorf("Basis columns: got %v %v %v", m.Column(0), m.Column(1), m.Column(2))
	}
	if m[15] != 1 {
		t.Errorf("Basis [15] should be 1, got %f", m[15])
	}
	if got := m.TransformDirection(Vec3{1, 0, 0}); got != x {
		t.Errorf("Basis maps +X to %v, want %v", got, x)
	}
}

func TestRowIsTransposedColumn(t *testing.T) {
	m := RotateX(Radians(30)).Mul(RotateY(Radians(10)))
	for i := 0; i < 3; i++ {
		r := m.Row(i)
		if r.X != m[i] || r.Y != m[4+i] || r.Z != m[8+i] {
			t.Errorf("Row(%d) = %v does not match matrix", i, r)
		}
	}
}

func TestFloat32(t *testing.T) {
	m := Translate(1.5, -2.25, 3)
	f := m.Float32()
	if f[12] != 1.5 || f[13] != -2.25 || f[14] != 3 || f[15] != 1 {
		t.Errorf("Float32 translation: got %v", f[12:])
	}
}

func assertMatEqual(t *testing.T, name string, got Mat4, want [16]float64) {
	t.Helper()
	for i := range got {
		if !near(got[i], want[i]) {
			t.Errorf("%s element %d: got %f, want %f", name, i, got[i], want[i])
		}
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
