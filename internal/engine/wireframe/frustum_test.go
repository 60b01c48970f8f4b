package wireframe

import (
	"errors"
	gomath "math"
	"reflect"
	"testing"

	"github.com/Faultbox/frustumviz/pkg/math"
)

var demoFrustum = FrustumSpec{Left: -0.5, Right: 0.5, Bottom: -0.5, Top: 0.5, Near: 1, Far: 4}

func TestBuildFrustumVertices(t *testing.T) {
	f, err := BuildFrustum(demoFrustum)
	if err != nil {
		t.Fatalf("BuildFrustum: %v", err)
	}
	if len(f.Positions) != 9 {
		t.Fatalf("expected 9 vertices, got %d", len(f.Positions))
	}

	want := map[int]math.Vec3{
		Apex:            {X: 0, Y: 0, Z: 0},
		NearBottomLeft:  {X: -0.5, Y: -0.5, Z: -1},
		NearBottomRight: {X: 0.5, Y: -0.5, Z: -1},
		NearTopRight:    {X: 0.5, Y: 0.5, Z: -1},
		NearTopLeft:     {X: -0.5, Y: 0.5, Z: -1},
		FarBottomLeft:   {X: -2, Y: -2, Z: -4},
		FarBottomRight:  {X: 2, Y: -2, Z: -4},
		FarTopRight:     {X: 2, Y: 2, Z: -4},
		FarTopLeft:      {X: -2, Y: 2, Z: -4},
	}
	for i, w := range want {
		if f.Positions[i] != w {
			t.Errorf("vertex %d = %v, want %v", i, f.Positions[i], w)
		}
	}
}

func TestBuildFrustumEdges(t *testing.T) {
	f, err := BuildFrustum(demoFrustum)
	if err != nil {
		t.Fatalf("BuildFrustum: %v", err)
	}
	if f.EdgeCount() != 16 {
		t.Errorf("expected 16 edges, got %d", f.EdgeCount())
	}
	if len(f.Tip) != 4 {
		t.Errorf("expected 4 tip edges, got %d", len(f.Tip))
	}
	if len(f.Volume) != 12 {
		t.Errorf("expected 12 volume edges, got %d", len(f.Volume))
	}
	for _, e := range f.Tip {
		if e[0] != Apex {
			t.Errorf("tip edge %v does not start at the apex", e)
		}
	}
	for _, e := range f.Volume {
		if e[0] == Apex || e[1] == Apex {
			t.Errorf("volume edge %v touches the apex", e)
		}
	}

	// every corner appears in exactly three volume edges
	degree := make(map[uint16]int)
	for _, e := range f.Volume {
		degree[e[0]]++
		degree[e[1]]++
	}
	for v := uint16(NearBottomLeft); v <= FarTopLeft; v++ {
		if degree[v] != 3 {
			t.Errorf("corner %d has volume degree %d, want 3", v, degree[v])
		}
	}
}

func TestBuildFrustumDrawStates(t *testing.T) {
	f, err := BuildFrustum(demoFrustum)
	if err != nil {
		t.Fatalf("BuildFrustum: %v", err)
	}
	if !f.TipState.Stipple.Enabled {
		t.Error("tip edges should be stippled")
	}
	if f.TipState.Stipple.Pattern != 0xF3CF || f.TipState.Stipple.Factor != 2 {
		t.Errorf("tip stipple = %+v", f.TipState.Stipple)
	}
	if f.VolumeState.Stipple.Enabled {
		t.Error("volume edges should be solid")
	}
	if f.VolumeState.Width <= f.TipState.Width {
		t.Errorf("volume width %v should exceed tip width %v", f.VolumeState.Width, f.TipState.Width)
	}

	batches := f.Batches()
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	if batches[0].State != f.TipState || len(batches[0].Mesh.Edges) != 4 {
		t.Errorf("first batch should be the 4 dashed tip edges, got %+v", batches[0].State)
	}
	if batches[1].State != f.VolumeState || len(batches[1].Mesh.Edges) != 12 {
		t.Errorf("second batch should be the 12 solid volume edges, got %+v", batches[1].State)
	}
}

func TestBuildFrustumOffAxis(t *testing.T) {
	spec := FrustumSpec{Left: -0.2, Right: 0.7, Bottom: -0.1, Top: 0.4, Near: 0.5, Far: 3}
	f, err := BuildFrustum(spec)
	if err != nil {
		t.Fatalf("BuildFrustum: %v", err)
	}
	// each far corner lies on the ray from the apex through its near corner
	for i := NearBottomLeft; i <= NearTopLeft; i++ {
		near := f.Positions[i]
		far := f.Positions[i+4]
		k := far.Z / near.Z
		if gomath.Abs(k-6) > 1e-12 {
			t.Errorf("corner %d depth ratio %v, want 6", i, k)
		}
		if gomath.Abs(far.X-near.X*k) > 1e-12 || gomath.Abs(far.Y-near.Y*k) > 1e-12 {
			t.Errorf("far corner %v is not near corner %v scaled by %v", far, near, k)
		}
	}
}

func TestBuildFrustumInvalid(t *testing.T) {
	tests := []struct {
		name string
		spec FrustumSpec
	}{
		{"zero near", FrustumSpec{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 0, Far: 4}},
		{"negative near", FrustumSpec{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: -1, Far: 4}},
		{"far equals near", FrustumSpec{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 2, Far: 2}},
		{"far before near", FrustumSpec{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 3, Far: 1}},
		{"nan extent", FrustumSpec{Left: gomath.NaN(), Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildFrustum(tt.spec)
			if !errors.Is(err, ErrInvalidFrustum) {
				t.Errorf("expected ErrInvalidFrustum, got %v", err)
			}
		})
	}
}

func TestBuildFrustumDeterministic(t *testing.T) {
	f1, _ := BuildFrustum(demoFrustum)
	f2, _ := BuildFrustum(demoFrustum)
	if !reflect.DeepEqual(f1, f2) {
		t.Error("identical specs produced different frusta")
	}
}

func TestNearCenter(t *testing.T) {
	spec := FrustumSpec{Left: -1, Right: 3, Bottom: 0, Top: 2, Near: 1.5, Far: 9}
	if got := spec.NearCenter(); got != (math.Vec3{X: 1, Y: 1, Z: -1.5}) {
		t.Errorf("NearCenter = %v, want (1, 1, -1.5)", got)
	}
}

func TestMeshAppend(t *testing.T) {
	var m Mesh
	if err := m.Append(Mesh{Positions: []math.Vec3{{}, {X: 1}}, Edges: []Edge{{0, 1}}}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := m.Append(Mesh{Positions: []math.Vec3{{Y: 1}, {Y: 2}}, Edges: []Edge{{1, 0}}}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if m.VertexCount() != 4 || m.EdgeCount() != 2 {
		t.Fatalf("got %d vertices %d edges, want 4 and 2", m.VertexCount(), m.EdgeCount())
	}
	if m.Edges[1] != (Edge{3, 2}) {
		t.Errorf("second edge = %v, want rebased {3 2}", m.Edges[1])
	}
}

func TestMeshAppendIndexLimit(t *testing.T) {
	full := Mesh{Positions: make([]math.Vec3, MaxVertices-1)}
	if err := full.Append(Mesh{Positions: []math.Vec3{{X: 1}}, Edges: []Edge{{0, 0}}}); err != nil {
		t.Fatalf("filling to MaxVertices: %v", err)
	}
	if got := full.Edges[0]; got != (Edge{MaxVertices - 1, MaxVertices - 1}) {
		t.Errorf("last edge = %v, want rebased onto vertex %d", got, MaxVertices-1)
	}

	err := full.Append(Mesh{Positions: []math.Vec3{{}, {X: 1}}, Edges: []Edge{{0, 1}}})
	if !errors.Is(err, ErrMeshTooLarge) {
		t.Fatalf("Append past the limit: err = %v, want ErrMeshTooLarge", err)
	}
	if full.VertexCount() != MaxVertices || full.EdgeCount() != 1 {
		t.Errorf("failed Append changed the mesh: %d vertices %d edges", full.VertexCount(), full.EdgeCount())
	}
}
