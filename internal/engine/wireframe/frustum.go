package wireframe

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/frustumviz/pkg/math"
)

// ErrInvalidFrustum is returned for a frustum with near <= 0, far <= near
// or non-finite extents.
var ErrInvalidFrustum = errors.New("invalid frustum")

// FrustumSpec holds glFrustum-style extents: the near-plane rectangle and
// the near and far distances along -Z.
type FrustumSpec struct {
	Left, Right, Bottom, Top float64
	Near, Far                float64
}

// Validate checks the near/far ordering.
func (s FrustumSpec) Validate() error {
	for _, v := range []float64{s.Left, s.Right, s.Bottom, s.Top, s.Near, s.Far} {
		if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite extent in %+v", ErrInvalidFrustum, s)
		}
	}
	if s.Near <= 0 {
		return fmt.Errorf("%w: near %g must be positive", ErrInvalidFrustum, s.Near)
	}
	if s.Far <= s.Near {
		return fmt.Errorf("%w: far %g must exceed near %g", ErrInvalidFrustum, s.Far, s.Near)
	}
	return nil
}

// NearCenter returns the centre of the near-plane rectangle.
func (s FrustumSpec) NearCenter() math.Vec3 {
	return math.Vec3{X: (s.Left + s.Right) / 2, Y: (s.Bottom + s.Top) / 2, Z: -s.Near}
}

// Frustum vertex indices.
const (
	Apex = iota
	NearBottomLeft
	NearBottomRight
	NearTopRight
	NearTopLeft
	FarBottomLeft
	FarBottomRight
	FarTopRight
	FarTopLeft
)

// Frustum is the generated frustum wireframe. Tip and Volume share Positions.
type Frustum struct {
	Positions []math.Vec3
	// Tip runs from the apex to each near corner.
	Tip []Edge
	// Volume connects near to far and outlines both rectangles.
	Volume      []Edge
	TipState    DrawState
	VolumeState DrawState
}

var (
	tipEdges = []Edge{
		{Apex, NearBottomLeft},
		{Apex, NearBottomRight},
		{Apex, NearTopRight},
		{Apex, NearTopLeft},
	}
	volumeEdges = []Edge{
		{NearBottomLeft, FarBottomLeft}, {NearBottomRight, FarBottomRight},
		{NearTopRight, FarTopRight}, {NearTopLeft, FarTopLeft},
		{NearBottomLeft, NearBottomRight}, {NearBottomRight, NearTopRight},
		{NearTopRight, NearTopLeft}, {NearTopLeft, NearBottomLeft},
		{FarBottomLeft, FarBottomRight}, {FarBottomRight, FarTopRight},
		{FarTopRight, FarTopLeft}, {FarTopLeft, FarBottomLeft},
	}
)

// BuildFrustum generates the nine vertices and sixteen edges of spec.
// Far corners scale the near corners by far/near, so off-axis frusta keep
// their perspective proportions.
func BuildFrustum(spec FrustumSpec) (Frustum, error) {
	if err := spec.Validate(); err != nil {
		return Frustum{}, err
	}

	l, r, b, t, n, f := spec.Left, spec.Right, spec.Bottom, spec.Top, spec.Near, spec.Far
	k := f / n

	return Frustum{
		Positions: []math.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: l, Y: b, Z: -n},
			{X: r, Y: b, Z: -n},
			{X: r, Y: t, Z: -n},
			{X: l, Y: t, Z: -n},
			{X: k * l, Y: k * b, Z: -f},
			{X: k * r, Y: k * b, Z: -f},
			{X: k * r, Y: k * t, Z: -f},
			{X: k * l, Y: k * t, Z: -f},
		},
		Tip:         append([]Edge(nil), tipEdges...),
		Volume:      append([]Edge(nil), volumeEdges...),
		TipState:    TipDashed,
		VolumeState: VolumeSolid,
	}, nil
}

// EdgeCount returns the total number of segments.
func (f Frustum) EdgeCount() int {
	return len(f.Tip) + len(f.Volume)
}

// Batches splits the frustum into its dashed tip and solid volume batches.
func (f Frustum) Batches() []Batch {
	return []Batch{
		{Mesh: Mesh{Positions: f.Positions, Edges: f.Tip}, State: f.TipState},
		{Mesh: Mesh{Positions: f.Positions, Edges: f.Volume}, State: f.VolumeState},
	}
}
