// Package wireframe builds line-segment geometry for the annotated frustum:
// the frustum volume itself and camera-facing labeled arrows.
//
// Everything here is a pure function of its inputs. Nothing touches OpenGL;
// draw-state hints travel with the geometry instead of being applied.
package wireframe

import (
	"errors"
	"fmt"

	"github.com/Faultbox/frustumviz/pkg/math"
)

// MaxVertices is the most positions a Mesh can index with uint16 edges.
const MaxVertices = 1 << 16

// ErrMeshTooLarge is returned when a mesh would outgrow its index type.
var ErrMeshTooLarge = errors.New("mesh exceeds 16-bit vertex indices")

// Edge is a line segment given as two indices into Mesh.Positions.
type Edge [2]uint16

// Mesh is an indexed line list.
type Mesh struct {
	Positions []math.Vec3
	Edges     []Edge
}

// VertexCount returns the number of positions.
func (m Mesh) VertexCount() int {
	return len(m.Positions)
}

// EdgeCount returns the number of line segments.
func (m Mesh) EdgeCount() int {
	return len(m.Edges)
}

// Append adds other's segments to m, rebasing its indices. m is left
// unchanged if the result would need more than MaxVertices positions.
func (m *Mesh) Append(other Mesh) error {
	if n := len(m.Positions) + len(other.Positions); n > MaxVertices {
		return fmt.Errorf("%w: %d vertices", ErrMeshTooLarge, n)
	}
	base := uint16(len(m.Positions))
	m.Positions = append(m.Positions, other.Positions...)
	for _, e := range other.Edges {
		m.Edges = append(m.Edges, Edge{e[0] + base, e[1] + base})
	}
	return nil
}

// Stipple describes a dashed-line pattern: each bit of Pattern covers
// Factor pixels along the line, starting at the least significant bit.
type Stipple struct {
	Enabled bool
	Factor  int
	Pattern uint16
}

// SolidStipple draws every pixel.
var SolidStipple = Stipple{Enabled: false, Factor: 1, Pattern: 0xFFFF}

// DrawState holds the rasterizer hints for one batch of lines.
type DrawState struct {
	Width   float32
	Stipple Stipple
}

// Default line states.
var (
	// ThinSolid is used for arrows.
	ThinSolid = DrawState{Width: 1, Stipple: SolidStipple}
	// TipDashed marks the notional continuation from the apex to the near plane.
	TipDashed = DrawState{Width: 1, Stipple: Stipple{Enabled: true, Factor: 2, Pattern: 0xF3CF}}
	// VolumeSolid outlines the frustum volume.
	VolumeSolid = DrawState{Width: 2, Stipple: SolidStipple}
)

// Batch is a mesh and the state it is drawn with.
type Batch struct {
	Mesh  Mesh
	State DrawState
}
