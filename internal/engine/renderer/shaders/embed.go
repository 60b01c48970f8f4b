// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LineVertexShader projects line vertices and passes window coordinates
// along for stipple evaluation.
//
//go:embed lines.vert
var LineVertexShader string

// LineFragmentShader draws solid or stippled lines.
//
//go:embed lines.frag
var LineFragmentShader string
