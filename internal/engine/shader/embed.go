package shader

import _ "embed"

// LineVertexShader transforms plain xyz points for guide geometry.
//
//go:embed glsl/line.vert
var LineVertexShader string

// LineFragmentShader paints every fragment with the finalColor uniform.
//
//go:embed glsl/line.frag
var LineFragmentShader string

// PhongVertexShader passes the interleaved mesh attributes to the fragment stage.
//
//go:embed glsl/phong.vert
var PhongVertexShader string

// PhongFragmentShader applies textured Phong lighting from one point light.
//
//go:embed glsl/phong.frag
var PhongFragmentShader string
