// Package lighting holds the point light and surface material used by the
// Phong shader.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// Light is a single point light.
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3 // may exceed 1 to brighten the scene
}

// Material holds Phong reflection coefficients.
type Material struct {
	Ka float32 // ambient
	Kd float32 // diffuse
	Ks float32 // specular
	Q  float32 // specular exponent
}
