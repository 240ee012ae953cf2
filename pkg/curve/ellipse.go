package curve

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ellipse samples x = a·cos t, y = b·sin t on the XY plane for t stepping
// uniformly over [0, 2π]. It returns numPoints+1 points; the last one is the
// first one repeated so the loop closes exactly.
func Ellipse(a, b float32, numPoints int) []mgl32.Vec3 {
	if numPoints < 1 {
		return nil
	}

	step := 2 * math32.Pi / float32(numPoints)
	out := make([]mgl32.Vec3, 0, numPoints+1)
	for j := 0; j < numPoints; j++ {
		t := float32(j) * step
		out = append(out, mgl32.Vec3{a * math32.Cos(t), b * math32.Sin(t), 0})
	}
	return append(out, out[0])
}
