package curve

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// heartYOffset recentres the heart vertically inside [-1, 1].
const heartYOffset = 0.15

// HeartControlPoints returns n control points on the classic heart curve
//
//	x = 16 sin³t,  y = 13 cos t − 5 cos 2t − 2 cos 3t − cos 4t
//
// scaled by 1/16. The first n-1 points are spread over [0, 2π) and the last
// point repeats the first, closing the polygon.
func HeartControlPoints(n int) []mgl32.Vec3 {
	if n < 2 {
		return nil
	}

	step := 2 * math32.Pi / float32(n-1)
	out := make([]mgl32.Vec3, 0, n)
	for i := 0; i < n-1; i++ {
		t := float32(i) * step
		s := math32.Sin(t)
		x := 16 * s * s * s
		y := 13*math32.Cos(t) - 5*math32.Cos(2*t) - 2*math32.Cos(3*t) - math32.Cos(4*t)
		out = append(out, mgl32.Vec3{x / 16, y/16 + heartYOffset, 0})
	}
	return append(out, out[0])
}
