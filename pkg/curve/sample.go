package curve

import "github.com/go-gl/mathgl/mgl32"

// powers returns the power-basis parameter vector [t³ t² t 1].
func powers(t float32) mgl32.Vec4 {
	return mgl32.Vec4{t * t * t, t * t, t, 1}
}

// Evaluate returns the point at parameter t of a single 4-point window.
func Evaluate(window [4]mgl32.Vec3, basis Basis, t float32) mgl32.Vec3 {
	g := mgl32.Mat3x4FromCols(window[0], window[1], window[2], window[3])
	return g.Mul4(basis.Matrix()).Mul4x1(powers(t))
}

// SegmentCount returns how many 4-point windows Sample evaluates for n
// control points. A trailing Bézier window with fewer than four points is
// not counted.
func SegmentCount(n int, basis Basis) int {
	if n < 4 {
		return 0
	}
	return (n-4)/basis.Stride() + 1
}

// Sample evaluates every window of points and returns numPoints samples per
// window, segment by segment. Each window is sampled on the half-open
// interval t ∈ [0, 1), so the t=1 end of a window is never emitted.
//
// Fewer than four control points, or numPoints < 1, yields nil.
func Sample(points []mgl32.Vec3, basis Basis, numPoints int) []mgl32.Vec3 {
	segments := SegmentCount(len(points), basis)
	if segments == 0 || numPoints < 1 {
		return nil
	}

	m := basis.Matrix()
	stride := basis.Stride()
	piece := 1 / float32(numPoints)
	out := make([]mgl32.Vec3, 0, segments*numPoints)

	for i := 0; i+3 < len(points); i += stride {
		gm := mgl32.Mat3x4FromCols(points[i], points[i+1], points[i+2], points[i+3]).Mul4(m)
		for j := 0; j < numPoints; j++ {
			out = append(out, gm.Mul4x1(powers(float32(j)*piece)))
		}
	}
	return out
}

// PadEndpoints returns a copy of points with the first and last point
// duplicated, so that a Catmull-Rom curve passes through every original
// point including both ends.
func PadEndpoints(points []mgl32.Vec3) []mgl32.Vec3 {
	if len(points) == 0 {
		return nil
	}
	out := make([]mgl32.Vec3, 0, len(points)+2)
	out = append(out, points[0])
	out = append(out, points...)
	out = append(out, points[len(points)-1])
	return out
}
