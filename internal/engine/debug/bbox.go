package debug

import "github.com/go-gl/mathgl/mgl32"

// BoxVertexCount is the number of line-list vertices for a box (12 edges × 2).
const BoxVertexCount = 24

// BoxLines returns line-list vertices outlining the box between min and max
// after transforming its corners by model.
func BoxLines(min, max mgl32.Vec3, model mgl32.Mat4) []mgl32.Vec3 {
	corner := func(x, y, z float32) mgl32.Vec3 {
		return model.Mul4x1(mgl32.Vec4{x, y, z, 1}).Vec3()
	}

	c := [8]mgl32.Vec3{
		corner(min[0], min[1], min[2]),
		corner(max[0], min[1], min[2]),
		corner(max[0], min[1], max[2]),
		corner(min[0], min[1], max[2]),
		corner(min[0], max[1], min[2]),
		corner(max[0], max[1], min[2]),
		corner(max[0], max[1], max[2]),
		corner(min[0], max[1], max[2]),
	}

	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // sides
	}

	out := make([]mgl32.Vec3, 0, BoxVertexCount)
	for _, e := range edges {
		out = append(out, c[e[0]], c[e[1]])
	}
	return out
}
