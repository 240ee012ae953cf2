// Package debug provides debug visualization utilities.
package debug

import "github.com/go-gl/mathgl/mgl32"

// Guide colors.
var (
	GridColor       = mgl32.Vec4{0.5, 0.5, 0.5, 1}
	XAxisColor      = mgl32.Vec4{1, 0, 0, 1}
	YAxisColor      = mgl32.Vec4{0, 0, 1, 1}
	ControlColor    = mgl32.Vec4{1, 1, 0, 1}
	BezierColor     = mgl32.Vec4{0, 1, 1, 1}
	CatmullRomColor = mgl32.Vec4{1, 0, 1, 1}
	SelectionColor  = mgl32.Vec4{0, 1, 0, 1}
)

// Default grid layout: 0.1 cells over [-1,1]².
const (
	DefaultCellSize  float32 = 0.1
	DefaultHalfWidth float32 = 1
)

// Grid returns line-list vertices (pairs of endpoints) for a square grid in
// the z=0 plane spanning [-half, half] on X and Y. Lines are spaced cell
// apart, both borders included.
func Grid(cell, half float32) []mgl32.Vec3 {
	if cell <= 0 || half <= 0 {
		return nil
	}

	n := int(2*half/cell + 0.5)
	lines := make([]mgl32.Vec3, 0, (n+1)*4)
	for i := 0; i <= n; i++ {
		c := -half + float32(i)*cell
		lines = append(lines,
			mgl32.Vec3{c, -half, 0}, mgl32.Vec3{c, half, 0},
			mgl32.Vec3{-half, c, 0}, mgl32.Vec3{half, c, 0},
		)
	}
	return lines
}

// Axes returns the X axis segment followed by the Y axis segment, both from
// -1 to 1.
func Axes() []mgl32.Vec3 {
	return []mgl32.Vec3{
		{-1, 0, 0}, {1, 0, 0},
		{0, -1, 0}, {0, 1, 0},
	}
}
