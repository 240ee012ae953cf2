package curve

import "github.com/go-gl/mathgl/mgl32"

// Curve couples a control polygon with the points sampled from it.
// The basis is fixed for the lifetime of the curve.
type Curve struct {
	ControlPoints []mgl32.Vec3
	Points        []mgl32.Vec3
	Basis         Basis
}

// New creates a curve over a copy of controlPoints.
func New(basis Basis, controlPoints []mgl32.Vec3) *Curve {
	cp := make([]mgl32.Vec3, len(controlPoints))
	copy(cp, controlPoints)
	return &Curve{ControlPoints: cp, Basis: basis}
}

// NewCatmullRom creates a Catmull-Rom curve through path, duplicating the
// first and last point so every path point gets a full window.
func NewCatmullRom(path []mgl32.Vec3) *Curve {
	return &Curve{ControlPoints: PadEndpoints(path), Basis: CatmullRom}
}

// Generate replaces Points with numPoints samples per segment and returns
// them. An empty result means the curve cannot be drawn.
func (c *Curve) Generate(numPoints int) []mgl32.Vec3 {
	c.Points = Sample(c.ControlPoints, c.Basis, numPoints)
	return c.Points
}

// Segments returns the number of windows the control polygon produces.
func (c *Curve) Segments() int {
	return SegmentCount(len(c.ControlPoints), c.Basis)
}

// Drawable reports whether the last Generate produced any points.
func (c *Curve) Drawable() bool {
	return len(c.Points) > 0
}
