// Package curve samples piecewise cubic curves and closed-form paths.
//
// A cubic segment is evaluated as point(t) = G·M·[t³ t² t 1]ᵀ where G packs
// four control points as columns and M is the basis matrix of the family.
package curve

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Basis selects a cubic curve family.
type Basis int

const (
	// Bezier is the cubic Bernstein basis. Windows do not overlap.
	Bezier Basis = iota
	// CatmullRom is the uniform cubic Catmull-Rom basis. Windows slide by one.
	CatmullRom
)

// String returns the family name used in config files and logs.
func (b Basis) String() string {
	switch b {
	case Bezier:
		return "bezier"
	case CatmullRom:
		return "catmull_rom"
	default:
		return fmt.Sprintf("basis(%d)", int(b))
	}
}

// Matrix returns the 4x4 coefficient matrix of the family.
func (b Basis) Matrix() mgl32.Mat4 {
	if b == CatmullRom {
		return CatmullRomBasis()
	}
	return BezierBasis()
}

// Stride is the distance in control points between consecutive windows.
func (b Basis) Stride() int {
	if b == CatmullRom {
		return 1
	}
	return 3
}

// BezierBasis returns the cubic Bernstein coefficient matrix.
// mgl32 matrices are column-major, so each row below is one column.
func BezierBasis() mgl32.Mat4 {
	return mgl32.Mat4{
		-1, 3, -3, 1,
		3, -6, 3, 0,
		-3, 3, 0, 0,
		1, 0, 0, 0,
	}
}

// CatmullRomBasis returns the uniform cubic Catmull-Rom coefficient matrix
// (tension 0.5).
func CatmullRomBasis() mgl32.Mat4 {
	return mgl32.Mat4{
		-0.5, 1.5, -1.5, 0.5,
		1, -2.5, 2, -0.5,
		-0.5, 0, 0.5, 0,
		0, 1, 0, 0,
	}
}

// ParseBasis converts a config name into a Basis.
func ParseBasis(name string) (Basis, error) {
	switch name {
	case "bezier":
		return Bezier, nil
	case "catmull_rom":
		return CatmullRom, nil
	default:
		return 0, fmt.Errorf("unknown curve basis %q", name)
	}
}
