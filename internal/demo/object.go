package demo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/curvewalk/internal/engine/animation"
	"github.com/Faultbox/curvewalk/internal/engine/input"
	"github.com/Faultbox/curvewalk/internal/engine/mesh"
)

// Object is a textured mesh placed in the scene.
type Object struct {
	Name       string
	FollowPath bool
	Position   mgl32.Vec3
	Scale      mgl32.Vec3
	Bounds     mesh.Bounds

	model mgl32.Mat4
}

// NewObject creates an object at its rest transform. A zero scale is
// treated as 1 on every axis.
func NewObject(name string, position, scale mgl32.Vec3, followPath bool) *Object {
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	o := &Object{
		Name:       name,
		FollowPath: followPath,
		Position:   position,
		Scale:      scale,
	}
	o.model = o.Rest()
	return o
}

// Rest is the transform used when nothing animates the object.
func (o *Object) Rest() mgl32.Mat4 {
	return mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2]).
		Mul4(mgl32.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2]))
}

// Model returns the current model matrix.
func (o *Object) Model() mgl32.Mat4 {
	return o.model
}

// Update recomputes the model matrix for this frame:
//   - the active object spins in place by the heading about the chosen
//     axis, or sits at rest if no axis is chosen;
//   - an inactive path follower is placed on the path point, turned about Z
//     by the heading and scaled;
//   - any other object keeps the matrix it had last.
func (o *Object) Update(f animation.Frame, active bool, axis input.Axis) {
	switch {
	case active && axis != input.AxisNone:
		o.model = mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2]).
			Mul4(mgl32.HomogRotate3D(f.Heading, axisVector(axis))).
			Mul4(mgl32.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2]))
	case active:
		o.model = o.Rest()
	case o.FollowPath:
		p := f.Position
		o.model = mgl32.Translate3D(p[0], p[1], p[2]).
			Mul4(mgl32.HomogRotate3DZ(f.Heading)).
			Mul4(mgl32.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2]))
	}
}

func axisVector(a input.Axis) mgl32.Vec3 {
	switch a {
	case input.AxisX:
		return mgl32.Vec3{1, 0, 0}
	case input.AxisY:
		return mgl32.Vec3{0, 1, 0}
	default:
		return mgl32.Vec3{0, 0, 1}
	}
}

// FirstStatic returns the index of the first object that does not follow
// the path, which is the one selected at startup, or 0.
func FirstStatic(objects []*Object) int {
	for i, o := range objects {
		if !o.FollowPath {
			return i
		}
	}
	return 0
}
