package demo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/curvewalk/internal/engine/animation"
	"github.com/Faultbox/curvewalk/internal/engine/input"
)

func TestNewObjectZeroScale(t *testing.T) {
	o := NewObject("spinner", mgl32.Vec3{}, mgl32.Vec3{}, false)
	if o.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want ones", o.Scale)
	}
	if !o.Model().ApproxEqual(mgl32.Ident4()) {
		t.Errorf("Model = %v, want identity", o.Model())
	}
}

func TestUpdateFollower(t *testing.T) {
	o := NewObject("walker", mgl32.Vec3{}, mgl32.Vec3{0.2, 0.2, 1}, true)
	f := animation.Frame{Position: mgl32.Vec3{1, 0.5, 0}, Heading: mgl32.DegToRad(90)}

	o.Update(f, false, input.AxisNone)

	// Origin lands on the path point.
	got := o.Model().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !got.ApproxEqualThreshold(f.Position, 1e-5) {
		t.Errorf("origin -> %v, want %v", got, f.Position)
	}
	// +X is scaled then turned a quarter turn to +Y.
	got = o.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{1, 0.7, 0}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("+X -> %v, want %v", got, want)
	}
}

func TestUpdateActiveSpins(t *testing.T) {
	o := NewObject("spinner", mgl32.Vec3{}, mgl32.Vec3{}, false)
	f := animation.Frame{Heading: mgl32.DegToRad(90)}

	tests := []struct {
		axis input.Axis
		in   mgl32.Vec3
		want mgl32.Vec3
	}{
		{input.AxisZ, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{input.AxisX, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
		{input.AxisY, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		o.Update(f, true, tt.axis)
		got := o.Model().Mul4x1(tt.in.Vec4(1)).Vec3()
		if !got.ApproxEqualThreshold(tt.want, 1e-5) {
			t.Errorf("axis %v: %v -> %v, want %v", tt.axis, tt.in, got, tt.want)
		}
	}
}

func TestUpdateActiveWithoutAxisRests(t *testing.T) {
	o := NewObject("walker", mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{0.2, 0.2, 1}, true)
	o.Update(animation.Frame{Position: mgl32.Vec3{1, 1, 0}, Heading: 1}, true, input.AxisNone)
	if !o.Model().ApproxEqual(o.Rest()) {
		t.Errorf("Model = %v, want rest %v", o.Model(), o.Rest())
	}
}

func TestUpdateInactiveStaticKeepsModel(t *testing.T) {
	o := NewObject("spinner", mgl32.Vec3{}, mgl32.Vec3{}, false)
	o.Update(animation.Frame{Heading: 0.7}, true, input.AxisZ)
	spun := o.Model()

	o.Update(animation.Frame{Heading: 2}, false, input.AxisZ)
	if !o.Model().ApproxEqual(spun) {
		t.Errorf("inactive static object moved: %v, want %v", o.Model(), spun)
	}
}

func TestFirstStatic(t *testing.T) {
	walker := NewObject("walker", mgl32.Vec3{}, mgl32.Vec3{}, true)
	spinner := NewObject("spinner", mgl32.Vec3{}, mgl32.Vec3{}, false)

	tests := []struct {
		name    string
		objects []*Object
		want    int
	}{
		{"empty", nil, 0},
		{"walker first", []*Object{walker, spinner}, 1},
		{"spinner first", []*Object{spinner, walker}, 0},
		{"only walkers", []*Object{walker, walker}, 0},
	}
	for _, tt := range tests {
		if got := FirstStatic(tt.objects); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}
