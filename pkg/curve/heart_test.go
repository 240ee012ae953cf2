package curve

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestHeartControlPoints(t *testing.T) {
	pts := HeartControlPoints(20)
	if len(pts) != 20 {
		t.Fatalf("got %d points, want 20", len(pts))
	}
	if pts[0] != pts[19] {
		t.Errorf("polygon not closed: first %v, last %v", pts[0], pts[19])
	}

	// t=0: x=0, y=(13-5-2-1)/16 + 0.15
	want := mgl32.Vec3{0, 5.0/16 + heartYOffset, 0}
	if !vecNear(pts[0], want, eps) {
		t.Errorf("first point: got %v, want %v", pts[0], want)
	}

	for i, p := range pts {
		if p.X() < -1-eps || p.X() > 1+eps {
			t.Errorf("point %d x=%v outside [-1, 1]", i, p.X())
		}
	}
}

func TestHeartControlPointsDegenerate(t *testing.T) {
	if HeartControlPoints(1) != nil {
		t.Error("HeartControlPoints(1) should be nil")
	}
}

func TestCurveGenerateReplacesPoints(t *testing.T) {
	c := New(Bezier, HeartControlPoints(20))
	first := c.Generate(10)
	if len(first) != 60 {
		t.Fatalf("first Generate: got %d points, want 60", len(first))
	}
	second := c.Generate(5)
	if len(second) != 30 || len(c.Points) != 30 {
		t.Errorf("second Generate: got %d/%d points, want 30", len(second), len(c.Points))
	}
	if c.Segments() != 6 {
		t.Errorf("Segments: got %d, want 6", c.Segments())
	}
}

func TestCurveNotDrawable(t *testing.T) {
	c := New(Bezier, []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	if pts := c.Generate(10); len(pts) != 0 {
		t.Errorf("got %d points, want 0", len(pts))
	}
	if c.Drawable() {
		t.Error("curve with 3 control points should not be drawable")
	}
}

func TestNewCatmullRomPadsPath(t *testing.T) {
	c := NewCatmullRom(HeartControlPoints(20))
	if len(c.ControlPoints) != 22 {
		t.Fatalf("got %d control points, want 22", len(c.ControlPoints))
	}
	if got := len(c.Generate(10)); got != 190 {
		t.Errorf("got %d points, want 190", got)
	}
}
