package demo

import (
	"testing"

	"github.com/Faultbox/curvewalk/internal/config"
)

func TestBuildCurvesDefaults(t *testing.T) {
	c := BuildCurves(config.Default().Curve)

	if got := len(c.Bezier.ControlPoints); got != 20 {
		t.Errorf("bezier control points = %d, want 20", got)
	}
	// 20 points give Bézier windows at 0,3,...,15.
	if got := len(c.Bezier.Points); got != 6*100 {
		t.Errorf("bezier points = %d, want 600", got)
	}
	// Padded to 22 points, 19 Catmull-Rom windows.
	if got := len(c.CatmullRom.ControlPoints); got != 22 {
		t.Errorf("catmull-rom control points = %d, want 22", got)
	}
	if got := len(c.CatmullRom.Points); got != 19*10 {
		t.Errorf("catmull-rom points = %d, want 190", got)
	}
	if got := len(c.Ellipse); got != 101 {
		t.Errorf("ellipse points = %d, want 101", got)
	}
}

func TestCurvesPath(t *testing.T) {
	c := BuildCurves(config.Default().Curve)

	tests := []struct {
		name string
		want int
	}{
		{config.PathEllipse, len(c.Ellipse)},
		{config.PathBezier, len(c.Bezier.Points)},
		{config.PathCatmullRom, len(c.CatmullRom.Points)},
	}
	for _, tt := range tests {
		p, err := c.Path(tt.name)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if len(p) != tt.want {
			t.Errorf("%s: got %d points, want %d", tt.name, len(p), tt.want)
		}
	}

	if _, err := c.Path("spiral"); err == nil {
		t.Error("expected error for unknown path")
	}
}

func TestBuildCurvesDegenerate(t *testing.T) {
	cfg := config.Default().Curve
	cfg.HeartPoints = 3
	c := BuildCurves(cfg)

	if len(c.Bezier.Points) != 0 {
		t.Errorf("bezier points = %d, want 0 for 3 control points", len(c.Bezier.Points))
	}
	// Padding lifts 3 points to 5, enough for two Catmull-Rom windows.
	if got := len(c.CatmullRom.Points); got != 2*cfg.CatmullRomSamples {
		t.Errorf("catmull-rom points = %d, want %d", got, 2*cfg.CatmullRomSamples)
	}
}
