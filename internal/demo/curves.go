package demo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/curvewalk/internal/config"
	"github.com/Faultbox/curvewalk/internal/logger"
	"github.com/Faultbox/curvewalk/pkg/curve"
)

// Curves holds every sampled polyline the scene draws or walks.
type Curves struct {
	Bezier     *curve.Curve
	CatmullRom *curve.Curve
	Ellipse    []mgl32.Vec3
}

// BuildCurves samples the heart control polygon as Bézier and Catmull-Rom
// curves, plus the closed-form ellipse.
func BuildCurves(cfg config.CurveConfig) Curves {
	control := curve.HeartControlPoints(cfg.HeartPoints)

	bez := curve.New(curve.Bezier, control)
	bez.Generate(cfg.BezierSamples)

	cr := curve.NewCatmullRom(control)
	cr.Generate(cfg.CatmullRomSamples)

	c := Curves{
		Bezier:     bez,
		CatmullRom: cr,
		Ellipse:    curve.Ellipse(cfg.EllipseA, cfg.EllipseB, cfg.EllipseSamples),
	}

	logger.Info("curves sampled",
		zap.Int("control_points", len(control)),
		zap.Int("bezier_points", len(bez.Points)),
		zap.Int("bezier_segments", bez.Segments()),
		zap.Int("catmull_rom_points", len(cr.Points)),
		zap.Int("ellipse_points", len(c.Ellipse)),
	)
	return c
}

// Path returns the points the walker follows: the ellipse, or the sampled
// curve whose basis is named.
func (c Curves) Path(name string) ([]mgl32.Vec3, error) {
	if name == config.PathEllipse {
		return c.Ellipse, nil
	}

	basis, err := curve.ParseBasis(name)
	if err != nil {
		return nil, fmt.Errorf("walker path: %w", err)
	}
	switch basis {
	case curve.CatmullRom:
		return c.CatmullRom.Points, nil
	default:
		return c.Bezier.Points, nil
	}
}
