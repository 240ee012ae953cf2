package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate reports every setting that would make the demo unable to start.
func (c *Config) Validate() error {
	var err error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	switch c.Graphics.Backend {
	case BackendSDL, BackendGLFW:
	default:
		err = multierr.Append(err, fmt.Errorf("graphics: unknown backend %q", c.Graphics.Backend))
	}

	if c.Camera.FOVDeg <= 0 || c.Camera.FOVDeg >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera: fov_deg %v out of range", c.Camera.FOVDeg))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		err = multierr.Append(err, fmt.Errorf("camera: bad clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Front.Len() == 0 || c.Camera.Up.Len() == 0 {
		err = multierr.Append(err, fmt.Errorf("camera: front and up must be non-zero"))
	}

	if c.Curve.HeartPoints < 2 {
		err = multierr.Append(err, fmt.Errorf("curve: heart_points must be at least 2, got %d", c.Curve.HeartPoints))
	}
	if c.Curve.BezierSamples < 1 || c.Curve.CatmullRomSamples < 1 || c.Curve.EllipseSamples < 1 {
		err = multierr.Append(err, fmt.Errorf("curve: sample counts must be positive"))
	}
	switch c.Curve.Path {
	case PathEllipse, PathBezier, PathCatmullRom:
	default:
		err = multierr.Append(err, fmt.Errorf("curve: unknown path %q", c.Curve.Path))
	}

	if c.Animation.FPS <= 0 {
		err = multierr.Append(err, fmt.Errorf("animation: fps must be positive, got %v", c.Animation.FPS))
	}

	for i, obj := range c.Objects {
		if obj.Mesh == "" {
			err = multierr.Append(err, fmt.Errorf("objects[%d] %q: mesh path is empty", i, obj.Name))
		}
	}

	return err
}
