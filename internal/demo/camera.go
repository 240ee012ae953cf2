package demo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/curvewalk/internal/config"
	"github.com/Faultbox/curvewalk/internal/engine/camera"
)

// NewCamera starts from the stock fly camera and applies every non-zero
// setting in cfg.
func NewCamera(cfg config.CameraConfig) *camera.FlyCamera {
	cam := camera.NewFlyCamera()
	if cfg.Position != (mgl32.Vec3{}) {
		cam.Position = cfg.Position
	}
	if cfg.Front != (mgl32.Vec3{}) {
		cam.Front = cfg.Front
	}
	if cfg.Up != (mgl32.Vec3{}) {
		cam.Up = cfg.Up
	}
	if cfg.Speed > 0 {
		cam.Speed = cfg.Speed
	}
	if cfg.FOVDeg > 0 {
		cam.FOV = mgl32.DegToRad(cfg.FOVDeg)
	}
	if cfg.Near > 0 {
		cam.Near = cfg.Near
	}
	if cfg.Far > 0 {
		cam.Far = cfg.Far
	}
	return cam
}
