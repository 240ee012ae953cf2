// Package config handles demo configuration loading and management.
package config

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/curvewalk/internal/engine/lighting"
)

// Path names accepted by CurveConfig.Path.
const (
	PathEllipse    = "ellipse"
	PathBezier     = "bezier"
	PathCatmullRom = "catmull_rom"
)

// Window backend names accepted by GraphicsConfig.Backend.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds all demo settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Camera    CameraConfig    `yaml:"camera"`
	Curve     CurveConfig     `yaml:"curve"`
	Animation AnimationConfig `yaml:"animation"`
	Lighting  LightingConfig  `yaml:"lighting"`
	Assets    AssetsConfig    `yaml:"assets"`
	Objects   []ObjectConfig  `yaml:"objects"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	VSync   bool   `yaml:"vsync"`
	Backend string `yaml:"backend"` // sdl or glfw

	ClearColor mgl32.Vec4 `yaml:"clear_color"`
}

// CameraConfig holds the fly camera's initial pose and projection.
type CameraConfig struct {
	Position mgl32.Vec3 `yaml:"position"`
	Front    mgl32.Vec3 `yaml:"front"`
	Up       mgl32.Vec3 `yaml:"up"`
	Speed    float32    `yaml:"speed"`
	FOVDeg   float32    `yaml:"fov_deg"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
}

// CurveConfig controls how the guide curves and the walker path are sampled.
type CurveConfig struct {
	HeartPoints       int     `yaml:"heart_points"`
	BezierSamples     int     `yaml:"bezier_samples"`
	CatmullRomSamples int     `yaml:"catmull_rom_samples"`
	EllipseA          float32 `yaml:"ellipse_a"`
	EllipseB          float32 `yaml:"ellipse_b"`
	EllipseSamples    int     `yaml:"ellipse_samples"`
	Path              string  `yaml:"path"` // ellipse, bezier or catmull_rom
}

// AnimationConfig holds the path-walk rate.
type AnimationConfig struct {
	FPS              float64 `yaml:"fps"`
	HeadingOffsetDeg float32 `yaml:"heading_offset_deg"`
}

// LightingConfig holds the single point light and the shared material.
type LightingConfig struct {
	Position mgl32.Vec3 `yaml:"position"`
	Color    mgl32.Vec3 `yaml:"color"`
	Ka       float32    `yaml:"ka"`
	Kd       float32    `yaml:"kd"`
	Ks       float32    `yaml:"ks"`
	Q        float32    `yaml:"q"`
}

// Light returns the configured point light.
func (l LightingConfig) Light() lighting.Light {
	return lighting.Light{Position: l.Position, Color: l.Color}
}

// Material returns the configured Phong coefficients.
func (l LightingConfig) Material() lighting.Material {
	return lighting.Material{Ka: l.Ka, Kd: l.Kd, Ks: l.Ks, Q: l.Q}
}

// AssetsConfig lists the directories relative mesh and texture paths are
// resolved against. Later roots take priority.
type AssetsConfig struct {
	Roots []string `yaml:"roots"`
}

// ObjectConfig describes one mesh in the scene.
type ObjectConfig struct {
	Name       string     `yaml:"name"`
	Mesh       string     `yaml:"mesh"`
	Texture    string     `yaml:"texture"`
	FollowPath bool       `yaml:"follow_path"`
	Position   mgl32.Vec3 `yaml:"position"`
	Scale      mgl32.Vec3 `yaml:"scale"`
	Color      mgl32.Vec3 `yaml:"color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with the demo's stock scene.
func Default() *Config {
	red := mgl32.Vec3{1, 0, 0}
	return &Config{
		Graphics: GraphicsConfig{
			Title:   "curvewalk",
			Width:   2000,
			Height:  1000,
			VSync:   true,
			Backend: BackendSDL,

			ClearColor: mgl32.Vec4{0, 0, 0, 1},
		},
		Camera: CameraConfig{
			Position: mgl32.Vec3{0, 0, 3},
			Front:    mgl32.Vec3{0, 0, -1},
			Up:       mgl32.Vec3{0, 1, 0},
			Speed:    0.05,
			FOVDeg:   39.6,
			Near:     0.1,
			Far:      100,
		},
		Curve: CurveConfig{
			HeartPoints:       20,
			BezierSamples:     100,
			CatmullRomSamples: 10,
			EllipseA:          1,
			EllipseB:          0.5,
			EllipseSamples:    100,
			Path:              PathEllipse,
		},
		Animation: AnimationConfig{
			FPS:              60,
			HeadingOffsetDeg: -90,
		},
		Lighting: LightingConfig{
			Position: mgl32.Vec3{0, 20, 0},
			Color:    mgl32.Vec3{3, 3, 3},
			Ka:       0.2,
			Kd:       0.5,
			Ks:       0.5,
			Q:        10,
		},
		Assets: AssetsConfig{
			Roots: []string{"."},
		},
		Objects: []ObjectConfig{
			{
				Name:       "walker",
				Mesh:       "assets/walker/model.obj",
				Texture:    "assets/walker/texture.jpeg",
				FollowPath: true,
				Scale:      mgl32.Vec3{0.2, 0.2, 1},
				Color:      red,
			},
			{
				Name:    "spinner",
				Mesh:    "assets/spinner/model.obj",
				Texture: "assets/spinner/texture.jpeg",
				Scale:   mgl32.Vec3{1, 1, 1},
				Color:   red,
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
