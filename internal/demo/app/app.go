// Package app runs the curve walk scene in an OpenGL window.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/curvewalk/internal/config"
	"github.com/Faultbox/curvewalk/internal/demo"
	"github.com/Faultbox/curvewalk/internal/engine/animation"
	"github.com/Faultbox/curvewalk/internal/engine/debug"
	"github.com/Faultbox/curvewalk/internal/engine/input"
	"github.com/Faultbox/curvewalk/internal/engine/renderer"
	"github.com/Faultbox/curvewalk/internal/engine/window"
	"github.com/Faultbox/curvewalk/internal/logger"
)

// Line widths for the guides. Core profile contexts may clamp anything
// above 1.
const (
	gridLineWidth = 1
	axisLineWidth = 3
)

// guides are the line buffers drawn when State.ShowGuides is set.
type guides struct {
	grid       *renderer.LineBuffer
	axes       *renderer.LineBuffer
	control    *renderer.LineBuffer
	bezier     *renderer.LineBuffer
	catmullRom *renderer.LineBuffer
	selection  *renderer.LineBuffer
}

// drawable pairs a scene object with its GPU resources.
type drawable struct {
	*demo.Object
	buffer  *renderer.MeshBuffer
	texture uint32
}

// App is the running demo.
type App struct {
	config *config.Config
	log    *zap.Logger

	window   window.Backend
	renderer *renderer.Renderer

	state     *demo.State
	driver    *animation.Driver
	curves    demo.Curves
	objects   []*demo.Object
	drawables []drawable
	guides    guides

	screenshots *debug.Screenshots
}

// New opens the window, uploads all geometry and prepares the walker path.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}

	a.log.Info("initializing demo",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("backend", cfg.Graphics.Backend),
	)

	a.curves = demo.BuildCurves(cfg.Curve)
	path, err := a.curves.Path(cfg.Curve.Path)
	if err != nil {
		return nil, err
	}
	a.driver, err = animation.New(path, cfg.Animation.FPS,
		animation.WithHeadingOffset(mgl32.DegToRad(cfg.Animation.HeadingOffsetDeg)))
	if err != nil {
		return nil, fmt.Errorf("walker path %q: %w", cfg.Curve.Path, err)
	}

	// Create window (this also creates the OpenGL context)
	a.window, err = window.New(window.Config{
		Title:   cfg.Graphics.Title,
		Width:   cfg.Graphics.Width,
		Height:  cfg.Graphics.Height,
		VSync:   cfg.Graphics.VSync,
		Backend: cfg.Graphics.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the window
	fbw, fbh := a.window.FramebufferSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      fbw,
		Height:     fbh,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.renderer.SetLighting(cfg.Lighting.Light(), cfg.Lighting.Material())

	files := demo.NewAssetManager(cfg.Assets.Roots)
	loaded, err := demo.LoadAssets(files, cfg.Objects)
	if err != nil {
		a.log.Warn("some assets failed to load", zap.Error(err))
	}
	for _, as := range loaded {
		a.upload(as)
	}
	files.Close()
	if len(a.objects) == 0 {
		a.log.Warn("no objects loaded, only guides will be drawn")
	}

	a.uploadGuides()

	a.state = demo.NewState(demo.NewCamera(cfg.Camera), demo.FirstStatic(a.objects))
	a.window.SetKeyHandler(a.state.KeyHandler(input.DefaultBindings(), func() int {
		return len(a.objects)
	}))

	a.screenshots = debug.NewScreenshots("screenshots", "curvewalk")

	a.log.Info("demo initialized",
		zap.Int("objects", len(a.objects)),
		zap.Int("path_points", a.driver.Len()),
		zap.Duration("step", a.driver.Interval()),
	)
	return a, nil
}

func (a *App) upload(as demo.Asset) {
	oc := as.Config
	o := demo.NewObject(oc.Name, oc.Position, oc.Scale, oc.FollowPath)
	o.Bounds = as.Mesh.Bounds

	d := drawable{
		Object:  o,
		buffer:  a.renderer.UploadMesh(as.Mesh),
		texture: a.renderer.FallbackTexture(),
	}
	if as.Image != nil {
		d.texture = a.renderer.UploadTexture(as.Image)
	}

	a.objects = append(a.objects, o)
	a.drawables = append(a.drawables, d)
}

func (a *App) uploadGuides() {
	r := a.renderer
	a.guides = guides{
		grid:       r.UploadLines(debug.Grid(debug.DefaultCellSize, debug.DefaultHalfWidth)),
		axes:       r.UploadLines(debug.Axes()),
		control:    r.UploadLines(a.curves.Bezier.ControlPoints),
		bezier:     r.UploadLines(a.curves.Bezier.Points),
		catmullRom: r.UploadLines(a.curves.CatmullRom.Points),
		selection:  r.UploadLines(make([]mgl32.Vec3, debug.BoxVertexCount)),
	}
}

// Run starts the main loop and returns when the window closes.
func (a *App) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting render loop")

	for !a.window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Input, dispatched to State by the key handler
		a.window.PollEvents()
		if a.state.Quit {
			a.window.SetShouldClose(true)
			break
		}
		if w, h := a.window.FramebufferSize(); w > 0 && h > 0 {
			if cw, ch := a.renderer.Size(); cw != w || ch != h {
				a.renderer.Resize(w, h)
			}
		}

		// 2. Update
		a.update(now)

		// 3. Render
		a.render()

		if a.state.ScreenshotRequested {
			a.state.ScreenshotRequested = false
			a.screenshot()
		}

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Int("path_index", a.driver.Index()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) update(now time.Time) {
	f := a.driver.Update(now)
	for i, o := range a.objects {
		o.Update(f, i == a.state.Active, a.state.Axis)
	}
}

func (a *App) render() {
	r := a.renderer
	r.Begin()

	cam := a.state.Camera
	r.SetCamera(cam.ViewMatrix(), cam.ProjectionMatrix(r.Aspect()), cam.Position)

	if a.state.ShowGuides {
		a.renderGuides()
	}

	for _, d := range a.drawables {
		r.DrawMesh(d.buffer, d.texture, d.Model())
	}

	r.End()
}

func (a *App) renderGuides() {
	r, g := a.renderer, a.guides

	r.DrawLines(g.grid, gl.LINES, debug.GridColor, gridLineWidth)
	r.DrawLineRange(g.axes, gl.LINES, debug.XAxisColor, axisLineWidth, 0, 2)
	r.DrawLineRange(g.axes, gl.LINES, debug.YAxisColor, axisLineWidth, 2, 2)
	r.DrawLines(g.control, gl.POINTS, debug.ControlColor, gridLineWidth)
	r.DrawLines(g.bezier, gl.LINE_STRIP, debug.BezierColor, gridLineWidth)
	r.DrawLines(g.catmullRom, gl.LINE_STRIP, debug.CatmullRomColor, gridLineWidth)

	if a.state.Active < len(a.objects) {
		o := a.objects[a.state.Active]
		r.UpdateLines(g.selection, debug.BoxLines(o.Bounds.Min, o.Bounds.Max, o.Model()))
		r.DrawLines(g.selection, gl.LINES, debug.SelectionColor, gridLineWidth)
	}
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.SavePixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	a.log.Info("closing demo")

	if a.renderer != nil {
		for _, d := range a.drawables {
			a.renderer.DeleteMesh(d.buffer)
			a.renderer.DeleteTexture(d.texture)
		}
		g := a.guides
		for _, b := range []*renderer.LineBuffer{g.grid, g.axes, g.control, g.bezier, g.catmullRom, g.selection} {
			if b != nil {
				a.renderer.DeleteLines(b)
			}
		}
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
