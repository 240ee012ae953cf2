// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/curvewalk/internal/engine/lighting"
	"github.com/Faultbox/curvewalk/internal/engine/shader"
	"github.com/Faultbox/curvewalk/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor mgl32.Vec4
}

// Renderer owns the two shader programs and issues every draw call.
type Renderer struct {
	config Config

	lineProgram *shader.Program
	meshProgram *shader.Program

	fallbackTex uint32

	view       mgl32.Mat4
	projection mgl32.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		view:       mgl32.Ident4(),
		projection: mgl32.Ident4(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	var err error
	r.lineProgram, err = shader.NewProgram(shader.LineVertexShader, shader.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	r.meshProgram, err = shader.NewProgram(shader.PhongVertexShader, shader.PhongFragmentShader)
	if err != nil {
		r.lineProgram.Delete()
		return nil, fmt.Errorf("phong shader: %w", err)
	}

	r.meshProgram.Use()
	r.meshProgram.SetInt("texBuffer", 0)

	r.fallbackTex = r.createFallbackTexture()

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.fallbackTex != 0 {
		gl.DeleteTextures(1, &r.fallbackTex)
	}
	if r.meshProgram != nil {
		r.meshProgram.Delete()
	}
	if r.lineProgram != nil {
		r.lineProgram.Delete()
	}
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns width / height, or 1 for a zero-height viewport.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// SetCamera uploads view and projection to both programs and the eye
// position to the lighting program.
func (r *Renderer) SetCamera(view, projection mgl32.Mat4, eye mgl32.Vec3) {
	r.view = view
	r.projection = projection

	r.lineProgram.Use()
	r.lineProgram.SetMat4("view", view)
	r.lineProgram.SetMat4("projection", projection)

	r.meshProgram.Use()
	r.meshProgram.SetMat4("view", view)
	r.meshProgram.SetMat4("projection", projection)
	r.meshProgram.SetVec3("camPos", eye)
}

// SetLighting uploads the point light and material coefficients.
func (r *Renderer) SetLighting(l lighting.Light, m lighting.Material) {
	r.meshProgram.Use()
	r.meshProgram.SetVec3("lightPos", l.Position)
	r.meshProgram.SetVec3("lightColor", l.Color)
	r.meshProgram.SetFloat("ka", m.Ka)
	r.meshProgram.SetFloat("kd", m.Kd)
	r.meshProgram.SetFloat("ks", m.Ks)
	r.meshProgram.SetFloat("q", m.Q)
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
