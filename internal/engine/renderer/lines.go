package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// LineBuffer is a VAO/VBO pair holding xyz points.
type LineBuffer struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Count returns the number of uploaded points.
func (b *LineBuffer) Count() int {
	return int(b.count)
}

// UploadLines creates a buffer from points. Empty input gives an empty
// buffer that draws nothing.
func (r *Renderer) UploadLines(points []mgl32.Vec3) *LineBuffer {
	b := &LineBuffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	r.UpdateLines(b, points)
	return b
}

// UpdateLines replaces the contents of b.
func (r *Renderer) UpdateLines(b *LineBuffer, points []mgl32.Vec3) {
	b.count = int32(len(points))
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(points) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(points)*3*4, unsafe.Pointer(&points[0]), gl.DYNAMIC_DRAW)
}

// DrawLines draws all of b with a flat color. mode is gl.LINES,
// gl.LINE_STRIP or gl.POINTS.
func (r *Renderer) DrawLines(b *LineBuffer, mode uint32, color mgl32.Vec4, width float32) {
	if b == nil {
		return
	}
	r.DrawLineRange(b, mode, color, width, 0, int(b.count))
}

// DrawLineRange draws count points of b starting at first.
func (r *Renderer) DrawLineRange(b *LineBuffer, mode uint32, color mgl32.Vec4, width float32, first, count int) {
	if b == nil || count <= 0 {
		return
	}

	r.lineProgram.Use()
	r.lineProgram.SetMat4("model", mgl32.Ident4())
	r.lineProgram.SetVec4("finalColor", color)

	gl.LineWidth(width)
	gl.PointSize(width * 3)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(mode, int32(first), int32(count))
	gl.BindVertexArray(0)
}

// DeleteLines releases the GL objects of b.
func (r *Renderer) DeleteLines(b *LineBuffer) {
	if b == nil {
		return
	}
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	b.count = 0
}
