package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/curvewalk/internal/engine/mesh"
)

// MeshBuffer is an uploaded interleaved triangle list.
type MeshBuffer struct {
	vao   uint32
	vbo   uint32
	count int32
}

// UploadMesh copies m to the GPU using the mesh package's 11-float layout.
func (r *Renderer) UploadMesh(m *mesh.Mesh) *MeshBuffer {
	data := m.Interleave()
	b := &MeshBuffer{count: int32(m.VertexCount())}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	}

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, mesh.Stride, unsafe.Pointer(uintptr(mesh.PositionOffset)))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, mesh.Stride, unsafe.Pointer(uintptr(mesh.ColorOffset)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, mesh.Stride, unsafe.Pointer(uintptr(mesh.UVOffset)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(3, 3, gl.FLOAT, false, mesh.Stride, unsafe.Pointer(uintptr(mesh.NormalOffset)))
	gl.EnableVertexAttribArray(3)

	gl.BindVertexArray(0)
	return b
}

// DrawMesh draws b with texture tex and the given model matrix. With 0 or
// the fallback texture the mesh is shaded with its vertex color.
func (r *Renderer) DrawMesh(b *MeshBuffer, tex uint32, model mgl32.Mat4) {
	if b == nil || b.count == 0 {
		return
	}
	if tex == 0 {
		tex = r.fallbackTex
	}

	r.meshProgram.Use()
	r.meshProgram.SetMat4("model", model)
	textured := int32(1)
	if tex == r.fallbackTex {
		textured = 0
	}
	r.meshProgram.SetInt("textured", textured)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	gl.BindVertexArray(0)
}

// DeleteMesh releases the GL objects of b.
func (r *Renderer) DeleteMesh(b *MeshBuffer) {
	if b == nil {
		return
	}
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	b.count = 0
}
