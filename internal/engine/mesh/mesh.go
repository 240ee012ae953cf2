// Package mesh loads Wavefront OBJ geometry into a flat triangle list ready
// for GPU upload.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// FloatsPerVertex is the interleaved layout: position(3) color(3) uv(2)
// normal(3).
const FloatsPerVertex = 11

// Byte offsets of each attribute inside one interleaved vertex.
const (
	PositionOffset = 0
	ColorOffset    = 3 * 4
	UVOffset       = 6 * 4
	NormalOffset   = 8 * 4
	Stride         = FloatsPerVertex * 4
)

// Vertex is one corner of a triangle.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	TexCoord mgl32.Vec2
	Normal   mgl32.Vec3
}

// Mesh is an unindexed triangle list: every three vertices form a triangle.
type Mesh struct {
	Vertices []Vertex
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// VertexCount returns the number of vertices to draw.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// Interleave flattens the mesh into the GPU vertex layout.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Color[0], v.Color[1], v.Color[2],
			v.TexCoord[0], v.TexCoord[1],
			v.Normal[0], v.Normal[1], v.Normal[2],
		)
	}
	return out
}

// SetColor overwrites the color attribute of every vertex.
func (m *Mesh) SetColor(c mgl32.Vec3) {
	for i := range m.Vertices {
		m.Vertices[i].Color = c
	}
}

func updateBounds(b *Bounds, p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
