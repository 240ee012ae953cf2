package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrIndexOutOfRange is returned when a face references a vertex,
	// texture coordinate or normal that was never declared.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrMalformedFace is returned for faces that cannot be parsed.
	ErrMalformedFace = errors.New("malformed face")
	// ErrMalformedVertex is returned for v, vt and vn lines with bad numbers.
	ErrMalformedVertex = errors.New("malformed vertex data")
)

// DefaultColor is the vertex color used when none is configured.
var DefaultColor = mgl32.Vec3{1, 0, 0}

// ParseError reports the OBJ line that failed to parse.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("obj line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseOBJ reads v, vt, vn and f statements. Polygons are fan triangulated.
// Other statements (o, g, s, usemtl, mtllib) are ignored. Corners without
// a texture coordinate get (0,0); corners without a normal get the face
// normal. Every vertex is colored DefaultColor.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	p := &objParser{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		if err := p.parseLine(text); err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	m := &Mesh{Vertices: p.out}
	if len(m.Vertices) > 0 {
		m.Bounds = Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
		for _, v := range m.Vertices[1:] {
			updateBounds(&m.Bounds, v.Position)
		}
	}
	return m, nil
}

type objParser struct {
	positions []mgl32.Vec3
	texCoords []mgl32.Vec2
	normals   []mgl32.Vec3
	out       []Vertex
}

func (p *objParser) parseLine(text string) error {
	fields := strings.Fields(text)
	switch fields[0] {
	case "v":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return err
		}
		p.positions = append(p.positions, mgl32.Vec3{v[0], v[1], v[2]})
	case "vt":
		v, err := parseFloats(fields[1:], 2)
		if err != nil {
			return err
		}
		p.texCoords = append(p.texCoords, mgl32.Vec2{v[0], v[1]})
	case "vn":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return err
		}
		p.normals = append(p.normals, mgl32.Vec3{v[0], v[1], v[2]})
	case "f":
		return p.parseFace(fields[1:])
	}
	return nil
}

// parseFloats reads at least n numbers; extra components (w) are dropped.
func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: want %d values, got %d", ErrMalformedVertex, n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedVertex, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

type corner struct {
	pos       mgl32.Vec3
	uv        mgl32.Vec2
	normal    mgl32.Vec3
	hasNormal bool
}

func (p *objParser) parseFace(groups []string) error {
	if len(groups) < 3 {
		return fmt.Errorf("%w: need at least 3 corners, got %d", ErrMalformedFace, len(groups))
	}

	corners := make([]corner, len(groups))
	for i, g := range groups {
		c, err := p.parseCorner(g)
		if err != nil {
			return err
		}
		corners[i] = c
	}

	for i := 1; i+1 < len(corners); i++ {
		p.emitTriangle(corners[0], corners[i], corners[i+1])
	}
	return nil
}

// parseCorner handles v, v/t, v//n and v/t/n.
func (p *objParser) parseCorner(group string) (corner, error) {
	parts := strings.Split(group, "/")
	if len(parts) > 3 || parts[0] == "" {
		return corner{}, fmt.Errorf("%w: bad vertex group %q", ErrMalformedFace, group)
	}

	var c corner
	vi, err := resolveIndex(parts[0], len(p.positions))
	if err != nil {
		return corner{}, err
	}
	c.pos = p.positions[vi]

	if len(parts) > 1 && parts[1] != "" {
		ti, err := resolveIndex(parts[1], len(p.texCoords))
		if err != nil {
			return corner{}, err
		}
		c.uv = p.texCoords[ti]
	}

	if len(parts) > 2 {
		if parts[2] == "" {
			return corner{}, fmt.Errorf("%w: empty normal index in %q", ErrMalformedFace, group)
		}
		ni, err := resolveIndex(parts[2], len(p.normals))
		if err != nil {
			return corner{}, err
		}
		c.normal = p.normals[ni]
		c.hasNormal = true
	}
	return c, nil
}

// resolveIndex converts a 1-based or negative (relative) OBJ index into a
// 0-based slice index.
func resolveIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedFace, err)
	}
	var idx int
	switch {
	case n > 0:
		idx = n - 1
	case n < 0:
		idx = count + n
	default:
		return 0, fmt.Errorf("%w: index 0", ErrIndexOutOfRange)
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("%w: %d with %d declared", ErrIndexOutOfRange, n, count)
	}
	return idx, nil
}

func (p *objParser) emitTriangle(a, b, c corner) {
	face := faceNormal(a.pos, b.pos, c.pos)
	for _, k := range [3]corner{a, b, c} {
		n := k.normal
		if !k.hasNormal {
			n = face
		}
		p.out = append(p.out, Vertex{
			Position: k.pos,
			Color:    DefaultColor,
			TexCoord: k.uv,
			Normal:   n,
		})
	}
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Len()
	if l == 0 {
		return mgl32.Vec3{0, 0, 1}
	}
	return n.Mul(1 / l)
}
