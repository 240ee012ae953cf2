package shader

import (
	"strings"
	"testing"
)

// The renderer binds these names; a rename in GLSL would silently turn the
// uniform into location -1.
func TestEmbeddedUniforms(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		idents []string
	}{
		{"line.vert", LineVertexShader, []string{"model", "view", "projection"}},
		{"line.frag", LineFragmentShader, []string{"finalColor"}},
		{"phong.vert", PhongVertexShader, []string{"model", "view", "projection", "location = 3"}},
		{"phong.frag", PhongFragmentShader, []string{"texBuffer", "ka", "kd", "ks", "q", "lightPos", "lightColor", "camPos", "uniform int textured"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.src, "#version 410 core") {
				t.Errorf("missing #version 410 core header")
			}
			for _, id := range tt.idents {
				if !strings.Contains(tt.src, id) {
					t.Errorf("missing %q", id)
				}
			}
		})
	}
}

func TestPhongFragmentUsesVertexColor(t *testing.T) {
	if !strings.Contains(PhongFragmentShader, "vec3 base = vColor;") {
		t.Error("untextured meshes should be shaded with the vertex color")
	}
}
