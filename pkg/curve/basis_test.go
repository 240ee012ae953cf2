package curve

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBasisWeightsSumToOne(t *testing.T) {
	for _, b := range []Basis{Bezier, CatmullRom} {
		m := b.Matrix()
		for _, tt := range []float32{0, 0.1, 0.5, 0.9, 1} {
			w := m.Mul4x1(powers(tt))
			sum := w[0] + w[1] + w[2] + w[3]
			if !mgl32.FloatEqualThreshold(sum, 1, eps) {
				t.Errorf("%s at t=%v: weights sum to %v, want 1", b, tt, sum)
			}
		}
	}
}

func TestBezierBasisEndpoints(t *testing.T) {
	m := BezierBasis()
	if got := m.Mul4x1(powers(0)); got != (mgl32.Vec4{1, 0, 0, 0}) {
		t.Errorf("weights at t=0: got %v, want [1 0 0 0]", got)
	}
	if got := m.Mul4x1(powers(1)); got != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("weights at t=1: got %v, want [0 0 0 1]", got)
	}
}

func TestCatmullRomBasisEndpoints(t *testing.T) {
	m := CatmullRomBasis()
	if got := m.Mul4x1(powers(0)); got != (mgl32.Vec4{0, 1, 0, 0}) {
		t.Errorf("weights at t=0: got %v, want [0 1 0 0]", got)
	}
	if got := m.Mul4x1(powers(1)); got != (mgl32.Vec4{0, 0, 1, 0}) {
		t.Errorf("weights at t=1: got %v, want [0 0 1 0]", got)
	}
}

func TestParseBasis(t *testing.T) {
	for _, b := range []Basis{Bezier, CatmullRom} {
		got, err := ParseBasis(b.String())
		if err != nil {
			t.Fatalf("ParseBasis(%q): %v", b.String(), err)
		}
		if got != b {
			t.Errorf("ParseBasis(%q) = %v, want %v", b.String(), got, b)
		}
	}
	if _, err := ParseBasis("hermite"); err == nil {
		t.Error("expected error for unknown basis")
	}
}

func TestStride(t *testing.T) {
	if Bezier.Stride() != 3 {
		t.Errorf("Bezier stride: got %d, want 3", Bezier.Stride())
	}
	if CatmullRom.Stride() != 1 {
		t.Errorf("CatmullRom stride: got %d, want 1", CatmullRom.Stride())
	}
}
