package noise

import (
	"math"
	"testing"
)

func TestSimplexDeterministic(t *testing.T) {
	a := NewSimplex(12345)
	b := NewSimplex(12345)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.1
		y := float64(i) * 0.2
		if a.Eval2(x, y) != b.Eval2(x, y) {
			t.Fatalf("simplex not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlin(12345)
	b := NewPerlin(12345)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.1
		y := float64(i) * 0.2
		if a.Eval2(x, y) != b.Eval2(x, y) {
			t.Fatalf("perlin not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestSourceRange(t *testing.T) {
	for name, src := range map[string]Source{
		"simplex": NewSimplex(42),
		"perlin":  NewPerlin(42),
	} {
		for i := 0; i < 10000; i++ {
			x := float64(i)*0.37 - 500
			y := float64(i)*0.53 - 500
			v := src.Eval2(x, y)
			if v < 0 || v > 1 {
				t.Fatalf("%s(%f, %f) = %f, out of [0,1]", name, x, y, v)
			}
		}
	}
}

func TestDifferentSeedsDifferentNoise(t *testing.T) {
	a := NewSimplex(1)
	b := NewSimplex(2)

	different := false
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.1
		y := float64(i) * 0.2
		if a.Eval2(x, y) != b.Eval2(x, y) {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different noise")
	}
}

func TestOctaveRange(t *testing.T) {
	o := NewOctave(NewSimplex(123), 4, 0.02, 0.5)

	for i := 0; i < 1000; i++ {
		x := float64(i)*0.7 - 300
		y := float64(i)*1.1 - 300
		v := o.Eval2(x, y)
		if v < 0 || v > 1 {
			t.Fatalf("octave(%f, %f) = %f, out of [0,1]", x, y, v)
		}
	}
}

func TestOctaveSmoothness(t *testing.T) {
	o := NewOctave(NewSimplex(456), 4, 0.02, 0.5)

	// Adjacent samples at macro-grid step should not jump wildly.
	prev := o.Eval2(0, 0)
	for i := 1; i < 500; i++ {
		curr := o.Eval2(float64(i)*0.25, 0)
		if diff := math.Abs(curr - prev); diff > 0.2 {
			t.Fatalf("noise changed too rapidly at step %d: diff=%f", i, diff)
		}
		prev = curr
	}
}

func TestOctaveDeterministic(t *testing.T) {
	a := NewOctave(NewSimplex(7), 4, 0.02, 0.5)
	b := NewOctave(NewSimplex(7), 4, 0.02, 0.5)

	for i := 0; i < 100; i++ {
		x, y := float64(i)*1.3, float64(i)*0.9
		if a.Eval2(x, y) != b.Eval2(x, y) {
			t.Fatalf("octave not deterministic at (%f, %f)", x, y)
		}
	}
}
