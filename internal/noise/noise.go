// Package noise provides seeded 2D noise sources and fractal octave
// summation over them. Every source is fully deterministic: the same seed
// always reproduces the same field.
package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source produces continuous 2D noise in [0, 1].
type Source interface {
	Eval2(x, y float64) float64
}

// NewSimplex returns an opensimplex-backed source. This is the default
// backend for elevation.
func NewSimplex(seed int64) Source {
	return opensimplex.NewNormalized(seed)
}

type perlinSource struct {
	p *perlin.Perlin
}

// NewPerlin returns a perlin-backed source rescaled to [0, 1], selectable
// for field comparisons against the simplex default.
func NewPerlin(seed int64) Source {
	return &perlinSource{p: perlin.NewPerlin(2, 2, 3, seed)}
}

func (s *perlinSource) Eval2(x, y float64) float64 {
	// Noise2D stays within [-1, 1]; rescale and clamp.
	v := (s.p.Noise2D(x, y) + 1) / 2
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return v
}

// Octave layers successive octaves of a source, doubling the frequency and
// scaling the amplitude by persistence each octave, then normalizes the
// sum back to [0, 1].
type Octave struct {
	src         Source
	octaves     int
	frequency   float64
	persistence float64
}

// NewOctave wraps src in fractal summation. octaves must be >= 1.
func NewOctave(src Source, octaves int, frequency, persistence float64) *Octave {
	return &Octave{
		src:         src,
		octaves:     octaves,
		frequency:   frequency,
		persistence: persistence,
	}
}

func (o *Octave) Eval2(x, y float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	freq := o.frequency

	for i := 0; i < o.octaves; i++ {
		total += o.src.Eval2(x*freq, y*freq) * amplitude
		maxVal += amplitude
		amplitude *= o.persistence
		freq *= 2
	}

	return total / maxVal
}
