package model

import (
	"math"

	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/mem"
)

// PTLens implements the PTLens/Hugin radial polynomial distortion model:
// for each channel c, r = sqrt(x^2+y^2), s = a*r^3 + b*r^2 + c*r + d, and
// the corrected coordinate is (x*s, y*s). d acts as a per-channel global
// scale, letting the same model represent transverse chromatic aberration
// when d differs across channels.
type PTLens struct {
	Base coord.Base
	A, B, C, D [mem.MaxChannels]float64
}

// NewPTLensUniform builds a PTLens model with the same (a, b, c) on every
// channel and d chosen per channel so that a+b+c+d = 1, the "no net scale
// change" convention.
func NewPTLensUniform(base coord.Base, a, b, c float64) PTLens {
	m := PTLens{Base: base}
	d := 1 - a - b - c
	for ch := 0; ch < mem.MaxChannels; ch++ {
		m.A[ch], m.B[ch], m.C[ch], m.D[ch] = a, b, c, d
	}
	return m
}

// NewPTLensChromatic builds a PTLens model with per-channel d (chromatic
// scaling) and shared (a, b, c) geometric distortion.
func NewPTLensChromatic(base coord.Base, a, b, c float64, d [mem.MaxChannels]float64) PTLens {
	m := PTLens{Base: base, D: d}
	for ch := 0; ch < mem.MaxChannels; ch++ {
		m.A[ch], m.B[ch], m.C[ch] = a, b, c
	}
	return m
}

func (m PTLens) eval(c int, x, y float64) (float64, float64) {
	r := math.Hypot(x, y)
	s := m.A[c]*r*r*r + m.B[c]*r*r + m.C[c]*r + m.D[c]
	return x * s, y * s
}

func (m PTLens) Apply(t *mem.CoordTuple) {
	applyGeomToChannels(t, m.Base, m.eval)
}

func (m PTLens) Clone() GeomModel { return m }
