package model

import (
	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/mem"
)

// Scaling implements pure radial-independent scaling: (x, y) -> (k*x, k*y).
// A single k applies to every channel unless per-channel K values are
// supplied, in which case the model becomes subpixel-capable (it can
// introduce or correct transverse chromatic aberration on its own).
type Scaling struct {
	Base coord.Base
	K    [mem.MaxChannels]float64
}

// NewScaling builds a uniform scaling model.
func NewScaling(base coord.Base, k float64) Scaling {
	m := Scaling{Base: base}
	for c := 0; c < mem.MaxChannels; c++ {
		m.K[c] = k
	}
	return m
}

// NewScalingPerChannel builds a per-channel (subpixel) scaling model.
func NewScalingPerChannel(base coord.Base, k [mem.MaxChannels]float64) Scaling {
	return Scaling{Base: base, K: k}
}

func (m Scaling) eval(c int, x, y float64) (float64, float64) {
	return x * m.K[c], y * m.K[c]
}

func (m Scaling) Apply(t *mem.CoordTuple) { applyGeomToChannels(t, m.Base, m.eval) }

func (m Scaling) Clone() GeomModel { return m }
