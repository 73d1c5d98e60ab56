package model

import (
	"math"

	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/mem"
)

// RotationShift is a small affine correction: a rotation about the image
// centre followed by a constant shift, applied identically to every
// channel.
type RotationShift struct {
	Base         coord.Base
	AngleRadians float64
	ShiftX       float64
	ShiftY       float64
}

// NewRotationShift builds a RotationShift model.
func NewRotationShift(base coord.Base, angleRadians, shiftX, shiftY float64) RotationShift {
	return RotationShift{Base: base, AngleRadians: angleRadians, ShiftX: shiftX, ShiftY: shiftY}
}

func (m RotationShift) eval(_ int, x, y float64) (float64, float64) {
	sin, cos := math.Sincos(m.AngleRadians)
	return x*cos - y*sin + m.ShiftX, x*sin + y*cos + m.ShiftY
}

func (m RotationShift) Apply(t *mem.CoordTuple) { applyGeomToChannels(t, m.Base, m.eval) }

func (m RotationShift) Clone() GeomModel { return m }
