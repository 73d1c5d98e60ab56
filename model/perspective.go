package model

import (
	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/mem"
)

// Perspective applies a simple first-order keystone correction: a small
// linear shear driven by the orthogonal axis, parameterised by a single
// strength value. Horizontal perspective shears x as a function of y;
// vertical perspective shears y as a function of x. Both are optional,
// low-order stand-ins for a full projective (homography) correction.
type Perspective struct {
	Base     coord.Base
	Vertical bool
	Strength float64
}

// NewHorizontalPerspective builds a horizontal-axis perspective model.
func NewHorizontalPerspective(base coord.Base, strength float64) Perspective {
	return Perspective{Base: base, Vertical: false, Strength: strength}
}

// NewVerticalPerspective builds a vertical-axis perspective model.
func NewVerticalPerspective(base coord.Base, strength float64) Perspective {
	return Perspective{Base: base, Vertical: true, Strength: strength}
}

func (m Perspective) eval(_ int, x, y float64) (float64, float64) {
	if m.Vertical {
		return x, y / (1 + m.Strength*x)
	}
	return x / (1 + m.Strength*y), y
}

func (m Perspective) Apply(t *mem.CoordTuple) { applyGeomToChannels(t, m.Base, m.eval) }

func (m Perspective) Clone() GeomModel { return m }
