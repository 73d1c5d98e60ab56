package interp

import (
	"math"

	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/mem"
)

// Bilinear blends the 4 pixels surrounding the requested coordinate.
// Out-of-range contributing pixels contribute 0 rather than being
// excluded from the blend weights, matching the reference behaviour.
type Bilinear struct {
	view   mem.ReaderView
	mapper coord.Mapper
}

// NewBilinear builds a Bilinear interpolator over view.
func NewBilinear(view mem.ReaderView) Bilinear {
	return Bilinear{view: view, mapper: coord.NewMapper(view.Width(), view.Height(), view.Aspect())}
}

func (b Bilinear) sample(c mem.Channel, ix, iy int) float64 {
	if ix < 0 || ix >= b.view.Width() || iy < 0 || iy >= b.view.Height() {
		return 0
	}
	return b.view.Px(c, ix, iy)
}

func (b Bilinear) GetPxVal(c mem.Channel, x, y float64) float64 {
	px, py := b.mapper.ToPixel(x, y)
	x0 := math.Floor(px)
	y0 := math.Floor(py)
	fx := px - x0
	fy := py - y0
	ix0, iy0 := int(x0), int(y0)

	v00 := b.sample(c, ix0, iy0)
	v10 := b.sample(c, ix0+1, iy0)
	v01 := b.sample(c, ix0, iy0+1)
	v11 := b.sample(c, ix0+1, iy0+1)

	top := v00*(1-fx) + v10*fx
	bot := v01*(1-fx) + v11*fx
	return top*(1-fy) + bot*fy
}

func (b Bilinear) GetPxVals(t mem.CoordTuple) mem.ColourTuple { return getPxVals(b, t) }
