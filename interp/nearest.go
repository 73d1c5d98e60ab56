package interp

import (
	"math"

	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/mem"
)

// Nearest is nearest-neighbour sampling: the source pixel closest to the
// requested coordinate, or the null value when that pixel falls outside
// the view.
type Nearest struct {
	view   mem.ReaderView
	mapper coord.Mapper
}

// NewNearest builds a Nearest interpolator over view, caching scale_x and
// scale_y from the view's dimensions and aspect ratio.
func NewNearest(view mem.ReaderView) Nearest {
	return Nearest{view: view, mapper: coord.NewMapper(view.Width(), view.Height(), view.Aspect())}
}

func (n Nearest) GetPxVal(c mem.Channel, x, y float64) float64 {
	px, py := n.mapper.ToPixel(x, y)
	ix := int(math.Round(px))
	iy := int(math.Round(py))
	if ix < 0 || ix >= n.view.Width() || iy < 0 || iy >= n.view.Height() {
		return 0
	}
	return n.view.Px(c, ix, iy)
}

func (n Nearest) GetPxVals(t mem.CoordTuple) mem.ColourTuple { return getPxVals(n, t) }
