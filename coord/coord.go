// Package coord implements the normalised coordinate frame the correction
// pipeline operates in, plus the correction-model base parameterisation
// (param/input aspect and crop) shared by every concrete model.
package coord

// Mapper converts between the integer pixel grid of an image of the given
// dimensions and the normalised coordinate frame centred at the image
// centre, with y spanning [-1, +1] and x spanning [-aspect, +aspect].
type Mapper struct {
	width, height int
	aspect        float64
	scaleX        float64
	scaleY        float64
}

// NewMapper builds a Mapper for an image of the given pixel dimensions and
// aspect ratio. aspect usually equals width/height but may be overridden to
// model non-square sensor pixels.
func NewMapper(width, height int, aspect float64) Mapper {
	return Mapper{
		width:  width,
		height: height,
		aspect: aspect,
		scaleX: float64(width-1) / (2 * aspect),
		scaleY: float64(height-1) / 2,
	}
}

// ToNormalised maps integer pixel (ix, iy) to normalised (dx, dy). An image
// one pixel wide (or tall) has its single column (or row) at the centre, 0.
func (m Mapper) ToNormalised(ix, iy int) (dx, dy float64) {
	if m.width > 1 {
		dx = m.aspect * float64(2*ix-(m.width-1)) / float64(m.width-1)
	}
	if m.height > 1 {
		dy = float64(2*iy-(m.height-1)) / float64(m.height-1)
	}
	return dx, dy
}

// ToPixel maps normalised (dx, dy) back to a (possibly fractional) pixel
// coordinate, using the cached scale_x/scale_y factors interpolators rely
// on to avoid recomputing them per sample.
func (m Mapper) ToPixel(dx, dy float64) (px, py float64) {
	px = dx*m.scaleX + float64(m.width-1)/2
	py = dy*m.scaleY + float64(m.height-1)/2
	return px, py
}

// ScaleX is the cached (W-1)/(2*aspect) factor.
func (m Mapper) ScaleX() float64 { return m.scaleX }

// ScaleY is the cached (H-1)/2 factor.
func (m Mapper) ScaleY() float64 { return m.scaleY }

// Aspect returns the mapper's aspect ratio.
func (m Mapper) Aspect() float64 { return m.aspect }
