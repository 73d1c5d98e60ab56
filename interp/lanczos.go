package interp

import (
	"math"

	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/errkind"
	"github.com/ausocean/lenscorr/mem"
)

// DefaultLanczosRadius is the typical support radius used when none is
// specified.
const DefaultLanczosRadius = 3

// Lanczos is a separable sinc-windowed-sinc interpolator. Each channel is
// sampled independently, since the subpixel queue may deliver a different
// (x, y) per channel.
type Lanczos struct {
	view   mem.ReaderView
	mapper coord.Mapper
	radius int
}

// NewLanczos builds a Lanczos interpolator with the given support radius
// (number of lobes sampled on each side of the kernel's centre tap).
func NewLanczos(view mem.ReaderView, radius int) (Lanczos, error) {
	if radius <= 0 {
		return Lanczos{}, errkind.NewIllegalArgument("interp: lanczos radius must be positive, got %d", radius)
	}
	return Lanczos{view: view, mapper: coord.NewMapper(view.Width(), view.Height(), view.Aspect()), radius: radius}, nil
}

func sinc(t float64) float64 {
	if t == 0 {
		return 1
	}
	return math.Sin(math.Pi*t) / (math.Pi * t)
}

func lanczosWeight(t float64, a int) float64 {
	if math.Abs(t) >= float64(a) {
		return 0
	}
	return sinc(t) * sinc(t/float64(a))
}

func (l Lanczos) GetPxVal(c mem.Channel, x, y float64) float64 {
	px, py := l.mapper.ToPixel(x, y)
	x0 := math.Floor(px)
	y0 := math.Floor(py)
	fx := px - x0
	fy := py - y0

	var sum, wsum float64
	for j := -l.radius + 1; j <= l.radius; j++ {
		iy := int(y0) + j
		wy := lanczosWeight(float64(j)-fy, l.radius)
		if wy == 0 || iy < 0 || iy >= l.view.Height() {
			continue
		}
		for i := -l.radius + 1; i <= l.radius; i++ {
			ix := int(x0) + i
			wx := lanczosWeight(float64(i)-fx, l.radius)
			if wx == 0 || ix < 0 || ix >= l.view.Width() {
				continue
			}
			w := wx * wy
			sum += w * l.view.Px(c, ix, iy)
			wsum += w
		}
	}
	if wsum == 0 {
		return 0
	}
	// Negative kernel lobes can overshoot the channel range near edges.
	return l.view.Storage().Clamp(sum / wsum)
}

func (l Lanczos) GetPxVals(t mem.CoordTuple) mem.ColourTuple { return getPxVals(l, t) }
