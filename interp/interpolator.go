// Package interp samples a pixel-storage view at non-integer per-channel
// normalised coordinates, returning clamped floating-point channel values.
package interp

import "github.com/ausocean/lenscorr/mem"

// Interpolator samples a source view at normalised coordinates. Coordinates
// that resolve outside the source image return the null value (0); this is
// not an error, it is how a sample with no valid source point is recovered
// locally (see the errkind package doc).
type Interpolator interface {
	// GetPxVal samples channel c at normalised (x, y).
	GetPxVal(c mem.Channel, x, y float64) float64
	// GetPxVals samples every channel of t at its own (x, y), returning a
	// ColourTuple of the sampled values. This is the batch entry point the
	// transform driver calls once per output pixel.
	GetPxVals(t mem.CoordTuple) mem.ColourTuple
}

// getPxVals is the shared per-channel loop every Interpolator
// implementation in this package uses for its batch entry point.
func getPxVals(interp Interpolator, t mem.CoordTuple) mem.ColourTuple {
	out := mem.NewColourTuple(t.Channels(), 0)
	for c := 0; c < t.Channels(); c++ {
		x, y := t.Get(c)
		out.Set(c, interp.GetPxVal(mem.Channel(c), x, y))
	}
	return out
}
