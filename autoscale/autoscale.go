// Package autoscale numerically determines the output scale that makes a
// corrected frame either tightly fit inside the unit viewport, or fully
// cover it with no exposed background.
package autoscale

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ausocean/lenscorr/errkind"
	"github.com/ausocean/lenscorr/queue"
)

// Mode selects which viewport relationship the scale solves for.
type Mode int

const (
	// Fit: the corrected frame's bounding box sits entirely inside the
	// viewport (nothing is cropped, background may show at the edges).
	Fit Mode = iota
	// Fill: the corrected frame covers the viewport entirely (no
	// exposed background, corners of the source may be cropped).
	Fill
)

// samplesPerEdge controls border sample density; "several dozen per edge"
// per the reference algorithm. It is odd so that each edge's midpoint
// (t = 0.5) is itself a sample.
const samplesPerEdge = 65

// edgesPerStep is the number of samples sampleBorder adds per border
// parameter step, one on each of the four edges.
const edgesPerStep = 4

// Stats reports the dispersion of the sampled border measures, useful as a
// diagnostic for how aggressively a scale had to correct the frame.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Logger is the subset of transform.Logger the auto-scaler uses to report
// convergence diagnostics. nil means silent.
type Logger interface {
	Log(level int8, message string, params ...interface{})
}

// borderMeasure maps a destination border point through the subpixel and
// pixel queues and reduces the resulting per-channel coordinates to a
// single scalar: the largest of |x|/aspect and |y| across every channel,
// i.e. how far out of the unit viewport this point lands once mapped.
func borderMeasure(sq queue.SubpixelQueue, pq queue.PixelQueue, aspect float64, channels int, dx, dy float64) float64 {
	measure := 0.0
	coords := sq.GetSrcCoords(dx, dy, channels)
	for c := 0; c < channels; c++ {
		x, y := coords.Get(c)
		measure = math.Max(measure, math.Max(math.Abs(x)/aspect, math.Abs(y)))
	}
	mono := pq.GetSrcCoord(dx, dy)
	mx, my := mono.Get(0)
	measure = math.Max(measure, math.Max(math.Abs(mx)/aspect, math.Abs(my)))
	return measure
}

// sampleBorder walks the border of [-aspect, aspect] x [-1, 1] densely,
// including both edges and midpoints, and returns the measure at each
// sample plus the (dx, dy) it came from. Samples are interleaved by edge
// (top, bottom, left, right for each t), so the previous and next samples
// along one edge sit edgesPerStep indices away.
func sampleBorder(sq queue.SubpixelQueue, pq queue.PixelQueue, aspect float64, channels int) (measures, dxs, dys []float64) {
	ts := make([]float64, samplesPerEdge)
	floats.Span(ts, 0, 1)

	add := func(dx, dy float64) {
		dxs = append(dxs, dx)
		dys = append(dys, dy)
		measures = append(measures, borderMeasure(sq, pq, aspect, channels, dx, dy))
	}
	for _, t := range ts {
		// Top and bottom edges.
		add(-aspect+2*aspect*t, -1)
		add(-aspect+2*aspect*t, 1)
		// Left and right edges.
		add(-aspect, -1+2*t)
		add(aspect, -1+2*t)
	}
	return measures, dxs, dys
}

// refineExtremum bisects the border parameter around the sample that
// produced the extremal measure, in case the true extremum falls between
// two samples (a non-monotonic mapping). (dx0, dy0) is the extremal
// sample and (dx1, dy1) a sample adjacent to it along the same edge;
// extFn picks max or min.
func refineExtremum(sq queue.SubpixelQueue, pq queue.PixelQueue, aspect float64, channels int,
	dx0, dy0, dx1, dy1 float64, iterations int, extFn func(a, b float64) float64) float64 {
	lo, hi := 0.0, 1.0
	best := extFn(
		borderMeasure(sq, pq, aspect, channels, dx0, dy0),
		borderMeasure(sq, pq, aspect, channels, dx1, dy1),
	)
	for i := 0; i < iterations; i++ {
		mid := (lo + hi) / 2
		dx := dx0 + (dx1-dx0)*mid
		dy := dy0 + (dy1-dy0)*mid
		m := borderMeasure(sq, pq, aspect, channels, dx, dy)
		best = extFn(best, m)
		// Walk toward whichever half currently holds the extremum by
		// comparing the midpoint against both endpoints' measures.
		mLo := borderMeasure(sq, pq, aspect, channels, dx0+(dx1-dx0)*lo, dy0+(dy1-dy0)*lo)
		mHi := borderMeasure(sq, pq, aspect, channels, dx0+(dx1-dx0)*hi, dy0+(dy1-dy0)*hi)
		if extFn(m, mLo) == m && extFn(m, mHi) != m {
			hi = mid
		} else {
			lo = mid
		}
	}
	return best
}

// Scale runs the auto-scaler and returns the scale factor k.
func Scale(mode Mode, sq queue.SubpixelQueue, pq queue.PixelQueue, aspect float64, channels int, logger Logger) (float64, error) {
	if aspect <= 0 {
		return 0, errkind.NewIllegalArgument("autoscale: aspect must be positive, got %v", aspect)
	}
	if channels != 3 && channels != 4 {
		return 0, errkind.NewIllegalArgument("autoscale: channels must be 3 or 4, got %d", channels)
	}

	measures, dxs, dys := sampleBorder(sq, pq, aspect, channels)

	extFn := math.Max
	if mode == Fill {
		extFn = math.Min
	}
	extreme := measures[0]
	extIdx := 0
	for i, m := range measures {
		if extFn(m, extreme) == m && m != extreme {
			extreme = m
			extIdx = i
		}
	}
	// Refine against the two samples adjacent to the extremal one, in
	// case the true extremum lies between border samples rather than
	// exactly on one (the non-monotonic case bisection exists for).
	for _, neighbour := range []int{extIdx - edgesPerStep, extIdx + edgesPerStep} {
		if neighbour < 0 || neighbour >= len(measures) {
			continue
		}
		refined := refineExtremum(sq, pq, aspect, channels,
			dxs[extIdx], dys[extIdx], dxs[neighbour], dys[neighbour], 20, extFn)
		extreme = extFn(extreme, refined)
	}

	if extreme <= 0 {
		return 0, errkind.NewIllegalArgument("autoscale: degenerate border measure (queue collapses the frame to a point)")
	}
	k := 1 / extreme

	if logger != nil {
		s := Statistics(measures)
		logger.Log(1, "autoscale converged", "mode", mode, "k", k, "mean", s.Mean, "stddev", s.StdDev, "min", s.Min, "max", s.Max)
	}
	return k, nil
}

// Statistics summarises the sampled border measures, for diagnostics.
func Statistics(measures []float64) Stats {
	mean, std := stat.MeanStdDev(measures, nil)
	return Stats{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(measures),
		Max:    floats.Max(measures),
	}
}
