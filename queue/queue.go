// Package queue composes correction models into the three ordered queues
// the transform driver evaluates per output pixel: a subpixel geometric
// queue (per-channel source coordinates), a pixel geometric queue (a
// single evaluation point, e.g. for vignetting), and a colour queue
// (multiplicative per-channel gains).
package queue

import (
	"github.com/ausocean/lenscorr/mem"
	"github.com/ausocean/lenscorr/model"
)

// SubpixelQueue produces per-channel source coordinates from a destination
// coordinate, running each contained model in insertion order.
type SubpixelQueue struct {
	models []model.GeomModel
}

// Add appends m to the queue and returns the queue for chaining.
func (q *SubpixelQueue) Add(m model.GeomModel) *SubpixelQueue {
	q.models = append(q.models, m)
	return q
}

// Clear removes every model from the queue.
func (q *SubpixelQueue) Clear() { q.models = nil }

// Len returns the number of models in the queue.
func (q *SubpixelQueue) Len() int { return len(q.models) }

// Clone deep-copies the queue: every contained model is cloned, and
// mutating the clone's list never affects the original.
func (q SubpixelQueue) Clone() SubpixelQueue {
	cloned := make([]model.GeomModel, len(q.models))
	for i, m := range q.models {
		cloned[i] = m.Clone()
	}
	return SubpixelQueue{models: cloned}
}

// GetSrcCoords seeds a CoordTuple of the given channel count at (dstX,
// dstY) and runs every model over it in order, returning the final
// per-channel source coordinates.
func (q SubpixelQueue) GetSrcCoords(dstX, dstY float64, channels int) mem.CoordTuple {
	t := mem.NewCoordTuple(channels, dstX, dstY)
	for _, m := range q.models {
		m.Apply(&t)
	}
	return t
}

// PixelQueue is identical to SubpixelQueue except it always operates on a
// single (monochrome) evaluation point, used for colour-queue evaluation
// coordinates that should not vary per channel.
type PixelQueue struct {
	models []model.GeomModel
}

func (q *PixelQueue) Add(m model.GeomModel) *PixelQueue {
	q.models = append(q.models, m)
	return q
}

func (q *PixelQueue) Clear() { q.models = nil }

func (q *PixelQueue) Len() int { return len(q.models) }

func (q PixelQueue) Clone() PixelQueue {
	cloned := make([]model.GeomModel, len(q.models))
	for i, m := range q.models {
		cloned[i] = m.Clone()
	}
	return PixelQueue{models: cloned}
}

// GetSrcCoord seeds a single-channel CoordTuple at (dstX, dstY) and runs
// every model over it in order.
func (q PixelQueue) GetSrcCoord(dstX, dstY float64) mem.CoordTuple {
	t := mem.NewCoordTuple(1, dstX, dstY)
	for _, m := range q.models {
		m.Apply(&t)
	}
	return t
}

// ColourQueue accumulates multiplicative per-channel gains from an ordered
// sequence of colour models, evaluated at one (x, y) coordinate.
type ColourQueue struct {
	models []model.ColourModel
}

func (q *ColourQueue) Add(m model.ColourModel) *ColourQueue {
	q.models = append(q.models, m)
	return q
}

func (q *ColourQueue) Clear() { q.models = nil }

func (q *ColourQueue) Len() int { return len(q.models) }

func (q ColourQueue) Clone() ColourQueue {
	cloned := make([]model.ColourModel, len(q.models))
	for i, m := range q.models {
		cloned[i] = m.Clone()
	}
	return ColourQueue{models: cloned}
}

// GetCorrectionFactors seeds a ColourTuple of n unit gains and multiplies
// in every model's gains at (x, y), in insertion order.
func (q ColourQueue) GetCorrectionFactors(x, y float64, n int) mem.ColourTuple {
	acc := mem.NewColourTuple(n, 1)
	for _, m := range q.models {
		acc = acc.Mul(m.Gains(x, y, n))
	}
	return acc
}
