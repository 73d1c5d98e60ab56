// Package model implements the concrete correction models: geometric
// (subpixel/pixel) models that rewrite a destination coordinate into a
// source coordinate, and colour models that compute a multiplicative gain
// at a destination coordinate.
package model

import (
	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/geom"
	"github.com/ausocean/lenscorr/mem"
)

// GeomModel is a geometric correction model. Apply mutates t in place,
// overwriting each of t's (x, y) pairs with the corresponding source
// coordinate. The same interface serves both the subpixel queue (t seeded
// with one (x, y) per colour channel, enabling transverse chromatic
// aberration) and the pixel queue (t seeded with a single monochrome
// evaluation point).
type GeomModel interface {
	Apply(t *mem.CoordTuple)
	Clone() GeomModel
}

// ColourModel computes a multiplicative per-channel gain at a destination
// coordinate, for n channels (3 for RGB, 4 for RGBA).
type ColourModel interface {
	Gains(x, y float64, n int) mem.ColourTuple
	Clone() ColourModel
}

// outOfBounds is the sentinel coordinate geometric models emit when a
// conversion has no valid source point (a failed projection leg). It lies
// far outside any normalised viewport, so every interpolator's bounds
// check rejects it and the sample resolves to the null value.
const outOfBounds = 1e6

// GeometryKind names a supported lens geometry for the projection
// conversion model.
type GeometryKind int

const (
	Rectilinear GeometryKind = iota
	FisheyeEquidistant
	FisheyeEquisolid
	FisheyeOrthographic
	FisheyeStereographic
)

func (g GeometryKind) build(f float64) geom.Projection {
	switch g {
	case Rectilinear:
		return geom.Rectilinear{F: f}
	case FisheyeEquidistant:
		return geom.FisheyeEquidistant{F: f}
	case FisheyeEquisolid:
		return geom.FisheyeEquisolid{F: f}
	case FisheyeOrthographic:
		return geom.FisheyeOrthographic{F: f}
	case FisheyeStereographic:
		return geom.FisheyeStereographic{F: f}
	default:
		return nil
	}
}

// applyGeomToChannels runs fn over every channel of t, overwriting each
// channel's (x, y) with fn's result. Shared by every GeomModel
// implementation in this package so the per-channel loop and the
// coord_fact bracketing live in one place.
func applyGeomToChannels(t *mem.CoordTuple, base coord.Base, fn func(c int, x, y float64) (float64, float64)) {
	for c := 0; c < t.Channels(); c++ {
		x, y := t.Get(c)
		x, y = base.Apply(x, y)
		x, y = fn(c, x, y)
		x, y = base.Unapply(x, y)
		t.Set(c, x, y)
	}
}
