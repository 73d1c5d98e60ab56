package model

import (
	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/errkind"
	"github.com/ausocean/lenscorr/mem"
)

// GeometryConvert maps a destination coordinate through the destination
// projection's spherical view, then back through the source projection's
// cartesian plane, reprojecting an image shot under one lens geometry as
// though it had been shot under another. If either leg fails, the
// coordinate is marked out of bounds (see outOfBounds) so the interpolator
// treats it as a sample with no source.
type GeometryConvert struct {
	Base coord.Base
	src  geomLeg
	dst  geomLeg
}

type geomLeg struct {
	kind GeometryKind
	f    float64
}

// onlySupportedSourceKinds lists the source projections this model knows
// how to convert from. The source implementation this is distilled from
// only wired up two source geometries explicitly and fell through for the
// rest; here that is a configuration-time error rather than silent
// undefined behaviour.
var onlySupportedSourceKinds = map[GeometryKind]bool{
	Rectilinear:      true,
	FisheyeEquisolid: true,
}

// NewGeometryConvert builds a GeometryConvert model. srcF and dstF are the
// focal lengths (or shared crop-equivalent scale) of the source and
// destination geometries respectively.
func NewGeometryConvert(base coord.Base, srcKind GeometryKind, srcF float64, dstKind GeometryKind, dstF float64) (GeometryConvert, error) {
	if !onlySupportedSourceKinds[srcKind] {
		return GeometryConvert{}, errkind.NewIllegalArgument("model: unsupported source geometry kind %v", srcKind)
	}
	if dstKind.build(dstF) == nil {
		return GeometryConvert{}, errkind.NewIllegalArgument("model: unsupported destination geometry kind %v", dstKind)
	}
	return GeometryConvert{
		Base: base,
		src:  geomLeg{kind: srcKind, f: srcF},
		dst:  geomLeg{kind: dstKind, f: dstF},
	}, nil
}

func (m GeometryConvert) eval(_ int, x, y float64) (float64, float64) {
	dst := m.dst.kind.build(m.dst.f)
	src := m.src.kind.build(m.src.f)
	phi, theta, ok := dst.ToSpherical(x, y)
	if !ok {
		return outOfBounds, outOfBounds
	}
	sx, sy, ok := src.ToCartesian(phi, theta)
	if !ok {
		return outOfBounds, outOfBounds
	}
	return sx, sy
}

func (m GeometryConvert) Apply(t *mem.CoordTuple) { applyGeomToChannels(t, m.Base, m.eval) }

func (m GeometryConvert) Clone() GeomModel { return m }
