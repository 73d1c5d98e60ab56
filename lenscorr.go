package lenscorr

import (
	"github.com/ausocean/lenscorr/autoscale"
	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/mem"
	"github.com/ausocean/lenscorr/model"
	"github.com/ausocean/lenscorr/queue"
	"github.com/ausocean/lenscorr/transform"
)

// Storage descriptors, one per supported channel-count x bit-depth x
// layout combination.
var (
	RGB8Inter    = mem.RGB8Inter
	RGB16Inter   = mem.RGB16Inter
	RGB32Inter   = mem.RGB32Inter
	RGB8Planar   = mem.RGB8Planar
	RGB16Planar  = mem.RGB16Planar
	RGB32Planar  = mem.RGB32Planar
	RGBA8Inter   = mem.RGBA8Inter
	RGBA16Inter  = mem.RGBA16Inter
	RGBA32Inter  = mem.RGBA32Inter
	RGBA8Planar  = mem.RGBA8Planar
	RGBA16Planar = mem.RGBA16Planar
	RGBA32Planar = mem.RGBA32Planar
)

// Storage is a pixel storage descriptor: channel count x bit depth x
// memory layout.
type Storage = mem.Storage

// ReaderView and WriterView are borrowed, non-owning windows over a
// caller-allocated pixel buffer.
type ReaderView = mem.ReaderView
type WriterView = mem.WriterView

// NewReaderView wraps buf as a read-only view under storage s.
func NewReaderView(buf []byte, width, height int, s Storage) (ReaderView, error) {
	return mem.NewReaderView(buf, width, height, s)
}

// NewWriterView wraps buf as a write-only view under storage s.
func NewWriterView(buf []byte, width, height int, s Storage) (WriterView, error) {
	return mem.NewWriterView(buf, width, height, s)
}

// Base carries the param/input aspect and crop parameterisation every
// concrete correction model needs.
type Base = coord.Base

// NewBase builds a Base from explicit param/input aspect and crop values.
func NewBase(paramAspect, inputAspect, paramCrop, inputCrop float64) Base {
	return coord.NewBase(paramAspect, inputAspect, paramCrop, inputCrop)
}

// NewBaseFromInputAspect derives a Base from the input aspect alone.
func NewBaseFromInputAspect(inputAspect float64) Base {
	return coord.NewBaseFromInputAspect(inputAspect)
}

// SubpixelQueue, PixelQueue and ColourQueue compose correction models into
// the ordered queues a Transform evaluates per output pixel.
type SubpixelQueue = queue.SubpixelQueue
type PixelQueue = queue.PixelQueue
type ColourQueue = queue.ColourQueue

// GeomModel and ColourModel are the interfaces SubpixelQueue/PixelQueue and
// ColourQueue accept, respectively.
type GeomModel = model.GeomModel
type ColourModel = model.ColourModel

// GeometryKind names a supported lens geometry for GeometryConvert.
type GeometryKind = model.GeometryKind

const (
	Rectilinear          = model.Rectilinear
	FisheyeEquidistant   = model.FisheyeEquidistant
	FisheyeEquisolid     = model.FisheyeEquisolid
	FisheyeOrthographic  = model.FisheyeOrthographic
	FisheyeStereographic = model.FisheyeStereographic
)

// NewPTLensUniform builds a PTLens radial distortion model with shared
// (a, b, c) across channels.
func NewPTLensUniform(base Base, a, b, c float64) model.PTLens {
	return model.NewPTLensUniform(base, a, b, c)
}

// NewPTLensChromatic builds a PTLens model with per-channel d, letting the
// same radial shape represent transverse chromatic aberration.
func NewPTLensChromatic(base Base, a, b, c float64, d [mem.MaxChannels]float64) model.PTLens {
	return model.NewPTLensChromatic(base, a, b, c, d)
}

// NewVignetting builds a polynomial vignetting correction model.
func NewVignetting(a, b, c float64) model.Vignetting {
	return model.NewVignetting(a, b, c)
}

// NewVignettingPerChannel builds a vignetting model with independent
// (a, b, c) per channel.
func NewVignettingPerChannel(a, b, c [mem.MaxChannels]float64) model.Vignetting {
	return model.NewVignettingPerChannel(a, b, c)
}

// NewFlatColourBalance builds a constant per-channel gain model.
func NewFlatColourBalance(gain [mem.MaxChannels]float64) model.FlatColourBalance {
	return model.NewFlatColourBalance(gain)
}

// NewGeometryConvert builds a model that reprojects coordinates from one
// lens geometry to another.
func NewGeometryConvert(base Base, srcKind GeometryKind, srcF float64, dstKind GeometryKind, dstF float64) (model.GeometryConvert, error) {
	return model.NewGeometryConvert(base, srcKind, srcF, dstKind, dstF)
}

// NewScaling builds a uniform radial scaling model.
func NewScaling(base Base, k float64) model.Scaling {
	return model.NewScaling(base, k)
}

// NewScalingPerChannel builds a per-channel scaling model.
func NewScalingPerChannel(base Base, k [mem.MaxChannels]float64) model.Scaling {
	return model.NewScalingPerChannel(base, k)
}

// NewRotationShift builds a rotate-then-shift affine correction model.
func NewRotationShift(base Base, angleRadians, shiftX, shiftY float64) model.RotationShift {
	return model.NewRotationShift(base, angleRadians, shiftX, shiftY)
}

// NewHorizontalPerspective and NewVerticalPerspective build first-order
// keystone correction models.
func NewHorizontalPerspective(base Base, strength float64) model.Perspective {
	return model.NewHorizontalPerspective(base, strength)
}

func NewVerticalPerspective(base Base, strength float64) model.Perspective {
	return model.NewVerticalPerspective(base, strength)
}

// InterpolatorKind selects the sampling strategy a Transform uses over its
// reader view.
type InterpolatorKind = transform.InterpolatorKind

const (
	Nearest  = transform.Nearest
	Bilinear = transform.Bilinear
	Lanczos  = transform.Lanczos
)

// AutoScaleMode selects whether and how a Transform auto-computes a
// trailing uniform scale before running.
type AutoScaleMode = transform.AutoScaleMode

const (
	AutoScaleNone = transform.AutoScaleNone
	AutoScaleFit  = transform.AutoScaleFit
	AutoScaleFill = transform.AutoScaleFill
)

// Logger is the optional logging sink a Transform reports progress and
// auto-scale diagnostics through.
type Logger = transform.Logger

// Config describes a single correction pass: the reader and writer views,
// the three correction queues, the interpolator choice and the auto-scale
// mode.
type Config = transform.Config

// Transform is a validated, ready-to-run correction pass.
type Transform = transform.Transform

// NewTransform validates cfg and returns a Transform ready for Run.
func NewTransform(cfg Config) (Transform, error) {
	return transform.New(cfg)
}

// AutoScaleMode constants above select Fit or Fill when set on a Config;
// AutoScale runs the auto-scaler standalone, e.g. to report k to a caller
// without running a full transform.
func AutoScale(mode AutoScaleMode, sq SubpixelQueue, pq PixelQueue, aspect float64, channels int, logger Logger) (float64, error) {
	var am autoscale.Mode
	if mode == AutoScaleFill {
		am = autoscale.Fill
	}
	return autoscale.Scale(am, sq, pq, aspect, channels, logger)
}
