package coord

import "math"

// Base holds the aspect/crop parameterisation shared by every concrete
// correction model: the aspect ratio and crop factor the model's
// parameters were calibrated against (param), and the aspect ratio and
// crop factor of the image actually being corrected (input). CoordFact
// rescales normalised coordinates so that parameters fitted on one
// aspect/crop combination remain correct on another.
type Base struct {
	ParamAspect float64
	InputAspect float64
	ParamCrop   float64
	InputCrop   float64
}

// NewBase builds a Base and its derived CoordFact.
func NewBase(paramAspect, inputAspect, paramCrop, inputCrop float64) Base {
	return Base{
		ParamAspect: paramAspect,
		InputAspect: inputAspect,
		ParamCrop:   paramCrop,
		InputCrop:   inputCrop,
	}
}

// NewBaseFromInputAspect derives a Base from the input aspect alone:
// param_aspect is taken to be input_aspect if it is already >= 1, otherwise
// its reciprocal, and both crop factors default to 1. This models
// calibrating against a "typical" landscape- or portrait-oriented frame of
// the same proportions as the input.
func NewBaseFromInputAspect(inputAspect float64) Base {
	paramAspect := inputAspect
	if inputAspect <= 1 {
		paramAspect = 1 / inputAspect
	}
	return Base{
		ParamAspect: paramAspect,
		InputAspect: inputAspect,
		ParamCrop:   1,
		InputCrop:   1,
	}
}

// CoordFact is the scalar that corrects normalised coordinates for
// mismatches between the calibration aspect/crop and the input's.
func (b Base) CoordFact() float64 {
	return math.Sqrt(1+b.ParamAspect*b.ParamAspect) /
		math.Sqrt(1+b.InputAspect*b.InputAspect) *
		b.ParamCrop / b.InputCrop
}

// Apply multiplies (x, y) by CoordFact, the step every geometric model
// takes before applying its own mathematics.
func (b Base) Apply(x, y float64) (float64, float64) {
	f := b.CoordFact()
	return x * f, y * f
}

// Unapply divides (x, y) by CoordFact, the step every geometric model
// takes after applying its own mathematics so outputs remain in the
// normalised frame the queue expects.
func (b Base) Unapply(x, y float64) (float64, float64) {
	f := b.CoordFact()
	return x / f, y / f
}
