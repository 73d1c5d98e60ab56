package transform

import (
	"runtime"

	"github.com/ausocean/lenscorr/autoscale"
	"github.com/ausocean/lenscorr/errkind"
	"github.com/ausocean/lenscorr/mem"
	"github.com/ausocean/lenscorr/queue"
)

// InterpolatorKind selects which interp.Interpolator the driver builds over
// the reader view.
type InterpolatorKind int

const (
	Nearest InterpolatorKind = iota
	Bilinear
	Lanczos
)

// AutoScaleMode selects whether Run inserts a trailing auto-computed
// scaling model before transforming, and if so which viewport relationship
// it solves for. None leaves the configured queues untouched.
type AutoScaleMode int

const (
	AutoScaleNone AutoScaleMode = iota
	AutoScaleFit
	AutoScaleFill
)

// Config holds everything a Transform needs: the two views, the three
// correction queues, the interpolator choice and its tuning knobs, the
// auto-scale mode, worker count and an optional Logger. Validate must
// succeed before Run is called; Run calls it itself and returns its error.
type Config struct {
	Reader mem.ReaderView
	Writer mem.WriterView

	Interpolator InterpolatorKind
	LanczosRadius int // only consulted when Interpolator == Lanczos; 0 means DefaultLanczosRadius

	SubpixelQueue queue.SubpixelQueue
	PixelQueue    queue.PixelQueue
	ColourQueue   queue.ColourQueue

	AutoScale AutoScaleMode

	// Workers caps the number of goroutines processing output rows; 0
	// means runtime.GOMAXPROCS(0).
	Workers int

	Logger Logger
}

// Validate checks every precondition transform() requires at configuration
// time, per the IllegalArgument/NotImplemented propagation policy: nothing
// here is deferred to Run.
func (c Config) Validate() error {
	if c.Reader.Width() <= 0 || c.Reader.Height() <= 0 {
		return errkind.NewIllegalArgument("transform: reader view has zero dimension")
	}
	if c.Writer.Width() <= 0 || c.Writer.Height() <= 0 {
		return errkind.NewIllegalArgument("transform: writer view has zero dimension")
	}
	switch c.Interpolator {
	case Nearest, Bilinear, Lanczos:
	default:
		return errkind.NewNotImplemented("transform: unknown interpolator kind %d", c.Interpolator)
	}
	if c.Interpolator == Lanczos && c.LanczosRadius < 0 {
		return errkind.NewIllegalArgument("transform: lanczos radius must be positive, got %d", c.LanczosRadius)
	}
	switch c.AutoScale {
	case AutoScaleNone, AutoScaleFit, AutoScaleFill:
	default:
		return errkind.NewNotImplemented("transform: unknown auto-scale mode %d", c.AutoScale)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (c Config) autoscaleMode() autoscale.Mode {
	if c.AutoScale == AutoScaleFill {
		return autoscale.Fill
	}
	return autoscale.Fit
}
