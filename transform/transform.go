// Package transform implements the image-transform driver: the per-pixel
// evaluation loop that ties a subpixel queue, a pixel queue, a colour
// queue and an interpolator together and writes a corrected frame.
package transform

import (
	"sync"

	"github.com/ausocean/lenscorr/autoscale"
	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/interp"
	"github.com/ausocean/lenscorr/mem"
	"github.com/ausocean/lenscorr/model"
)

// Transform is a configured, ready-to-run correction pass. Build one with
// New, which validates cfg and freezes the interpolator and queues for the
// duration of Run.
type Transform struct {
	cfg Config
}

// New validates cfg and returns a Transform, or the first IllegalArgument /
// NotImplemented Validate reports.
func New(cfg Config) (Transform, error) {
	if err := cfg.Validate(); err != nil {
		return Transform{}, err
	}
	return Transform{cfg: cfg}, nil
}

func (t Transform) buildInterpolator() (interp.Interpolator, error) {
	switch t.cfg.Interpolator {
	case Bilinear:
		return interp.NewBilinear(t.cfg.Reader), nil
	case Lanczos:
		radius := t.cfg.LanczosRadius
		if radius == 0 {
			radius = interp.DefaultLanczosRadius
		}
		return interp.NewLanczos(t.cfg.Reader, radius)
	default:
		return interp.NewNearest(t.cfg.Reader), nil
	}
}

// AutoScale runs the auto-scaler against the transform's configured queues
// and reports the computed scale k, without mutating the queues. Callers
// that want it applied add a scaling model with k themselves or rely on
// Run(), which applies it automatically when cfg.AutoScale != AutoScaleNone.
func (t Transform) AutoScale() (float64, error) {
	aspect := t.cfg.Writer.Aspect()
	channels := t.cfg.Writer.Storage().Channels()
	return autoscale.Scale(t.cfg.autoscaleMode(), t.cfg.SubpixelQueue, t.cfg.PixelQueue, aspect, channels, t.cfg.Logger)
}

// Run executes the correction pass described in Config, writing every
// pixel of the writer view exactly once. The source buffer is never
// written. Rows are processed by a fixed worker pool; workers share the
// immutable queues, interpolator and reader view and each owns a disjoint
// set of writer rows, so no synchronisation is needed beyond the
// dispatching WaitGroup.
func (t Transform) Run() error {
	if err := t.cfg.Validate(); err != nil {
		return err
	}

	subQueue := t.cfg.SubpixelQueue
	pxQueue := t.cfg.PixelQueue
	colQueue := t.cfg.ColourQueue

	if t.cfg.AutoScale != AutoScaleNone {
		k, err := t.AutoScale()
		if err != nil {
			return err
		}
		scale := model.NewScaling(coord.NewBase(1, 1, 1, 1), k)
		subQueue = subQueue.Clone()
		pxQueue = pxQueue.Clone()
		subQueue.Add(scale)
		pxQueue.Add(scale)
	}

	interpolator, err := t.buildInterpolator()
	if err != nil {
		return err
	}

	writer := t.cfg.Writer
	storage := writer.Storage()
	wOut, hOut := writer.Width(), writer.Height()
	mapper := coord.NewMapper(wOut, hOut, writer.Aspect())
	channels := storage.Channels()

	if logger := t.cfg.Logger; logger != nil {
		logger.Log(LevelDebug, "transform: starting", "rows", hOut, "workers", t.cfg.workers())
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	workers := t.cfg.workers()
	if workers > hOut {
		workers = hOut
	}
	if workers < 1 {
		workers = 1
	}

	runRow := func(iy int) {
		it := writer.Iter(0, iy)
		for ix := 0; ix < wOut; ix++ {
			dx, dy := mapper.ToNormalised(ix, iy)

			coords := subQueue.GetSrcCoords(dx, dy, channels)
			monoSrc := pxQueue.GetSrcCoord(dx, dy)
			monoX, monoY := monoSrc.Get(0)

			samples := interpolator.GetPxVals(coords)
			gains := colQueue.GetCorrectionFactors(monoX, monoY, channels)

			for c := 0; c < channels; c++ {
				v := samples.Get(c) * gains.Get(c)
				v = storage.Clamp(v)
				it.Set(mem.Channel(c), roundHalfAwayFromZero(v))
			}
			it.Next()
		}
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for iy := range rows {
				runRow(iy)
			}
		}()
	}
	for iy := 0; iy < hOut; iy++ {
		rows <- iy
	}
	close(rows)
	wg.Wait()

	if logger := t.cfg.Logger; logger != nil {
		logger.Log(LevelDebug, "transform: done")
	}
	return nil
}

// roundHalfAwayFromZero implements the numeric contract's final cast:
// round-half-away-from-zero rather than Go's round-half-to-even. Channel
// values are always non-negative (storage.Clamp has already floored them
// at 0), so this reduces to round-half-up.
func roundHalfAwayFromZero(v float64) float64 {
	return float64(int64(v + 0.5))
}
