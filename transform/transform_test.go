package transform

import (
	"math"
	"testing"

	"github.com/ausocean/lenscorr/coord"
	"github.com/ausocean/lenscorr/mem"
	"github.com/ausocean/lenscorr/model"
	"github.com/ausocean/lenscorr/queue"
)

func identityBase() coord.Base { return coord.NewBase(1, 1, 1, 1) }

// Scenario 1: identity queue + nearest reproduces the source exactly.
func TestIdentityQueueBitIdentical(t *testing.T) {
	src := []byte{
		10, 20, 30, 10, 20, 30, 10, 20, 30,
		10, 20, 30, 10, 20, 30, 10, 20, 30,
		10, 20, 30, 10, 20, 30, 10, 20, 30,
	}
	rv, err := mem.NewReaderView(src, 3, 3, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]byte, len(src))
	wv, err := mem.NewWriterView(dst, 3, 3, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}

	xf, err := New(Config{Reader: rv, Writer: wv, Interpolator: Nearest})
	if err != nil {
		t.Fatal(err)
	}
	if err := xf.Run(); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		if src[i] != dst[i] {
			t.Fatalf("byte %d: got %d, want %d (src unchanged at %d)", i, dst[i], src[i], src[i])
		}
	}
}

// Scenario 2: PTLens (0,0,0,1) is a pure identity under bilinear, on a
// checkerboard pattern.
func TestPTLensIdentityScaleCheckerboard(t *testing.T) {
	const n = 5
	src := make([]byte, n*n*3)
	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			v := byte(0)
			if (ix+iy)%2 == 0 {
				v = 255
			}
			off := (iy*n + ix) * 3
			src[off], src[off+1], src[off+2] = v, v, v
		}
	}
	rv, err := mem.NewReaderView(src, n, n, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]byte, len(src))
	wv, err := mem.NewWriterView(dst, n, n, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}

	var sq queue.SubpixelQueue
	sq.Add(model.NewPTLensUniform(identityBase(), 0, 0, 0))

	xf, err := New(Config{Reader: rv, Writer: wv, Interpolator: Bilinear, SubpixelQueue: sq})
	if err != nil {
		t.Fatal(err)
	}
	if err := xf.Run(); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		if int(src[i])-int(dst[i]) > 1 || int(dst[i])-int(src[i]) > 1 {
			t.Fatalf("byte %d: got %d, want ~%d", i, dst[i], src[i])
		}
	}
}

// Scenario 3: vignetting correction restores a uniform-grey frame's
// corners toward the centre value; the exact centre value is unchanged.
func TestVignettingCorrectionRestoresCorners(t *testing.T) {
	const n = 11
	src := make([]byte, n*n*3)
	for i := range src {
		src[i] = 200
	}
	rv, err := mem.NewReaderView(src, n, n, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]byte, len(src))
	wv, err := mem.NewWriterView(dst, n, n, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}

	var cq queue.ColourQueue
	cq.Add(model.NewVignetting(0.5, 0, 0))

	xf, err := New(Config{Reader: rv, Writer: wv, Interpolator: Nearest, ColourQueue: cq})
	if err != nil {
		t.Fatal(err)
	}
	if err := xf.Run(); err != nil {
		t.Fatal(err)
	}

	centre := ((n/2)*n + n/2) * 3 // pixel (n/2, n/2), red channel
	if got := dst[centre]; got != 200 {
		t.Errorf("centre red = %d, want 200", got)
	}

	mapper := coord.NewMapper(n, n, rv.Aspect())
	dx, dy := mapper.ToNormalised(0, 0)
	r2 := dx*dx + dy*dy
	want := 200 / (1 + 0.5*r2)
	corner := 0
	if got := float64(dst[corner]); math.Abs(got-want) > 1.5 {
		t.Errorf("corner red = %v, want ~%v", got, want)
	}
}

// Scenario 4: PTLens with per-channel d = (1.00, 1.01, 0.99) runs through
// the bilinear driver and produces a non-trivial frame.
func TestPTLensChromaticProducesFrame(t *testing.T) {
	src := []byte{
		0, 0, 0, 255, 0, 0,
		0, 255, 0, 0, 0, 255,
	}
	rv, err := mem.NewReaderView(src, 2, 2, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]byte, len(src))
	wv, err := mem.NewWriterView(dst, 2, 2, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}

	var sq queue.SubpixelQueue
	d := [mem.MaxChannels]float64{1.00, 1.01, 0.99, 1}
	sq.Add(model.NewPTLensChromatic(identityBase(), 0, 0, 0, d))

	xf, err := New(Config{Reader: rv, Writer: wv, Interpolator: Bilinear, SubpixelQueue: sq})
	if err != nil {
		t.Fatal(err)
	}
	if err := xf.Run(); err != nil {
		t.Fatal(err)
	}
	// The pipeline ran to completion and produced a full frame; the
	// detailed per-channel expansion/contraction is exercised at the
	// model layer (model.PTLens tests) where it's easier to assert
	// exactly. Here we only check the driver ran the per-channel
	// coordinates through without error and wrote at least one non-zero
	// output byte.
	allZero := true
	for _, b := range dst {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("expected a non-trivial output frame")
	}
}

// Scenario 5: rectilinear -> equidistant conversion runs to completion and
// writes a full frame (closed-form radial accuracy is covered by
// geom/model round-trip tests).
func TestGeometryConversionProducesFullFrame(t *testing.T) {
	const n = 20
	src := make([]byte, n*n*3)
	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			off := (iy*n + ix) * 3
			src[off] = byte(ix * 255 / n)
			src[off+1] = byte(iy * 255 / n)
			src[off+2] = 128
		}
	}
	rv, err := mem.NewReaderView(src, n, n, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]byte, len(src))
	wv, err := mem.NewWriterView(dst, n, n, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}

	conv, err := model.NewGeometryConvert(identityBase(), model.Rectilinear, 50, model.FisheyeEquidistant, 50)
	if err != nil {
		t.Fatal(err)
	}
	var sq queue.SubpixelQueue
	sq.Add(conv)

	xf, err := New(Config{Reader: rv, Writer: wv, Interpolator: Bilinear, SubpixelQueue: sq})
	if err != nil {
		t.Fatal(err)
	}
	if err := xf.Run(); err != nil {
		t.Fatal(err)
	}
}

// Scenario 6: a 10x10 RGBA 16-bit frame with strong barrel distortion,
// auto-scaled in fit mode, has no null-value output pixel.
func TestAutoScaleFitLeavesNoNullPixel(t *testing.T) {
	const n = 10
	src := make([]byte, n*n*4*2)
	rv, err := mem.NewReaderView(src, n, n, mem.RGBA16Inter)
	if err != nil {
		t.Fatal(err)
	}
	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			for c := mem.Red; c <= mem.Alpha; c++ {
				off := (iy*n+ix)*4*2 + int(c)*2
				v := uint16(1000 + ix*100 + iy*10)
				src[off] = byte(v)
				src[off+1] = byte(v >> 8)
			}
		}
	}
	dst := make([]byte, len(src))
	wv, err := mem.NewWriterView(dst, n, n, mem.RGBA16Inter)
	if err != nil {
		t.Fatal(err)
	}

	var sq queue.SubpixelQueue
	var pq queue.PixelQueue
	base := identityBase()
	sq.Add(model.NewPTLensUniform(base, 0, 0.1, 0))
	pq.Add(model.NewPTLensUniform(base, 0, 0.1, 0))

	xf, err := New(Config{
		Reader:        rv,
		Writer:        wv,
		Interpolator:  Bilinear,
		SubpixelQueue: sq,
		PixelQueue:    pq,
		AutoScale:     AutoScaleFit,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := xf.Run(); err != nil {
		t.Fatal(err)
	}

	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			allZero := true
			for c := mem.Red; c <= mem.Alpha; c++ {
				if wv.Px(c, ix, iy) != 0 {
					allZero = false
				}
			}
			if allZero {
				t.Errorf("pixel (%d,%d) is the null value", ix, iy)
			}
		}
	}
}

// Invariant 2: a colour queue of only unit gains leaves values unchanged
// up to |delta| <= 1.
func TestGainIdentity(t *testing.T) {
	src := []byte{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120}
	rv, err := mem.NewReaderView(src, 2, 2, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]byte, len(src))
	wv, err := mem.NewWriterView(dst, 2, 2, mem.RGB8Inter)
	if err != nil {
		t.Fatal(err)
	}

	var cq queue.ColourQueue
	cq.Add(model.NewFlatColourBalance([mem.MaxChannels]float64{1, 1, 1, 1}))

	xf, err := New(Config{Reader: rv, Writer: wv, Interpolator: Nearest, ColourQueue: cq})
	if err != nil {
		t.Fatal(err)
	}
	if err := xf.Run(); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		delta := int(src[i]) - int(dst[i])
		if delta > 1 || delta < -1 {
			t.Errorf("byte %d: |delta| = %d, want <= 1", i, delta)
		}
	}
}

func TestValidateRejectsZeroDimensionView(t *testing.T) {
	buf := []byte{1, 2, 3}
	rv, _ := mem.NewReaderView(buf, 1, 1, mem.RGB8Inter)
	cfg := Config{Reader: rv, Writer: mem.WriterView{}, Interpolator: Nearest}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero-dimension writer view")
	}
}

func TestValidateRejectsNegativeLanczosRadius(t *testing.T) {
	buf := make([]byte, 4*4*3)
	rv, _ := mem.NewReaderView(buf, 4, 4, mem.RGB8Inter)
	wv, _ := mem.NewWriterView(buf, 4, 4, mem.RGB8Inter)
	cfg := Config{Reader: rv, Writer: wv, Interpolator: Lanczos, LanczosRadius: -1}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative lanczos radius")
	}
}
