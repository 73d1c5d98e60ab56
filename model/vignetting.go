package model

import (
	"math"

	"github.com/ausocean/lenscorr/mem"
)

// Vignetting implements polynomial vignetting correction:
// g(r) = 1 + a*r^2 + b*r^4 + c*r^6, with the returned gain being 1/g so
// that multiplying a darkened sample by it restores uniform brightness.
// The same (a, b, c) apply to every channel unless per-channel variants
// are supplied via NewVignettingPerChannel.
type Vignetting struct {
	A, B, C [mem.MaxChannels]float64
}

// NewVignetting builds a Vignetting model with (a, b, c) shared across all
// channels.
func NewVignetting(a, b, c float64) Vignetting {
	m := Vignetting{}
	for ch := 0; ch < mem.MaxChannels; ch++ {
		m.A[ch], m.B[ch], m.C[ch] = a, b, c
	}
	return m
}

// NewVignettingPerChannel builds a Vignetting model with independent
// (a, b, c) per channel.
func NewVignettingPerChannel(a, b, c [mem.MaxChannels]float64) Vignetting {
	return Vignetting{A: a, B: b, C: c}
}

func (m Vignetting) Gains(x, y float64, n int) mem.ColourTuple {
	r := math.Hypot(x, y)
	r2 := r * r
	out := mem.NewColourTuple(n, 1)
	for c := 0; c < n; c++ {
		g := 1 + m.A[c]*r2 + m.B[c]*r2*r2 + m.C[c]*r2*r2*r2
		out.Set(c, 1/g)
	}
	return out
}

func (m Vignetting) Clone() ColourModel { return m }

// FlatColourBalance returns constant per-channel gains, independent of
// position.
type FlatColourBalance struct {
	Gain [mem.MaxChannels]float64
}

// NewFlatColourBalance builds a FlatColourBalance model.
func NewFlatColourBalance(gain [mem.MaxChannels]float64) FlatColourBalance {
	return FlatColourBalance{Gain: gain}
}

func (m FlatColourBalance) Gains(_, _ float64, n int) mem.ColourTuple {
	out := mem.NewColourTuple(n, 1)
	for c := 0; c < n; c++ {
		out.Set(c, m.Gain[c])
	}
	return out
}

func (m FlatColourBalance) Clone() ColourModel { return m }
