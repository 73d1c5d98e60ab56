package model

import (
	"math"
	"testing"
)

func TestVignettingCentreUnity(t *testing.T) {
	m := NewVignetting(0.5, 0, 0)
	got := m.Gains(0, 0, 3)
	for c := 0; c < 3; c++ {
		if math.Abs(got.Get(c)-1) > 1e-12 {
			t.Errorf("centre gain[%d] = %v, want 1", c, got.Get(c))
		}
	}
}

func TestVignettingCorrectsDarkening(t *testing.T) {
	m := NewVignetting(0.5, 0, 0)
	r := math.Sqrt(2 * 0.9 * 0.9) // near-corner radius
	gains := m.Gains(0.9, 0.9, 3)
	want := 1 / (1 + 0.5*r*r)
	if math.Abs(gains.Get(0)-want) > 1e-9 {
		t.Errorf("gain = %v, want %v", gains.Get(0), want)
	}
	if gains.Get(0) >= 1 {
		t.Errorf("gain at corner should be < 1 (positive vignetting), got %v", gains.Get(0))
	}
}

func TestFlatColourBalanceIgnoresPosition(t *testing.T) {
	m := NewFlatColourBalance([4]float64{1.1, 1.0, 0.9, 1.0})
	g1 := m.Gains(0, 0, 4)
	g2 := m.Gains(0.8, -0.3, 4)
	for c := 0; c < 4; c++ {
		if g1.Get(c) != g2.Get(c) {
			t.Errorf("channel %d varies with position: %v vs %v", c, g1.Get(c), g2.Get(c))
		}
	}
}
