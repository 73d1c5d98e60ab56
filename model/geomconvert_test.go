package model

import (
	"math"
	"testing"

	"github.com/ausocean/lenscorr/mem"
)

func TestGeometryConvertIdentityWhenSameProjection(t *testing.T) {
	m, err := NewGeometryConvert(identityBase(), Rectilinear, 50, Rectilinear, 50)
	if err != nil {
		t.Fatal(err)
	}
	tup := mem.NewCoordTuple(1, 0.2, -0.15)
	m.Apply(&tup)
	x, y := tup.Get(0)
	if math.Abs(x-0.2) > 1e-9 || math.Abs(y-(-0.15)) > 1e-9 {
		t.Errorf("same-geometry conversion should be identity, got (%v,%v)", x, y)
	}
}

func TestGeometryConvertRejectsUnsupportedSource(t *testing.T) {
	if _, err := NewGeometryConvert(identityBase(), FisheyeOrthographic, 50, Rectilinear, 50); err == nil {
		t.Fatal("expected error for unsupported source geometry")
	}
}

func TestGeometryConvertOutOfBoundsOnFailedLeg(t *testing.T) {
	// A point far outside the destination orthographic projection's valid
	// disc (r >= f) has no corresponding spherical coordinate.
	m, err := NewGeometryConvert(identityBase(), Rectilinear, 50, FisheyeOrthographic, 50)
	if err != nil {
		t.Fatal(err)
	}
	tup := mem.NewCoordTuple(1, 1e9, 1e9)
	m.Apply(&tup)
	x, y := tup.Get(0)
	if x < 1e5 || y < 1e5 {
		t.Errorf("expected out-of-bounds sentinel, got (%v,%v)", x, y)
	}
}
