package cellcolor

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette/brewer"
)

// Ramp interpolates a [0,1] intensity across a sequential colour palette
type Ramp struct {
	stops []color.Color
}

// the two ramps used by the dual table variant
var (
	VAFRamp      = mustRamp("Blues")
	CoverageRamp = mustRamp("Greens")
)

// NewRamp builds a ramp from a ColorBrewer sequential palette
func NewRamp(name string) (*Ramp, error) {
	pal, err := brewer.GetPalette(brewer.TypeSequential, name, 9)
	if err != nil {
		return nil, err
	}
	return &Ramp{stops: pal.Colors()}, nil
}

// mustRamp is used for the package level ramps, which only reference known palettes
func mustRamp(name string) *Ramp {
	ramp, err := NewRamp(name)
	if err != nil {
		panic(err)
	}
	return ramp
}

// At returns the ramp colour for an intensity, clamped to [0,1] and linearly
// interpolated between palette stops
func (Ramp *Ramp) At(intensity float64) color.Color {
	if math.IsNaN(intensity) || intensity <= 0.0 {
		return Ramp.stops[0]
	}
	if intensity >= 1.0 {
		return Ramp.stops[len(Ramp.stops)-1]
	}
	scaled := intensity * float64(len(Ramp.stops)-1)
	lower := int(scaled)
	frac := scaled - float64(lower)
	return lerp(Ramp.stops[lower], Ramp.stops[lower+1], frac)
}

// lerp blends two colours component-wise
func lerp(a, b color.Color, frac float64) color.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	blend := func(x, y uint32) uint8 {
		return uint8((float64(x)*(1-frac) + float64(y)*frac) / 257.0)
	}
	return color.RGBA{
		R: blend(ar, br),
		G: blend(ag, bg),
		B: blend(ab, bb),
		A: blend(aa, ba),
	}
}
