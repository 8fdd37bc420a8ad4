package wave

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// TicksPerBand is how many phase ticks each hue band lasts.
	TicksPerBand = 40
	// Bands is the number of hue bands in one color cycle.
	Bands = 6
	// PhasePeriod is the length of a full color cycle in ticks.
	PhasePeriod = TicksPerBand * Bands

	bandHueStep  = 60.0
	gradientHue  = 40.0
	baseSat      = 85.0
	satRange     = 15.0
	baseLight    = 40.0
	lightRange   = 35.0
	fullTurn     = 360.0
)

// Dark is the color of cells outside the wave (#1a1a1a).
var Dark = colorful.Color{R: 0x1a / 255.0, G: 0x1a / 255.0, B: 0x1a / 255.0}

// Band returns the zero-based hue band for a phase.
func Band(phase int) int {
	b := (phase / TicksPerBand) % Bands
	if b < 0 {
		b += Bands
	}
	return b
}

// HSL returns hue in degrees and saturation/lightness in percent.
// ok is false for unlit cells, which have no HSL value.
func HSL(intensity, gradientPos float64, phase int) (h, s, l float64, ok bool) {
	if intensity == 0 {
		return 0, 0, 0, false
	}
	base := float64(Band(phase)) * bandHueStep
	h = math.Mod(base+gradientPos*gradientHue, fullTurn)
	s = baseSat + intensity*satRange
	l = baseLight + intensity*lightRange
	return h, s, l, true
}

// ColorOf maps a cell to its display color.
func ColorOf(intensity, gradientPos float64, phase int) colorful.Color {
	h, s, l, ok := HSL(intensity, gradientPos, phase)
	if !ok {
		return Dark
	}
	return colorful.Hsl(h, s/100, l/100).Clamped()
}

// CellColor is ColorOf for a Cell.
func CellColor(c Cell, phase int) colorful.Color {
	return ColorOf(c.Intensity, c.GradientPosition, phase)
}
