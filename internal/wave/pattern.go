package wave

import "math"

const (
	// FalloffRadius is the distance at which intensity reaches zero.
	FalloffRadius = 3.5
	// GradientSpan is the number of columns the hue gradient spreads over.
	GradientSpan = 6.0
)

// Cell is the derived state of a single grid cell.
type Cell struct {
	Intensity        float64
	GradientPosition float64
}

// Lit reports whether the cell is inside the wave.
func (c Cell) Lit() bool { return c.Intensity > 0 }

// Generate returns the cells of one row for the given wave position and phase.
func Generate(row, cols int, position float64, phase int) []Cell {
	if cols < 0 {
		cols = 0
	}
	cells := make([]Cell, cols)
	p := float64(phase)
	r := float64(row)

	for col := range cells {
		c := float64(col)
		distance := math.Abs(c - position)
		waveIntensity := math.Max(0, 1-distance/FalloffRadius)
		if waveIntensity == 0 {
			continue
		}

		gradient := clamp01((c - (position - 3)) / GradientSpan)

		rowEffect := math.Sin(r*0.5+p*0.02)*0.3 + 0.7
		timeEffect := math.Sin(p*0.03+c*0.1)*0.2 + 0.8
		waveEffect := math.Sin(distance*0.5+p*0.015)*0.15 + 0.85

		dynamicIntensity := waveIntensity * rowEffect * timeEffect * waveEffect
		dynamicGradient := gradient * (0.5 + 0.5*math.Sin(p*0.025+r*0.3))

		cells[col] = Cell{
			Intensity:        clamp01(dynamicIntensity * (0.3 + 0.7*gradient)),
			GradientPosition: clamp01(dynamicGradient),
		}
	}
	return cells
}

// Grid returns a rows x cols frame.
func Grid(rows, cols int, position float64, phase int) [][]Cell {
	if rows < 0 {
		rows = 0
	}
	grid := make([][]Cell, rows)
	for row := range grid {
		grid[row] = Generate(row, cols, position, phase)
	}
	return grid
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
