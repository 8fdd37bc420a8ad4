package anim

import (
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/wavegrid/internal/wave"
)

const (
	MinDim      = 5
	MaxDim      = 30
	DefaultRows = 15
	DefaultCols = 20

	MinSpeed     = 50
	MaxSpeed     = 500
	DefaultSpeed = 150
	SpeedStep    = 10

	// EdgeMargin keeps the wave center this many columns from the right edge.
	EdgeMargin = 3
)

// Direction of wave travel.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Glyph returns an arrow for the direction.
func (d Direction) Glyph() string {
	if d == Left {
		return "←"
	}
	return "→"
}

// State is the complete mutable state of the widget.
type State struct {
	Rows      int
	Cols      int
	Position  int
	Direction Direction
	Phase     int
	Playing   bool
	SpeedMs   int
}

// DefaultState returns the state a freshly mounted widget starts with.
func DefaultState() State {
	return State{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		Position:  0,
		Direction: Right,
		Phase:     0,
		Playing:   true,
		SpeedMs:   DefaultSpeed,
	}
}

// MaxPosition is the rightmost column the wave center may occupy.
func (s State) MaxPosition() int { return s.Cols - EdgeMargin }

// Interval is the time between ticks.
func (s State) Interval() time.Duration {
	return time.Duration(s.SpeedMs) * time.Millisecond
}

// Tick advances the wave one column, bouncing at the bounds, and steps the
// color phase.
func (s *State) Tick() {
	next := s.Position + int(s.Direction)
	switch {
	case next >= s.MaxPosition():
		s.Direction = Left
		s.Position = s.MaxPosition()
	case next <= 0:
		s.Direction = Right
		s.Position = 0
	default:
		s.Position = next
	}
	s.Phase = (s.Phase + 1) % wave.PhasePeriod
}

// Reset rewinds the wave and color phase. Grid size, speed and play state
// are left alone.
func (s *State) Reset() {
	s.Position = 0
	s.Direction = Right
	s.Phase = 0
}

// SetRows clamps n into range and reports whether the row count changed.
func (s *State) SetRows(n int) bool {
	n = ClampDim(n)
	if n == s.Rows {
		return false
	}
	s.Rows = n
	return true
}

// SetCols clamps n into range and reports whether the column count changed.
// The wave position is pulled back inside the new bounds.
func (s *State) SetCols(n int) bool {
	n = ClampDim(n)
	if n == s.Cols {
		return false
	}
	s.Cols = n
	if s.Position > s.MaxPosition() {
		s.Position = s.MaxPosition()
	}
	return true
}

// SetSpeed clamps ms into range and reports whether the speed changed.
func (s *State) SetSpeed(ms int) bool {
	ms = ClampSpeed(ms)
	if ms == s.SpeedMs {
		return false
	}
	s.SpeedMs = ms
	return true
}

// Frame computes every cell for the current state.
func (s State) Frame() [][]wave.Cell {
	return wave.Grid(s.Rows, s.Cols, float64(s.Position), s.Phase)
}

// Stats is the read-only summary shown next to the grid.
type Stats struct {
	Position          int
	Band              int // 1-based
	SecondsToNextBand int
	Direction         string
	Playing           bool
	SpeedMs           int
}

// Stats summarizes the state for display.
func (s State) Stats() Stats {
	return Stats{
		Position:          s.Position,
		Band:              wave.Band(s.Phase) + 1,
		SecondsToNextBand: (wave.PhasePeriod - s.Phase + wave.TicksPerBand - 1) / wave.TicksPerBand,
		Direction:         s.Direction.Glyph(),
		Playing:           s.Playing,
		SpeedMs:           s.SpeedMs,
	}
}

// ClampDim clamps a grid dimension to [MinDim, MaxDim].
func ClampDim(n int) int {
	return clampInt(n, MinDim, MaxDim)
}

// ClampSpeed clamps a tick interval in milliseconds to [MinSpeed, MaxSpeed].
func ClampSpeed(ms int) int {
	return clampInt(ms, MinSpeed, MaxSpeed)
}

// ParseDimension parses user input for a grid dimension. Unparsable input
// yields MinDim.
func ParseDimension(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return MinDim
	}
	return ClampDim(n)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
