package anim

import (
	"time"

	"github.com/san-kum/wavegrid/internal/wave"
)

// Widget owns the state and the tick schedule. Methods that return a bool
// report whether the schedule was re-armed; the caller then has to schedule a
// tick for Generation().
type Widget struct {
	state  State
	sched  Schedule
	closed bool
}

// NewWidget mounts a widget with the given initial state, clamped into range.
func NewWidget(initial State) *Widget {
	initial.Rows = ClampDim(initial.Rows)
	initial.Cols = ClampDim(initial.Cols)
	initial.SpeedMs = ClampSpeed(initial.SpeedMs)
	if initial.Direction != Left {
		initial.Direction = Right
	}
	initial.Position = clampInt(initial.Position, 0, initial.MaxPosition())
	initial.Phase = ((initial.Phase % wave.PhasePeriod) + wave.PhasePeriod) % wave.PhasePeriod
	return &Widget{state: initial}
}

// State returns a copy of the current state.
func (w *Widget) State() State { return w.state }

// Generation is the tick generation callers should tag new ticks with.
func (w *Widget) Generation() uint64 { return w.sched.Generation() }

// Interval is the current tick interval.
func (w *Widget) Interval() time.Duration { return w.state.Interval() }

// Armed reports whether a recurring tick is active.
func (w *Widget) Armed() bool { return w.sched.Armed() }

// Start arms the schedule if the widget is playing.
func (w *Widget) Start() bool {
	if w.closed || !w.state.Playing {
		return false
	}
	w.sched.Arm(w.state.Interval())
	return true
}

// Fire applies a tick delivered for gen. Stale ticks are ignored and
// false is returned, in which case the caller must not reschedule.
func (w *Widget) Fire(gen uint64) bool {
	if w.closed || !w.sched.Live(gen) {
		return false
	}
	w.tick()
	return true
}

// Advance drives the widget from a frame loop.
func (w *Widget) Advance(dt time.Duration) bool {
	if w.closed || !w.sched.Advance(dt) {
		return false
	}
	w.tick()
	return true
}

func (w *Widget) tick() {
	before := w.state.Direction
	w.state.Tick()
	if w.state.Direction != before {
		w.sched.Arm(w.state.Interval())
	}
}

// TogglePlay flips between playing and paused.
func (w *Widget) TogglePlay() bool {
	if w.closed {
		return false
	}
	w.state.Playing = !w.state.Playing
	if !w.state.Playing {
		w.sched.Disarm()
		return false
	}
	w.sched.Arm(w.state.Interval())
	return true
}

// SetSpeed changes the tick interval.
func (w *Widget) SetSpeed(ms int) bool {
	if !w.state.SetSpeed(ms) {
		return false
	}
	return w.rearm()
}

// SetCols changes the column count.
func (w *Widget) SetCols(n int) bool {
	if !w.state.SetCols(n) {
		return false
	}
	return w.rearm()
}

// SetRows changes the row count. The tick is unaffected.
func (w *Widget) SetRows(n int) {
	w.state.SetRows(n)
}

// Reset rewinds position, direction and phase.
func (w *Widget) Reset() {
	w.state.Reset()
}

// Close cancels the tick for good. Later calls are no-ops.
func (w *Widget) Close() {
	w.closed = true
	w.sched.Disarm()
}

func (w *Widget) rearm() bool {
	if w.closed || !w.state.Playing {
		return false
	}
	w.sched.Arm(w.state.Interval())
	return true
}
