package anim

import "time"

// Schedule is the handle for the recurring tick. Each Arm or Disarm starts a
// new generation; callbacks carrying an older generation are stale.
type Schedule struct {
	gen      uint64
	armed    bool
	interval time.Duration
	elapsed  time.Duration
}

// Arm starts a fresh interval and returns its generation.
func (s *Schedule) Arm(interval time.Duration) uint64 {
	s.gen++
	s.armed = true
	s.interval = interval
	s.elapsed = 0
	return s.gen
}

// Disarm cancels the recurring tick.
func (s *Schedule) Disarm() {
	s.gen++
	s.armed = false
	s.elapsed = 0
}

// Armed reports whether ticks are currently scheduled.
func (s *Schedule) Armed() bool { return s.armed }

// Generation returns the current generation.
func (s *Schedule) Generation() uint64 { return s.gen }

// Interval returns the interval of the current generation.
func (s *Schedule) Interval() time.Duration { return s.interval }

// Live reports whether a callback tagged with gen should still fire.
func (s *Schedule) Live(gen uint64) bool {
	return s.armed && gen == s.gen
}

// Advance feeds elapsed wall time from a frame loop and reports whether a
// tick is due. At most one tick fires per call; overdue time is dropped.
func (s *Schedule) Advance(dt time.Duration) bool {
	if !s.armed || dt < 0 {
		return false
	}
	s.elapsed += dt
	if s.elapsed < s.interval {
		return false
	}
	s.elapsed = 0
	return true
}
