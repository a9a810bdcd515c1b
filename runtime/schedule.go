package runtime

import "time"

// Schedule fires a callback each time accumulated elapsed time reaches its
// delay. Excess time past the delay is dropped, not carried over.
type Schedule struct {
	delay time.Duration
	fn    func()
	acc   time.Duration
}

// NewSchedule creates a schedule firing fn every delay.
func NewSchedule(delay time.Duration, fn func()) *Schedule {
	return &Schedule{delay: delay, fn: fn}
}

// Delay returns the firing interval.
func (s *Schedule) Delay() time.Duration {
	if s == nil {
		return 0
	}
	return s.delay
}

// Accumulated returns the time gathered since the last firing.
func (s *Schedule) Accumulated() time.Duration {
	if s == nil {
		return 0
	}
	return s.acc
}

// Reset clears the accumulator.
func (s *Schedule) Reset() {
	if s == nil {
		return
	}
	s.acc = 0
}

// Update adds elapsed time and fires the callback once if the delay is met.
// It reports whether the callback fired.
func (s *Schedule) Update(elapsed time.Duration) bool {
	if s == nil {
		return false
	}
	if elapsed > 0 {
		s.acc += elapsed
	}
	if s.acc < s.delay {
		return false
	}
	s.acc = 0
	if s.fn != nil {
		s.fn()
	}
	return true
}
