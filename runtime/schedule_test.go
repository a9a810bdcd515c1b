package runtime

import (
	"testing"
	"time"
)

func TestSchedule_FiresOnceAtDelayAndResets(t *testing.T) {
	calls := 0
	s := NewSchedule(100*time.Millisecond, func() { calls++ })

	for _, step := range []time.Duration{30, 30, 40} {
		s.Update(step * time.Millisecond)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if s.Accumulated() != 0 {
		t.Fatalf("expected accumulator reset to 0, got %v", s.Accumulated())
	}
}

func TestSchedule_DropsExcess(t *testing.T) {
	calls := 0
	s := NewSchedule(100*time.Millisecond, func() { calls++ })

	if !s.Update(250 * time.Millisecond) {
		t.Fatalf("expected schedule to fire")
	}
	if s.Update(0) {
		t.Fatalf("expected excess time to be dropped")
	}
	if calls != 1 || s.Accumulated() != 0 {
		t.Fatalf("expected 1 call and empty accumulator, got %d %v", calls, s.Accumulated())
	}
}

func TestSchedule_NilSafe(t *testing.T) {
	var s *Schedule
	if s.Update(time.Second) {
		t.Fatalf("expected nil schedule not to fire")
	}
	s.Reset()
}
