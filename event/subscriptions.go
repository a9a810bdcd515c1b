package event

import "sync"

// Subscriptions tracks and clears multiple unsubscribe callbacks.
type Subscriptions struct {
	mu     sync.Mutex
	unsubs []func()
}

// Add registers an unsubscribe callback.
func (s *Subscriptions) Add(unsub func()) {
	if s == nil || unsub == nil {
		return
	}
	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()
}

// On subscribes fn to e and tracks the unsubscribe.
func On[T any](s *Subscriptions, e *Event[T], fn func(T)) {
	if s == nil || e == nil || fn == nil {
		return
	}
	s.Add(e.Subscribe(fn))
}

// Watch subscribes fn to v and tracks the unsubscribe.
func Watch[T any](s *Subscriptions, v *Value[T], fn func(T)) {
	if s == nil || v == nil || fn == nil {
		return
	}
	s.Add(v.Subscribe(fn))
}

// Len returns the number of tracked callbacks.
func (s *Subscriptions) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.unsubs)
}

// Clear unsubscribes all tracked callbacks. Safe to call more than once.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for _, unsub := range unsubs {
		unsub()
	}
}
