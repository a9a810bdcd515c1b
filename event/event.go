// Package event provides ordered multicast observer lists and observable
// values for widget state.
package event

import "sync"

type handler[T any] struct {
	id int
	fn func(T)
}

// Event is an ordered list of subscribers receiving values of type T.
// The zero value is ready to use.
type Event[T any] struct {
	mu   sync.Mutex
	subs []handler[T]
	next int
}

// Subscribe registers fn and returns a func that removes it.
// The returned func is safe to call more than once.
func (e *Event[T]) Subscribe(fn func(T)) func() {
	if e == nil || fn == nil {
		return func() {}
	}
	e.mu.Lock()
	id := e.next
	e.next++
	e.subs = append(e.subs, handler[T]{id: id, fn: fn})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(id) })
	}
}

func (e *Event[T]) remove(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, sub := range e.subs {
		if sub.id == id {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return
		}
	}
}

// Emit calls every subscriber in subscription order. Subscribers added or
// removed while emitting take effect on the next Emit.
func (e *Event[T]) Emit(v T) {
	if e == nil {
		return
	}
	e.mu.Lock()
	subs := e.subs
	e.mu.Unlock()
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Len returns the number of subscribers.
func (e *Event[T]) Len() int {
	if e == nil {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}

// Clear removes every subscriber.
func (e *Event[T]) Clear() {
	if e == nil {
		return
	}
	e.mu.Lock()
	e.subs = nil
	e.mu.Unlock()
}
