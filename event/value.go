package event

import "sync"

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// Value holds a value and notifies subscribers when it changes.
type Value[T any] struct {
	mu      sync.Mutex
	value   T
	equal   EqualFunc[T]
	changed Event[T]
}

// NewValue creates a value that notifies on every Set.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// NewComparableValue creates a value that suppresses Sets of an equal value.
func NewComparableValue[T comparable](initial T) *Value[T] {
	return &Value[T]{value: initial, equal: EqualComparable[T]}
}

// SetEqualFunc configures the equality check used to suppress redundant updates.
func (v *Value[T]) SetEqualFunc(fn EqualFunc[T]) {
	if v == nil {
		return
	}
	v.mu.Lock()
	v.equal = fn
	v.mu.Unlock()
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	if v == nil {
		var zero T
		return zero
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores value and notifies subscribers. It reports whether the value
// changed; an equal value is dropped when an equality func is configured.
func (v *Value[T]) Set(value T) bool {
	if v == nil {
		return false
	}
	v.mu.Lock()
	if v.equal != nil && v.equal(v.value, value) {
		v.mu.Unlock()
		return false
	}
	v.value = value
	v.mu.Unlock()

	v.changed.Emit(value)
	return true
}

// Update replaces the value using fn.
// fn runs outside the lock; Update is not atomic across goroutines.
func (v *Value[T]) Update(fn func(T) T) bool {
	if v == nil || fn == nil {
		return false
	}
	return v.Set(fn(v.Get()))
}

// Subscribe registers fn to receive each new value.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	if v == nil {
		return func() {}
	}
	return v.changed.Subscribe(fn)
}
