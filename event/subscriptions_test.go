package event

import "testing"

func TestSubscriptions_Clear(t *testing.T) {
	subs := &Subscriptions{}
	calls := 0

	subs.Add(func() { calls++ })
	subs.Add(func() { calls++ })

	subs.Clear()
	if calls != 2 {
		t.Fatalf("expected 2 unsubscribe calls, got %d", calls)
	}

	subs.Clear()
	if calls != 2 {
		t.Fatalf("expected no extra calls after clear, got %d", calls)
	}
}

func TestSubscriptions_OnAndWatch(t *testing.T) {
	var subs Subscriptions
	var e Event[int]
	v := NewValue("x")
	hits := 0

	On(&subs, &e, func(int) { hits++ })
	Watch(&subs, v, func(string) { hits++ })
	if subs.Len() != 2 {
		t.Fatalf("expected 2 tracked subscriptions, got %d", subs.Len())
	}

	e.Emit(1)
	v.Set("y")
	if hits != 2 {
		t.Fatalf("expected 2 hits, got %d", hits)
	}

	subs.Clear()
	e.Emit(1)
	v.Set("z")
	if hits != 2 {
		t.Fatalf("expected no hits after clear, got %d", hits)
	}
}
