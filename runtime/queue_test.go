package runtime

import "testing"

func TestQueue_FlushOrderAndClose(t *testing.T) {
	var q Queue
	var order []int
	q.Post(func() { order = append(order, 1) })
	q.Post(func() {
		order = append(order, 2)
		q.Post(func() { order = append(order, 3) })
	})
	if n := q.Flush(); n != 2 {
		t.Fatalf("expected 2 flushed, got %d", n)
	}
	if q.Len() != 1 {
		t.Fatalf("expected nested post to wait, got %d pending", q.Len())
	}
	q.Close()
	if q.Post(func() {}) || q.Flush() != 0 {
		t.Fatalf("expected closed queue to reject posts")
	}
	if len(order) != 2 {
		t.Fatalf("expected 2 callbacks, got %v", order)
	}
}

func TestQueue_NilSafe(t *testing.T) {
	var q *Queue
	if q.Post(func() {}) || q.Flush() != 0 || q.Len() != 0 {
		t.Fatal("expected nil queue to do nothing")
	}
	q.Close()

	var live Queue
	if live.Post(nil) {
		t.Fatal("expected nil callback to be rejected")
	}
}
