package geom

import "testing"

func TestRect_DerivedAttributes(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 10, Height: 4}
	if r.Right() != 11 || r.Bottom() != 6 {
		t.Fatalf("expected right/bottom 11/6, got %d/%d", r.Right(), r.Bottom())
	}
	if got := r.Center(); got != Pt(6, 4) {
		t.Fatalf("expected center (6,4), got %v", got)
	}
	if r.LowerRight() != Pt(11, 6) || r.UpperLeft() != Pt(2, 3) {
		t.Fatalf("unexpected corners %v %v", r.UpperLeft(), r.LowerRight())
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(Pt(0, 0), Sz(3, 2))
	if !r.Contains(Pt(2, 1)) {
		t.Fatalf("expected (2,1) inside")
	}
	if r.Contains(Pt(3, 1)) || r.Contains(Pt(0, 2)) || r.Contains(Pt(-1, 0)) {
		t.Fatalf("expected points on the far edge to be outside")
	}
	if (Rect{Width: 0, Height: 5}).Contains(Pt(0, 0)) {
		t.Fatalf("expected empty rect to contain nothing")
	}
}

func TestRect_Intersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 8, Width: 10, Height: 10}
	got := a.Intersect(b)
	if got != (Rect{X: 5, Y: 8, Width: 5, Height: 2}) {
		t.Fatalf("unexpected intersection %+v", got)
	}
	if !a.Intersect(Rect{X: 20, Y: 20, Width: 1, Height: 1}).Empty() {
		t.Fatalf("expected disjoint rects to have empty intersection")
	}
}

func TestPoint_Manhattan(t *testing.T) {
	if d := Pt(1, 1).Manhattan(Pt(-2, 5)); d != 7 {
		t.Fatalf("expected distance 7, got %d", d)
	}
}

func TestSize_Fits(t *testing.T) {
	if !Sz(10, 3).Fits(Sz(80, 24)) {
		t.Fatalf("expected 10x3 to fit in 80x24")
	}
	if Sz(81, 1).Fits(Sz(80, 24)) {
		t.Fatalf("expected 81x1 not to fit in 80x24")
	}
	if !Sz(-1, 4).Empty() {
		t.Fatalf("expected negative size to be empty")
	}
}
