package scroll

import (
	"testing"

	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/geom"
)

func TestViewportClampOffset(t *testing.T) {
	v := NewViewport(geom.Sz(10, 5))
	v.SetContentSize(geom.Sz(30, 20))

	v.SetOffset(100, 100)
	if got := v.Offset(); got != geom.Pt(20, 15) {
		t.Fatalf("offset clamp = %+v, want %+v", got, geom.Pt(20, 15))
	}

	v.SetOffset(-5, -7)
	if got := v.Offset(); got != (geom.Point{}) {
		t.Fatalf("offset clamp negative = %+v, want %+v", got, geom.Point{})
	}
}

func TestViewportMaxOffsetAndVisibleRect(t *testing.T) {
	v := NewViewport(geom.Sz(10, 5))
	v.SetContentSize(geom.Sz(8, 4))
	if got := v.MaxOffset(); got != (geom.Point{}) {
		t.Fatalf("max offset = %+v, want %+v", got, geom.Point{})
	}

	v.SetContentSize(geom.Sz(30, 20))
	v.SetOffset(4, 3)
	want := geom.Rect{X: 4, Y: 3, Width: 10, Height: 5}
	if got := v.VisibleRect(); got != want {
		t.Fatalf("visible rect = %+v, want %+v", got, want)
	}
}

func TestViewportShrinkingContentClamps(t *testing.T) {
	v := NewViewport(geom.Sz(4, 4))
	v.SetContentSize(geom.Sz(4, 20))
	v.ScrollToEnd()
	if got := v.Offset().Y; got != 16 {
		t.Fatalf("expected end offset 16, got %d", got)
	}
	v.SetContentSize(geom.Sz(4, 6))
	if got := v.Offset().Y; got != 2 {
		t.Fatalf("expected offset clamped to 2, got %d", got)
	}
}

func TestViewportPagingAndOnChange(t *testing.T) {
	v := NewViewport(geom.Sz(10, 3))
	v.SetContentSize(geom.Sz(10, 10))
	var changes []geom.Point
	v.SetOnChange(func(p geom.Point) { changes = append(changes, p) })

	v.PageBy(1)
	v.PageBy(1)
	v.PageBy(1)
	v.ScrollToStart()
	v.ScrollToStart()

	want := []geom.Point{{Y: 3}, {Y: 6}, {Y: 7}, {}}
	if len(changes) != len(want) {
		t.Fatalf("expected %d changes, got %v", len(want), changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Fatalf("change %d = %+v, want %+v", i, changes[i], want[i])
		}
	}
}

func TestViewportEnsureVisible(t *testing.T) {
	v := NewViewport(geom.Sz(5, 3))
	v.SetContentSize(geom.Sz(5, 20))

	v.EnsureVisible(geom.Rect{Y: 10, Width: 5, Height: 1})
	if got := v.Offset().Y; got != 8 {
		t.Fatalf("expected offset 8 after scrolling down, got %d", got)
	}
	v.EnsureVisible(geom.Rect{Y: 9, Width: 5, Height: 1})
	if got := v.Offset().Y; got != 8 {
		t.Fatalf("expected visible row to keep offset 8, got %d", got)
	}
	v.EnsureVisible(geom.Rect{Y: 2, Width: 5, Height: 1})
	if got := v.Offset().Y; got != 2 {
		t.Fatalf("expected offset 2 after scrolling up, got %d", got)
	}
}

func TestNilViewport(t *testing.T) {
	var v *Viewport
	v.ScrollBy(1, 1)
	v.PageBy(2)
	v.ScrollToEnd()
	v.EnsureVisible(geom.Rect{Width: 1, Height: 1})
	if got := v.Offset(); got != (geom.Point{}) {
		t.Fatalf("expected zero offset, got %+v", got)
	}
}

func TestScrollbarThumb(t *testing.T) {
	v := NewViewport(geom.Sz(1, 5))
	v.SetContentSize(geom.Sz(1, 20))
	bar := Scrollbar{Orientation: Vertical}

	if start, size := bar.ThumbSpan(v, 10); start != 0 || size != 2 {
		t.Fatalf("expected thumb 0+2, got %d+%d", start, size)
	}
	v.ScrollToEnd()
	if start, size := bar.ThumbSpan(v, 10); start != 8 || size != 2 {
		t.Fatalf("expected thumb 8+2, got %d+%d", start, size)
	}

	v.SetContentSize(geom.Sz(1, 3))
	if start, size := bar.ThumbSpan(v, 10); start != 0 || size != 10 {
		t.Fatalf("expected full thumb, got %d+%d", start, size)
	}
}

func TestScrollbarDraw(t *testing.T) {
	c, err := canvas.New(geom.Sz(10, 10), geom.Sz(1, 4))
	if err != nil {
		t.Fatalf("canvas: %v", err)
	}
	v := NewViewport(geom.Sz(1, 2))
	v.SetContentSize(geom.Sz(1, 4))
	v.ScrollToEnd()
	bar := Scrollbar{Orientation: Vertical}
	if err := bar.Draw(c, 0, 0, 4, v); err != nil {
		t.Fatalf("draw: %v", err)
	}
	want := []rune{'│', '│', '█', '█'}
	for y, r := range want {
		cell, _ := c.Cell(0, y)
		if cell.Rune != r {
			t.Fatalf("row %d: expected %q, got %q", y, r, cell.Rune)
		}
	}
	if err := bar.Draw(c, 0, 1, 4, v); err == nil {
		t.Fatal("expected error drawing past the canvas")
	}
}
