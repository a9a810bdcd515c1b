// Package scroll provides viewport and scrollbar primitives for controls
// whose content outgrows their canvas.
package scroll

import (
	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/pigment"
)

// Orientation describes scrollbar orientation.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Controller provides scroll control for controls.
type Controller interface {
	ScrollBy(dx, dy int)
	ScrollTo(x, y int)
	PageBy(pages int)
	ScrollToStart()
	ScrollToEnd()
}

// Viewport tracks the visible region of scrollable content.
// The offset is kept within [0, content-view] on both axes.
type Viewport struct {
	offset      geom.Point
	contentSize geom.Size
	viewSize    geom.Size
	onChange    func(offset geom.Point)
}

// NewViewport creates a viewport showing view cells of the content.
func NewViewport(view geom.Size) *Viewport {
	return &Viewport{viewSize: view}
}

// SetContentSize updates the content size and clamps the offset.
func (v *Viewport) SetContentSize(size geom.Size) {
	if v == nil {
		return
	}
	v.contentSize = size
	v.SetOffset(v.offset.X, v.offset.Y)
}

// ContentSize returns the content size.
func (v *Viewport) ContentSize() geom.Size {
	if v == nil {
		return geom.Size{}
	}
	return v.contentSize
}

// SetViewSize updates the view size and clamps the offset.
func (v *Viewport) SetViewSize(size geom.Size) {
	if v == nil {
		return
	}
	v.viewSize = size
	v.SetOffset(v.offset.X, v.offset.Y)
}

// ViewSize returns the view size.
func (v *Viewport) ViewSize() geom.Size {
	if v == nil {
		return geom.Size{}
	}
	return v.viewSize
}

// Offset returns the current offset.
func (v *Viewport) Offset() geom.Point {
	if v == nil {
		return geom.Point{}
	}
	return v.offset
}

// SetOnChange sets a callback for offset updates.
func (v *Viewport) SetOnChange(fn func(offset geom.Point)) {
	if v == nil {
		return
	}
	v.onChange = fn
}

// SetOffset sets the scroll offset.
func (v *Viewport) SetOffset(x, y int) {
	if v == nil {
		return
	}
	next := v.clamp(geom.Point{X: x, Y: y})
	if next == v.offset {
		return
	}
	v.offset = next
	if v.onChange != nil {
		v.onChange(v.offset)
	}
}

// ScrollBy adjusts the offset.
func (v *Viewport) ScrollBy(dx, dy int) {
	if v == nil {
		return
	}
	v.SetOffset(v.offset.X+dx, v.offset.Y+dy)
}

// ScrollTo scrolls to absolute coordinates.
func (v *Viewport) ScrollTo(x, y int) {
	v.SetOffset(x, y)
}

// PageBy scrolls vertically by whole views.
func (v *Viewport) PageBy(pages int) {
	if v == nil {
		return
	}
	v.ScrollBy(0, pages*max(1, v.viewSize.Height))
}

// ScrollToStart scrolls to the top left.
func (v *Viewport) ScrollToStart() {
	v.SetOffset(0, 0)
}

// ScrollToEnd scrolls to the last row.
func (v *Viewport) ScrollToEnd() {
	if v == nil {
		return
	}
	v.SetOffset(v.offset.X, v.MaxOffset().Y)
}

// EnsureVisible scrolls the least distance that brings r into view.
// When r is larger than the view its origin wins.
func (v *Viewport) EnsureVisible(r geom.Rect) {
	if v == nil {
		return
	}
	off := v.offset
	if r.Right() >= off.X+v.viewSize.Width {
		off.X = r.Right() - v.viewSize.Width + 1
	}
	if r.X < off.X {
		off.X = r.X
	}
	if r.Bottom() >= off.Y+v.viewSize.Height {
		off.Y = r.Bottom() - v.viewSize.Height + 1
	}
	if r.Y < off.Y {
		off.Y = r.Y
	}
	v.SetOffset(off.X, off.Y)
}

// MaxOffset returns the maximum scrollable offset.
func (v *Viewport) MaxOffset() geom.Point {
	if v == nil {
		return geom.Point{}
	}
	return geom.Point{
		X: max(0, v.contentSize.Width-v.viewSize.Width),
		Y: max(0, v.contentSize.Height-v.viewSize.Height),
	}
}

// VisibleRect returns the visible rectangle within content.
func (v *Viewport) VisibleRect() geom.Rect {
	if v == nil {
		return geom.Rect{}
	}
	return geom.NewRect(v.offset, v.viewSize)
}

func (v *Viewport) clamp(p geom.Point) geom.Point {
	limit := v.MaxOffset()
	return geom.Point{
		X: min(max(p.X, 0), limit.X),
		Y: min(max(p.Y, 0), limit.Y),
	}
}

var _ Controller = (*Viewport)(nil)

// Scrollbar configures scrollbar rendering.
type Scrollbar struct {
	Orientation  Orientation
	Track        pigment.Pigment
	Thumb        pigment.Pigment
	MinThumbSize int
	Chars        ScrollbarChars
}

// ScrollbarChars defines characters used to render the scrollbar.
type ScrollbarChars struct {
	Track rune
	Thumb rune
}

// DefaultScrollbarChars returns the box-drawing defaults.
func DefaultScrollbarChars() ScrollbarChars {
	return ScrollbarChars{
		Track: '│',
		Thumb: '█',
	}
}

// ThumbSpan returns the thumb start and length along a track of the given
// length. A viewport whose content fits reports a full-length thumb.
func (s Scrollbar) ThumbSpan(v *Viewport, length int) (start, size int) {
	if length < 1 {
		return 0, 0
	}
	view, content, off := v.ViewSize().Height, v.ContentSize().Height, v.Offset().Y
	if s.Orientation == Horizontal {
		view, content, off = v.ViewSize().Width, v.ContentSize().Width, v.Offset().X
	}
	if content <= view || content <= 0 {
		return 0, length
	}
	size = max(length*view/content, s.MinThumbSize, 1)
	size = min(size, length)
	span := content - view
	start = (length - size) * off / span
	return start, size
}

// Draw paints the scrollbar onto c starting at (x, y) for length cells.
func (s Scrollbar) Draw(c *canvas.Canvas, x, y, length int, v *Viewport) error {
	chars := s.Chars
	if chars == (ScrollbarChars{}) {
		chars = DefaultScrollbarChars()
	}
	start, size := s.ThumbSpan(v, length)
	for i := range length {
		r, p := chars.Track, s.Track
		if i >= start && i < start+size {
			r, p = chars.Thumb, s.Thumb
		}
		px, py := x+i, y
		if s.Orientation == Vertical {
			px, py = x, y+i
		}
		if err := c.PutCharPigment(px, py, r, p); err != nil {
			return err
		}
	}
	return nil
}
