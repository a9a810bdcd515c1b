// Package canvas implements off-screen character grids.
//
// A Canvas owns a fixed-size grid of cells. Drawing calls validate their
// coordinates and report ErrOutOfBounds instead of clamping; the blit family
// (Blit, BlitRect, ToScreen, ToScreenAlpha) clips silently to the overlap of
// source and destination. Text printing truncates to its field and
// understands the inline colour escapes produced by ForeCode and BackCode.
package canvas

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/pigment"
)

var (
	// ErrTooLarge is returned when a canvas would exceed the screen.
	ErrTooLarge = errors.New("canvas larger than screen")
	// ErrEmptySize is returned for canvases without cells.
	ErrEmptySize = errors.New("canvas size is empty")
	// ErrOutOfBounds is returned when a coordinate lies outside the canvas.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidField is returned for print fields shorter than one cell.
	ErrInvalidField = errors.New("invalid field")
	// ErrDisposed is returned when drawing on a disposed canvas.
	ErrDisposed = errors.New("canvas disposed")
	// ErrNilCanvas is returned when a blit has no destination.
	ErrNilCanvas = errors.New("nil canvas")
)

// Canvas is an off-screen grid of cells.
type Canvas struct {
	cells  []backend.Cell
	width  int
	height int
	def    pigment.Pigment

	disposed bool
}

// New allocates a canvas of the given size. The size must be non-empty and
// must fit inside screen.
func New(screen, size geom.Size) (*Canvas, error) {
	if size.Empty() {
		return nil, fmt.Errorf("new canvas %dx%d: %w", size.Width, size.Height, ErrEmptySize)
	}
	if !size.Fits(screen) {
		return nil, fmt.Errorf("new canvas %dx%d on %dx%d screen: %w",
			size.Width, size.Height, screen.Width, screen.Height, ErrTooLarge)
	}
	return newCanvas(size), nil
}

func newCanvas(size geom.Size) *Canvas {
	c := &Canvas{
		cells:  make([]backend.Cell, size.Width*size.Height),
		width:  size.Width,
		height: size.Height,
	}
	c.fill(' ', c.def)
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() geom.Size {
	if c == nil {
		return geom.Size{}
	}
	return geom.Sz(c.width, c.height)
}

// Bounds returns the canvas rect at the origin.
func (c *Canvas) Bounds() geom.Rect {
	return geom.NewRect(geom.Point{}, c.Size())
}

// Disposed reports whether Dispose has released the grid.
func (c *Canvas) Disposed() bool {
	return c == nil || c.disposed
}

// Dispose releases the grid. It reports whether this call released it;
// subsequent calls are no-ops returning false.
func (c *Canvas) Dispose() bool {
	if c == nil || c.disposed {
		return false
	}
	c.disposed = true
	c.cells = nil
	return true
}

// DefaultPigment returns the pigment used by Clear and Scroll.
func (c *Canvas) DefaultPigment() pigment.Pigment {
	if c == nil {
		return pigment.Pigment{}
	}
	return c.def
}

// SetDefaultPigment sets the pigment used by Clear and Scroll.
func (c *Canvas) SetDefaultPigment(p pigment.Pigment) {
	if c == nil {
		return
	}
	c.def = p
}

// Clear fills the canvas with spaces in the default pigment.
func (c *Canvas) Clear() error {
	return c.ClearWith(c.DefaultPigment())
}

// ClearWith fills the canvas with spaces in p. Background flags are ignored.
func (c *Canvas) ClearWith(p pigment.Pigment) error {
	if c.Disposed() {
		return ErrDisposed
	}
	c.fill(' ', p)
	return nil
}

func (c *Canvas) fill(r rune, p pigment.Pigment) {
	cell := backend.Cell{Rune: r, Fore: p.Fore(), Back: p.Back()}
	for i := range c.cells {
		c.cells[i] = cell
	}
}

// Cell returns the cell at (x, y).
func (c *Canvas) Cell(x, y int) (backend.Cell, error) {
	if err := c.check(x, y); err != nil {
		return backend.Cell{}, err
	}
	return c.cells[c.index(x, y)], nil
}

// PutChar writes a glyph, keeping the cell colours.
func (c *Canvas) PutChar(x, y int, r rune) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	cell := c.cells[c.index(x, y)]
	return c.putGlyph(x, y, r, cell.Fore, cell.Back)
}

// PutCharPigment writes a glyph with a pigment. The background composes
// according to the pigment's flag.
func (c *Canvas) PutCharPigment(x, y int, r rune, p pigment.Pigment) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	back := p.Flag().Apply(c.cells[c.index(x, y)].Back, p.Back())
	return c.putGlyph(x, y, r, p.Fore(), back)
}

// SetPigment recolours a cell without touching its glyph.
func (c *Canvas) SetPigment(x, y int, p pigment.Pigment) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	cell := &c.cells[c.index(x, y)]
	cell.Fore = p.Fore()
	cell.Back = p.Flag().Apply(cell.Back, p.Back())
	return nil
}

// SetForeground recolours a cell's glyph.
func (c *Canvas) SetForeground(x, y int, col tcell.Color) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	c.cells[c.index(x, y)].Fore = col
	return nil
}

// SetBackground composes col onto a cell's background.
func (c *Canvas) SetBackground(x, y int, col tcell.Color, flag pigment.BackgroundFlag) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	cell := &c.cells[c.index(x, y)]
	cell.Back = flag.Apply(cell.Back, col)
	return nil
}

// DrawHLine draws a horizontal rule starting at (x, y), truncated at the
// right edge.
func (c *Canvas) DrawHLine(x, y, length int, p pigment.Pigment) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	if length < 1 {
		return fmt.Errorf("hline length %d: %w", length, ErrInvalidField)
	}
	end := min(c.width, x+length)
	for px := x; px < end; px++ {
		c.paint(px, y, '─', p)
	}
	return nil
}

// DrawVLine draws a vertical rule starting at (x, y), truncated at the
// bottom edge.
func (c *Canvas) DrawVLine(x, y, length int, p pigment.Pigment) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	if length < 1 {
		return fmt.Errorf("vline length %d: %w", length, ErrInvalidField)
	}
	end := min(c.height, y+length)
	for py := y; py < end; py++ {
		c.paint(x, py, '│', p)
	}
	return nil
}

// DrawFrame draws a box along the edges of r with an optional title
// centred on the top edge. r must lie within the canvas and be at least 2x2.
func (c *Canvas) DrawFrame(r geom.Rect, title string, p pigment.Pigment) error {
	if c.Disposed() {
		return ErrDisposed
	}
	if r.Width < 2 || r.Height < 2 {
		return fmt.Errorf("frame %dx%d: %w", r.Width, r.Height, ErrInvalidField)
	}
	if !c.Bounds().ContainsRect(r) {
		return fmt.Errorf("frame %+v: %w", r, ErrOutOfBounds)
	}
	left, top, right, bottom := r.Left(), r.Top(), r.Right(), r.Bottom()
	c.paint(left, top, '┌', p)
	c.paint(right, top, '┐', p)
	c.paint(left, bottom, '└', p)
	c.paint(right, bottom, '┘', p)
	for x := left + 1; x < right; x++ {
		c.paint(x, top, '─', p)
		c.paint(x, bottom, '─', p)
	}
	for y := top + 1; y < bottom; y++ {
		c.paint(left, y, '│', p)
		c.paint(right, y, '│', p)
	}
	if title == "" || r.Width < 3 {
		return nil
	}
	return c.PrintStringAligned(left+1, top, title, AlignCenter, r.Width-2, p)
}

func (c *Canvas) check(x, y int) error {
	if c.Disposed() {
		return ErrDisposed
	}
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return fmt.Errorf("(%d,%d) outside %dx%d: %w", x, y, c.width, c.height, ErrOutOfBounds)
	}
	return nil
}

func (c *Canvas) index(x, y int) int {
	return y*c.width + x
}

// paint writes a narrow glyph at a validated position.
func (c *Canvas) paint(x, y int, r rune, p pigment.Pigment) {
	c.breakWide(x, y)
	cell := &c.cells[c.index(x, y)]
	cell.Rune = r
	cell.Fore = p.Fore()
	cell.Back = p.Flag().Apply(cell.Back, p.Back())
}

// putGlyph writes r at a validated position. Wide glyphs claim the next
// cell as a continuation and fail when no next cell exists.
func (c *Canvas) putGlyph(x, y int, r rune, fore, back tcell.Color) error {
	w := runewidth.RuneWidth(r)
	if w > 1 && x+1 >= c.width {
		return fmt.Errorf("wide glyph at (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	c.breakWide(x, y)
	if w > 1 {
		c.breakWide(x+1, y)
	}
	idx := c.index(x, y)
	c.cells[idx] = backend.Cell{Rune: r, Fore: fore, Back: back}
	if w > 1 {
		c.cells[idx+1] = backend.Cell{Rune: 0, Fore: fore, Back: back}
	}
	return nil
}

// breakWide blanks the other half of a wide glyph that a write to (x, y)
// is about to split.
func (c *Canvas) breakWide(x, y int) {
	c.orphanLead(x, y)
	c.orphanTrail(x, y)
}

// orphanLead blanks the lead to the left of a continuation at (x, y).
func (c *Canvas) orphanLead(x, y int) {
	idx := c.index(x, y)
	if c.cells[idx].Rune == 0 && x > 0 {
		c.cells[idx-1].Rune = ' '
	}
}

// orphanTrail blanks the continuation to the right of a wide lead at (x, y).
func (c *Canvas) orphanTrail(x, y int) {
	idx := c.index(x, y)
	if x+1 < c.width && c.cells[idx+1].Rune == 0 && runewidth.RuneWidth(c.cells[idx].Rune) > 1 {
		c.cells[idx+1].Rune = ' '
	}
}
