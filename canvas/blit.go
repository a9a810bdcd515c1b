package canvas

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/pigment"
)

// Blit copies the whole canvas onto dest with its origin at pos.
func (c *Canvas) Blit(dest *Canvas, pos geom.Point) error {
	return c.BlitRect(c.Bounds(), dest, pos)
}

// BlitRect copies the src region of the canvas onto dest with the region's
// origin at pos. The copy is clipped to both canvases; an empty overlap is
// a no-op.
func (c *Canvas) BlitRect(src geom.Rect, dest *Canvas, pos geom.Point) error {
	if dest == nil {
		return ErrNilCanvas
	}
	if c.Disposed() || dest.Disposed() {
		return ErrDisposed
	}
	from, to, ok := clip(src, c.Bounds(), pos, dest.Bounds())
	if !ok {
		return nil
	}
	for row := 0; row < to.Height; row++ {
		y := to.Y + row
		dest.orphanLead(to.X, y)
		dest.orphanTrail(to.Right(), y)
		srcStart := c.index(from.X, from.Y+row)
		destStart := dest.index(to.X, y)
		for col := 0; col < to.Width; col++ {
			dest.cells[destStart+col] = edgeCell(c.cells[srcStart+col], col, to.Width)
		}
	}
	return nil
}

// ToScreen composites the canvas onto a console with its origin at pos,
// clipped to the console.
func (c *Canvas) ToScreen(con backend.Console, pos geom.Point) error {
	if c.Disposed() {
		return ErrDisposed
	}
	if con == nil {
		return nil
	}
	screen := geom.NewRect(geom.Point{}, backend.ScreenSize(con))
	from, to, ok := clip(c.Bounds(), c.Bounds(), pos, screen)
	if !ok {
		return nil
	}
	if !c.splitsWide(from) {
		if rw, ok := con.(backend.RectWriter); ok {
			start := c.index(from.X, from.Y)
			rw.SetRect(to.X, to.Y, to.Width, to.Height, c.cells[start:], c.width)
			return nil
		}
	}
	row := make([]backend.Cell, to.Width)
	rowWriter, hasRowWriter := con.(backend.RowWriter)
	for y := 0; y < to.Height; y++ {
		srcStart := c.index(from.X, from.Y+y)
		for x := range row {
			row[x] = edgeCell(c.cells[srcStart+x], x, to.Width)
		}
		if hasRowWriter {
			rowWriter.SetRow(to.Y+y, to.X, row)
			continue
		}
		for x, cell := range row {
			if cell.Rune == 0 {
				continue
			}
			con.SetContent(to.X+x, to.Y+y, cell.Rune, cell.Style())
		}
	}
	return nil
}

// ToScreenAlpha composites the canvas onto a console, blending each cell
// with what the console already shows. foreAlpha and backAlpha run from 0
// (keep the console) to 1 (replace it). With foreAlpha 0 the console glyphs
// are kept and only backgrounds blend.
func (c *Canvas) ToScreenAlpha(con backend.Console, pos geom.Point, foreAlpha, backAlpha float64) error {
	if c.Disposed() {
		return ErrDisposed
	}
	if con == nil {
		return nil
	}
	screen := geom.NewRect(geom.Point{}, backend.ScreenSize(con))
	from, to, ok := clip(c.Bounds(), c.Bounds(), pos, screen)
	if !ok {
		return nil
	}
	for y := 0; y < to.Height; y++ {
		for x := 0; x < to.Width; x++ {
			cell := edgeCell(c.cells[c.index(from.X+x, from.Y+y)], x, to.Width)
			sx, sy := to.X+x, to.Y+y
			oldRune, oldStyle := con.Content(sx, sy)
			old := backend.CellFromStyle(oldRune, oldStyle)
			out := backend.Cell{
				Rune: old.Rune,
				Fore: pigment.Blend(old.Fore, cell.Fore, foreAlpha),
				Back: pigment.Blend(old.Back, cell.Back, backAlpha),
			}
			if foreAlpha > 0 {
				out.Rune = cell.Rune
			}
			if out.Rune == 0 {
				continue
			}
			con.SetContent(sx, sy, out.Rune, out.Style())
		}
	}
	return nil
}

// Scroll shifts the content by (dx, dy). Revealed cells take the default
// pigment; nothing wraps around.
func (c *Canvas) Scroll(dx, dy int) error {
	if c.Disposed() {
		return ErrDisposed
	}
	if dx == 0 && dy == 0 {
		return nil
	}
	tmp := newCanvas(c.Size())
	if err := c.Blit(tmp, geom.Point{}); err != nil {
		return err
	}
	if err := c.Clear(); err != nil {
		return err
	}
	return tmp.Blit(c, geom.Pt(dx, dy))
}

// clip intersects src with srcBounds and the translated result with
// destBounds. It returns the matching source and destination rects.
func clip(src, srcBounds geom.Rect, pos geom.Point, destBounds geom.Rect) (from, to geom.Rect, ok bool) {
	from = src.Intersect(srcBounds)
	if from.Empty() {
		return geom.Rect{}, geom.Rect{}, false
	}
	shift := pos.Sub(src.Origin())
	to = from.Translate(shift).Intersect(destBounds)
	if to.Empty() {
		return geom.Rect{}, geom.Rect{}, false
	}
	from = geom.NewRect(to.Origin().Sub(shift), to.Size())
	return from, to, true
}

// edgeCell blanks wide glyph halves cut off by the left or right edge of a
// clipped copy.
func edgeCell(cell backend.Cell, col, width int) backend.Cell {
	if col == 0 && cell.Rune == 0 {
		cell.Rune = ' '
	}
	if col == width-1 && runewidth.RuneWidth(cell.Rune) > 1 {
		cell.Rune = ' '
	}
	return cell
}

func (c *Canvas) splitsWide(r geom.Rect) bool {
	for y := r.Y; y < r.Y+r.Height; y++ {
		if c.cells[c.index(r.X, y)].Rune == 0 {
			return true
		}
		last := c.cells[c.index(r.X+r.Width-1, y)]
		if runewidth.RuneWidth(last.Rune) > 1 {
			return true
		}
	}
	return false
}
