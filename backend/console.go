// Package backend defines the console and input boundaries the toolkit
// renders to and polls from. The tcell implementation serves real
// terminals and tcell simulation screens alike.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/geom"
)

// Cell is one character cell: a glyph plus its colours.
// A zero Rune marks the trailing half of a wide glyph.
type Cell struct {
	Rune rune
	Fore tcell.Color
	Back tcell.Color
}

// Style returns the tcell style for the cell colours.
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Fore).Background(c.Back)
}

// CellFromStyle builds a cell from a rune and a tcell style.
func CellFromStyle(r rune, style tcell.Style) Cell {
	fg, bg, _ := style.Decompose()
	return Cell{Rune: r, Fore: fg, Back: bg}
}

// Console is the fixed-size character grid the toolkit composites onto.
type Console interface {
	// Size returns the console dimensions in cells.
	Size() (width, height int)

	// CellSize returns the size of one cell in pixels.
	CellSize() geom.Size

	// SetContent writes a glyph with a style. Out-of-range writes are ignored.
	SetContent(x, y int, r rune, style tcell.Style)

	// Content reads back the glyph and style at a cell.
	Content(x, y int) (rune, tcell.Style)

	// Show presents pending writes.
	Show()

	// Clear blanks the whole console.
	Clear()
}

// ScreenSize returns the console size as a geom.Size.
func ScreenSize(c Console) geom.Size {
	if c == nil {
		return geom.Size{}
	}
	w, h := c.Size()
	return geom.Sz(w, h)
}
