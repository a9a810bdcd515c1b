package widgets

import (
	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/pigment"
)

// Tooltip shows a short, possibly multi-line, text near the pointer.
// It is owned by its Window.
type Tooltip struct {
	WidgetBase
	text  string
	lines []string
}

// tooltipSize pads every line with one cell on each side, limited to the
// screen.
func tooltipSize(screen geom.Size, lines []string) geom.Size {
	width := 0
	for _, line := range lines {
		width = max(width, canvas.TextLength(line))
	}
	return geom.Sz(min(width+2, screen.Width), min(len(lines), screen.Height))
}

// tooltipPosition places a tooltip of size below at, or above it when
// there is no room below, keeping it on screen.
func tooltipPosition(screen, size geom.Size, at geom.Point) geom.Point {
	pos := geom.Pt(at.X, at.Y+1)
	if pos.Y+size.Height > screen.Height {
		pos.Y = at.Y - size.Height
	}
	pos.X = min(max(pos.X, 0), screen.Width-size.Width)
	pos.Y = min(max(pos.Y, 0), screen.Height-size.Height)
	return pos
}

func newTooltip(screen geom.Size, text string, at geom.Point, table pigment.Table) (*Tooltip, error) {
	lines := canvas.SplitLines(text)
	size := tooltipSize(screen, lines)
	t := &Tooltip{text: text, lines: lines}
	if err := t.Init(t, screen, size); err != nil {
		return nil, err
	}
	t.pigments = t.pigments.WithBase(table)
	t.position = tooltipPosition(screen, size, at)
	return t, nil
}

// Text returns the tooltip text.
func (t *Tooltip) Text() string {
	if t == nil {
		return ""
	}
	return t.text
}

// DetermineMainPigment returns the tooltip pigment.
func (t *Tooltip) DetermineMainPigment() pigment.Pigment {
	return t.Pigment(pigment.Tooltip)
}

// Redraw prints the lines inside the padding.
func (t *Tooltip) Redraw() {
	size := t.Size()
	if size.Width < 3 {
		return
	}
	for y, line := range t.lines[:min(len(t.lines), size.Height)] {
		_ = t.canvas.PrintStringAligned(1, y, line, canvas.AlignLeft, size.Width-2, t.DetermineMainPigment())
	}
}
