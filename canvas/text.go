package canvas

import (
	"iter"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/pigment"
)

// Inline colour escapes. A fore or back lead byte is followed by three raw
// channel bytes; the stop byte restores the print pigment.
const (
	codeFore = 0x06
	codeBack = 0x07
	codeStop = 0x08
)

// Stop is the escape that ends a ForeCode or BackCode run.
const Stop = string(rune(codeStop))

// ForeCode returns the escape that switches the print foreground to col.
func ForeCode(col tcell.Color) string {
	return colourCode(codeFore, col)
}

// BackCode returns the escape that switches the print background to col.
func BackCode(col tcell.Color) string {
	return colourCode(codeBack, col)
}

func colourCode(lead byte, col tcell.Color) string {
	r, g, b, _ := pigment.Channels(col)
	return string([]byte{lead, r, g, b})
}

// Colorize wraps text in a foreground escape.
func Colorize(text string, col tcell.Color) string {
	return ForeCode(col) + text + Stop
}

// HAlign positions text within a field.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign positions lines within a rect.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

type glyph struct {
	r     rune
	width int
	// byte range of the glyph, escapes before it excluded
	start, end int

	fore, back       tcell.Color
	hasFore, hasBack bool
}

// glyphs yields the visible runes of s with the colour escapes in force.
// Zero-width runes are dropped.
func glyphs(s string) iter.Seq[glyph] {
	return func(yield func(glyph) bool) {
		var state glyph
		for i := 0; i < len(s); {
			switch s[i] {
			case codeFore, codeBack:
				if i+3 >= len(s) {
					return
				}
				col := pigment.RGB(s[i+1], s[i+2], s[i+3])
				if s[i] == codeFore {
					state.fore, state.hasFore = col, true
				} else {
					state.back, state.hasBack = col, true
				}
				i += 4
				continue
			case codeStop:
				state.hasFore, state.hasBack = false, false
				i++
				continue
			}
			r, size := utf8.DecodeRuneInString(s[i:])
			w := runewidth.RuneWidth(r)
			if w > 0 {
				g := state
				g.r, g.width, g.start, g.end = r, w, i, i+size
				if !yield(g) {
					return
				}
			}
			i += size
		}
	}
}

// TextLength returns the number of cells s occupies when printed.
// Colour escapes occupy none.
func TextLength(s string) int {
	n := 0
	for g := range glyphs(s) {
		n += g.width
	}
	return n
}

// TrimText cuts s to at most n cells, keeping the escapes that precede the
// last glyph kept. A wide glyph that would straddle the limit is dropped.
func TrimText(s string, n int) string {
	if n <= 0 {
		return ""
	}
	used, cut := 0, 0
	for g := range glyphs(s) {
		if used+g.width > n {
			return s[:cut]
		}
		used += g.width
		cut = g.end
	}
	return s
}

// PrintString prints text at (x, y) in p, truncated at the right edge.
func (c *Canvas) PrintString(x, y int, text string, p pigment.Pigment) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	c.printRun(x, y, c.width-x, text, p)
	return nil
}

// PrintStringAligned prints text inside a field of fieldLen cells starting
// at (x, y). Text longer than the field is truncated to it.
func (c *Canvas) PrintStringAligned(x, y int, text string, align HAlign, fieldLen int, p pigment.Pigment) error {
	if fieldLen < 1 {
		return ErrInvalidField
	}
	if err := c.check(x, y); err != nil {
		return err
	}
	if err := c.check(x+fieldLen-1, y); err != nil {
		return err
	}
	text = TrimText(text, fieldLen)
	c.printRun(x+alignOffset(align, fieldLen, TextLength(text)), y, fieldLen, text, p)
	return nil
}

// PrintStringRect prints newline-separated text inside r. Lines beyond the
// rect height are dropped and each line is aligned and truncated to the
// rect width.
func (c *Canvas) PrintStringRect(r geom.Rect, text string, h HAlign, v VAlign, p pigment.Pigment) error {
	if c.Disposed() {
		return ErrDisposed
	}
	if r.Empty() {
		return ErrInvalidField
	}
	if !c.Bounds().ContainsRect(r) {
		return ErrOutOfBounds
	}
	lines := SplitLines(text)
	if len(lines) > r.Height {
		lines = lines[:r.Height]
	}
	top := r.Y
	switch v {
	case AlignMiddle:
		top += (r.Height - len(lines)) / 2
	case AlignBottom:
		top += r.Height - len(lines)
	}
	for i, line := range lines {
		if err := c.PrintStringAligned(r.X, top+i, line, h, r.Width, p); err != nil {
			return err
		}
	}
	return nil
}

// SplitLines splits text on newlines that are not part of a colour escape.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		switch text[i] {
		case codeFore, codeBack:
			i += 4
			continue
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		}
		i++
	}
	return append(lines, text[start:])
}

func alignOffset(align HAlign, fieldLen, textLen int) int {
	switch align {
	case AlignCenter:
		return (fieldLen - textLen) / 2
	case AlignRight:
		return fieldLen - textLen
	default:
		return 0
	}
}

// printRun prints at most limit cells of text from a validated start.
func (c *Canvas) printRun(x, y, limit int, text string, p pigment.Pigment) {
	end := min(c.width, x+limit)
	for g := range glyphs(text) {
		if x+g.width > end {
			return
		}
		fore, back := p.Fore(), p.Back()
		if g.hasFore {
			fore = g.fore
		}
		if g.hasBack {
			back = g.back
		}
		back = p.Flag().Apply(c.cells[c.index(x, y)].Back, back)
		_ = c.putGlyph(x, y, g.r, fore, back)
		x += g.width
	}
}
