// Package pigment provides immutable colour styles and the per-state
// pigment tables controls draw with.
package pigment

import "github.com/gdamore/tcell/v2"

// BackgroundFlag selects how a pigment's background composes onto the
// background already in a cell.
type BackgroundFlag int

const (
	// BackgroundSet replaces the cell background.
	BackgroundSet BackgroundFlag = iota
	// BackgroundNone keeps the cell background.
	BackgroundNone
	BackgroundMultiply
	BackgroundLighten
	BackgroundDarken
	BackgroundScreen
	BackgroundAdd
	BackgroundBurn
	BackgroundOverlay
)

// Apply composes src onto dst.
// Colours without an RGB value compose as BackgroundSet.
func (f BackgroundFlag) Apply(dst, src tcell.Color) tcell.Color {
	if f == BackgroundNone {
		return dst
	}
	if f == BackgroundSet {
		return src
	}
	dr, dg, db, okD := Channels(dst)
	sr, sg, sb, okS := Channels(src)
	if !okD || !okS {
		return src
	}
	op := f.channelOp()
	return RGB(op(dr, sr), op(dg, sg), op(db, sb))
}

func (f BackgroundFlag) channelOp() func(d, s uint8) uint8 {
	switch f {
	case BackgroundMultiply:
		return func(d, s uint8) uint8 { return uint8(int(d) * int(s) / 255) }
	case BackgroundLighten:
		return func(d, s uint8) uint8 { return max(d, s) }
	case BackgroundDarken:
		return func(d, s uint8) uint8 { return min(d, s) }
	case BackgroundScreen:
		return func(d, s uint8) uint8 { return uint8(255 - (255-int(d))*(255-int(s))/255) }
	case BackgroundAdd:
		return func(d, s uint8) uint8 { return uint8(min(255, int(d)+int(s))) }
	case BackgroundBurn:
		return func(d, s uint8) uint8 { return uint8(max(0, int(d)+int(s)-255)) }
	case BackgroundOverlay:
		return func(d, s uint8) uint8 {
			if s <= 128 {
				return uint8(2 * int(s) * int(d) / 255)
			}
			return uint8(255 - 2*(255-int(s))*(255-int(d))/255)
		}
	default:
		return func(_, s uint8) uint8 { return s }
	}
}

// Pigment is an immutable foreground/background pair plus the background
// compositing flag. The zero value uses terminal default colours.
type Pigment struct {
	fore tcell.Color
	back tcell.Color
	flag BackgroundFlag
}

// New creates a pigment that sets the background.
func New(fore, back tcell.Color) Pigment {
	return Pigment{fore: fore, back: back}
}

// NewWithFlag creates a pigment with an explicit background flag.
func NewWithFlag(fore, back tcell.Color, flag BackgroundFlag) Pigment {
	return Pigment{fore: fore, back: back, flag: flag}
}

// Fore returns the foreground colour.
func (p Pigment) Fore() tcell.Color { return p.fore }

// Back returns the background colour.
func (p Pigment) Back() tcell.Color { return p.back }

// Flag returns the background flag.
func (p Pigment) Flag() BackgroundFlag { return p.flag }

// WithFore returns a copy with the foreground replaced.
func (p Pigment) WithFore(c tcell.Color) Pigment {
	p.fore = c
	return p
}

// WithBack returns a copy with the background replaced.
func (p Pigment) WithBack(c tcell.Color) Pigment {
	p.back = c
	return p
}

// WithFlag returns a copy with the background flag replaced.
func (p Pigment) WithFlag(flag BackgroundFlag) Pigment {
	p.flag = flag
	return p
}

// Swapped returns a copy with foreground and background exchanged.
func (p Pigment) Swapped() Pigment {
	p.fore, p.back = p.back, p.fore
	return p
}

// Lighter returns a copy with both colours lightened by t.
func (p Pigment) Lighter(t float64) Pigment {
	p.fore = Lighten(p.fore, t)
	p.back = Lighten(p.back, t)
	return p
}

// Darker returns a copy with both colours darkened by t.
func (p Pigment) Darker(t float64) Pigment {
	p.fore = Darken(p.fore, t)
	p.back = Darken(p.back, t)
	return p
}

// Style returns the pigment as a tcell style.
func (p Pigment) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(p.fore).Background(p.back)
}
