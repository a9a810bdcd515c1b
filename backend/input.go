package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/geom"
)

// MouseButton identifies the held mouse button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// String returns a short name for the button.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// MouseSample is one polled mouse state.
type MouseSample struct {
	Button   MouseButton
	Position geom.Point // cell coordinates
	Pixel    geom.Point // pixel coordinates
}

// KeySample is one polled keyboard transition.
type KeySample struct {
	Key     tcell.Key
	Rune    rune
	Pressed bool
	Mods    tcell.ModMask
}

// InputSource is polled once per tick by the input manager.
type InputSource interface {
	// PollMouse returns the current mouse state.
	PollMouse() MouseSample

	// PollKey returns the next pending key transition, if any.
	PollKey() (KeySample, bool)
}
