package runtime

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/geom"
)

// Message is one entry of the stream a Component receives.
// Dispatch maps each message to the matching Component hook.
type Message interface {
	isMessage()
}

// KeyData describes a keyboard transition.
type KeyData struct {
	Key  tcell.Key
	Rune rune
	Mods tcell.ModMask
}

// Shift reports whether shift was held.
func (k KeyData) Shift() bool { return k.Mods&tcell.ModShift != 0 }

// Ctrl reports whether control was held.
func (k KeyData) Ctrl() bool { return k.Mods&tcell.ModCtrl != 0 }

// Alt reports whether alt was held.
func (k KeyData) Alt() bool { return k.Mods&tcell.ModAlt != 0 }

// IsRune reports whether the key carries a printable rune.
func (k KeyData) IsRune() bool { return k.Key == tcell.KeyRune && k.Rune != 0 }

// MouseData describes the pointer for a mouse message.
// Position is in root-window cells; Pixel is in console pixels.
type MouseData struct {
	Position geom.Point
	Pixel    geom.Point
	Button   backend.MouseButton
	// Origin is the cell where the current press began.
	Origin geom.Point
}

// SetupMsg is delivered once before any other message.
type SetupMsg struct{}

// QuitMsg is delivered when the application stops.
type QuitMsg struct{}

// TickMsg is delivered once per frame with the frame's wall-clock time.
type TickMsg struct {
	Time time.Time
}

// KeyPressedMsg reports a key press.
type KeyPressedMsg struct{ Key KeyData }

// KeyReleasedMsg reports a key release.
type KeyReleasedMsg struct{ Key KeyData }

// MouseMovedMsg reports pointer motion.
type MouseMovedMsg struct{ Mouse MouseData }

// MouseButtonDownMsg reports a button press.
type MouseButtonDownMsg struct{ Mouse MouseData }

// MouseButtonUpMsg reports a button release.
type MouseButtonUpMsg struct{ Mouse MouseData }

// HoverBeginMsg reports that the pointer has rested for HoverDelay.
type HoverBeginMsg struct{ Mouse MouseData }

// HoverEndMsg reports that a resting pointer moved again.
type HoverEndMsg struct{ Mouse MouseData }

// DragBeginMsg reports that a held primary button moved past DragThreshold.
type DragBeginMsg struct{ Mouse MouseData }

// DragEndMsg reports the end of a drag.
type DragEndMsg struct{ Mouse MouseData }

func (SetupMsg) isMessage()           {}
func (QuitMsg) isMessage()            {}
func (TickMsg) isMessage()            {}
func (KeyPressedMsg) isMessage()      {}
func (KeyReleasedMsg) isMessage()     {}
func (MouseMovedMsg) isMessage()      {}
func (MouseButtonDownMsg) isMessage() {}
func (MouseButtonUpMsg) isMessage()   {}
func (HoverBeginMsg) isMessage()      {}
func (HoverEndMsg) isMessage()        {}
func (DragBeginMsg) isMessage()       {}
func (DragEndMsg) isMessage()         {}

// MessageName returns a short name for logging.
func MessageName(msg Message) string {
	switch msg.(type) {
	case SetupMsg:
		return "setup"
	case QuitMsg:
		return "quit"
	case TickMsg:
		return "tick"
	case KeyPressedMsg:
		return "key-pressed"
	case KeyReleasedMsg:
		return "key-released"
	case MouseMovedMsg:
		return "mouse-moved"
	case MouseButtonDownMsg:
		return "mouse-down"
	case MouseButtonUpMsg:
		return "mouse-up"
	case HoverBeginMsg:
		return "hover-begin"
	case HoverEndMsg:
		return "hover-end"
	case DragBeginMsg:
		return "drag-begin"
	case DragEndMsg:
		return "drag-end"
	default:
		return "unknown"
	}
}
