package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/event"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/runtime"
)

// ButtonTemplate configures a Button.
type ButtonTemplate struct {
	ControlTemplate
	Label string
	// Width is a minimum; the label always fits.
	Width int
}

// CalculateSize fits the label with a cell of padding on each side.
func (t ButtonTemplate) CalculateSize() geom.Size {
	width := max(t.Width, canvas.TextLength(t.Label)+2)
	if t.HasFrame {
		return geom.Sz(width+2, 3)
	}
	return geom.Sz(width, 1)
}

// Button raises Clicked when the primary button is released over it after
// being pressed on it, or when Enter or Space is pressed while it has the
// focus.
type Button struct {
	ControlBase
	label   string
	clicked event.Event[*Button]
}

// NewButton builds a button for a screen of the given size.
func NewButton(screen geom.Size, t ButtonTemplate) (*Button, error) {
	b := &Button{label: t.Label}
	if err := b.InitControl(b, screen, t.CalculateSize(), t.ControlTemplate, true); err != nil {
		return nil, err
	}
	return b, nil
}

// Label returns the button text.
func (b *Button) Label() string {
	if b == nil {
		return ""
	}
	return b.label
}

// SetLabel replaces the button text. It is cut to the button width.
func (b *Button) SetLabel(label string) {
	if b == nil {
		return
	}
	b.label = label
}

// Clicked is raised on every click.
func (b *Button) Clicked() *event.Event[*Button] {
	if b == nil {
		return nil
	}
	return &b.clicked
}

// Click raises Clicked if the button is active.
func (b *Button) Click() {
	if b == nil || !b.IsActive() {
		return
	}
	b.clicked.Emit(b)
}

// OnMouseButtonUp clicks when a push ends over the button.
func (b *Button) OnMouseButtonUp(m runtime.MouseData) {
	pushed := b.IsBeingPushed()
	b.ControlBase.OnMouseButtonUp(m)
	if pushed && m.Button == backend.ButtonLeft && b.IsMouseOver() {
		b.Click()
	}
}

// OnKeyPressed clicks on Enter and Space.
func (b *Button) OnKeyPressed(k runtime.KeyData) {
	b.ControlBase.OnKeyPressed(k)
	if k.Key == tcell.KeyEnter || (k.IsRune() && k.Rune == ' ') {
		b.Click()
	}
}

// Redraw centres the label.
func (b *Button) Redraw() {
	b.ControlBase.Redraw()
	_ = b.canvas.PrintStringRect(b.ClientRect(), b.label, canvas.AlignCenter, canvas.AlignMiddle, b.DetermineMainPigment())
}
