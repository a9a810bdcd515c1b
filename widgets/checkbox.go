package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/event"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/runtime"
)

// CheckBoxTemplate configures a CheckBox.
type CheckBoxTemplate struct {
	ControlTemplate
	Label   string
	Checked bool
}

// CalculateSize fits the box and the label on one row.
func (t CheckBoxTemplate) CalculateSize() geom.Size {
	width := canvas.TextLength(t.Label) + 4
	if t.HasFrame {
		return geom.Sz(width+2, 3)
	}
	return geom.Sz(width, 1)
}

// CheckBox toggles a boolean on click or Space.
type CheckBox struct {
	ControlBase
	label   string
	checked *event.Value[bool]
}

// NewCheckBox builds a check box for a screen of the given size.
func NewCheckBox(screen geom.Size, t CheckBoxTemplate) (*CheckBox, error) {
	cb := &CheckBox{label: t.Label, checked: event.NewComparableValue(t.Checked)}
	if err := cb.InitControl(cb, screen, t.CalculateSize(), t.ControlTemplate, true); err != nil {
		return nil, err
	}
	return cb, nil
}

// Label returns the text beside the box.
func (cb *CheckBox) Label() string {
	if cb == nil {
		return ""
	}
	return cb.label
}

// Checked returns the observable state.
func (cb *CheckBox) Checked() *event.Value[bool] {
	if cb == nil {
		return nil
	}
	return cb.checked
}

// Toggle flips the state if the check box is active.
func (cb *CheckBox) Toggle() {
	if cb == nil || !cb.IsActive() {
		return
	}
	cb.checked.Update(func(v bool) bool { return !v })
}

// OnMouseButtonUp toggles when a push ends over the check box.
func (cb *CheckBox) OnMouseButtonUp(m runtime.MouseData) {
	pushed := cb.IsBeingPushed()
	cb.ControlBase.OnMouseButtonUp(m)
	if pushed && m.Button == backend.ButtonLeft && cb.IsMouseOver() {
		cb.Toggle()
	}
}

// OnKeyPressed toggles on Space.
func (cb *CheckBox) OnKeyPressed(k runtime.KeyData) {
	cb.ControlBase.OnKeyPressed(k)
	if k.Key == tcell.KeyRune && k.Rune == ' ' {
		cb.Toggle()
	}
}

// Redraw prints "[x] label".
func (cb *CheckBox) Redraw() {
	cb.ControlBase.Redraw()
	mark := "[ ] "
	if cb.checked.Get() {
		mark = "[x] "
	}
	r := cb.ClientRect()
	_ = cb.canvas.PrintStringAligned(r.X, r.Y, mark+cb.label, canvas.AlignLeft, r.Width, cb.DetermineMainPigment())
}
