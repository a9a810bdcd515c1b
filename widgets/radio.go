package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/event"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/runtime"
)

// RadioGroup ties radio options together; at most one is selected.
type RadioGroup struct {
	selected *event.Value[int]
	options  []*Radio
}

// NewRadioGroup creates an empty group with nothing selected.
func NewRadioGroup() *RadioGroup {
	return &RadioGroup{selected: event.NewComparableValue(-1)}
}

// Selected returns the observable selected index, -1 for none.
func (g *RadioGroup) Selected() *event.Value[int] {
	if g == nil {
		return nil
	}
	return g.selected
}

// Options returns the radios in the order they joined.
func (g *RadioGroup) Options() []*Radio {
	if g == nil {
		return nil
	}
	return g.options
}

// Select selects option i. Out-of-range indexes clear the selection.
func (g *RadioGroup) Select(i int) {
	if g == nil {
		return
	}
	if i < 0 || i >= len(g.options) {
		i = -1
	}
	g.selected.Set(i)
}

// RadioTemplate configures a Radio.
type RadioTemplate struct {
	ControlTemplate
	Label string
	Group *RadioGroup
}

// CalculateSize fits the marker and the label on one row.
func (t RadioTemplate) CalculateSize() geom.Size {
	width := canvas.TextLength(t.Label) + 4
	if t.HasFrame {
		return geom.Sz(width+2, 3)
	}
	return geom.Sz(width, 1)
}

// Radio is one option of a RadioGroup.
type Radio struct {
	ControlBase
	label string
	group *RadioGroup
	index int
}

// NewRadio builds a radio and appends it to its group.
func NewRadio(screen geom.Size, t RadioTemplate) (*Radio, error) {
	r := &Radio{label: t.Label, group: t.Group, index: -1}
	if err := r.InitControl(r, screen, t.CalculateSize(), t.ControlTemplate, true); err != nil {
		return nil, err
	}
	if t.Group != nil {
		r.index = len(t.Group.options)
		t.Group.options = append(t.Group.options, r)
	}
	return r, nil
}

// Label returns the option text.
func (r *Radio) Label() string {
	if r == nil {
		return ""
	}
	return r.label
}

// Selected reports whether this option is the group's selection.
func (r *Radio) Selected() bool {
	return r != nil && r.group != nil && r.index >= 0 && r.group.selected.Get() == r.index
}

// Choose makes this option the selection if the radio is active.
func (r *Radio) Choose() {
	if r == nil || r.group == nil || !r.IsActive() {
		return
	}
	r.group.Select(r.index)
}

// OnMouseButtonUp chooses the option when a push ends over it.
func (r *Radio) OnMouseButtonUp(m runtime.MouseData) {
	pushed := r.IsBeingPushed()
	r.ControlBase.OnMouseButtonUp(m)
	if pushed && m.Button == backend.ButtonLeft && r.IsMouseOver() {
		r.Choose()
	}
}

// OnKeyPressed chooses on Enter or Space.
func (r *Radio) OnKeyPressed(k runtime.KeyData) {
	r.ControlBase.OnKeyPressed(k)
	if k.Key == tcell.KeyEnter || (k.IsRune() && k.Rune == ' ') {
		r.Choose()
	}
}

// Redraw prints "(*) label".
func (r *Radio) Redraw() {
	r.ControlBase.Redraw()
	mark := "( ) "
	if r.Selected() {
		mark = "(*) "
	}
	c := r.ClientRect()
	_ = r.canvas.PrintStringAligned(c.X, c.Y, mark+r.label, canvas.AlignLeft, c.Width, r.DetermineMainPigment())
}
