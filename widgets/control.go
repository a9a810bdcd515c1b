package widgets

import (
	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/event"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/pigment"
	"github.com/odvcencio/cellui/runtime"
)

// Control is an interactive widget owned by a Window. Its state flags
// only change through the hooks the Window calls.
// Implementations embed ControlBase.
type Control interface {
	Widget

	OnMouseEnter(runtime.MouseData)
	OnMouseLeave(runtime.MouseData)
	OnTakeKeyboardFocus()
	OnReleaseKeyboardFocus()
	DetermineFramePigment() pigment.Pigment

	HasKeyboardFocus() bool
	CanHaveKeyboardFocus() bool
	IsActive() bool
	IsMouseOver() bool
	IsBeingPushed() bool
	HasFrame() bool
	Tooltip() string
	ParentWindow() *Window

	controlBase() *ControlBase
}

// ControlTemplate carries the settings every control accepts.
type ControlTemplate struct {
	Position     geom.Point
	Tooltip      string
	HasFrame     bool
	Inactive     bool
	Alternatives pigment.Alternatives
}

// ControlEvents are raised alongside the control-specific hooks.
type ControlEvents struct {
	MouseEnter    event.Event[runtime.MouseData]
	MouseLeave    event.Event[runtime.MouseData]
	FocusTaken    event.Event[struct{}]
	FocusReleased event.Event[struct{}]
}

// ControlBase implements Control.
type ControlBase struct {
	WidgetBase

	ctl       Control
	hasFocus  bool
	canFocus  bool
	active    bool
	mouseOver bool
	pushed    bool
	hasFrame  bool
	tooltip   string
	parent    *Window
	events    ControlEvents
}

// InitControl initialises the widget part and applies t. focusable sets
// whether the control may take keyboard focus.
func (c *ControlBase) InitControl(self Control, screen, size geom.Size, t ControlTemplate, focusable bool) error {
	if err := c.Init(self, screen, size); err != nil {
		return err
	}
	c.ctl = self
	c.position = t.Position
	c.tooltip = t.Tooltip
	c.hasFrame = t.HasFrame
	c.active = !t.Inactive
	c.canFocus = focusable
	c.pigments = pigment.NewMap(c.pigments.Base(), t.Alternatives)
	return nil
}

func (c *ControlBase) controlBase() *ControlBase { return c }

// ControlEvents returns the control's own events.
func (c *ControlBase) ControlEvents() *ControlEvents {
	if c == nil {
		return nil
	}
	return &c.events
}

// HasKeyboardFocus reports whether the control holds the window focus.
func (c *ControlBase) HasKeyboardFocus() bool { return c != nil && c.hasFocus }

// CanHaveKeyboardFocus reports whether the window may focus the control.
func (c *ControlBase) CanHaveKeyboardFocus() bool { return c != nil && c.canFocus }

// IsActive reports whether the control accepts input.
func (c *ControlBase) IsActive() bool { return c != nil && c.active }

// IsMouseOver reports whether the control is under the mouse.
func (c *ControlBase) IsMouseOver() bool { return c != nil && c.mouseOver }

// IsBeingPushed reports whether the primary button went down on the control
// and has not been released or dragged off it.
func (c *ControlBase) IsBeingPushed() bool { return c != nil && c.pushed }

// HasFrame reports whether Redraw draws a frame.
func (c *ControlBase) HasFrame() bool { return c != nil && c.hasFrame }

// Tooltip returns the tooltip text.
func (c *ControlBase) Tooltip() string {
	if c == nil {
		return ""
	}
	return c.tooltip
}

// SetTooltip replaces the tooltip text. An empty text disables the tooltip.
func (c *ControlBase) SetTooltip(text string) {
	if c == nil {
		return
	}
	c.tooltip = text
}

// ParentWindow returns the window the control was added to, if any.
func (c *ControlBase) ParentWindow() *Window {
	if c == nil {
		return nil
	}
	return c.parent
}

// SetActive enables or disables input. Disabling drops the keyboard focus
// and the push state.
func (c *ControlBase) SetActive(active bool) {
	if c == nil || c.active == active {
		return
	}
	c.active = active
	if !active {
		c.pushed = false
		c.dropFocus()
	}
}

// SetCanHaveKeyboardFocus changes focusability. A control that can no
// longer be focused loses the focus it holds.
func (c *ControlBase) SetCanHaveKeyboardFocus(on bool) {
	if c == nil {
		return
	}
	c.canFocus = on
	if !on {
		c.dropFocus()
	}
}

func (c *ControlBase) dropFocus() {
	if !c.hasFocus {
		return
	}
	if c.parent != nil && c.parent.focus == c.ctl {
		c.parent.ReleaseFocus()
		return
	}
	c.ctl.OnReleaseKeyboardFocus()
}

// ClientRect returns the canvas area inside the frame.
func (c *ControlBase) ClientRect() geom.Rect {
	r := c.Canvas().Bounds()
	if c.HasFrame() && r.Width > 2 && r.Height > 2 {
		return r.Inset(1)
	}
	return r
}

// DetermineMainPigment picks the pigment for the current state.
func (c *ControlBase) DetermineMainPigment() pigment.Pigment {
	switch {
	case !c.active:
		return c.Pigment(pigment.Inactive)
	case c.pushed:
		return c.Pigment(pigment.Depressed)
	case c.mouseOver || c.hasFocus:
		return c.Pigment(pigment.Hilight)
	default:
		return c.Pigment(pigment.Active)
	}
}

// DetermineFramePigment picks the frame pigment for the current state.
func (c *ControlBase) DetermineFramePigment() pigment.Pigment {
	if !c.active {
		return c.Pigment(pigment.Inactive)
	}
	frame := c.Pigment(pigment.Frame)
	if c.hasFocus {
		return frame.Lighter(0.3)
	}
	return frame
}

// Redraw draws the frame when the control has one.
func (c *ControlBase) Redraw() {
	if !c.hasFrame {
		return
	}
	_ = c.canvas.DrawFrame(c.canvas.Bounds(), "", c.ctl.DetermineFramePigment())
}

// OnMouseEnter marks the control as under the mouse.
func (c *ControlBase) OnMouseEnter(m runtime.MouseData) {
	c.mouseOver = true
	c.events.MouseEnter.Emit(m)
}

// OnMouseLeave clears the mouse-over and push state.
func (c *ControlBase) OnMouseLeave(m runtime.MouseData) {
	c.mouseOver = false
	c.pushed = false
	c.events.MouseLeave.Emit(m)
}

// OnMouseButtonDown starts a push for the primary button.
func (c *ControlBase) OnMouseButtonDown(m runtime.MouseData) {
	if m.Button == backend.ButtonLeft {
		c.pushed = true
	}
	c.WidgetBase.OnMouseButtonDown(m)
}

// OnMouseButtonUp ends a push for the primary button.
func (c *ControlBase) OnMouseButtonUp(m runtime.MouseData) {
	if m.Button == backend.ButtonLeft {
		c.pushed = false
	}
	c.WidgetBase.OnMouseButtonUp(m)
}

// OnMouseHoverBegin asks the parent window to show the tooltip.
func (c *ControlBase) OnMouseHoverBegin(m runtime.MouseData) {
	c.WidgetBase.OnMouseHoverBegin(m)
	if c.tooltip != "" && c.parent != nil {
		c.parent.RequestTooltip(c.tooltip, m.Position)
	}
}

// OnTakeKeyboardFocus marks the control focused.
func (c *ControlBase) OnTakeKeyboardFocus() {
	c.hasFocus = true
	c.events.FocusTaken.Emit(struct{}{})
}

// OnReleaseKeyboardFocus marks the control unfocused.
func (c *ControlBase) OnReleaseKeyboardFocus() {
	c.hasFocus = false
	c.events.FocusReleased.Emit(struct{}{})
}

func (c *ControlBase) clearMouse() {
	c.mouseOver = false
	c.pushed = false
}

// fillRow paints width cells of row y from x with spaces in p.
func (c *ControlBase) fillRow(x, y, width int, p pigment.Pigment) {
	for i := range width {
		_ = c.canvas.PutCharPigment(x+i, y, ' ', p)
	}
}
