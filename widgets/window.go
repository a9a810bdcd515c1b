package widgets

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/clipboard"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/pigment"
	"github.com/odvcencio/cellui/runtime"
)

var (
	// ErrNilControl is returned when adding a nil control.
	ErrNilControl = errors.New("nil control")
	// ErrControlExists is returned when a control is added twice.
	ErrControlExists = errors.New("control already added")
	// ErrControlOwned is returned when a control belongs to another window.
	ErrControlOwned = errors.New("control belongs to another window")
	// ErrControlTooLarge is returned when a control cannot fit the window.
	ErrControlTooLarge = errors.New("control larger than window")
	// ErrNilManager is returned when adding a nil manager.
	ErrNilManager = errors.New("nil manager")
	// ErrManagerExists is returned when a manager is added twice.
	ErrManagerExists = errors.New("manager already added")
)

// WindowTemplate configures a Window.
type WindowTemplate struct {
	// Size defaults to the screen size.
	Size geom.Size
	// Theme names a chroma style to derive the pigment table from.
	// It takes precedence over Table.
	Theme string
	// Table defaults to pigment.DefaultTable.
	Table pigment.Table
	// Alternatives override Table for the window, its controls and tooltips.
	Alternatives pigment.Alternatives
	// DisableFocusCycling stops Tab and Backtab from moving the focus.
	DisableFocusCycling bool
	// Clipboard defaults to an in-memory clipboard.
	Clipboard clipboard.Clipboard
	Logger    *slog.Logger
}

// CalculateSize returns the window size.
func (t WindowTemplate) CalculateSize() geom.Size {
	return t.Size
}

// Window is the root widget. It owns the controls in z-order (last is
// topmost) and the managers, and routes every message to them.
type Window struct {
	WidgetBase

	controls  []Control
	managers  []Manager
	cycling   bool
	clipboard clipboard.Clipboard
	logger    *slog.Logger

	focus      Control
	underMouse Control
	lastLBDown Control
	dragging   Control
	tooltip    *Tooltip

	lastMouse runtime.MouseData
	hasMouse  bool
}

// NewWindow builds a window for a screen of the given size.
func NewWindow(screen geom.Size, t WindowTemplate) (*Window, error) {
	size := t.CalculateSize()
	if size == (geom.Size{}) {
		size = screen
	}
	table := t.Table
	if t.Theme != "" {
		themed, err := pigment.FromChromaStyle(t.Theme)
		if err != nil {
			return nil, fmt.Errorf("new window: %w", err)
		}
		table = themed
	} else if table == (pigment.Table{}) {
		table = pigment.DefaultTable()
	}
	w := &Window{
		cycling:   !t.DisableFocusCycling,
		clipboard: t.Clipboard,
		logger:    t.Logger,
	}
	if err := w.Init(w, screen, size); err != nil {
		return nil, fmt.Errorf("new window: %w", err)
	}
	w.pigments = pigment.NewMap(table, t.Alternatives)
	if w.clipboard == nil {
		w.clipboard = &clipboard.MemoryClipboard{}
	}
	if w.logger == nil {
		w.logger = slog.New(slog.DiscardHandler)
	}
	return w, nil
}

// Table returns the pigment table controls inherit: the window table with
// the window's alternatives applied.
func (w *Window) Table() pigment.Table {
	if w == nil {
		return pigment.Table{}
	}
	return w.pigments.Table()
}

// Clipboard returns the clipboard shared by the window's controls.
func (w *Window) Clipboard() clipboard.Clipboard {
	if w == nil {
		return clipboard.UnavailableClipboard{}
	}
	return w.clipboard
}

// Controls returns the controls in z-order, bottom first.
func (w *Window) Controls() []Control {
	if w == nil {
		return nil
	}
	return slices.Clone(w.controls)
}

// Managers returns the managers in insertion order.
func (w *Window) Managers() []Manager {
	if w == nil {
		return nil
	}
	return slices.Clone(w.managers)
}

// Focused returns the control holding the keyboard focus.
func (w *Window) Focused() Control {
	if w == nil {
		return nil
	}
	return w.focus
}

// UnderMouse returns the control the mouse is over.
func (w *Window) UnderMouse() Control {
	if w == nil {
		return nil
	}
	return w.underMouse
}

// Dragging returns the control a drag began on.
func (w *Window) Dragging() Control {
	if w == nil {
		return nil
	}
	return w.dragging
}

// Tooltip returns the tooltip on screen, if any.
func (w *Window) Tooltip() *Tooltip {
	if w == nil {
		return nil
	}
	return w.tooltip
}

// ControlAt returns the topmost control covering p.
func (w *Window) ControlAt(p geom.Point) Control {
	if w == nil {
		return nil
	}
	for i := len(w.controls) - 1; i >= 0; i-- {
		if w.controls[i].ScreenRect().Contains(p) {
			return w.controls[i]
		}
	}
	return nil
}

// AddControl adds c on top of the z-order. A control that would stick out
// of the window is moved inside it; the result reports whether the
// requested position was kept. A failed add leaves the window unchanged.
func (w *Window) AddControl(c Control) (bool, error) {
	if w == nil || w.disposed {
		return false, ErrDisposed
	}
	if c == nil {
		return false, ErrNilControl
	}
	if c.Disposed() {
		return false, fmt.Errorf("add control %s: %w", c.ID(), ErrDisposed)
	}
	if slices.Contains(w.controls, c) {
		return false, ErrControlExists
	}
	cb := c.controlBase()
	if cb.parent != nil {
		return false, ErrControlOwned
	}
	size, limit := c.Size(), w.Size()
	if !size.Fits(limit) {
		return false, fmt.Errorf("add control %dx%d to %dx%d window: %w",
			size.Width, size.Height, limit.Width, limit.Height, ErrControlTooLarge)
	}
	requested := c.Position()
	pos := geom.Point{
		X: min(max(requested.X, 0), limit.Width-size.Width),
		Y: min(max(requested.Y, 0), limit.Height-size.Height),
	}
	c.SetPosition(pos)
	cb.parent = w
	cb.pigments = cb.pigments.WithBase(w.Table())
	w.controls = append(w.controls, c)
	w.logger.Debug("control added", "id", c.ID().String(), "x", pos.X, "y", pos.Y, "moved", pos != requested)

	runtime.Dispatch(c, runtime.SetupMsg{})
	w.rehit()
	return pos == requested, nil
}

// RemoveControl removes c. A control under the mouse gets a MouseLeave and
// its tooltip goes away, a focused one loses the focus and any click or drag
// on it is dropped.
func (w *Window) RemoveControl(c Control) bool {
	if w == nil || c == nil {
		return false
	}
	i := slices.Index(w.controls, c)
	if i < 0 {
		return false
	}
	if w.underMouse == c {
		w.underMouse = nil
		w.destroyTooltip()
		w.leave(c)
	}
	if w.focus == c {
		w.ReleaseFocus()
	}
	if w.lastLBDown == c {
		w.lastLBDown = nil
	}
	if w.dragging == c {
		w.dragging = nil
	}
	// Hooks above may have reordered the controls.
	if i = slices.Index(w.controls, c); i >= 0 {
		w.controls = slices.Delete(w.controls, i, i+1)
	}
	c.controlBase().parent = nil
	w.logger.Debug("control removed", "id", c.ID().String())
	w.rehit()
	return true
}

// MoveToTop raises c above every other control.
func (w *Window) MoveToTop(c Control) {
	w.restack(c, true)
}

// MoveToBottom lowers c beneath every other control.
func (w *Window) MoveToBottom(c Control) {
	w.restack(c, false)
}

func (w *Window) restack(c Control, top bool) {
	if w == nil || c == nil {
		return
	}
	i := slices.Index(w.controls, c)
	if i < 0 {
		return
	}
	w.controls = slices.Delete(w.controls, i, i+1)
	if top {
		w.controls = append(w.controls, c)
	} else {
		w.controls = slices.Insert(w.controls, 0, c)
	}
	w.rehit()
}

// AddManager attaches m to the message stream.
func (w *Window) AddManager(m Manager) error {
	if w == nil || w.disposed {
		return ErrDisposed
	}
	if m == nil {
		return ErrNilManager
	}
	if slices.Contains(w.managers, m) {
		return ErrManagerExists
	}
	m.managerBase().window = w
	w.managers = append(w.managers, m)
	runtime.Dispatch(m, runtime.SetupMsg{})
	return nil
}

// RemoveManager detaches m.
func (w *Window) RemoveManager(m Manager) bool {
	if w == nil || m == nil {
		return false
	}
	i := slices.Index(w.managers, m)
	if i < 0 {
		return false
	}
	w.managers = slices.Delete(w.managers, i, i+1)
	m.managerBase().window = nil
	return true
}

// Focus gives c the keyboard focus, releasing it from the previous holder.
// It reports false when c is not a focusable active control of w.
func (w *Window) Focus(c Control) bool {
	if w == nil || c == nil || !slices.Contains(w.controls, c) {
		return false
	}
	if !c.CanHaveKeyboardFocus() || !c.IsActive() {
		return false
	}
	if w.focus == c {
		return true
	}
	w.ReleaseFocus()
	w.focus = c
	c.OnTakeKeyboardFocus()
	w.logger.Debug("focus taken", "id", c.ID().String())
	return true
}

// ReleaseFocus clears the keyboard focus. It is a no-op with no focus.
func (w *Window) ReleaseFocus() {
	if w == nil || w.focus == nil {
		return
	}
	old := w.focus
	w.focus = nil
	old.OnReleaseKeyboardFocus()
	w.logger.Debug("focus released", "id", old.ID().String())
}

// FocusNext moves the focus to the next focusable control in z-order.
func (w *Window) FocusNext() bool {
	return w.cycleFocus(1)
}

// FocusPrev moves the focus to the previous focusable control in z-order.
func (w *Window) FocusPrev() bool {
	return w.cycleFocus(-1)
}

func (w *Window) cycleFocus(step int) bool {
	if w == nil {
		return false
	}
	var candidates []Control
	for _, c := range w.controls {
		if c.CanHaveKeyboardFocus() && c.IsActive() {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	next := 0
	if step < 0 {
		next = len(candidates) - 1
	}
	if i := slices.Index(candidates, w.focus); i >= 0 {
		next = (i + step + len(candidates)) % len(candidates)
	}
	return w.Focus(candidates[next])
}

// RequestTooltip replaces the current tooltip with one showing text near
// pos. An empty text only removes the current tooltip.
func (w *Window) RequestTooltip(text string, pos geom.Point) {
	if w == nil || w.disposed {
		return
	}
	w.destroyTooltip()
	if text == "" {
		return
	}
	tip, err := newTooltip(w.Size(), text, pos, w.Table())
	if err != nil {
		w.logger.Warn("tooltip", "err", err)
		return
	}
	w.tooltip = tip
}

func (w *Window) destroyTooltip() {
	if w.tooltip == nil {
		return
	}
	w.tooltip.Dispose()
	w.tooltip = nil
}

// OnDraw draws the window, then the controls bottom first, then the tooltip.
// Disposed controls are skipped. A control that fails to draw does not stop
// the others; the errors are joined.
func (w *Window) OnDraw(target backend.Console) error {
	if err := w.WidgetBase.OnDraw(target); err != nil {
		return err
	}
	var errs []error
	for _, c := range w.Controls() {
		if c.Disposed() {
			continue
		}
		if err := c.OnDraw(target); err != nil {
			errs = append(errs, fmt.Errorf("draw control %s: %w", c.ID(), err))
		}
	}
	if w.tooltip != nil {
		if err := w.tooltip.OnDraw(target); err != nil {
			errs = append(errs, fmt.Errorf("draw tooltip: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Dispose disposes the controls, the tooltip and then the window canvas.
func (w *Window) Dispose() bool {
	if w == nil || w.disposed {
		return false
	}
	for _, c := range w.controls {
		c.Dispose()
		c.controlBase().parent = nil
	}
	w.controls = nil
	w.focus, w.underMouse, w.lastLBDown, w.dragging = nil, nil, nil, nil
	w.destroyTooltip()
	for _, m := range w.managers {
		m.managerBase().window = nil
	}
	w.managers = nil
	return w.WidgetBase.Dispose()
}

// Message routing. Managers see every message before the controls do.

// OnSettingUp sets up the window, its managers and its controls.
func (w *Window) OnSettingUp() {
	w.WidgetBase.OnSettingUp()
	w.broadcast(runtime.SetupMsg{})
}

// OnQuitting forwards the quit to managers and controls.
func (w *Window) OnQuitting() {
	w.WidgetBase.OnQuitting()
	w.broadcast(runtime.QuitMsg{})
}

// OnTick advances the window's schedules, then ticks managers and controls.
func (w *Window) OnTick(msg runtime.TickMsg) {
	w.WidgetBase.OnTick(msg)
	w.broadcast(msg)
}

func (w *Window) broadcast(msg runtime.Message) {
	for _, m := range slices.Clone(w.managers) {
		runtime.Dispatch(m, msg)
	}
	for _, c := range slices.Clone(w.controls) {
		runtime.Dispatch(c, msg)
	}
}

func (w *Window) toManagers(msg runtime.Message) {
	for _, m := range slices.Clone(w.managers) {
		runtime.Dispatch(m, msg)
	}
}

// OnKeyPressed goes to managers, then Tab and Backtab cycle the focus,
// otherwise the key goes to the focused control.
func (w *Window) OnKeyPressed(k runtime.KeyData) {
	w.WidgetBase.OnKeyPressed(k)
	w.toManagers(runtime.KeyPressedMsg{Key: k})
	if w.cycling {
		switch k.Key {
		case tcell.KeyTab:
			w.FocusNext()
			return
		case tcell.KeyBacktab:
			w.FocusPrev()
			return
		}
	}
	if c := w.focus; c != nil && c.IsActive() {
		c.OnKeyPressed(k)
	}
}

// OnKeyReleased goes to managers and then the focused control.
func (w *Window) OnKeyReleased(k runtime.KeyData) {
	w.WidgetBase.OnKeyReleased(k)
	w.toManagers(runtime.KeyReleasedMsg{Key: k})
	if c := w.focus; c != nil && c.IsActive() {
		c.OnKeyReleased(k)
	}
}

// OnMouseMoved updates the control under the mouse, delivering MouseLeave
// and MouseEnter, and then forwards the move to it.
func (w *Window) OnMouseMoved(m runtime.MouseData) {
	w.WidgetBase.OnMouseMoved(m)
	w.toManagers(runtime.MouseMovedMsg{Mouse: m})
	w.track(m)
	if c := w.underMouse; c != nil && c.IsActive() {
		c.OnMouseMoved(m)
	}
}

// OnMouseButtonDown delivers the press to the control under the mouse and
// records it as the click candidate. Focus moves only after delivery.
func (w *Window) OnMouseButtonDown(m runtime.MouseData) {
	w.WidgetBase.OnMouseButtonDown(m)
	w.toManagers(runtime.MouseButtonDownMsg{Mouse: m})
	w.sync(m)
	target := w.underMouse
	if target != nil && target.IsActive() {
		target.OnMouseButtonDown(m)
		w.lastLBDown = target
	}
	if w.focus != nil && w.focus != target {
		w.ReleaseFocus()
	}
	if target != nil && target.CanHaveKeyboardFocus() && !target.HasKeyboardFocus() &&
		target.IsActive() && m.Button == backend.ButtonLeft {
		w.Focus(target)
	}
}

// OnMouseButtonUp delivers the release to the control under the mouse and
// always ends the click candidate.
func (w *Window) OnMouseButtonUp(m runtime.MouseData) {
	w.WidgetBase.OnMouseButtonUp(m)
	w.toManagers(runtime.MouseButtonUpMsg{Mouse: m})
	w.sync(m)
	if c := w.underMouse; c != nil && c.IsActive() {
		c.OnMouseButtonUp(m)
	}
	w.lastLBDown = nil
}

// OnMouseDragBegin goes to the control the press started on.
func (w *Window) OnMouseDragBegin(m runtime.MouseData) {
	w.WidgetBase.OnMouseDragBegin(m)
	w.toManagers(runtime.DragBeginMsg{Mouse: m})
	c := w.lastLBDown
	if c != nil && c.IsActive() {
		c.OnMouseDragBegin(m)
	}
	w.dragging = c
}

// OnMouseDragEnd goes to the control under the mouse.
func (w *Window) OnMouseDragEnd(m runtime.MouseData) {
	w.WidgetBase.OnMouseDragEnd(m)
	w.toManagers(runtime.DragEndMsg{Mouse: m})
	if c := w.underMouse; c != nil && c.IsActive() {
		c.OnMouseDragEnd(m)
	}
	w.dragging = nil
}

// OnMouseHoverBegin goes to the control under the mouse, which may request
// a tooltip.
func (w *Window) OnMouseHoverBegin(m runtime.MouseData) {
	w.WidgetBase.OnMouseHoverBegin(m)
	w.toManagers(runtime.HoverBeginMsg{Mouse: m})
	if c := w.underMouse; c != nil && c.IsActive() {
		c.OnMouseHoverBegin(m)
	}
}

// OnMouseHoverEnd removes the tooltip before anyone else sees the message.
func (w *Window) OnMouseHoverEnd(m runtime.MouseData) {
	w.destroyTooltip()
	w.WidgetBase.OnMouseHoverEnd(m)
	w.toManagers(runtime.HoverEndMsg{Mouse: m})
	if c := w.underMouse; c != nil && c.IsActive() {
		c.OnMouseHoverEnd(m)
	}
}

// sync hit-tests again when a button message arrives at a position no
// move has reported yet.
func (w *Window) sync(m runtime.MouseData) {
	if w.hasMouse && m.Position == w.lastMouse.Position {
		return
	}
	w.track(m)
}

// track records m as the last mouse position and moves underMouse
// to the topmost control there.
func (w *Window) track(m runtime.MouseData) {
	w.lastMouse = m
	w.hasMouse = true
	hit := w.ControlAt(m.Position)
	if hit == w.underMouse {
		return
	}
	old := w.underMouse
	w.underMouse = hit
	if old != nil {
		w.leave(old)
	}
	if hit != nil && hit.IsActive() {
		hit.OnMouseEnter(m)
	}
}

func (w *Window) leave(c Control) {
	if c.IsActive() {
		c.OnMouseLeave(w.lastMouse)
		return
	}
	c.controlBase().clearMouse()
}

// rehit re-runs the hit test at the last known mouse position after the
// z-order changed.
func (w *Window) rehit() {
	if w.hasMouse {
		w.track(w.lastMouse)
	}
}

var _ runtime.Root = (*Window)(nil)
