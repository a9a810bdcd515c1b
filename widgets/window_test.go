package widgets

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/runtime"
)

var screen = geom.Sz(80, 24)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	w, err := NewWindow(screen, WindowTemplate{})
	if err != nil {
		t.Fatalf("new window: %v", err)
	}
	return w
}

// logged is a bare ControlBase whose hooks append name-prefixed entries
// to a shared log.
func logged(t *testing.T, log *[]string, name string, r geom.Rect, focusable bool) *ControlBase {
	t.Helper()
	c := &ControlBase{}
	if err := c.InitControl(c, screen, r.Size(), ControlTemplate{Position: r.Origin()}, focusable); err != nil {
		t.Fatalf("init %s: %v", name, err)
	}
	note := func(what string) func(runtime.MouseData) {
		return func(m runtime.MouseData) { *log = append(*log, name+":"+what) }
	}
	ev, cev := c.Events(), c.ControlEvents()
	ev.MouseMoved.Subscribe(note("moved"))
	ev.MouseButtonDown.Subscribe(func(m runtime.MouseData) { *log = append(*log, name+":down:"+m.Button.String()) })
	ev.MouseButtonUp.Subscribe(func(m runtime.MouseData) { *log = append(*log, name+":up:"+m.Button.String()) })
	ev.DragBegin.Subscribe(note("drag-begin"))
	ev.DragEnd.Subscribe(note("drag-end"))
	ev.HoverBegin.Subscribe(note("hover-begin"))
	ev.HoverEnd.Subscribe(note("hover-end"))
	cev.MouseEnter.Subscribe(note("enter"))
	cev.MouseLeave.Subscribe(note("leave"))
	cev.FocusTaken.Subscribe(func(struct{}) { *log = append(*log, name+":focus") })
	cev.FocusReleased.Subscribe(func(struct{}) { *log = append(*log, name+":blur") })
	return c
}

func mustAdd(t *testing.T, w *Window, c Control) {
	t.Helper()
	if _, err := w.AddControl(c); err != nil {
		t.Fatalf("add control: %v", err)
	}
}

func at(x, y int) runtime.MouseData {
	return runtime.MouseData{Position: geom.Pt(x, y), Pixel: geom.Pt(x*8, y*16)}
}

func held(x, y int) runtime.MouseData {
	m := at(x, y)
	m.Button = backend.ButtonLeft
	return m
}

func click(w *Window, x, y int) {
	w.OnMouseMoved(at(x, y))
	w.OnMouseButtonDown(held(x, y))
	w.OnMouseButtonUp(held(x, y))
}

func press(w *Window, key tcell.Key, r rune) {
	w.OnKeyPressed(runtime.KeyData{Key: key, Rune: r})
}

func TestWindow_DragDispatchOrdering(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{X: 0, Y: 0, Width: 20, Height: 10}, true)
	b := logged(t, &log, "B", geom.Rect{X: 30, Y: 0, Width: 20, Height: 10}, true)
	mustAdd(t, w, a)
	mustAdd(t, w, b)

	// The order an InputManager produces for press at (5,5), drag to
	// (40,5) and release there.
	w.OnMouseMoved(at(5, 5))
	w.OnMouseButtonDown(held(5, 5))
	w.OnMouseMoved(held(40, 5))
	w.OnMouseDragBegin(held(40, 5))
	w.OnMouseDragEnd(held(40, 5))
	w.OnMouseButtonUp(held(40, 5))

	want := []string{
		"A:enter", "A:moved",
		"A:down:left", "A:focus",
		"A:leave", "B:enter", "B:moved",
		"A:drag-begin",
		"B:drag-end",
		"B:up:left",
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Fatalf("unexpected dispatch (-want +got):\n%s", diff)
	}
	if w.Dragging() != nil {
		t.Fatal("expected drag to be cleared")
	}
	if a.IsBeingPushed() {
		t.Fatal("expected leave to clear the push")
	}
}

func TestWindow_DragBeginRecordsOrigin(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{Width: 20, Height: 10}, false)
	mustAdd(t, w, a)

	w.OnMouseMoved(at(5, 5))
	w.OnMouseButtonDown(held(5, 5))
	w.OnMouseMoved(held(50, 5))
	w.OnMouseDragBegin(held(50, 5))
	if w.Dragging() != Control(a) {
		t.Fatalf("expected dragging to be the press origin, got %v", w.Dragging())
	}
}

func TestWindow_FocusExclusivity(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{X: 0, Width: 10, Height: 3}, true)
	b := logged(t, &log, "B", geom.Rect{X: 20, Width: 10, Height: 3}, true)
	n := logged(t, &log, "N", geom.Rect{X: 40, Width: 10, Height: 3}, false)
	for _, c := range []Control{a, b, n} {
		mustAdd(t, w, c)
	}
	focused := func() int {
		count := 0
		for _, c := range w.Controls() {
			if c.HasKeyboardFocus() {
				count++
			}
		}
		return count
	}

	click(w, 1, 1)
	if !a.HasKeyboardFocus() || focused() != 1 {
		t.Fatalf("expected only A focused, got %d focused", focused())
	}
	click(w, 21, 1)
	if !b.HasKeyboardFocus() || a.HasKeyboardFocus() || focused() != 1 {
		t.Fatalf("expected only B focused, got %d focused", focused())
	}
	click(w, 41, 1)
	if focused() != 0 || w.Focused() != nil {
		t.Fatalf("expected clicking a non-focusable control to release focus, got %d focused", focused())
	}
	click(w, 70, 20)
	if focused() != 0 {
		t.Fatal("expected clicking empty space to keep focus released")
	}
}

func TestWindow_FocusMovesAfterDelivery(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{X: 0, Width: 10, Height: 3}, true)
	b := logged(t, &log, "B", geom.Rect{X: 20, Width: 10, Height: 3}, true)
	mustAdd(t, w, a)
	mustAdd(t, w, b)
	w.Focus(a)
	log = nil

	w.OnMouseMoved(at(21, 1))
	w.OnMouseButtonDown(held(21, 1))

	want := []string{"B:enter", "B:moved", "B:down:left", "A:blur", "B:focus"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestWindow_RightClickDoesNotFocus(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{Width: 10, Height: 3}, true)
	mustAdd(t, w, a)
	right := at(1, 1)
	right.Button = backend.ButtonRight
	w.OnMouseMoved(at(1, 1))
	w.OnMouseButtonDown(right)
	if a.HasKeyboardFocus() {
		t.Fatal("expected right button not to take focus")
	}
	if a.IsBeingPushed() {
		t.Fatal("expected right button not to push")
	}
}

func TestWindow_FocusCycling(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{X: 0, Width: 5, Height: 1}, true)
	n := logged(t, &log, "N", geom.Rect{X: 10, Width: 5, Height: 1}, false)
	b := logged(t, &log, "B", geom.Rect{X: 20, Width: 5, Height: 1}, true)
	for _, c := range []Control{a, n, b} {
		mustAdd(t, w, c)
	}

	press(w, tcell.KeyTab, 0)
	if w.Focused() != Control(a) {
		t.Fatalf("expected A focused first, got %v", w.Focused())
	}
	press(w, tcell.KeyTab, 0)
	if w.Focused() != Control(b) {
		t.Fatalf("expected B focused second, got %v", w.Focused())
	}
	press(w, tcell.KeyTab, 0)
	if w.Focused() != Control(a) {
		t.Fatal("expected focus to wrap to A")
	}
	press(w, tcell.KeyBacktab, 0)
	if w.Focused() != Control(b) {
		t.Fatal("expected Backtab to go back to B")
	}
}

func TestWindow_SetActiveFalseReleasesFocus(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{Width: 5, Height: 1}, true)
	mustAdd(t, w, a)
	w.Focus(a)

	a.SetActive(false)
	if a.HasKeyboardFocus() || w.Focused() != nil {
		t.Fatal("expected deactivation to release focus")
	}
	if w.Focus(a) {
		t.Fatal("expected an inactive control to refuse focus")
	}

	log = nil
	click(w, 1, 0)
	if len(log) != 0 {
		t.Fatalf("expected no delivery to an inactive control, got %v", log)
	}
}

func TestWindow_TooltipLifecycle(t *testing.T) {
	w := newTestWindow(t)
	c := &ControlBase{}
	tmpl := ControlTemplate{Position: geom.Pt(2, 2), Tooltip: "save the file"}
	if err := c.InitControl(c, screen, geom.Sz(10, 3), tmpl, true); err != nil {
		t.Fatalf("init: %v", err)
	}
	mustAdd(t, w, c)

	w.OnMouseMoved(at(5, 3))
	w.OnMouseMoved(at(6, 3))
	if w.Tooltip() != nil {
		t.Fatal("expected no tooltip before hover")
	}

	w.OnMouseHoverBegin(at(6, 3))
	tip := w.Tooltip()
	if tip == nil {
		t.Fatal("expected tooltip after hover begin")
	}
	if tip.Text() != "save the file" {
		t.Fatalf("expected tooltip text, got %q", tip.Text())
	}
	if got := tip.Position(); got != geom.Pt(6, 4) {
		t.Fatalf("expected tooltip below the pointer at (6,4), got %+v", got)
	}
	if got := tip.Size(); got != geom.Sz(15, 1) {
		t.Fatalf("expected padded 15x1 tooltip, got %+v", got)
	}

	w.OnMouseHoverEnd(at(7, 3))
	if w.Tooltip() != nil {
		t.Fatal("expected hover end to destroy the tooltip")
	}
	if !tip.Disposed() {
		t.Fatal("expected destroyed tooltip to be disposed")
	}
}

func TestWindow_HoverWithoutTooltipText(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{Width: 5, Height: 1}, true)
	mustAdd(t, w, a)
	w.OnMouseMoved(at(1, 0))
	w.OnMouseHoverBegin(at(1, 0))
	if w.Tooltip() != nil {
		t.Fatal("expected no tooltip for a control without text")
	}
}

func TestTooltipPlacement(t *testing.T) {
	tests := []struct {
		name string
		at   geom.Point
		size geom.Size
		want geom.Point
	}{
		{name: "below", at: geom.Pt(10, 10), size: geom.Sz(5, 1), want: geom.Pt(10, 11)},
		{name: "right edge", at: geom.Pt(78, 10), size: geom.Sz(5, 1), want: geom.Pt(75, 11)},
		{name: "bottom flips above", at: geom.Pt(79, 23), size: geom.Sz(5, 2), want: geom.Pt(75, 21)},
		{name: "left edge", at: geom.Pt(-3, 0), size: geom.Sz(5, 1), want: geom.Pt(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tooltipPosition(screen, tt.size, tt.at); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestWindow_AddControlRepositions(t *testing.T) {
	w := newTestWindow(t)
	c := &ControlBase{}
	if err := c.InitControl(c, screen, geom.Sz(10, 3), ControlTemplate{Position: geom.Pt(-2, 5)}, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	honoured, err := w.AddControl(c)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if honoured {
		t.Fatal("expected requested position not to be honoured")
	}
	if got := c.Position(); got != geom.Pt(0, 5) {
		t.Fatalf("expected (0,5), got %+v", got)
	}

	d := &ControlBase{}
	if err := d.InitControl(d, screen, geom.Sz(10, 3), ControlTemplate{Position: geom.Pt(75, 22)}, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	if honoured, _ := w.AddControl(d); honoured {
		t.Fatal("expected bottom-right overflow to be repositioned")
	}
	if got := d.Position(); got != geom.Pt(70, 21) {
		t.Fatalf("expected (70,21), got %+v", got)
	}

	e := &ControlBase{}
	if err := e.InitControl(e, screen, geom.Sz(10, 3), ControlTemplate{Position: geom.Pt(4, 4)}, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	if honoured, _ := w.AddControl(e); !honoured {
		t.Fatal("expected an on-screen position to be honoured")
	}
	if !e.IsSetup() {
		t.Fatal("expected AddControl to set the control up")
	}
	if e.ParentWindow() != w {
		t.Fatal("expected parent window to be set")
	}
}

func TestWindow_AddControlErrors(t *testing.T) {
	w := newTestWindow(t)
	c := &ControlBase{}
	if err := c.InitControl(c, screen, geom.Sz(10, 3), ControlTemplate{}, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	mustAdd(t, w, c)
	if _, err := w.AddControl(c); !errors.Is(err, ErrControlExists) {
		t.Fatalf("expected ErrControlExists, got %v", err)
	}
	if _, err := w.AddControl(nil); !errors.Is(err, ErrNilControl) {
		t.Fatalf("expected ErrNilControl, got %v", err)
	}

	gone := &ControlBase{}
	if err := gone.InitControl(gone, screen, geom.Sz(4, 1), ControlTemplate{}, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	gone.Dispose()
	if _, err := w.AddControl(gone); !errors.Is(err, ErrDisposed) {
		t.Fatalf("expected ErrDisposed, got %v", err)
	}
	if gone.ParentWindow() != nil || len(w.Controls()) != 1 {
		t.Fatal("expected a disposed control to be refused")
	}

	other := newTestWindow(t)
	if _, err := other.AddControl(c); !errors.Is(err, ErrControlOwned) {
		t.Fatalf("expected ErrControlOwned, got %v", err)
	}

	small, err := NewWindow(screen, WindowTemplate{Size: geom.Sz(8, 8)})
	if err != nil {
		t.Fatalf("new window: %v", err)
	}
	big := &ControlBase{}
	if err := big.InitControl(big, screen, geom.Sz(9, 2), ControlTemplate{}, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := small.AddControl(big); !errors.Is(err, ErrControlTooLarge) {
		t.Fatalf("expected ErrControlTooLarge, got %v", err)
	}
	if len(small.Controls()) != 0 || big.ParentWindow() != nil {
		t.Fatal("expected a failed add to leave the window unchanged")
	}
}

func TestWindow_AddControlUnderMouseEnters(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	w.OnMouseMoved(at(3, 3))
	a := logged(t, &log, "A", geom.Rect{Width: 10, Height: 10}, false)
	mustAdd(t, w, a)
	if diff := cmp.Diff([]string{"A:enter"}, log); diff != "" {
		t.Fatalf("unexpected hooks (-want +got):\n%s", diff)
	}
	if !a.IsMouseOver() {
		t.Fatal("expected mouse over after add")
	}
}

func TestWindow_RemoveControlClearsReferences(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	below := logged(t, &log, "below", geom.Rect{Width: 20, Height: 10}, true)
	top := logged(t, &log, "top", geom.Rect{Width: 10, Height: 5}, true)
	mustAdd(t, w, below)
	mustAdd(t, w, top)
	w.OnMouseMoved(at(2, 2))
	w.OnMouseButtonDown(held(2, 2))
	log = nil

	if !w.RemoveControl(top) {
		t.Fatal("expected removal")
	}
	want := []string{"top:leave", "top:blur", "below:enter"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Fatalf("unexpected hooks (-want +got):\n%s", diff)
	}
	if w.Focused() != nil || w.UnderMouse() != Control(below) {
		t.Fatal("expected references to move off the removed control")
	}
	if top.ParentWindow() != nil {
		t.Fatal("expected parent to be cleared")
	}
	// The click candidate is gone, so a drag now reaches nobody.
	log = nil
	w.OnMouseDragBegin(held(3, 3))
	if len(log) != 0 {
		t.Fatalf("expected drag begin to reach no control, got %v", log)
	}
	if w.RemoveControl(top) {
		t.Fatal("expected second removal to report false")
	}

	tipped := &ControlBase{}
	tmpl := ControlTemplate{Position: geom.Pt(30, 0), Tooltip: "tip"}
	if err := tipped.InitControl(tipped, screen, geom.Sz(6, 2), tmpl, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	mustAdd(t, w, tipped)
	w.OnMouseMoved(at(31, 1))
	w.OnMouseHoverBegin(at(31, 1))
	tip := w.Tooltip()
	if tip == nil {
		t.Fatal("expected a tooltip over the control")
	}
	w.RemoveControl(tipped)
	if w.Tooltip() != nil || !tip.Disposed() {
		t.Fatal("expected removing the hovered control to destroy its tooltip")
	}
}

func TestWindow_MoveToTopAndBottom(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{Width: 10, Height: 5}, false)
	b := logged(t, &log, "B", geom.Rect{Width: 10, Height: 5}, false)
	mustAdd(t, w, a)
	mustAdd(t, w, b)

	if w.ControlAt(geom.Pt(1, 1)) != Control(b) {
		t.Fatal("expected last added control on top")
	}
	w.MoveToTop(a)
	if w.ControlAt(geom.Pt(1, 1)) != Control(a) {
		t.Fatal("expected A on top after MoveToTop")
	}
	w.MoveToBottom(a)
	if w.ControlAt(geom.Pt(1, 1)) != Control(b) {
		t.Fatal("expected B on top after MoveToBottom")
	}
	stray := logged(t, &log, "S", geom.Rect{Width: 1, Height: 1}, false)
	w.MoveToTop(stray)
	if len(w.Controls()) != 2 {
		t.Fatal("expected moving an absent control to be a no-op")
	}
}

func TestWindow_ButtonUpClearsCandidateEvenOffTarget(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{Width: 5, Height: 5}, false)
	mustAdd(t, w, a)
	w.OnMouseMoved(at(1, 1))
	w.OnMouseButtonDown(held(1, 1))
	w.OnMouseMoved(held(30, 1))
	w.OnMouseButtonUp(held(30, 1))
	log = nil

	w.OnMouseDragBegin(held(30, 1))
	if len(log) != 0 {
		t.Fatalf("expected no drag target after release, got %v", log)
	}
}

type orderManager struct {
	ManagerBase
	log *[]string
}

func (m *orderManager) OnMouseButtonDown(d runtime.MouseData) {
	m.ManagerBase.OnMouseButtonDown(d)
	*m.log = append(*m.log, "manager:down")
}

func TestWindow_ManagersSeeMessagesFirst(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{Width: 5, Height: 5}, false)
	mustAdd(t, w, a)
	m := &orderManager{log: &log}
	if err := w.AddManager(m); err != nil {
		t.Fatalf("add manager: %v", err)
	}
	if err := w.AddManager(m); !errors.Is(err, ErrManagerExists) {
		t.Fatalf("expected ErrManagerExists, got %v", err)
	}
	if m.Window() != w || !m.IsSetup() {
		t.Fatal("expected manager attached and set up")
	}

	w.OnMouseMoved(at(1, 1))
	log = nil
	w.OnMouseButtonDown(held(1, 1))
	if diff := cmp.Diff([]string{"manager:down", "A:down:left"}, log); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if !w.RemoveManager(m) || m.Window() != nil {
		t.Fatal("expected manager removal to detach it")
	}
}

func TestKeyBindings(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{Width: 5, Height: 1}, true)
	mustAdd(t, w, a)
	a.Events().KeyPressed.Subscribe(func(k runtime.KeyData) { log = append(log, "A:key") })
	w.Focus(a)
	log = nil

	keys := NewKeyBindings()
	keys.Bind(tcell.KeyF1, tcell.ModNone, func() { log = append(log, "help") })
	keys.BindRune('q', tcell.ModAlt, func() { log = append(log, "quit") })
	if err := w.AddManager(keys); err != nil {
		t.Fatalf("add manager: %v", err)
	}

	press(w, tcell.KeyF1, 0)
	press(w, tcell.KeyRune, 'q')
	w.OnKeyPressed(runtime.KeyData{Key: tcell.KeyRune, Rune: 'q', Mods: tcell.ModAlt})

	want := []string{"help", "A:key", "A:key", "quit", "A:key"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Fatalf("unexpected bindings (-want +got):\n%s", diff)
	}
}

func TestWindow_TickAndSetupReachChildren(t *testing.T) {
	var log []string
	w := newTestWindow(t)
	a := logged(t, &log, "A", geom.Rect{Width: 5, Height: 1}, false)
	mustAdd(t, w, a)
	ticks := 0
	a.Events().Ticked.Subscribe(func(runtime.TickMsg) { ticks++ })

	runtime.Dispatch(w, runtime.SetupMsg{})
	runtime.Dispatch(w, runtime.TickMsg{})
	runtime.Dispatch(w, runtime.TickMsg{})
	if !w.IsSetup() {
		t.Fatal("expected window set up")
	}
	if ticks != 2 {
		t.Fatalf("expected 2 ticks at the control, got %d", ticks)
	}
}

func TestWindow_DisposeTwice(t *testing.T) {
	w := newTestWindow(t)
	c := &ControlBase{}
	if err := c.InitControl(c, screen, geom.Sz(4, 2), ControlTemplate{Tooltip: "tip"}, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	mustAdd(t, w, c)
	w.OnMouseMoved(at(1, 1))
	w.OnMouseHoverBegin(at(1, 1))
	tip := w.Tooltip()
	canvas := w.Canvas()

	if !w.Dispose() {
		t.Fatal("expected first dispose to release")
	}
	if w.Dispose() {
		t.Fatal("expected second dispose to be a no-op")
	}
	if !c.Disposed() || !tip.Disposed() || !canvas.Disposed() {
		t.Fatal("expected control, tooltip and canvas to be disposed")
	}
	if c.Dispose() {
		t.Fatal("expected disposed control to stay disposed")
	}
	if _, err := w.AddControl(c); !errors.Is(err, ErrDisposed) {
		t.Fatalf("expected ErrDisposed, got %v", err)
	}
	if err := w.OnDraw(nil); !errors.Is(err, ErrDisposed) {
		t.Fatalf("expected draw after dispose to fail, got %v", err)
	}
}

func TestNewWindowTheme(t *testing.T) {
	if _, err := NewWindow(screen, WindowTemplate{Theme: "monokai"}); err != nil {
		t.Fatalf("expected monokai theme, got %v", err)
	}
	if _, err := NewWindow(screen, WindowTemplate{Theme: "no-such-style"}); err == nil {
		t.Fatal("expected unknown theme to fail")
	}
	if _, err := NewWindow(screen, WindowTemplate{Size: geom.Sz(81, 10)}); err == nil {
		t.Fatal("expected a window larger than the screen to fail")
	}
}
