package agent

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/runtime"
	"github.com/odvcencio/cellui/widgets"
)

var screen = geom.Sz(60, 16)

func newAgent(t *testing.T, controls ...widgets.Control) *Agent {
	t.Helper()
	w, err := widgets.NewWindow(screen, widgets.WindowTemplate{})
	if err != nil {
		t.Fatalf("new window: %v", err)
	}
	for _, c := range controls {
		if _, err := w.AddControl(c); err != nil {
			t.Fatalf("add control: %v", err)
		}
	}
	a, err := New(Config{Window: w})
	if err != nil {
		t.Fatalf("new agent: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func newButton(t *testing.T, label string, at geom.Point, width int) *widgets.Button {
	t.Helper()
	b, err := widgets.NewButton(screen, widgets.ButtonTemplate{
		ControlTemplate: widgets.ControlTemplate{Position: at},
		Label:           label,
		Width:           width,
	})
	if err != nil {
		t.Fatalf("new button %s: %v", label, err)
	}
	return b
}

// record logs the events of c that a drag touches.
func record(log *[]string, name string, c *widgets.Button) {
	note := func(what string) func(runtime.MouseData) {
		return func(m runtime.MouseData) { *log = append(*log, name+":"+what) }
	}
	ev := c.Events()
	ev.MouseMoved.Subscribe(note("moved"))
	ev.MouseButtonDown.Subscribe(func(m runtime.MouseData) { *log = append(*log, name+":down:"+m.Button.String()) })
	ev.MouseButtonUp.Subscribe(func(m runtime.MouseData) { *log = append(*log, name+":up:"+m.Button.String()) })
	ev.DragBegin.Subscribe(note("drag-begin"))
	ev.DragEnd.Subscribe(note("drag-end"))
	cev := c.ControlEvents()
	cev.MouseEnter.Subscribe(note("enter"))
	cev.MouseLeave.Subscribe(note("leave"))
	cev.FocusTaken.Subscribe(func(struct{}) { *log = append(*log, name+":focus") })
	cev.FocusReleased.Subscribe(func(struct{}) { *log = append(*log, name+":blur") })
}

func TestAgent_DragThroughInputManager(t *testing.T) {
	a := newButton(t, "A", geom.Pt(0, 0), 20)
	b := newButton(t, "B", geom.Pt(30, 0), 20)
	agt := newAgent(t, a, b)

	var log []string
	record(&log, "A", a)
	record(&log, "B", b)
	clicks := 0
	a.Clicked().Subscribe(func(*widgets.Button) { clicks++ })
	b.Clicked().Subscribe(func(*widgets.Button) { clicks++ })

	if err := agt.Drag(geom.Pt(5, 0), geom.Pt(40, 0)); err != nil {
		t.Fatalf("drag: %v", err)
	}
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
	if clicks != 0 {
		t.Fatalf("expected a drag not to click, got %d", clicks)
	}
	if agt.Application().Input().Dragging() {
		t.Fatal("expected the drag to be over")
	}
}

func TestAgent_HoverShowsTooltip(t *testing.T) {
	b, err := widgets.NewButton(screen, widgets.ButtonTemplate{
		ControlTemplate: widgets.ControlTemplate{Position: geom.Pt(2, 2), Tooltip: "Say hello"},
		Label:           "Hi",
	})
	if err != nil {
		t.Fatalf("new button: %v", err)
	}
	agt := newAgent(t, b)

	if err := agt.Hover(geom.Pt(3, 2)); err != nil {
		t.Fatalf("hover: %v", err)
	}
	snap := agt.Snapshot()
	if snap.Tooltip != "Say hello" {
		t.Fatalf("expected tooltip, got %q", snap.Tooltip)
	}
	if x, y := agt.FindText("Say hello"); x != 4 || y != 3 {
		t.Fatalf("expected tooltip text at 4,3, got %d,%d", x, y)
	}
	if snap.HoveredID != b.ID().String() {
		t.Fatalf("expected hovered id %s, got %s", b.ID(), snap.HoveredID)
	}

	if err := agt.MoveTo(geom.Pt(30, 10)); err != nil {
		t.Fatalf("move: %v", err)
	}
	if agt.Window().Tooltip() != nil || agt.ContainsText("Say hello") {
		t.Fatal("expected moving away to remove the tooltip")
	}
}

func TestAgent_FormInteraction(t *testing.T) {
	name, err := widgets.NewEntry(screen, widgets.EntryTemplate{
		ControlTemplate: widgets.ControlTemplate{Position: geom.Pt(0, 4)},
		Placeholder:     "Name",
		Width:           12,
	})
	if err != nil {
		t.Fatalf("new entry: %v", err)
	}
	submit := newButton(t, "Submit", geom.Pt(0, 6), 0)
	subscribe, err := widgets.NewCheckBox(screen, widgets.CheckBoxTemplate{
		ControlTemplate: widgets.ControlTemplate{Position: geom.Pt(0, 8)},
		Label:           "Subscribe",
	})
	if err != nil {
		t.Fatalf("new check box: %v", err)
	}
	off, err := widgets.NewButton(screen, widgets.ButtonTemplate{
		ControlTemplate: widgets.ControlTemplate{Position: geom.Pt(0, 10), Inactive: true},
		Label:           "Disabled",
	})
	if err != nil {
		t.Fatalf("new button: %v", err)
	}
	agt := newAgent(t, name, submit, subscribe, off)
	submitted := 0
	submit.Clicked().Subscribe(func(*widgets.Button) { submitted++ })

	if err := agt.TypeInto("name", "Alice"); err != nil {
		t.Fatalf("type: %v", err)
	}
	if v, err := agt.Value("name"); err != nil || v != "Alice" {
		t.Fatalf("expected Alice, got %q (%v)", v, err)
	}
	if !agt.ContainsText("Alice") {
		t.Fatalf("expected typed text on screen:\n%s", agt.CaptureText())
	}
	if err := agt.Activate("submit"); err != nil {
		t.Fatalf("activate submit: %v", err)
	}
	if submitted != 1 {
		t.Fatalf("expected one submit, got %d", submitted)
	}
	if err := agt.Activate("subscribe"); err != nil {
		t.Fatalf("activate subscribe: %v", err)
	}
	if v, _ := agt.Value("subscribe"); v != "true" {
		t.Fatalf("expected checked box, got %q", v)
	}

	if err := agt.Activate("disabled"); !errors.Is(err, ErrWidgetDisabled) {
		t.Fatalf("expected ErrWidgetDisabled, got %v", err)
	}
	if err := agt.Focus("missing"); !errors.Is(err, ErrWidgetNotFound) {
		t.Fatalf("expected ErrWidgetNotFound, got %v", err)
	}

	raw, err := agt.SnapshotJSON()
	if err != nil {
		t.Fatalf("snapshot json: %v", err)
	}
	if !strings.Contains(string(raw), "\"widgets\"") {
		t.Fatalf("snapshot json missing widgets: %s", raw)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Widgets) != 4 {
		t.Fatalf("expected 4 widgets, got %d", len(snap.Widgets))
	}
	if snap.Focused == nil || snap.Focused.Kind != "checkbox" {
		t.Fatalf("expected the check box focused, got %+v", snap.Focused)
	}
	if got := snap.Widgets[3]; !got.Disabled || got.Actions != nil {
		t.Fatalf("expected a disabled button without actions, got %+v", got)
	}
}

func TestAgent_KeysReachFocusedControl(t *testing.T) {
	s, err := widgets.NewSlider(screen, widgets.SliderTemplate{Min: 0, Max: 10, Value: 5, Width: 11,
		ControlTemplate: widgets.ControlTemplate{Tooltip: "Volume"}})
	if err != nil {
		t.Fatalf("new slider: %v", err)
	}
	agt := newAgent(t, s)
	if err := agt.Focus("volume"); err != nil {
		t.Fatalf("focus: %v", err)
	}
	for range 3 {
		if err := agt.PressKey(tcell.KeyRight, 0, tcell.ModNone); err != nil {
			t.Fatalf("press: %v", err)
		}
	}
	if v, _ := agt.Value("volume"); v != "8" {
		t.Fatalf("expected 8, got %s", v)
	}
	if agt.Script().Pending() != 0 {
		t.Fatal("expected every key transition to be consumed")
	}
}

func TestAgent_Errors(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNoWindow) {
		t.Fatalf("expected ErrNoWindow, got %v", err)
	}
	agt := newAgent(t)
	if err := agt.MoveTo(geom.Pt(60, 0)); !errors.Is(err, ErrOffScreen) {
		t.Fatalf("expected ErrOffScreen, got %v", err)
	}
}

func TestAgent_VirtualClock(t *testing.T) {
	agt := newAgent(t)
	start := agt.Now()
	if err := agt.Wait(runtime.HoverDelay); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if got := agt.Now().Sub(start); got < runtime.HoverDelay || got >= runtime.HoverDelay+agt.Application().FrameInterval() {
		t.Fatalf("expected about %v to pass, got %v", runtime.HoverDelay, got)
	}
}

func TestScript_Samples(t *testing.T) {
	s := NewScript(geom.Size{})
	s.MoveTo(geom.Pt(3, 2))
	s.SetButton(backend.ButtonRight)
	want := backend.MouseSample{Button: backend.ButtonRight, Position: geom.Pt(3, 2), Pixel: geom.Pt(28, 40)}
	if diff := cmp.Diff(want, s.PollMouse()); diff != "" {
		t.Fatalf("unexpected sample (-want +got):\n%s", diff)
	}

	s.QueueKey(tcell.KeyEnter, 0, tcell.ModShift)
	if s.Pending() != 2 {
		t.Fatalf("expected 2 transitions, got %d", s.Pending())
	}
	down, _ := s.PollKey()
	up, _ := s.PollKey()
	if !down.Pressed || up.Pressed || up.Mods != tcell.ModShift {
		t.Fatalf("unexpected transitions %+v %+v", down, up)
	}
	if _, ok := s.PollKey(); ok {
		t.Fatal("expected an empty queue")
	}
}
