// Package agent drives a cellui window without a terminal. It is meant for
// tests and scripted interaction: input goes through the same InputManager
// an interactive application uses, the window draws to a tcell simulation
// screen, and the state can be read back as a structured snapshot.
package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/runtime"
	"github.com/odvcencio/cellui/widgets"
)

// Common errors returned by Agent methods.
var (
	ErrNoWindow       = errors.New("no window configured")
	ErrWidgetNotFound = errors.New("widget not found")
	ErrWidgetDisabled = errors.New("widget is disabled")
	ErrNotFocusable   = errors.New("widget is not focusable")
	ErrOffScreen      = errors.New("point is off screen")
)

// Agent runs an Application frame by frame on a simulated console with a
// virtual clock.
type Agent struct {
	mu     sync.Mutex
	app    *runtime.Application
	window *widgets.Window
	screen *backend.Tcell
	script *Script
	logger *slog.Logger
	now    time.Time
	frame  time.Duration
}

// Config configures an Agent.
type Config struct {
	// Window is the window to drive. Required.
	Window *widgets.Window

	// Width and Height set the console size; they default to the window size.
	Width, Height int

	// FrameRate sets the virtual frame length (default runtime.DefaultFrameRate).
	FrameRate int

	// Start is the virtual time of the first frame.
	Start time.Time

	Logger *slog.Logger
}

// New creates an agent and sets the window up.
func New(cfg Config) (*Agent, error) {
	if cfg.Window == nil {
		return nil, ErrNoWindow
	}
	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		size := cfg.Window.Size()
		width, height = size.Width, size.Height
	}
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, fmt.Errorf("init simulation screen: %w", err)
	}
	sim.SetSize(width, height)

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &Agent{
		window: cfg.Window,
		screen: backend.NewTcellScreen(sim),
		logger: logger,
		now:    cfg.Start,
	}
	a.script = NewScript(a.screen.CellSize())
	app, err := runtime.NewApplication(runtime.AppConfig{
		Console:   a.screen,
		Input:     a.script,
		Window:    cfg.Window,
		FrameRate: cfg.FrameRate,
		Clock:     func() time.Time { return a.now },
		Logger:    logger,
	})
	if err != nil {
		sim.Fini()
		return nil, err
	}
	a.app = app
	a.frame = app.FrameInterval()
	return a, nil
}

// Application returns the driven application.
func (a *Agent) Application() *runtime.Application {
	if a == nil {
		return nil
	}
	return a.app
}

// Window returns the driven window.
func (a *Agent) Window() *widgets.Window {
	if a == nil {
		return nil
	}
	return a.window
}

// Script returns the input source the agent feeds.
func (a *Agent) Script() *Script {
	if a == nil {
		return nil
	}
	return a.script
}

// Now returns the virtual time.
func (a *Agent) Now() time.Time {
	if a == nil {
		return time.Time{}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.now
}

// Step advances the clock by one frame, then updates and draws.
func (a *Agent) Step() error {
	if a == nil {
		return ErrNoWindow
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.step()
}

func (a *Agent) step() error {
	a.now = a.now.Add(a.frame)
	return a.app.Step()
}

// Wait runs frames until at least d of virtual time has passed.
func (a *Agent) Wait(d time.Duration) error {
	if a == nil {
		return ErrNoWindow
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for elapsed := time.Duration(0); elapsed < d; elapsed += a.frame {
		if err := a.step(); err != nil {
			return err
		}
	}
	return nil
}

// MoveTo moves the pointer to cell p and runs a frame.
func (a *Agent) MoveTo(p geom.Point) error {
	if a == nil {
		return ErrNoWindow
	}
	w, h := a.screen.Size()
	if !p.In(geom.Rect{Width: w, Height: h}) {
		return fmt.Errorf("move to %d,%d: %w", p.X, p.Y, ErrOffScreen)
	}
	a.script.MoveTo(p)
	return a.Step()
}

// Press holds button b and runs a frame.
func (a *Agent) Press(b backend.MouseButton) error {
	if a == nil {
		return ErrNoWindow
	}
	a.script.SetButton(b)
	return a.Step()
}

// Release lets go of the mouse button and runs a frame.
func (a *Agent) Release() error {
	return a.Press(backend.ButtonNone)
}

// Click moves to p and presses and releases the primary button there.
func (a *Agent) Click(p geom.Point) error {
	return a.run(
		func() error { return a.MoveTo(p) },
		func() error { return a.Press(backend.ButtonLeft) },
		a.Release,
	)
}

// Drag presses the primary button at from, moves to to and releases.
func (a *Agent) Drag(from, to geom.Point) error {
	return a.run(
		func() error { return a.MoveTo(from) },
		func() error { return a.Press(backend.ButtonLeft) },
		func() error { return a.MoveTo(to) },
		a.Release,
	)
}

// Hover moves to p and rests there until hovering begins.
func (a *Agent) Hover(p geom.Point) error {
	return a.run(
		func() error { return a.MoveTo(p) },
		func() error { return a.Wait(runtime.HoverDelay + a.frame) },
	)
}

// PressKey presses and releases a key, one frame per transition.
func (a *Agent) PressKey(key tcell.Key, r rune, mods tcell.ModMask) error {
	if a == nil {
		return ErrNoWindow
	}
	a.script.QueueKey(key, r, mods)
	return a.run(a.Step, a.Step)
}

// Type presses each rune of text in turn.
func (a *Agent) Type(text string) error {
	for _, r := range text {
		if err := a.PressKey(tcell.KeyRune, r, tcell.ModNone); err != nil {
			return err
		}
	}
	return nil
}

func (a *Agent) run(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the first control whose label contains label, ignoring case.
func (a *Agent) Find(label string) (widgets.Control, error) {
	if a == nil || a.window == nil {
		return nil, ErrNoWindow
	}
	want := strings.ToLower(label)
	for _, c := range a.window.Controls() {
		if strings.Contains(strings.ToLower(describe(c).Label), want) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("find %q: %w", label, ErrWidgetNotFound)
}

// Focus gives the keyboard focus to the control labelled label.
func (a *Agent) Focus(label string) error {
	c, err := a.Find(label)
	if err != nil {
		return err
	}
	if !c.IsActive() {
		return fmt.Errorf("focus %q: %w", label, ErrWidgetDisabled)
	}
	if !a.window.Focus(c) {
		return fmt.Errorf("focus %q: %w", label, ErrNotFocusable)
	}
	a.logger.Debug("agent focus", "label", label, "id", c.ID().String())
	return nil
}

// Activate clicks the centre of the control labelled label.
func (a *Agent) Activate(label string) error {
	c, err := a.Find(label)
	if err != nil {
		return err
	}
	if !c.IsActive() {
		return fmt.Errorf("activate %q: %w", label, ErrWidgetDisabled)
	}
	a.logger.Debug("agent activate", "label", label, "id", c.ID().String())
	return a.Click(c.ScreenRect().Center())
}

// TypeInto focuses the control labelled label and types text.
func (a *Agent) TypeInto(label, text string) error {
	if err := a.Focus(label); err != nil {
		return err
	}
	return a.Type(text)
}

// Value returns the current value of the control labelled label.
func (a *Agent) Value(label string) (string, error) {
	c, err := a.Find(label)
	if err != nil {
		return "", err
	}
	return describe(c).Value, nil
}

// Snapshot returns the current UI state.
func (a *Agent) Snapshot() Snapshot {
	if a == nil || a.window == nil {
		return Snapshot{}
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := Snapshot{Timestamp: a.now, Text: a.captureText()}
	snap.Width, snap.Height = a.screen.Size()
	for _, c := range a.window.Controls() {
		snap.Widgets = append(snap.Widgets, describe(c))
	}
	if c := a.window.Focused(); c != nil {
		snap.FocusedID = c.ID().String()
	}
	if c := a.window.UnderMouse(); c != nil {
		snap.HoveredID = c.ID().String()
	}
	if tip := a.window.Tooltip(); tip != nil {
		snap.Tooltip = tip.Text()
	}
	for i := range snap.Widgets {
		if snap.Widgets[i].ID == snap.FocusedID {
			snap.Focused = &snap.Widgets[i]
		}
	}
	return snap
}

// SnapshotJSON returns the snapshot as indented JSON.
func (a *Agent) SnapshotJSON() ([]byte, error) {
	return json.MarshalIndent(a.Snapshot(), "", "  ")
}

// CaptureText returns the console contents, one line per row with
// trailing blanks trimmed.
func (a *Agent) CaptureText() string {
	if a == nil {
		return ""
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.captureText()
}

func (a *Agent) captureText() string {
	w, h := a.screen.Size()
	lines := make([]string, h)
	var b strings.Builder
	for y := range h {
		b.Reset()
		for x := range w {
			r, _ := a.screen.Content(x, y)
			if r == 0 {
				continue
			}
			b.WriteRune(r)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// ContainsText reports whether text appears on one console row.
func (a *Agent) ContainsText(text string) bool {
	x, _ := a.FindText(text)
	return x >= 0
}

// FindText returns the cell where text starts, or (-1, -1).
func (a *Agent) FindText(text string) (x, y int) {
	if a == nil || text == "" {
		return -1, -1
	}
	for y, line := range strings.Split(a.CaptureText(), "\n") {
		if i := strings.Index(line, text); i >= 0 {
			return len([]rune(line[:i])), y
		}
	}
	return -1, -1
}

// Close quits the window, disposes it and releases the simulated screen.
func (a *Agent) Close() {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	runtime.Dispatch(a.window, runtime.QuitMsg{})
	a.window.Dispose()
	a.screen.Fini()
}

// describe reads the public state of a control.
func describe(c widgets.Control) WidgetInfo {
	info := WidgetInfo{
		ID:        c.ID().String(),
		Tooltip:   c.Tooltip(),
		Bounds:    c.ScreenRect(),
		Disabled:  !c.IsActive(),
		Focusable: c.CanHaveKeyboardFocus(),
		Focused:   c.HasKeyboardFocus(),
		MouseOver: c.IsMouseOver(),
		Pushed:    c.IsBeingPushed(),
	}
	switch w := c.(type) {
	case *widgets.Button:
		info.Kind, info.Label = "button", w.Label()
	case *widgets.CheckBox:
		info.Kind, info.Label = "checkbox", w.Label()
		info.Value = strconv.FormatBool(w.Checked().Get())
	case *widgets.Radio:
		info.Kind, info.Label = "radio", w.Label()
		info.Value = strconv.FormatBool(w.Selected())
	case *widgets.Label:
		info.Kind, info.Label = "label", w.Text()
	case *widgets.Entry:
		info.Kind, info.Value = "textbox", w.Text().Get()
		info.Label = w.Placeholder()
	case *widgets.ListBox:
		info.Kind = "list"
		info.Value, _ = w.SelectedItem()
	case *widgets.Menu:
		info.Kind = "menu"
		if i := w.Highlighted(); i >= 0 {
			info.Value = w.Items()[i].Title
		}
	case *widgets.Slider:
		info.Kind = "slider"
		info.Value = strconv.Itoa(w.Value().Get())
	default:
		info.Kind = "control"
	}
	if info.Label == "" {
		info.Label = info.Tooltip
	}
	info.Actions = actionsFor(info.Kind, info.Disabled)
	return info
}

func actionsFor(kind string, disabled bool) []string {
	if disabled {
		return nil
	}
	switch kind {
	case "button":
		return []string{"activate", "focus"}
	case "checkbox", "radio":
		return []string{"toggle", "focus"}
	case "textbox":
		return []string{"type", "clear", "focus"}
	case "list", "menu":
		return []string{"select", "focus"}
	case "slider":
		return []string{"set", "focus"}
	case "label":
		return nil
	default:
		return []string{"focus"}
	}
}
