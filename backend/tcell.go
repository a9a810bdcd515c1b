package backend

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/geom"
)

// DefaultCellSize is the pixel size assumed for one terminal cell.
var DefaultCellSize = geom.Sz(8, 16)

// Tcell adapts a tcell.Screen to Console, RowWriter, RectWriter and InputSource.
type Tcell struct {
	screen   tcell.Screen
	cellSize geom.Size
	mouse    MouseSample
	// transitions holds button changes not yet reported; reported is the
	// button of the last sample PollMouse returned.
	transitions []MouseSample
	reported    MouseButton
	keys        []KeySample
	finiOnce    sync.Once
}

// NewTcell creates and initialises a terminal screen with mouse reporting.
func NewTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return NewTcellScreen(screen), nil
}

// NewTcellScreen wraps an initialised screen, such as a simulation screen.
func NewTcellScreen(screen tcell.Screen) *Tcell {
	return &Tcell{screen: screen, cellSize: DefaultCellSize}
}

// Screen returns the wrapped tcell screen.
func (t *Tcell) Screen() tcell.Screen {
	if t == nil {
		return nil
	}
	return t.screen
}

// SetCellSize overrides the pixels-per-cell used for pixel positions.
func (t *Tcell) SetCellSize(size geom.Size) {
	if t == nil || size.Empty() {
		return
	}
	t.cellSize = size
}

// Size returns the screen dimensions.
func (t *Tcell) Size() (width, height int) {
	if t == nil || t.screen == nil {
		return 0, 0
	}
	return t.screen.Size()
}

// CellSize returns the pixel size of one cell.
func (t *Tcell) CellSize() geom.Size {
	if t == nil {
		return DefaultCellSize
	}
	return t.cellSize
}

// SetContent writes a glyph. Zero runes are skipped.
func (t *Tcell) SetContent(x, y int, r rune, style tcell.Style) {
	if t == nil || t.screen == nil || r == 0 {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}

// Content reads back a cell.
func (t *Tcell) Content(x, y int) (rune, tcell.Style) {
	if t == nil || t.screen == nil {
		return ' ', tcell.StyleDefault
	}
	r, _, style, _ := t.screen.GetContent(x, y)
	return r, style
}

// SetRow writes a run of cells on one row.
func (t *Tcell) SetRow(y int, startX int, cells []Cell) {
	if t == nil || t.screen == nil {
		return
	}
	for i, cell := range cells {
		if cell.Rune == 0 {
			continue
		}
		t.screen.SetContent(startX+i, y, cell.Rune, nil, cell.Style())
	}
}

// SetRect writes a row-major block of cells.
func (t *Tcell) SetRect(x, y, width, height int, cells []Cell, stride int) {
	if t == nil || t.screen == nil || width <= 0 || height <= 0 {
		return
	}
	for row := 0; row < height; row++ {
		start := row * stride
		if start+width > len(cells) {
			return
		}
		t.SetRow(y+row, x, cells[start:start+width])
	}
}

// Show presents the screen.
func (t *Tcell) Show() {
	if t == nil || t.screen == nil {
		return
	}
	t.screen.Show()
}

// Clear blanks the screen.
func (t *Tcell) Clear() {
	if t == nil || t.screen == nil {
		return
	}
	t.screen.Clear()
}

// Fini restores the terminal. Safe to call more than once.
func (t *Tcell) Fini() {
	if t == nil || t.screen == nil {
		return
	}
	t.finiOnce.Do(t.screen.Fini)
}

// PollMouse drains pending events and returns the oldest unreported button
// transition, or the latest mouse state when there is none. A press and
// release arriving between two polls are reported on consecutive polls.
func (t *Tcell) PollMouse() MouseSample {
	if t == nil {
		return MouseSample{}
	}
	t.drain()
	if len(t.transitions) > 0 {
		sample := t.transitions[0]
		t.transitions = t.transitions[1:]
		t.reported = sample.Button
		return sample
	}
	t.reported = t.mouse.Button
	return t.mouse
}

// PollKey drains pending events and returns the oldest queued key.
func (t *Tcell) PollKey() (KeySample, bool) {
	if t == nil {
		return KeySample{}, false
	}
	t.drain()
	if len(t.keys) == 0 {
		return KeySample{}, false
	}
	key := t.keys[0]
	t.keys = t.keys[1:]
	return key, true
}

func (t *Tcell) drain() {
	if t.screen == nil {
		return
	}
	for t.screen.HasPendingEvent() {
		t.handleEvent(t.screen.PollEvent())
	}
}

func (t *Tcell) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		t.keys = append(t.keys, KeySample{
			Key:     e.Key(),
			Rune:    e.Rune(),
			Pressed: true,
			Mods:    e.Modifiers(),
		})
	case *tcell.EventMouse:
		x, y := e.Position()
		sample := MouseSample{
			Button:   buttonFromMask(e.Buttons()),
			Position: geom.Pt(x, y),
			Pixel:    geom.Pt(x*t.cellSize.Width, y*t.cellSize.Height),
		}
		last := t.reported
		if n := len(t.transitions); n > 0 {
			last = t.transitions[n-1].Button
		}
		if sample.Button != last {
			t.transitions = append(t.transitions, sample)
		}
		t.mouse = sample
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func buttonFromMask(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.ButtonPrimary != 0:
		return ButtonLeft
	case mask&tcell.ButtonSecondary != 0:
		return ButtonRight
	case mask&tcell.ButtonMiddle != 0:
		return ButtonMiddle
	default:
		return ButtonNone
	}
}

var (
	_ Console     = (*Tcell)(nil)
	_ RowWriter   = (*Tcell)(nil)
	_ RectWriter  = (*Tcell)(nil)
	_ InputSource = (*Tcell)(nil)
)
