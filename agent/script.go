package agent

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/geom"
)

// Script is an InputSource fed by code instead of a terminal. The mouse
// state is sticky between polls; key transitions are queued and handed out
// one per poll.
type Script struct {
	mu    sync.Mutex
	cell  geom.Size
	mouse backend.MouseSample
	keys  []backend.KeySample
}

// NewScript creates a script for cells of the given pixel size. A zero size
// selects backend.DefaultCellSize.
func NewScript(cell geom.Size) *Script {
	if cell.Empty() {
		cell = backend.DefaultCellSize
	}
	return &Script{cell: cell}
}

// MoveTo puts the pointer at the centre of cell p.
func (s *Script) MoveTo(p geom.Point) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouse.Position = p
	s.mouse.Pixel = geom.Pt(p.X*s.cell.Width+s.cell.Width/2, p.Y*s.cell.Height+s.cell.Height/2)
}

// SetButton changes the held button. ButtonNone releases.
func (s *Script) SetButton(b backend.MouseButton) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.mouse.Button = b
	s.mu.Unlock()
}

// QueueKey appends a pressed and a released transition for key.
func (s *Script) QueueKey(key tcell.Key, r rune, mods tcell.ModMask) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	k := backend.KeySample{Key: key, Rune: r, Mods: mods, Pressed: true}
	s.keys = append(s.keys, k)
	k.Pressed = false
	s.keys = append(s.keys, k)
}

// Pending returns the number of queued key transitions.
func (s *Script) Pending() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

// PollMouse returns the current pointer state.
func (s *Script) PollMouse() backend.MouseSample {
	if s == nil {
		return backend.MouseSample{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouse
}

// PollKey pops the oldest queued transition.
func (s *Script) PollKey() (backend.KeySample, bool) {
	if s == nil {
		return backend.KeySample{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.keys) == 0 {
		return backend.KeySample{}, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

var _ backend.InputSource = (*Script)(nil)
