package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/geom"
)

const (
	// DragThreshold is the Manhattan distance in pixels a held primary
	// button must travel from its press point before a drag begins.
	DragThreshold = 10
	// HoverDelay is how long the pointer must rest before hovering begins.
	HoverDelay = 600 * time.Millisecond
)

// InputManager polls an InputSource once per Update and turns the samples
// into the semantic message stream delivered to one target Component.
// Keys are not delayed: the key sample polled in an Update is dispatched in
// that same Update, after the mouse messages of that Update.
type InputManager struct {
	source backend.InputSource
	target Component
	logger *slog.Logger

	lastButton backend.MouseButton
	lastPos    geom.Point
	lastPixel  geom.Point
	sinceMove  time.Duration
	hovering   bool
	pressPixel geom.Point
	pressPos   geom.Point
	dragging   bool
}

// NewInputManager creates a manager polling source. A nil logger discards.
func NewInputManager(source backend.InputSource, logger *slog.Logger) *InputManager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &InputManager{source: source, logger: logger}
}

// Attach sets the component receiving the message stream.
func (m *InputManager) Attach(c Component) {
	if m == nil {
		return
	}
	m.target = c
}

// Target returns the attached component.
func (m *InputManager) Target() Component {
	if m == nil {
		return nil
	}
	return m.target
}

// Hovering reports whether a hover is in progress.
func (m *InputManager) Hovering() bool { return m != nil && m.hovering }

// Dragging reports whether a drag is in progress.
func (m *InputManager) Dragging() bool { return m != nil && m.dragging }

// Update polls the source once. Button edges are handled first, then
// motion, then hover timing; each dispatch completes before the next step.
// A pending key transition is dispatched last.
func (m *InputManager) Update(elapsed time.Duration) {
	if m == nil || m.source == nil {
		return
	}
	if elapsed > 0 {
		m.sinceMove += elapsed
	}
	sample := m.source.PollMouse()
	m.updateButton(sample)
	m.updateMotion(sample)
	m.updateHover(sample)

	if key, ok := m.source.PollKey(); ok {
		data := KeyData{Key: key.Key, Rune: key.Rune, Mods: key.Mods}
		if key.Pressed {
			m.dispatch(KeyPressedMsg{Key: data})
		} else {
			m.dispatch(KeyReleasedMsg{Key: data})
		}
	}
}

func (m *InputManager) updateButton(sample backend.MouseSample) {
	if sample.Button == m.lastButton {
		return
	}
	if m.lastButton == backend.ButtonNone {
		m.pressPixel = sample.Pixel
		m.pressPos = sample.Position
		m.stopDrag(sample)
		m.dispatch(MouseButtonDownMsg{Mouse: m.mouseData(sample, sample.Button)})
	} else {
		m.stopDrag(sample)
		m.dispatch(MouseButtonUpMsg{Mouse: m.mouseData(sample, m.lastButton)})
	}
	m.lastButton = sample.Button
}

func (m *InputManager) updateMotion(sample backend.MouseSample) {
	if sample.Pixel == m.lastPixel {
		return
	}
	if m.hovering {
		m.hovering = false
		m.dispatch(HoverEndMsg{Mouse: m.mouseData(sample, sample.Button)})
	}
	m.dispatch(MouseMovedMsg{Mouse: m.mouseData(sample, sample.Button)})
	if sample.Button == backend.ButtonLeft && !m.dragging &&
		sample.Pixel.Manhattan(m.pressPixel) > DragThreshold {
		m.dragging = true
		m.dispatch(DragBeginMsg{Mouse: m.mouseData(sample, sample.Button)})
	}
	m.lastPos = sample.Position
	m.lastPixel = sample.Pixel
	m.sinceMove = 0
}

func (m *InputManager) updateHover(sample backend.MouseSample) {
	if m.hovering || m.sinceMove <= HoverDelay {
		return
	}
	m.hovering = true
	m.dispatch(HoverBeginMsg{Mouse: m.mouseData(sample, sample.Button)})
}

func (m *InputManager) stopDrag(sample backend.MouseSample) {
	if !m.dragging {
		return
	}
	m.dragging = false
	m.dispatch(DragEndMsg{Mouse: m.mouseData(sample, m.lastButton)})
}

func (m *InputManager) mouseData(sample backend.MouseSample, button backend.MouseButton) MouseData {
	return MouseData{
		Position: sample.Position,
		Pixel:    sample.Pixel,
		Button:   button,
		Origin:   m.pressPos,
	}
}

func (m *InputManager) dispatch(msg Message) {
	if m.logger.Enabled(context.Background(), slog.LevelDebug) {
		m.logger.Debug("input", "msg", MessageName(msg))
	}
	Dispatch(m.target, msg)
}
