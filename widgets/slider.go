package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/event"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/runtime"
)

// SliderTemplate configures a Slider. Max defaults to 100 and Step to 1.
type SliderTemplate struct {
	ControlTemplate
	Min, Max int
	Step     int
	Value    int
	Width    int
}

func (t SliderTemplate) limits() (lo, hi, step int) {
	lo, hi, step = t.Min, t.Max, t.Step
	if hi <= lo {
		hi = lo + 100
	}
	return lo, hi, max(step, 1)
}

// CalculateSize returns one row of Width cells, at least three.
func (t SliderTemplate) CalculateSize() geom.Size {
	width := max(t.Width, 3)
	if t.HasFrame {
		return geom.Sz(width+2, 3)
	}
	return geom.Sz(width, 1)
}

// Slider picks an integer in [Min, Max] with the arrow keys or by dragging
// the thumb.
type Slider struct {
	ControlBase
	value        *event.Value[int]
	lo, hi, step int
}

// NewSlider builds a slider for a screen of the given size.
func NewSlider(screen geom.Size, t SliderTemplate) (*Slider, error) {
	lo, hi, step := t.limits()
	s := &Slider{lo: lo, hi: hi, step: step}
	s.value = event.NewComparableValue(min(max(t.Value, lo), hi))
	if err := s.InitControl(s, screen, t.CalculateSize(), t.ControlTemplate, true); err != nil {
		return nil, err
	}
	return s, nil
}

// Value returns the observable value.
func (s *Slider) Value() *event.Value[int] {
	if s == nil {
		return nil
	}
	return s.value
}

// Range returns the inclusive bounds.
func (s *Slider) Range() (lo, hi int) {
	if s == nil {
		return 0, 0
	}
	return s.lo, s.hi
}

// SetValue stores v clamped to the range.
func (s *Slider) SetValue(v int) {
	if s == nil {
		return
	}
	s.value.Set(min(max(v, s.lo), s.hi))
}

// OnKeyPressed steps the value.
func (s *Slider) OnKeyPressed(k runtime.KeyData) {
	s.ControlBase.OnKeyPressed(k)
	v := s.value.Get()
	switch k.Key {
	case tcell.KeyLeft, tcell.KeyDown:
		s.SetValue(v - s.step)
	case tcell.KeyRight, tcell.KeyUp:
		s.SetValue(v + s.step)
	case tcell.KeyPgDn:
		s.SetValue(v - s.step*10)
	case tcell.KeyPgUp:
		s.SetValue(v + s.step*10)
	case tcell.KeyHome:
		s.SetValue(s.lo)
	case tcell.KeyEnd:
		s.SetValue(s.hi)
	}
}

// OnMouseButtonDown jumps to the clicked column.
func (s *Slider) OnMouseButtonDown(m runtime.MouseData) {
	s.ControlBase.OnMouseButtonDown(m)
	if m.Button == backend.ButtonLeft {
		s.seek(m.Position)
	}
}

// OnMouseMoved follows the pointer while pushed.
func (s *Slider) OnMouseMoved(m runtime.MouseData) {
	s.ControlBase.OnMouseMoved(m)
	if s.IsBeingPushed() {
		s.seek(m.Position)
	}
}

func (s *Slider) track() (x, y, width int) {
	r := s.ClientRect()
	return r.X, r.Y, r.Width
}

// seek sets the value for a window point, snapped to the step.
func (s *Slider) seek(p geom.Point) {
	x0, _, width := s.track()
	col := min(max(s.ScreenToLocal(p).X-x0, 0), width-1)
	span := s.hi - s.lo
	v := s.lo + (col*span+(width-1)/2)/max(width-1, 1)
	v = s.lo + (v-s.lo+s.step/2)/s.step*s.step
	s.SetValue(v)
}

// thumb returns the thumb column for the current value.
func (s *Slider) thumb() int {
	_, _, width := s.track()
	return (s.value.Get() - s.lo) * (width - 1) / (s.hi - s.lo)
}

// Redraw draws the track and the thumb.
func (s *Slider) Redraw() {
	s.ControlBase.Redraw()
	x0, y, width := s.track()
	p := s.DetermineMainPigment()
	at := s.thumb()
	for i := range width {
		r := '─'
		if i == at {
			r = '█'
		}
		_ = s.canvas.PutCharPigment(x0+i, y, r, p)
	}
}
