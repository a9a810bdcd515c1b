// Package widgets provides the root Window, the Widget and Control base
// types it routes input to, and a set of stock controls.
package widgets

import (
	"errors"
	"fmt"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/event"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/pigment"
	"github.com/odvcencio/cellui/runtime"
)

var (
	// ErrDisposed is returned when drawing or adding to a disposed widget.
	ErrDisposed = errors.New("widget disposed")
	// ErrNilWidget is returned when a widget is initialised without itself.
	ErrNilWidget = errors.New("nil widget")
)

// Template describes a widget before it is built. The size it calculates
// is fixed for the widget's lifetime.
type Template interface {
	CalculateSize() geom.Size
}

// Widget is a component with a position and its own canvas.
type Widget interface {
	runtime.Component

	Position() geom.Point
	SetPosition(geom.Point)
	Size() geom.Size
	ScreenRect() geom.Rect
	Canvas() *canvas.Canvas

	// Redraw paints the widget's content between the clear and the blit.
	Redraw()
	DetermineMainPigment() pigment.Pigment
	OnDraw(target backend.Console) error

	Dispose() bool
	Disposed() bool
}

// WidgetBase implements the Widget draw contract. Embedders call Init with
// themselves so the contract reaches their overrides.
type WidgetBase struct {
	runtime.ComponentBase

	self      Widget
	position  geom.Point
	canvas    *canvas.Canvas
	ownerDraw bool
	pigments  pigment.Map
	drawn     event.Event[*canvas.Canvas]
	disposed  bool
}

// Init allocates the canvas. screen is the console size in cells; a size
// larger than it is rejected.
func (w *WidgetBase) Init(self Widget, screen, size geom.Size) error {
	if w == nil || self == nil {
		return ErrNilWidget
	}
	c, err := canvas.New(screen, size)
	if err != nil {
		return fmt.Errorf("init widget %dx%d: %w", size.Width, size.Height, err)
	}
	w.self = self
	w.canvas = c
	w.pigments = pigment.NewMap(pigment.DefaultTable(), nil)
	return nil
}

// Position returns the widget's position in window coordinates.
func (w *WidgetBase) Position() geom.Point {
	if w == nil {
		return geom.Point{}
	}
	return w.position
}

// SetPosition moves the widget.
func (w *WidgetBase) SetPosition(p geom.Point) {
	if w == nil {
		return
	}
	w.position = p
}

// Size returns the canvas size.
func (w *WidgetBase) Size() geom.Size {
	if w == nil {
		return geom.Size{}
	}
	return w.canvas.Size()
}

// ScreenRect returns the area the widget covers in window coordinates.
func (w *WidgetBase) ScreenRect() geom.Rect {
	return geom.NewRect(w.Position(), w.Size())
}

// LocalToScreen converts a canvas point to window coordinates.
func (w *WidgetBase) LocalToScreen(p geom.Point) geom.Point {
	return p.Add(w.Position())
}

// ScreenToLocal converts a window point to canvas coordinates.
func (w *WidgetBase) ScreenToLocal(p geom.Point) geom.Point {
	return p.Sub(w.Position())
}

// Canvas returns the widget's canvas.
func (w *WidgetBase) Canvas() *canvas.Canvas {
	if w == nil {
		return nil
	}
	return w.canvas
}

// OwnerDraw reports whether the widget skips the clear and blit steps.
func (w *WidgetBase) OwnerDraw() bool {
	return w != nil && w.ownerDraw
}

// SetOwnerDraw makes the widget responsible for its own presentation.
func (w *WidgetBase) SetOwnerDraw(on bool) {
	if w == nil {
		return
	}
	w.ownerDraw = on
}

// Pigments returns the widget's pigment map.
func (w *WidgetBase) Pigments() pigment.Map {
	if w == nil {
		return pigment.Map{}
	}
	return w.pigments
}

// SetPigment overrides one role for this widget only.
func (w *WidgetBase) SetPigment(r pigment.Role, p pigment.Pigment) {
	if w == nil {
		return
	}
	w.pigments = w.pigments.With(r, p)
}

// Pigment looks up a role with the widget's overrides applied.
func (w *WidgetBase) Pigment(r pigment.Role) pigment.Pigment {
	return w.Pigments().Get(r)
}

// Drawn is raised after Redraw, before the canvas reaches the screen.
func (w *WidgetBase) Drawn() *event.Event[*canvas.Canvas] {
	if w == nil {
		return nil
	}
	return &w.drawn
}

// DetermineMainPigment returns the pigment the canvas is cleared to.
func (w *WidgetBase) DetermineMainPigment() pigment.Pigment {
	return w.Pigment(pigment.Window)
}

// Redraw paints nothing.
func (w *WidgetBase) Redraw() {}

// OnDraw clears the canvas, redraws it, raises Drawn and copies the canvas
// to target. Owner-draw widgets only redraw and raise Drawn.
func (w *WidgetBase) OnDraw(target backend.Console) error {
	if w == nil || w.disposed || w.self == nil {
		return ErrDisposed
	}
	if !w.ownerDraw {
		if err := w.canvas.ClearWith(w.self.DetermineMainPigment()); err != nil {
			return err
		}
	}
	w.self.Redraw()
	w.drawn.Emit(w.canvas)
	if w.ownerDraw {
		return nil
	}
	return w.canvas.ToScreen(target, w.position)
}

// Disposed reports whether Dispose has run.
func (w *WidgetBase) Disposed() bool {
	return w == nil || w.disposed
}

// Dispose releases the canvas. Only the first call has an effect.
func (w *WidgetBase) Dispose() bool {
	if w == nil || w.disposed {
		return false
	}
	w.disposed = true
	w.drawn.Clear()
	w.canvas.Dispose()
	return true
}

var _ Widget = (*WidgetBase)(nil)
