package widgets

import (
	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/event"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/markup"
	"github.com/odvcencio/cellui/pigment"
)

// LabelTemplate configures a Label. A zero Width or Height fits the text.
type LabelTemplate struct {
	ControlTemplate
	Text   string
	Width  int
	Height int
	// Markup renders Text as Markdown with Palette.
	Markup  bool
	Palette markup.Palette
	Align   canvas.HAlign
	VAlign  canvas.VAlign
}

func (t LabelTemplate) rendered(text string) string {
	if !t.Markup {
		return text
	}
	palette := t.Palette
	if palette == (markup.Palette{}) {
		palette = markup.DefaultPalette()
	}
	return markup.Render(text, palette)
}

// CalculateSize returns the configured size, filling unset dimensions
// from the text.
func (t LabelTemplate) CalculateSize() geom.Size {
	lines := canvas.SplitLines(t.rendered(t.Text))
	width, height := t.Width, t.Height
	if width <= 0 {
		for _, line := range lines {
			width = max(width, canvas.TextLength(line))
		}
		width = max(width, 1)
		if t.HasFrame {
			width += 2
		}
	}
	if height <= 0 {
		height = len(lines)
		if t.HasFrame {
			height += 2
		}
	}
	return geom.Sz(width, height)
}

// Label shows text. It never takes the focus.
type Label struct {
	ControlBase
	tmpl LabelTemplate
	text string
	subs event.Subscriptions
}

// NewLabel builds a label for a screen of the given size.
func NewLabel(screen geom.Size, t LabelTemplate) (*Label, error) {
	l := &Label{tmpl: t, text: t.Text}
	if err := l.InitControl(l, screen, t.CalculateSize(), t.ControlTemplate, false); err != nil {
		return nil, err
	}
	return l, nil
}

// Text returns the source text.
func (l *Label) Text() string {
	if l == nil {
		return ""
	}
	return l.text
}

// SetText replaces the text. The label keeps its size.
func (l *Label) SetText(text string) {
	if l == nil {
		return
	}
	l.text = text
}

// Bind makes the label follow v until the next Bind or Dispose.
func (l *Label) Bind(v *event.Value[string]) {
	if l == nil {
		return
	}
	l.subs.Clear()
	if v == nil {
		return
	}
	l.text = v.Get()
	event.Watch(&l.subs, v, l.SetText)
}

// DetermineMainPigment draws labels on the window background.
func (l *Label) DetermineMainPigment() pigment.Pigment {
	if !l.IsActive() {
		return l.Pigment(pigment.Inactive)
	}
	return l.Pigment(pigment.Window)
}

// Redraw prints the text aligned inside the client area.
func (l *Label) Redraw() {
	l.ControlBase.Redraw()
	_ = l.canvas.PrintStringRect(l.ClientRect(), l.tmpl.rendered(l.text), l.tmpl.Align, l.tmpl.VAlign, l.DetermineMainPigment())
}

// Dispose drops the binding and releases the canvas.
func (l *Label) Dispose() bool {
	if l == nil {
		return false
	}
	l.subs.Clear()
	return l.ControlBase.Dispose()
}
