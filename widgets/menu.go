package widgets

import (
	"slices"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/event"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/pigment"
	"github.com/odvcencio/cellui/runtime"
)

// MenuItem describes a menu entry.
type MenuItem struct {
	ID       string
	Title    string
	Hotkey   rune
	Disabled bool
	OnSelect func()
}

func (it MenuItem) width() int {
	w := canvas.TextLength(it.Title)
	if it.Hotkey != 0 {
		w += 3
	}
	return w
}

// MenuTemplate configures a Menu. Menus are framed unless NoFrame is set.
type MenuTemplate struct {
	ControlTemplate
	Items   []MenuItem
	NoFrame bool
}

func (t MenuTemplate) control() ControlTemplate {
	ct := t.ControlTemplate
	ct.HasFrame = !t.NoFrame
	return ct
}

// CalculateSize fits every item, one per row.
func (t MenuTemplate) CalculateSize() geom.Size {
	width := 1
	for _, it := range t.Items {
		width = max(width, it.width())
	}
	size := geom.Sz(width+2, max(len(t.Items), 1))
	if !t.NoFrame {
		size.Width += 2
		size.Height += 2
	}
	return size
}

// Menu is a vertical list of items with an optional hotkey each. The
// highlight follows the pointer and the arrow keys.
type Menu struct {
	ControlBase
	items     []MenuItem
	highlight int
	selected  event.Event[MenuItem]
}

// NewMenu builds a menu for a screen of the given size.
func NewMenu(screen geom.Size, t MenuTemplate) (*Menu, error) {
	m := &Menu{items: slices.Clone(t.Items), highlight: -1}
	if err := m.InitControl(m, screen, t.CalculateSize(), t.control(), true); err != nil {
		return nil, err
	}
	m.highlight = m.step(-1, 1)
	return m, nil
}

// Items returns a copy of the items.
func (m *Menu) Items() []MenuItem {
	if m == nil {
		return nil
	}
	return slices.Clone(m.items)
}

// Highlighted returns the highlighted index or -1.
func (m *Menu) Highlighted() int {
	if m == nil {
		return -1
	}
	return m.highlight
}

// ItemSelected is raised after an item's OnSelect runs.
func (m *Menu) ItemSelected() *event.Event[MenuItem] {
	if m == nil {
		return nil
	}
	return &m.selected
}

// SetDisabled enables or disables the item with the given id.
func (m *Menu) SetDisabled(id string, disabled bool) {
	if m == nil {
		return
	}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Disabled = disabled
		}
	}
	if m.highlight >= 0 && m.items[m.highlight].Disabled {
		m.highlight = m.step(m.highlight, 1)
	}
}

// Choose selects item i. Disabled and out-of-range items are ignored.
func (m *Menu) Choose(i int) bool {
	if m == nil || !m.IsActive() || i < 0 || i >= len(m.items) || m.items[i].Disabled {
		return false
	}
	m.highlight = i
	item := m.items[i]
	if item.OnSelect != nil {
		item.OnSelect()
	}
	m.selected.Emit(item)
	return true
}

// step returns the next enabled index after from in direction dir, or
// from itself when there is none.
func (m *Menu) step(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.items); i += dir {
		if !m.items[i].Disabled {
			return i
		}
	}
	return from
}

// OnKeyPressed moves the highlight, selects on Enter, and selects the
// item whose hotkey was typed.
func (m *Menu) OnKeyPressed(k runtime.KeyData) {
	m.ControlBase.OnKeyPressed(k)
	switch k.Key {
	case tcell.KeyUp:
		m.highlight = m.step(m.highlight, -1)
	case tcell.KeyDown:
		m.highlight = m.step(m.highlight, 1)
	case tcell.KeyHome:
		m.highlight = m.step(-1, 1)
	case tcell.KeyEnd:
		m.highlight = m.step(len(m.items), -1)
	case tcell.KeyEnter:
		m.Choose(m.highlight)
	case tcell.KeyRune:
		for i, it := range m.items {
			if it.Hotkey != 0 && unicode.ToLower(it.Hotkey) == unicode.ToLower(k.Rune) {
				m.Choose(i)
				return
			}
		}
	}
}

// OnMouseMoved highlights the enabled item under the pointer.
func (m *Menu) OnMouseMoved(d runtime.MouseData) {
	m.ControlBase.OnMouseMoved(d)
	if i, ok := m.itemAt(d.Position); ok && !m.items[i].Disabled {
		m.highlight = i
	}
}

// OnMouseButtonUp selects the item under the pointer when a push ends
// over the menu.
func (m *Menu) OnMouseButtonUp(d runtime.MouseData) {
	pushed := m.IsBeingPushed()
	m.ControlBase.OnMouseButtonUp(d)
	if !pushed || d.Button != backend.ButtonLeft {
		return
	}
	if i, ok := m.itemAt(d.Position); ok {
		m.Choose(i)
	}
}

func (m *Menu) itemAt(p geom.Point) (int, bool) {
	local := m.ScreenToLocal(p)
	client := m.ClientRect()
	if !client.Contains(local) {
		return 0, false
	}
	i := local.Y - client.Y
	return i, i < len(m.items)
}

// Redraw prints each item with its hotkey right-aligned.
func (m *Menu) Redraw() {
	m.ControlBase.Redraw()
	client := m.ClientRect()
	main := m.DetermineMainPigment()
	for row, it := range m.items[:min(len(m.items), client.Height)] {
		p := main
		switch {
		case it.Disabled:
			p = m.Pigment(pigment.Inactive)
		case row == m.highlight:
			p = m.Pigment(pigment.Selected)
		}
		y := client.Y + row
		m.fillRow(client.X, y, client.Width, p)
		if client.Width < 3 {
			continue
		}
		_ = m.canvas.PrintStringAligned(client.X+1, y, it.Title, canvas.AlignLeft, client.Width-2, p)
		if it.Hotkey != 0 {
			_ = m.canvas.PrintStringAligned(client.X+1, y, string(unicode.ToUpper(it.Hotkey)), canvas.AlignRight, client.Width-2, p)
		}
	}
}

// DetermineMainPigment keeps the menu body steady under the pointer; the
// highlight shows where it is.
func (m *Menu) DetermineMainPigment() pigment.Pigment {
	if !m.IsActive() {
		return m.Pigment(pigment.Inactive)
	}
	return m.Pigment(pigment.Active)
}
