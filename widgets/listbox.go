package widgets

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/event"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/pigment"
	"github.com/odvcencio/cellui/runtime"
	"github.com/odvcencio/cellui/scroll"
)

// ListBoxTemplate configures a ListBox. A zero Width fits the longest item
// and a zero Height shows every item.
type ListBoxTemplate struct {
	ControlTemplate
	Items  []string
	Width  int
	Height int
}

// CalculateSize returns the configured or fitted size.
func (t ListBoxTemplate) CalculateSize() geom.Size {
	width, height := t.Width, t.Height
	if width <= 0 {
		for _, item := range t.Items {
			width = max(width, canvas.TextLength(item))
		}
		width = max(width, 1) + 1
		if t.HasFrame {
			width += 2
		}
	}
	if height <= 0 {
		height = max(len(t.Items), 1)
		if t.HasFrame {
			height += 2
		}
	}
	return geom.Sz(width, height)
}

// ListBox shows a scrolling list with one selected row. The selection is
// -1 when the list is empty.
type ListBox struct {
	ControlBase
	items     []string
	selected  *event.Value[int]
	view      *scroll.Viewport
	bar       scroll.Scrollbar
	activated event.Event[int]
}

// NewListBox builds a list box for a screen of the given size.
func NewListBox(screen geom.Size, t ListBoxTemplate) (*ListBox, error) {
	lb := &ListBox{items: slices.Clone(t.Items), selected: event.NewComparableValue(-1)}
	if err := lb.InitControl(lb, screen, t.CalculateSize(), t.ControlTemplate, true); err != nil {
		return nil, err
	}
	lb.bar = scroll.Scrollbar{Orientation: scroll.Vertical}
	lb.view = scroll.NewViewport(lb.ClientRect().Size())
	lb.view.SetContentSize(geom.Sz(lb.ClientRect().Width, len(lb.items)))
	if len(lb.items) > 0 {
		lb.selected.Set(0)
	}
	return lb, nil
}

// Items returns a copy of the items.
func (lb *ListBox) Items() []string {
	if lb == nil {
		return nil
	}
	return slices.Clone(lb.items)
}

// SetItems replaces the items, keeping the selection where it still fits.
func (lb *ListBox) SetItems(items []string) {
	if lb == nil {
		return
	}
	lb.items = slices.Clone(items)
	lb.view.SetContentSize(geom.Sz(lb.view.ViewSize().Width, len(lb.items)))
	lb.Select(lb.selected.Get())
}

// Selected returns the observable selected index.
func (lb *ListBox) Selected() *event.Value[int] {
	if lb == nil {
		return nil
	}
	return lb.selected
}

// SelectedItem returns the selected item text.
func (lb *ListBox) SelectedItem() (string, bool) {
	if lb == nil {
		return "", false
	}
	i := lb.selected.Get()
	if i < 0 || i >= len(lb.items) {
		return "", false
	}
	return lb.items[i], true
}

// Activated is raised with the selected index on Enter.
func (lb *ListBox) Activated() *event.Event[int] {
	if lb == nil {
		return nil
	}
	return &lb.activated
}

// Viewport returns the list's scroll state.
func (lb *ListBox) Viewport() *scroll.Viewport {
	if lb == nil {
		return nil
	}
	return lb.view
}

// Select moves the selection to i, clamped to the items, and scrolls it
// into view.
func (lb *ListBox) Select(i int) {
	if lb == nil {
		return
	}
	if len(lb.items) == 0 {
		lb.selected.Set(-1)
		return
	}
	i = min(max(i, 0), len(lb.items)-1)
	lb.selected.Set(i)
	lb.view.EnsureVisible(geom.Rect{Y: i, Width: 1, Height: 1})
}

func (lb *ListBox) page() int {
	return max(1, lb.view.ViewSize().Height)
}

// OnKeyPressed moves the selection.
func (lb *ListBox) OnKeyPressed(k runtime.KeyData) {
	lb.ControlBase.OnKeyPressed(k)
	cur := lb.selected.Get()
	switch k.Key {
	case tcell.KeyUp:
		lb.Select(cur - 1)
	case tcell.KeyDown:
		lb.Select(cur + 1)
	case tcell.KeyHome:
		lb.Select(0)
	case tcell.KeyEnd:
		lb.Select(len(lb.items) - 1)
	case tcell.KeyPgUp:
		lb.Select(cur - lb.page())
	case tcell.KeyPgDn:
		lb.Select(cur + lb.page())
	case tcell.KeyEnter:
		if cur >= 0 {
			lb.activated.Emit(cur)
		}
	}
}

// OnMouseButtonDown selects the row under the pointer.
func (lb *ListBox) OnMouseButtonDown(m runtime.MouseData) {
	lb.ControlBase.OnMouseButtonDown(m)
	if m.Button != backend.ButtonLeft {
		return
	}
	if i, ok := lb.rowAt(m.Position); ok {
		lb.Select(i)
	}
}

// OnMouseMoved follows the pointer while the button is held.
func (lb *ListBox) OnMouseMoved(m runtime.MouseData) {
	lb.ControlBase.OnMouseMoved(m)
	if !lb.IsBeingPushed() {
		return
	}
	if i, ok := lb.rowAt(m.Position); ok {
		lb.Select(i)
	}
}

func (lb *ListBox) rowAt(p geom.Point) (int, bool) {
	local := lb.ScreenToLocal(p)
	client := lb.ClientRect()
	if !client.Contains(local) {
		return 0, false
	}
	i := local.Y - client.Y + lb.view.Offset().Y
	return i, i < len(lb.items)
}

// Redraw prints the visible rows and, when the items overflow, a
// scrollbar in the last column.
func (lb *ListBox) Redraw() {
	lb.ControlBase.Redraw()
	client := lb.ClientRect()
	textWidth := client.Width
	overflow := len(lb.items) > client.Height
	if overflow && client.Width > 1 {
		textWidth--
		lb.bar.Track = lb.DetermineMainPigment()
		lb.bar.Thumb = lb.DetermineFramePigment()
		_ = lb.bar.Draw(lb.canvas, client.Right(), client.Y, client.Height, lb.view)
	}
	main, sel := lb.DetermineMainPigment(), lb.Pigment(pigment.Selected)
	off := lb.view.Offset().Y
	for row := range client.Height {
		i := off + row
		if i >= len(lb.items) {
			break
		}
		p := main
		if i == lb.selected.Get() {
			p = sel
			lb.fillRow(client.X, client.Y+row, textWidth, p)
		}
		_ = lb.canvas.PrintStringAligned(client.X, client.Y+row, lb.items[i], canvas.AlignLeft, textWidth, p)
	}
}

// ScrollBy scrolls the rows without moving the selection.
func (lb *ListBox) ScrollBy(dx, dy int) { lb.view.ScrollBy(dx, dy) }

// ScrollTo scrolls to an absolute row.
func (lb *ListBox) ScrollTo(x, y int) { lb.view.ScrollTo(x, y) }

// PageBy scrolls by whole pages.
func (lb *ListBox) PageBy(pages int) { lb.view.PageBy(pages) }

// ScrollToStart scrolls to the first row.
func (lb *ListBox) ScrollToStart() { lb.view.ScrollToStart() }

// ScrollToEnd scrolls to the last row.
func (lb *ListBox) ScrollToEnd() { lb.view.ScrollToEnd() }

var _ scroll.Controller = (*ListBox)(nil)
