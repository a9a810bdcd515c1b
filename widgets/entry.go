package widgets

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/cellui/backend"
	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/event"
	"github.com/odvcencio/cellui/geom"
	"github.com/odvcencio/cellui/pigment"
	"github.com/odvcencio/cellui/runtime"
)

// EntryTemplate configures an Entry.
type EntryTemplate struct {
	ControlTemplate
	Text        string
	Placeholder string
	Width       int
	// MaxLength limits the text in runes; zero means unlimited.
	MaxLength int
}

// CalculateSize returns one row of Width cells, at least two.
func (t EntryTemplate) CalculateSize() geom.Size {
	width := max(t.Width, 2)
	if t.HasFrame {
		return geom.Sz(width+2, 3)
	}
	return geom.Sz(width, 1)
}

// Entry is a single-line text field. Ctrl+C, Ctrl+X and Ctrl+V copy, cut
// and paste the whole text through the window clipboard.
type Entry struct {
	ControlBase
	text        *event.Value[string]
	runes       []rune
	cursor      int
	offset      int
	placeholder string
	maxLen      int
	submitted   event.Event[string]
}

// NewEntry builds an entry for a screen of the given size.
func NewEntry(screen geom.Size, t EntryTemplate) (*Entry, error) {
	e := &Entry{
		text:        event.NewComparableValue(""),
		placeholder: t.Placeholder,
		maxLen:      t.MaxLength,
	}
	if err := e.InitControl(e, screen, t.CalculateSize(), t.ControlTemplate, true); err != nil {
		return nil, err
	}
	e.SetText(t.Text)
	return e, nil
}

// Text returns the observable text.
func (e *Entry) Text() *event.Value[string] {
	if e == nil {
		return nil
	}
	return e.text
}

// Placeholder returns the hint shown while the entry is empty.
func (e *Entry) Placeholder() string {
	if e == nil {
		return ""
	}
	return e.placeholder
}

// Submitted is raised with the text on Enter.
func (e *Entry) Submitted() *event.Event[string] {
	if e == nil {
		return nil
	}
	return &e.submitted
}

// Cursor returns the cursor position in runes.
func (e *Entry) Cursor() int {
	if e == nil {
		return 0
	}
	return e.cursor
}

// SetText replaces the text and moves the cursor to its end.
func (e *Entry) SetText(text string) {
	if e == nil {
		return
	}
	e.runes = e.clip([]rune(sanitize(text)))
	e.cursor = len(e.runes)
	e.commit()
}

// Insert types text at the cursor.
func (e *Entry) Insert(text string) {
	if e == nil || text == "" {
		return
	}
	in := []rune(sanitize(text))
	if e.maxLen > 0 {
		in = in[:min(len(in), max(0, e.maxLen-len(e.runes)))]
	}
	if len(in) == 0 {
		return
	}
	e.runes = slices.Insert(e.runes, e.cursor, in...)
	e.cursor += len(in)
	e.commit()
}

func (e *Entry) clip(r []rune) []rune {
	if e.maxLen > 0 && len(r) > e.maxLen {
		return r[:e.maxLen]
	}
	return r
}

// sanitize drops line breaks and control characters.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		if r < ' ' || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

func (e *Entry) commit() {
	e.text.Set(string(e.runes))
	e.follow()
}

// follow scrolls horizontally so the cursor cell is visible.
func (e *Entry) follow() {
	width := e.ClientRect().Width
	if e.cursor < e.offset {
		e.offset = e.cursor
	}
	for e.offset < e.cursor && runewidth.StringWidth(string(e.runes[e.offset:e.cursor]))+1 > width {
		e.offset++
	}
}

func (e *Entry) moveTo(i int) {
	e.cursor = min(max(i, 0), len(e.runes))
	e.follow()
}

// OnKeyPressed edits the text.
func (e *Entry) OnKeyPressed(k runtime.KeyData) {
	e.ControlBase.OnKeyPressed(k)
	switch k.Key {
	case tcell.KeyLeft:
		e.moveTo(e.cursor - 1)
	case tcell.KeyRight:
		e.moveTo(e.cursor + 1)
	case tcell.KeyHome, tcell.KeyCtrlA:
		e.moveTo(0)
	case tcell.KeyEnd, tcell.KeyCtrlE:
		e.moveTo(len(e.runes))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.cursor > 0 {
			e.runes = slices.Delete(e.runes, e.cursor-1, e.cursor)
			e.cursor--
			e.commit()
		}
	case tcell.KeyDelete:
		if e.cursor < len(e.runes) {
			e.runes = slices.Delete(e.runes, e.cursor, e.cursor+1)
			e.commit()
		}
	case tcell.KeyEnter:
		e.submitted.Emit(string(e.runes))
	case tcell.KeyCtrlC:
		e.copy()
	case tcell.KeyCtrlX:
		if e.copy() {
			e.SetText("")
		}
	case tcell.KeyCtrlV:
		e.paste()
	case tcell.KeyRune:
		if !k.Ctrl() && !k.Alt() && k.Rune != 0 {
			e.Insert(string(k.Rune))
		}
	}
}

func (e *Entry) copy() bool {
	cb := e.ParentWindow().Clipboard()
	if !cb.Available() {
		return false
	}
	return cb.Write(string(e.runes)) == nil
}

func (e *Entry) paste() {
	cb := e.ParentWindow().Clipboard()
	if !cb.Available() {
		return
	}
	text, err := cb.Read()
	if err != nil {
		return
	}
	e.Insert(text)
}

// OnMouseButtonDown places the cursor at the clicked column.
func (e *Entry) OnMouseButtonDown(m runtime.MouseData) {
	e.ControlBase.OnMouseButtonDown(m)
	if m.Button != backend.ButtonLeft {
		return
	}
	col := e.ScreenToLocal(m.Position).X - e.ClientRect().X
	i, used := e.offset, 0
	for i < len(e.runes) {
		w := runewidth.RuneWidth(e.runes[i])
		if used+w > col {
			break
		}
		used += w
		i++
	}
	e.moveTo(i)
}

// Redraw prints the visible part of the text and, when focused, the cursor.
func (e *Entry) Redraw() {
	e.ControlBase.Redraw()
	client := e.ClientRect()
	main := e.DetermineMainPigment()
	if len(e.runes) == 0 && !e.HasKeyboardFocus() && e.placeholder != "" {
		_ = e.canvas.PrintStringAligned(client.X, client.Y, e.placeholder, canvas.AlignLeft, client.Width, e.Pigment(pigment.Inactive).WithBack(main.Back()))
		return
	}
	_ = e.canvas.PrintStringAligned(client.X, client.Y, string(e.runes[e.offset:]), canvas.AlignLeft, client.Width, main)
	if !e.HasKeyboardFocus() {
		return
	}
	x := client.X + runewidth.StringWidth(string(e.runes[e.offset:e.cursor]))
	if x > client.Right() {
		return
	}
	r := ' '
	if e.cursor < len(e.runes) {
		r = e.runes[e.cursor]
	}
	if runewidth.RuneWidth(r) == 2 && x+1 > client.Right() {
		r = ' '
	}
	_ = e.canvas.PutCharPigment(x, client.Y, r, main.Swapped())
}
