package pigment

import (
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

// ErrUnknownStyle is returned when no chroma style has the requested name.
var ErrUnknownStyle = errors.New("unknown chroma style")

// StyleNames lists the chroma styles usable as themes.
func StyleNames() []string {
	return styles.Names()
}

// FromChromaStyle derives a pigment table from a chroma syntax style.
// Roles whose token colours the style leaves unset keep the default theme.
func FromChromaStyle(name string) (Table, error) {
	style, ok := styles.Registry[name]
	if !ok || style == nil {
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	defaults := DefaultTable()

	bgEntry := style.Get(chroma.Background)
	back, okBack := chromaColour(bgEntry.Background)
	if !okBack {
		back = defaults.Get(Window).Back()
	}
	fore, okFore := chromaColour(bgEntry.Colour)
	if !okFore {
		if fore, okFore = chromaColour(style.Get(chroma.Text).Colour); !okFore {
			fore = defaults.Get(Window).Fore()
		}
	}
	accent := tokenColour(style, chroma.Keyword, defaults.Get(Hilight).Back())
	muted := tokenColour(style, chroma.Comment, defaults.Get(Inactive).Fore())
	selected := tokenColour(style, chroma.NameFunction, defaults.Get(Selected).Back())
	tip := tokenColour(style, chroma.LiteralString, defaults.Get(Tooltip).Back())
	drag := tokenColour(style, chroma.NameTag, defaults.Get(DragItem).Back())
	frame := tokenColour(style, chroma.Punctuation, muted)

	panel := Lighten(back, 0.08)
	t := defaults.
		With(Window, New(fore, back)).
		With(Active, New(fore, panel)).
		With(Inactive, New(muted, back)).
		With(Hilight, New(accent, Lighten(back, 0.16))).
		With(Depressed, New(back, accent)).
		With(Selected, New(back, selected)).
		With(Frame, New(frame, panel)).
		With(Tooltip, New(back, tip)).
		With(DragItem, New(back, drag))
	return t, nil
}

func tokenColour(style *chroma.Style, token chroma.TokenType, fallback tcell.Color) tcell.Color {
	if c, ok := chromaColour(style.Get(token).Colour); ok {
		return c
	}
	return fallback
}

func chromaColour(c chroma.Colour) (tcell.Color, bool) {
	if !c.IsSet() {
		return tcell.ColorDefault, false
	}
	return RGB(c.Red(), c.Green(), c.Blue()), true
}
