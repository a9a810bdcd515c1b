package pigment

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is shorthand for a true-colour tcell colour.
func RGB(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Channels returns the 8-bit channels of c.
// ok is false for colours without an RGB value, such as tcell.ColorDefault.
func Channels(c tcell.Color) (r, g, b uint8, ok bool) {
	if !c.Valid() {
		return 0, 0, 0, false
	}
	r32, g32, b32 := c.RGB()
	if r32 < 0 || g32 < 0 || b32 < 0 {
		return 0, 0, 0, false
	}
	return uint8(r32), uint8(g32), uint8(b32), true
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	r, g, b, ok := Channels(c)
	if !ok {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// Blend interpolates from a to b in RGB space; alpha 0 yields a, 1 yields b.
// Colours without an RGB value are returned unblended: b when alpha ≥ 0.5, else a.
func Blend(a, b tcell.Color, alpha float64) tcell.Color {
	switch {
	case alpha <= 0:
		return a
	case alpha >= 1:
		return b
	}
	ca, okA := toColorful(a)
	cb, okB := toColorful(b)
	if !okA || !okB {
		if alpha >= 0.5 {
			return b
		}
		return a
	}
	return fromColorful(ca.BlendRgb(cb, alpha))
}

// Lighten moves c towards white by t in Lab space.
func Lighten(c tcell.Color, t float64) tcell.Color {
	cc, ok := toColorful(c)
	if !ok {
		return c
	}
	return fromColorful(cc.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, clamp01(t)))
}

// Darken moves c towards black by t in Lab space.
func Darken(c tcell.Color, t float64) tcell.Color {
	cc, ok := toColorful(c)
	if !ok {
		return c
	}
	return fromColorful(cc.BlendLab(colorful.Color{}, clamp01(t)))
}

func clamp01(v float64) float64 {
	return min(1, max(0, v))
}
