package markup

import (
	"testing"

	"github.com/odvcencio/cellui/canvas"
)

func TestRenderPlainParagraphs(t *testing.T) {
	got := Render("hello\nworld\n\nnext", DefaultPalette())
	if got != "hello world\nnext" {
		t.Fatalf("expected joined paragraphs, got %q", got)
	}
}

func TestRenderEmphasisUsesEscapes(t *testing.T) {
	p := DefaultPalette()
	got := Render("a *b* **c**", p)
	want := "a " + canvas.ForeCode(p.Emphasis) + "b" + canvas.Stop + " " +
		canvas.ForeCode(p.Strong) + "c" + canvas.Stop
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if canvas.TextLength(got) != 5 {
		t.Fatalf("expected visible length 5, got %d", canvas.TextLength(got))
	}
}

func TestRenderNestedStyleReopensOuter(t *testing.T) {
	p := DefaultPalette()
	got := Render("**x `y` z**", p)
	want := canvas.ForeCode(p.Strong) + "x " +
		canvas.ForeCode(p.Code) + "y" + canvas.Stop + canvas.ForeCode(p.Strong) +
		" z" + canvas.Stop
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenderLinksAndLists(t *testing.T) {
	p := DefaultPalette()
	got := Render("- [docs](http://x)\n- two", p)
	want := "• " + canvas.ForeCode(p.Link) + "docs" + canvas.Stop + "\n• two"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
