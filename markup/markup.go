// Package markup renders a small Markdown subset into canvas colour-escape
// strings for labels and tooltips.
package markup

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/odvcencio/cellui/canvas"
	"github.com/odvcencio/cellui/pigment"
)

// Palette holds the foreground colours used for inline markup.
type Palette struct {
	Emphasis tcell.Color
	Strong   tcell.Color
	Code     tcell.Color
	Link     tcell.Color
	Heading  tcell.Color
}

// DefaultPalette returns the built-in markup colours.
func DefaultPalette() Palette {
	return Palette{
		Emphasis: pigment.RGB(180, 200, 255),
		Strong:   pigment.RGB(255, 220, 120),
		Code:     pigment.RGB(150, 220, 150),
		Link:     pigment.RGB(120, 180, 255),
		Heading:  pigment.RGB(255, 255, 255),
	}
}

var parser = goldmark.New().Parser()

// Render converts Markdown to a string the canvas printer understands.
// Blocks are separated by newlines; inline styles become colour escapes.
func Render(src string, palette Palette) string {
	source := []byte(src)
	doc := parser.Parse(text.NewReader(source))
	r := &renderer{source: source, palette: palette}
	_ = ast.Walk(doc, r.walk)
	return strings.TrimRight(r.out.String(), "\n")
}

type renderer struct {
	source  []byte
	palette Palette
	out     strings.Builder
	colours []tcell.Color
}

func (r *renderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if !entering {
			r.newline()
		}
	case *ast.Heading:
		r.colour(entering, r.palette.Heading)
		if !entering {
			r.newline()
		}
	case *ast.ListItem:
		if entering {
			r.out.WriteString("• ")
		}
	case *ast.ThematicBreak:
		if entering {
			r.out.WriteString("───\n")
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			r.codeLines(n)
		}
		return ast.WalkSkipChildren, nil
	case *ast.Emphasis:
		if node.Level >= 2 {
			r.colour(entering, r.palette.Strong)
		} else {
			r.colour(entering, r.palette.Emphasis)
		}
	case *ast.CodeSpan:
		r.colour(entering, r.palette.Code)
	case *ast.Link:
		r.colour(entering, r.palette.Link)
	case *ast.AutoLink:
		if entering {
			r.colour(true, r.palette.Link)
			r.out.Write(node.Label(r.source))
			r.colour(false, r.palette.Link)
		}
	case *ast.Text:
		if !entering {
			break
		}
		r.out.Write(node.Segment.Value(r.source))
		switch {
		case node.HardLineBreak():
			r.out.WriteByte('\n')
		case node.SoftLineBreak():
			r.out.WriteByte(' ')
		}
	case *ast.String:
		if entering {
			r.out.Write(node.Value)
		}
	}
	return ast.WalkContinue, nil
}

// colour opens or closes an inline colour. Escapes do not nest, so closing
// re-opens the enclosing colour.
func (r *renderer) colour(entering bool, c tcell.Color) {
	if entering {
		r.colours = append(r.colours, c)
		r.out.WriteString(canvas.ForeCode(c))
		return
	}
	if len(r.colours) == 0 {
		return
	}
	r.colours = r.colours[:len(r.colours)-1]
	r.out.WriteString(canvas.Stop)
	if len(r.colours) > 0 {
		r.out.WriteString(canvas.ForeCode(r.colours[len(r.colours)-1]))
	}
}

func (r *renderer) codeLines(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(r.source)), "\n")
		r.out.WriteString(canvas.Colorize(line, r.palette.Code))
		r.out.WriteByte('\n')
	}
}

func (r *renderer) newline() {
	r.out.WriteByte('\n')
}
