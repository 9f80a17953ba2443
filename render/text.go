package render

import (
	"bufio"
	"io"
	"strings"
)

// Glyphs maps cell states to output runes
type Glyphs struct {
	Blank rune
	Mark  rune
}

// DefaultGlyphs matches the reference dump format
var DefaultGlyphs = Glyphs{Blank: '.', Mark: '@'}

// Rune returns the glyph for a cell state
func (gl Glyphs) Rune(c Cell) rune {
	if c == CellMark {
		return gl.Mark
	}
	return gl.Blank
}

// Render writes the grid as text, highest row first so +y points up on screen
// No separators between columns, newline after every row
func (g *Grid) Render(w io.Writer, glyphs Glyphs) error {
	bw := bufio.NewWriter(w)
	for row := g.rows - 1; row >= 0; row-- {
		line := g.cells[row*g.cols : (row+1)*g.cols]
		for _, c := range line {
			if _, err := bw.WriteRune(glyphs.Rune(c)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders with DefaultGlyphs
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	_ = g.Render(&sb, DefaultGlyphs)
	return sb.String()
}
