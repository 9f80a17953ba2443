package render

import (
	"github.com/gdamore/tcell/v2"
)

// MarkStyle is the default style for marked cells on a tcell screen
var MarkStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)

// BlankStyle is the default style for blank cells on a tcell screen
var BlankStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// Draw paints the grid at the top-left of the screen with the same vertical flip as Render
// Cells beyond the screen size are not drawn
func Draw(screen tcell.Screen, g *Grid, glyphs Glyphs) {
	screen.Clear()
	sw, sh := screen.Size()
	for y := 0; y < g.rows && y < sh; y++ {
		row := g.rows - 1 - y
		for x := 0; x < g.cols && x < sw; x++ {
			c := g.At(row, x)
			style := BlankStyle
			if c == CellMark {
				style = MarkStyle
			}
			screen.SetContent(x, y, glyphs.Rune(c), nil, style)
		}
	}
}

// View shows the grid and blocks until the user dismisses it
// Esc, Enter, q and Ctrl-C close the view; resize redraws
func View(screen tcell.Screen, g *Grid, glyphs Glyphs) {
	Draw(screen, g, glyphs)
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, g, glyphs)
			screen.Show()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return
				}
			}
		}
	}
}
