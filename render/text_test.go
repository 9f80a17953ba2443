package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFlipsVertically(t *testing.T) {
	g := NewGrid(3, 4)
	// Origin at row 1, col 2
	g.Plot(-2, 1) // top-left on screen
	g.Plot(1, -1) // bottom-right on screen

	var sb strings.Builder
	assert.NoError(t, g.Render(&sb, DefaultGlyphs))
	assert.Equal(t, "@...\n....\n...@\n", sb.String())
}

func TestRenderCustomGlyphs(t *testing.T) {
	g := NewGrid(1, 3)
	g.Plot(0, 0)

	var sb strings.Builder
	assert.NoError(t, g.Render(&sb, Glyphs{Blank: ' ', Mark: '█'}))
	assert.Equal(t, " █ \n", sb.String())
}

func TestStringMatchesRender(t *testing.T) {
	g := NewGrid(25, 55)
	g.DrawLine(-4, -4, 6, 9)

	var sb strings.Builder
	assert.NoError(t, g.Render(&sb, DefaultGlyphs))
	assert.Equal(t, sb.String(), g.String())

	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	assert.Len(t, lines, 25)
	for _, l := range lines {
		assert.Len(t, l, 55)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderWriteError(t *testing.T) {
	g := NewGrid(25, 55)
	assert.Error(t, g.Render(failWriter{}, DefaultGlyphs))
}
