// Package turtle implements a drawing cursor that traces its movement into a render.Grid.
//
// The cursor holds a continuous position, a unit heading and a pen flag. Moving with the
// pen down rasterizes the segment from the old position to the new one. Turning composes
// the heading with a unit rotation vector; the heading is never re-normalized.
package turtle

import (
	"fmt"
	"io"

	"github.com/lixenwraith/vi-turtle/render"
	"github.com/lixenwraith/vi-turtle/vmath"
)

// Turtle is the stateful cursor
// Dir and Pos are exported for drivers that place or aim the cursor directly
type Turtle struct {
	Dir vmath.Vec2
	Pos vmath.Vec2

	// OnStroke, when set, is called after each pen-down segment is rasterized
	OnStroke func(from, to vmath.Vec2)

	penUp bool
	grid  *render.Grid
}

// New creates a turtle at the origin facing +y with the pen down
// The turtle takes ownership of grid
func New(grid *render.Grid) *Turtle {
	return &Turtle{
		Dir:  vmath.V2(0, 1),
		Pos:  vmath.V2(0, 0),
		grid: grid,
	}
}

// Forward moves along the heading, drawing from the old position when the pen is down
// Negative distances move backwards; the segment is rasterized before position updates
func (t *Turtle) Forward(distance float32) {
	from := t.Pos
	to := from.Add(t.Dir.Scale(distance))

	if !t.penUp {
		t.grid.DrawLine(from.X, from.Y, to.X, to.Y)
		if t.OnStroke != nil {
			t.OnStroke(from, to)
		}
	}

	t.Pos = to
}

// Backward is Forward(-distance)
func (t *Turtle) Backward(distance float32) {
	t.Forward(-distance)
}

// Left turns counter-clockwise by degrees, any real value
func (t *Turtle) Left(degrees float32) {
	t.Dir = t.Dir.RotateDeg(degrees)
}

// Right is Left(-degrees)
func (t *Turtle) Right(degrees float32) {
	t.Left(-degrees)
}

func (t *Turtle) PenUp()   { t.penUp = true }
func (t *Turtle) PenDown() { t.penUp = false }

// SetPen sets the pen state, true for drawing
func (t *Turtle) SetPen(down bool) { t.penUp = !down }

// IsDown reports whether moves currently draw
func (t *Turtle) IsDown() bool { return !t.penUp }

// Grid returns the owned raster
func (t *Turtle) Grid() *render.Grid { return t.grid }

// Render writes the raster as text
func (t *Turtle) Render(w io.Writer, glyphs render.Glyphs) error {
	return t.grid.Render(w, glyphs)
}

// String dumps cursor state for debug logs
func (t *Turtle) String() string {
	return fmt.Sprintf("direction: %v position: %v pen_down: %t", t.Dir, t.Pos, t.IsDown())
}
