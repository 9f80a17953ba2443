package turtle

import (
	"testing"

	"github.com/lixenwraith/vi-turtle/render"
	"github.com/lixenwraith/vi-turtle/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTurtle() *Turtle {
	return New(render.NewGrid(25, 55))
}

func TestNewDefaults(t *testing.T) {
	tt := newTurtle()
	assert.Equal(t, vmath.V2(0, 1), tt.Dir)
	assert.Equal(t, vmath.V2(0, 0), tt.Pos)
	assert.True(t, tt.IsDown())
	assert.Equal(t, 0, tt.Grid().Count())
}

func TestForwardDrawsAndMoves(t *testing.T) {
	tt := newTurtle()
	tt.Forward(3)

	assert.Equal(t, vmath.V2(0, 3), tt.Pos)
	g := tt.Grid()
	for y := 0; y <= 3; y++ {
		assert.True(t, g.Marked(0, y), "cell (0,%d)", y)
	}
	assert.Equal(t, 4, g.Count())
}

func TestPenUpMovesWithoutDrawing(t *testing.T) {
	tt := newTurtle()
	tt.PenUp()
	assert.False(t, tt.IsDown())

	tt.Forward(5)
	assert.Equal(t, vmath.V2(0, 5), tt.Pos)
	assert.Equal(t, 0, tt.Grid().Count())

	tt.SetPen(true)
	assert.True(t, tt.IsDown())
	tt.Backward(1)
	assert.True(t, tt.Grid().Marked(0, 5))
	assert.True(t, tt.Grid().Marked(0, 4))

	tt.SetPen(false)
	tt.PenDown()
	assert.True(t, tt.IsDown())
}

func TestZeroDistancePlotsCurrentCell(t *testing.T) {
	tt := newTurtle()
	tt.Forward(0)
	assert.Equal(t, 1, tt.Grid().Count())
	assert.True(t, tt.Grid().Marked(0, 0))
}

func TestLeftRightInverse(t *testing.T) {
	angles := []float32{0, 1, 30, 45, 90, 135.5, 180, 270, 359, 360, 720, 1000, -45, -390}
	for _, a := range angles {
		tt := newTurtle()
		tt.Dir = vmath.V2(0.6, 0.8)
		start := tt.Dir

		tt.Left(a)
		tt.Right(a)
		assert.True(t, tt.Dir.NearlyEqual(start, 1e-5), "angle %v: got %v", a, tt.Dir)
	}
}

func TestLeftQuarterTurns(t *testing.T) {
	tt := newTurtle()
	want := []vmath.Vec2{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	for i, w := range want {
		tt.Left(90)
		assert.True(t, tt.Dir.NearlyEqual(w, 1e-5), "turn %d: got %v", i+1, tt.Dir)
	}

	tt.Right(90)
	assert.True(t, tt.Dir.NearlyEqual(vmath.V2(1, 0), 1e-5))
}

func TestForwardBackwardInverse(t *testing.T) {
	distances := []float32{0, 1, 3.5, -7, 100, 12345.25}
	for _, d := range distances {
		tt := newTurtle()
		tt.PenUp()
		tt.Left(33)
		tt.Pos = vmath.V2(2, -3)
		start := tt.Pos

		tt.Forward(d)
		tt.Backward(d)

		// Tolerance scales with the float32 ulp of the largest magnitude visited
		eps := float32(1e-5) * max(1, d, -d)
		assert.True(t, tt.Pos.NearlyEqual(start, eps), "distance %v: got %v", d, tt.Pos)
	}
}

func TestForwardFarOutOfBoundsIsSafe(t *testing.T) {
	tt := newTurtle()
	tt.PenUp()
	tt.Pos = vmath.V2(10000, 10000)
	tt.PenDown()

	assert.NotPanics(t, func() { tt.Forward(50) })
	assert.Equal(t, 0, tt.Grid().Count())
}

func TestForwardHugeDistanceClipsToGrid(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		tt := newTurtle()
		tt.Forward(1e30)

		g := tt.Grid()
		for y := 0; y <= 12; y++ {
			assert.True(t, g.Marked(0, y), "cell (0,%d)", y)
		}
		assert.Equal(t, 13, g.Count())
	})

	t.Run("diagonal after left turn", func(t *testing.T) {
		tt := newTurtle()
		tt.Left(90)
		tt.Forward(1e30)

		// Direction (-1, -4e-8) scales past int32 on both axes, so the walk saturates to a diagonal
		g := tt.Grid()
		for k := -12; k <= 0; k++ {
			assert.True(t, g.Marked(k, k), "cell (%d,%d)", k, k)
		}
		assert.Equal(t, 13, g.Count())
	})
}

func TestOnStroke(t *testing.T) {
	tt := newTurtle()
	var strokes [][2]vmath.Vec2
	tt.OnStroke = func(from, to vmath.Vec2) {
		strokes = append(strokes, [2]vmath.Vec2{from, to})
	}

	tt.Forward(2)
	tt.PenUp()
	tt.Forward(2)
	tt.PenDown()
	tt.Backward(1)

	require.Len(t, strokes, 2)
	assert.Equal(t, [2]vmath.Vec2{vmath.V2(0, 0), vmath.V2(0, 2)}, strokes[0])
	assert.Equal(t, [2]vmath.Vec2{vmath.V2(0, 4), vmath.V2(0, 3)}, strokes[1])
}

func TestStringDump(t *testing.T) {
	tt := newTurtle()
	assert.Equal(t, "direction: (0;1) position: (0;0) pen_down: true", tt.String())
}
