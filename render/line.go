package render

import (
	"image"
	"math/bits"

	"github.com/lixenwraith/vi-turtle/vmath"
)

// DrawLine rasterizes the segment between two continuous-space points
// Endpoints are rounded half away from zero, then walked with integer Bresenham
// Only the part of the walk that can land inside the grid is visited
func (g *Grid) DrawLine(x1, y1, x2, y2 float32) {
	bresenham(
		vmath.RoundInt(x1), vmath.RoundInt(y1),
		vmath.RoundInt(x2), vmath.RoundInt(y2),
		g.majorWindow,
		func(x, y int) { g.Plot(x, y) },
	)
}

// Line returns the logical cells covered by the integer segment, in walk order
// Same walk as DrawLine without clipping, nothing is plotted
func (g *Grid) Line(x1, y1, x2, y2 int) []image.Point {
	pts := make([]image.Point, 0, max(vmath.Abs(x2-x1), vmath.Abs(y2-y1))+1)
	bresenham(x1, y1, x2, y2, nil, func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	return pts
}

// majorWindow returns the logical range of the major axis that maps inside the grid
// Steep walks step along rows, shallow walks along columns
func (g *Grid) majorWindow(steep bool) (lo, hi int) {
	if steep {
		return -(g.rows / 2), g.rows - 1 - g.rows/2
	}
	return -(g.cols / 2), g.cols - 1 - g.cols/2
}

// bresenham walks the major axis in +1 steps and visits each cell in logical (x, y)
// Steep segments are transposed first so the major axis always has the larger extent
// window, when set, limits the visited major-axis range; skipped steps are jumped in closed form
func bresenham(x1, y1, x2, y2 int, window func(steep bool) (lo, hi int), visit func(x, y int)) {
	steep := vmath.Abs(y2-y1) > vmath.Abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}

	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	dErr := vmath.Abs(y2 - y1)
	iy := -1
	if y1 < y2 {
		iy = 1
	}

	// dx >= 0 after ordering, shift is plain halving
	err := dx >> 1
	y := y1
	start, end := x1, x2

	if window != nil {
		lo, hi := window(steep)
		start, end = max(x1, lo), min(x2, hi)
		if start > end {
			return
		}
		if k := start - x1; k > 0 {
			steps, e := bresenhamSkip(uint64(k), uint64(dx), uint64(dErr), uint64(err))
			y += iy * int(steps)
			err = int(e)
		}
	}

	for x := start; x <= end; x++ {
		if steep {
			visit(y, x)
		} else {
			visit(x, y)
		}
		err -= dErr
		if err < 0 {
			y += iy
			err += dx
		}
	}
}

// bresenhamSkip returns the minor-axis steps taken and the error term after k major steps
// The loop keeps err in [0, dx) with at most one correction per step (dErr <= dx), so after
// k steps err = err0 - k*dErr + n*dx with n the smallest count that brings it back to >= 0:
// k*dErr - err0 + dx - 1 = n*dx + r, err = dx - 1 - r
// Requires 0 < k <= dx; 128-bit product since deltas of saturated coordinates reach 2^32
func bresenhamSkip(k, dx, dErr, err0 uint64) (steps, err uint64) {
	hi, lo := bits.Mul64(k, dErr)
	lo, carry := bits.Add64(lo, dx-1-err0, 0)
	hi += carry
	steps, r := bits.Div64(hi, lo, dx)
	return steps, dx - 1 - r
}
