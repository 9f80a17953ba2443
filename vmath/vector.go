package vmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 is a continuous-space 2D vector in single precision
// Used both as a point (position) and as a direction (heading)
type Vec2 struct {
	X, Y float32
}

// V2 constructs a Vec2
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by factor
func (v Vec2) Scale(factor float32) Vec2 {
	return Vec2{float32(v.X * factor), float32(v.Y * factor)}
}

// Compose multiplies v and o as complex numbers: (a,b)∘(c,d) = (ac-bd, ad+bc)
// With a unit o this rotates v by o's angle without changing its magnitude
// Explicit conversions keep products rounded to float32 before the sum (no FMA)
func (v Vec2) Compose(o Vec2) Vec2 {
	return Vec2{
		X: float32(v.X*o.X) - float32(v.Y*o.Y),
		Y: float32(v.X*o.Y) + float32(v.Y*o.X),
	}
}

// Rotation returns the unit rotation vector (cos θ, sin θ) for an angle in radians
func Rotation(radians float32) Vec2 {
	sin, cos := math32.Sincos(radians)
	return Vec2{cos, sin}
}

// RotateDeg rotates v counter-clockwise by degrees
// No angle normalization: periodicity comes from the trigonometry
func (v Vec2) RotateDeg(degrees float32) Vec2 {
	return v.Compose(Rotation(DegToRad(degrees)))
}

// Magnitude returns Euclidean length
func (v Vec2) Magnitude() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Perpendicular returns vector rotated 90° counter-clockwise
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Round returns the nearest grid cell using RoundInt on each component
func (v Vec2) Round() (x, y int) {
	return RoundInt(v.X), RoundInt(v.Y)
}

// NearlyEqual compares component-wise within eps
func (v Vec2) NearlyEqual(o Vec2, eps float32) bool {
	return NearlyEqual(v.X, o.X, eps) && NearlyEqual(v.Y, o.Y, eps)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g;%g)", v.X, v.Y)
}
