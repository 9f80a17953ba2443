package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestRoundInt(t *testing.T) {
	tests := []struct {
		in   float32
		want int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, -1},
		{-2.5, -3},
		{2.9999998, 3},
		{-9.999999, -10},
		{1e30, math.MaxInt32},
		{-1e30, math.MinInt32},
		{float32(math.Inf(1)), math.MaxInt32},
		{float32(math.Inf(-1)), math.MinInt32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundInt(tt.in), "RoundInt(%v)", tt.in)
	}
	assert.Equal(t, 0, RoundInt(float32(math.NaN())))
}

func TestCompose(t *testing.T) {
	// i * i = -1
	assert.Equal(t, V2(-1, 0), V2(0, 1).Compose(V2(0, 1)))
	// identity
	assert.Equal(t, V2(3, -4), V2(3, -4).Compose(V2(1, 0)))
	// (1+2i)(3+4i) = -5+10i
	assert.Equal(t, V2(-5, 10), V2(1, 2).Compose(V2(3, 4)))
}

func TestRotateDeg(t *testing.T) {
	tests := []struct {
		name    string
		start   Vec2
		degrees float32
		want    Vec2
	}{
		{"quarter left from up", V2(0, 1), 90, V2(-1, 0)},
		{"quarter right from up", V2(0, 1), -90, V2(1, 0)},
		{"half turn", V2(1, 0), 180, V2(-1, 0)},
		{"full turn", V2(1, 0), 360, V2(1, 0)},
		{"beyond full turn", V2(1, 0), 450, V2(0, 1)},
		{"zero", V2(0.6, 0.8), 0, V2(0.6, 0.8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.RotateDeg(tt.degrees)
			assert.True(t, got.NearlyEqual(tt.want, eps), "got %v want %v", got, tt.want)
		})
	}
}

func TestRotateRoundTrip(t *testing.T) {
	start := V2(0, 1)
	for deg := float32(-720); deg <= 720; deg += 7.5 {
		got := start.RotateDeg(deg).RotateDeg(-deg)
		assert.True(t, got.NearlyEqual(start, eps), "angle %v: got %v", deg, got)
	}
}

func TestRotationPreservesMagnitude(t *testing.T) {
	v := V2(0, 1)
	for i := 0; i < 100; i++ {
		v = v.RotateDeg(37)
	}
	assert.InDelta(t, 1.0, float64(v.Magnitude()), 1e-4)
}

func TestVectorArithmetic(t *testing.T) {
	assert.Equal(t, V2(4, 6), V2(1, 2).Add(V2(3, 4)))
	assert.Equal(t, V2(-2, -2), V2(1, 2).Sub(V2(3, 4)))
	assert.Equal(t, V2(-3, 6), V2(1, -2).Scale(-3))
	assert.Equal(t, V2(-2, 1), V2(1, 2).Perpendicular())

	x, y := V2(2.5, -0.4).Round()
	assert.Equal(t, 3, x)
	assert.Equal(t, 0, y)
}

func TestIntHelpers(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, -1, Sign(-3))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 1, Sign(9))
}
