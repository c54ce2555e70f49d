package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindPlayer, "Player"},
		{KindStar, "Star"},
		{KindLaser, "Laser"},
		{KindMeteor, "Meteor"},
		{KindExplosion, "Explosion"},
		{Kind(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"zero stays zero", Vec2{}, Vec2{}},
		{"right", Vec2{1, 0}, Vec2{1, 0}},
		{"up", Vec2{0, -1}, Vec2{0, -1}},
		{"diagonal", Vec2{1, 1}, Vec2{math.Sqrt2 / 2, math.Sqrt2 / 2}},
		{"long", Vec2{3, 4}, Vec2{0.6, 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -4}

	assert.Equal(t, Vec2{4, -2}, a.Add(b))
	assert.Equal(t, Vec2{-2, 6}, a.Sub(b))
	assert.Equal(t, Vec2{2, 4}, a.Scale(2))
	assert.Equal(t, 5.0, b.Len())
	assert.True(t, Vec2{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestRect_Anchors(t *testing.T) {
	r := RectFromCenter(Vec2{100, 50}, 20, 10)

	assert.Equal(t, 90.0, r.Left())
	assert.Equal(t, 110.0, r.Right())
	assert.Equal(t, 45.0, r.Top())
	assert.Equal(t, 55.0, r.Bottom())
	assert.Equal(t, Vec2{100, 50}, r.Center())
	assert.Equal(t, Vec2{100, 45}, r.MidTop())
	assert.Equal(t, Vec2{100, 55}, r.MidBottom())

	mb := RectFromMidBottom(Vec2{100, 45}, 4, 30)
	assert.Equal(t, Vec2{100, 45}, mb.MidBottom())
	assert.Equal(t, 15.0, mb.Top())
}

func TestRect_InflateAndMove(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	inflated := r.Inflate(20, 10)
	assert.Equal(t, Rect{X: 0, Y: 5, W: 40, H: 20}, inflated)
	assert.Equal(t, r.Center(), inflated.Center())

	assert.Equal(t, Rect{X: 10, Y: 2, W: 20, H: 10}, r.Move(0, -8))
}

func TestRect_Overlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"far away", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
		{"empty", Rect{X: 2, Y: 2, W: 0, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap should be symmetric")
		})
	}
}
