package entity

import "math"

// Kind identifies the category of a game object
type Kind int

const (
	KindPlayer Kind = iota
	KindStar
	KindLaser
	KindMeteor
	KindExplosion
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindStar:
		return "Star"
	case KindLaser:
		return "Laser"
	case KindMeteor:
		return "Meteor"
	case KindExplosion:
		return "Explosion"
	default:
		return "Unknown"
	}
}

// Vec2 is a 2D vector in screen space (y grows downward)
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns v scaled to unit length.
// The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is a float rectangle anchored at its top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromCenter returns a w*h rect centered on c
func RectFromCenter(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// RectFromMidBottom returns a w*h rect whose bottom edge is centered on p
func RectFromMidBottom(p Vec2, w, h float64) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h, W: w, H: h}
}

// Left returns the x coordinate of the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

// MidTop returns the center of the top edge
func (r Rect) MidTop() Vec2 { return Vec2{r.X + r.W/2, r.Y} }

// MidBottom returns the center of the bottom edge
func (r Rect) MidBottom() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H} }

// Move returns the rect translated by (dx, dy)
func (r Rect) Move(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inflate grows the rect by dw, dh keeping the same center
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}

// Overlaps reports whether the two rects share interior area.
// Touching edges and empty rects do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
