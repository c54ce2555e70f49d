package assets

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Built-in sprite sizes, close to the classic space shooter art
const (
	PlayerWidth, PlayerHeight       = 99, 75
	MeteorWidth, MeteorHeight       = 101, 84
	LaserWidth, LaserHeight         = 9, 54
	StarSize                        = 24
	ExplosionSize                   = 128
	DefaultExplosionFrames          = 21
	circleSegments                  = 48
	explosionMinRadius, explosionDR = 12.0, 52.0
)

var (
	colorHull     = color.NRGBA{74, 165, 222, 255}
	colorCockpit  = color.NRGBA{200, 235, 255, 255}
	colorEngine   = color.NRGBA{255, 140, 60, 255}
	colorRock     = color.NRGBA{140, 128, 120, 255}
	colorCrater   = color.NRGBA{100, 90, 85, 255}
	colorLaser    = color.NRGBA{235, 60, 60, 255}
	colorStar     = color.NRGBA{255, 250, 200, 255}
	colorFlame    = color.NRGBA{255, 200, 60, 255}
	colorFlameHot = color.NRGBA{255, 255, 220, 255}
)

type point struct{ x, y float32 }

// fillPolygon rasterizes a closed polygon onto dst (antialiased, drawn over)
func fillPolygon(dst *image.RGBA, pts []point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		r.LineTo(p.x, p.y)
	}
	r.ClosePath()
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func circle(cx, cy, rx, ry float64) []point {
	pts := make([]point, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = point{float32(cx + rx*math.Cos(a)), float32(cy + ry*math.Sin(a))}
	}
	return pts
}

// ShipImage draws the player ship pointing up
func ShipImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PlayerWidth, PlayerHeight))
	w, h := float32(PlayerWidth), float32(PlayerHeight)
	mid := w / 2

	fillPolygon(img, []point{
		{mid - 10, h - 8}, {mid + 10, h - 8}, {mid + 6, h}, {mid - 6, h},
	}, colorEngine)
	fillPolygon(img, []point{
		{mid, 0},
		{mid + 14, 22},
		{w, h * 0.72},
		{w - 18, h - 6},
		{mid, h * 0.84},
		{18, h - 6},
		{0, h * 0.72},
		{mid - 14, 22},
	}, colorHull)
	fillPolygon(img, circle(float64(mid), 30, 7, 12), colorCockpit)
	return img
}

// meteorRadii shapes the rock outline (fraction of the ellipse radius)
var meteorRadii = []float64{0.95, 0.8, 1, 0.86, 0.97, 0.78, 0.92, 1, 0.83, 0.9, 0.98, 0.85}

// MeteorImage draws an irregular rock
func MeteorImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, MeteorWidth, MeteorHeight))
	cx, cy := float64(MeteorWidth)/2, float64(MeteorHeight)/2
	rx, ry := cx-0.5, cy-0.5

	pts := make([]point, len(meteorRadii))
	for i, f := range meteorRadii {
		a := 2 * math.Pi * float64(i) / float64(len(meteorRadii))
		pts[i] = point{float32(cx + f*rx*math.Cos(a)), float32(cy + f*ry*math.Sin(a))}
	}
	fillPolygon(img, pts, colorRock)
	fillPolygon(img, circle(cx-18, cy-10, 11, 9), colorCrater)
	fillPolygon(img, circle(cx+20, cy+12, 8, 7), colorCrater)
	fillPolygon(img, circle(cx+6, cy-22, 5, 4), colorCrater)
	return img
}

// LaserImage draws a capsule shaped bolt
func LaserImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, LaserWidth, LaserHeight))
	r := float64(LaserWidth) / 2
	fillPolygon(img, []point{
		{0, float32(r)}, {LaserWidth, float32(r)},
		{LaserWidth, float32(LaserHeight - r)}, {0, float32(LaserHeight - r)},
	}, colorLaser)
	fillPolygon(img, circle(r, r, r, r), colorLaser)
	fillPolygon(img, circle(r, LaserHeight-r, r, r), colorLaser)
	return img
}

// StarImage draws a four pointed sparkle
func StarImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, StarSize, StarSize))
	c := float32(StarSize) / 2
	const inner = 3
	fillPolygon(img, []point{
		{c, 0}, {c + inner, c - inner},
		{StarSize, c}, {c + inner, c + inner},
		{c, StarSize}, {c - inner, c + inner},
		{0, c}, {c - inner, c - inner},
	}, colorStar)
	return img
}

// ExplosionFrames draws n frames of an expanding, fading fireball.
// Every frame has the same canvas size.
func ExplosionFrames(n int) []*image.RGBA {
	frames := make([]*image.RGBA, n)
	c := float64(ExplosionSize) / 2
	for i := range frames {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		img := image.NewRGBA(image.Rect(0, 0, ExplosionSize, ExplosionSize))
		radius := explosionMinRadius + explosionDR*t
		fade := 1 - 0.85*t

		fillPolygon(img, circle(c, c, radius, radius), withAlpha(colorFlame, fade))
		if t < 0.6 {
			fillPolygon(img, circle(c, c, radius*0.55, radius*0.55), withAlpha(colorFlameHot, fade))
		}
		frames[i] = img
	}
	return frames
}

func withAlpha(c color.NRGBA, f float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * f))
	return c
}
