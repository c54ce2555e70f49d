package entity

import (
	"image"
	"math"
)

// AlphaThreshold is the minimum alpha (0-255) for a pixel to count as solid
const AlphaThreshold = 127

// rotationEpsilon matches the smallest angle (degrees) treated as a real rotation
const rotationEpsilon = 0.001

// Mask is a per-pixel opacity bitmap used for shape-accurate collision
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an empty w*h mask
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// MaskFromImage marks every pixel whose alpha exceeds AlphaThreshold
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA returns 16-bit alpha
			if a>>8 > AlphaThreshold {
				m.bits[y*m.w+x] = true
			}
		}
	}
	return m
}

// Size returns the mask dimensions
func (m *Mask) Size() (int, int) { return m.w, m.h }

// Get reports whether (x, y) is solid. Out of range pixels are empty.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Set marks (x, y) as solid or empty. Out of range writes are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = v
}

// Count returns the number of solid pixels
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// RotatedSize returns the size of a w*h image rotated by deg degrees.
// Rotated images always have even dimensions and grow to fit every corner;
// angles below rotationEpsilon keep the original size.
func RotatedSize(w, h int, deg float64) (int, int) {
	if math.Abs(deg) <= rotationEpsilon {
		return w, h
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	x := float64(w / 2)
	y := float64(h / 2)
	cx, cy := cos*x, cos*y
	sx, sy := sin*x, sin*y

	halfW := int(math.Ceil(max(math.Abs(cx+sy), math.Abs(cx-sy), math.Abs(-cx+sy), math.Abs(-cx-sy))))
	halfH := int(math.Ceil(max(math.Abs(sx+cy), math.Abs(sx-cy), math.Abs(-sx+cy), math.Abs(-sx-cy))))
	return 2 * max(halfW, 1), 2 * max(halfH, 1)
}

// Rotated returns the mask rotated counter-clockwise by deg degrees around
// its center, sized by RotatedSize. Sampling is nearest-neighbour from the
// receiver, so repeated rotation should always start from the source mask.
func (m *Mask) Rotated(deg float64) *Mask {
	dw, dh := RotatedSize(m.w, m.h, deg)
	if dw == m.w && dh == m.h && math.Abs(deg) <= rotationEpsilon {
		out := NewMask(m.w, m.h)
		copy(out.bits, m.bits)
		return out
	}

	out := NewMask(dw, dh)
	sin, cos := math.Sincos(deg * math.Pi / 180)
	scx, scy := float64(m.w)/2, float64(m.h)/2
	dcx, dcy := float64(dw)/2, float64(dh)/2

	for y := 0; y < dh; y++ {
		dy := float64(y) + 0.5 - dcy
		for x := 0; x < dw; x++ {
			dx := float64(x) + 0.5 - dcx
			// inverse of a counter-clockwise rotation in y-down space
			sx := dx*cos - dy*sin + scx
			sy := dx*sin + dy*cos + scy
			if m.Get(int(math.Floor(sx)), int(math.Floor(sy))) {
				out.bits[y*dw+x] = true
			}
		}
	}
	return out
}

// Overlaps reports whether any solid pixel of o, placed with its top-left
// corner at (dx, dy) in m's coordinates, coincides with a solid pixel of m.
func (m *Mask) Overlaps(o *Mask, dx, dy int) bool {
	if m == nil || o == nil {
		return false
	}
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, dx+o.w)
	y1 := min(m.h, dy+o.h)
	for y := y0; y < y1; y++ {
		row := y * m.w
		orow := (y - dy) * o.w
		for x := x0; x < x1; x++ {
			if m.bits[row+x] && o.bits[orow+x-dx] {
				return true
			}
		}
	}
	return false
}
