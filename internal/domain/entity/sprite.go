package entity

import "image"

// Sprite is a read-only visual handle: a key the renderer resolves to an
// image, the image size, and the opacity mask of the unrotated image.
type Sprite struct {
	Key  string
	W, H int
	Mask *Mask
}

// NewSprite builds a sprite from a decoded image
func NewSprite(key string, img image.Image) Sprite {
	b := img.Bounds()
	return Sprite{
		Key:  key,
		W:    b.Dx(),
		H:    b.Dy(),
		Mask: MaskFromImage(img),
	}
}

// Size returns the sprite size as floats
func (s Sprite) Size() (float64, float64) {
	return float64(s.W), float64(s.H)
}

// SpriteSet holds every sprite a session needs
type SpriteSet struct {
	Player    Sprite
	Star      Sprite
	Meteor    Sprite
	Laser     Sprite
	Explosion []Sprite
}
