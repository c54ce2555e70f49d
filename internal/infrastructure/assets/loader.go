// Package assets provides the sprite images, their collision masks and the
// HUD font, either decoded from an asset directory or generated in code.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"path"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// ErrMissingAsset is returned when a required asset file does not exist
var ErrMissingAsset = errors.New("missing asset")

// Sprite keys
const (
	KeyPlayer = "player"
	KeyStar   = "star"
	KeyMeteor = "meteor"
	KeyLaser  = "laser"
)

// ExplosionKey returns the key of explosion frame i
func ExplosionKey(i int) string {
	return fmt.Sprintf("explosion/%d", i)
}

// Images holds the source image of every sprite
type Images struct {
	Player    image.Image
	Star      image.Image
	Meteor    image.Image
	Laser     image.Image
	Explosion []image.Image
}

// Procedural generates the built-in images
func Procedural(explosionFrames int) *Images {
	frames := ExplosionFrames(explosionFrames)
	imgs := &Images{
		Player:    ShipImage(),
		Star:      StarImage(),
		Meteor:    MeteorImage(),
		Laser:     LaserImage(),
		Explosion: make([]image.Image, len(frames)),
	}
	for i, f := range frames {
		imgs.Explosion[i] = f
	}
	return imgs
}

// LoadImages decodes images/{player,star,meteor,laser}.png and
// images/explosion/0..n-1.png from fsys
func LoadImages(fsys fs.FS, explosionFrames int) (*Images, error) {
	imgs := &Images{}
	named := []struct {
		name string
		dst  *image.Image
	}{
		{KeyPlayer, &imgs.Player},
		{KeyStar, &imgs.Star},
		{KeyMeteor, &imgs.Meteor},
		{KeyLaser, &imgs.Laser},
	}
	for _, n := range named {
		img, err := decodeImage(fsys, path.Join("images", n.name+".png"))
		if err != nil {
			return nil, err
		}
		*n.dst = img
	}

	imgs.Explosion = make([]image.Image, explosionFrames)
	for i := range imgs.Explosion {
		img, err := decodeImage(fsys, path.Join("images", ExplosionKey(i)+".png"))
		if err != nil {
			return nil, err
		}
		imgs.Explosion[i] = img
	}
	return imgs, nil
}

func decodeImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return img, nil
}

// Each calls fn for every image with its sprite key
func (im *Images) Each(fn func(key string, img image.Image)) {
	fn(KeyPlayer, im.Player)
	fn(KeyStar, im.Star)
	fn(KeyMeteor, im.Meteor)
	fn(KeyLaser, im.Laser)
	for i, img := range im.Explosion {
		fn(ExplosionKey(i), img)
	}
}

// Sprites builds the sprite handles and collision masks
func (im *Images) Sprites() entity.SpriteSet {
	set := entity.SpriteSet{
		Player:    entity.NewSprite(KeyPlayer, im.Player),
		Star:      entity.NewSprite(KeyStar, im.Star),
		Meteor:    entity.NewSprite(KeyMeteor, im.Meteor),
		Laser:     entity.NewSprite(KeyLaser, im.Laser),
		Explosion: make([]entity.Sprite, len(im.Explosion)),
	}
	for i, img := range im.Explosion {
		set.Explosion[i] = entity.NewSprite(ExplosionKey(i), img)
	}
	return set
}
