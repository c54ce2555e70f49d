package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
	"golang.org/x/image/font/gofont/goregular"
)

// Library resolves sprite keys to GPU images and holds the HUD font.
// Sprites is what the gameplay core sees; the images stay here.
type Library struct {
	Sprites entity.SpriteSet
	Face    *text.GoTextFace
	images  map[string]*ebiten.Image
}

// NewLibrary uploads every image of imgs
func NewLibrary(imgs *Images, face *text.GoTextFace) *Library {
	l := &Library{
		Sprites: imgs.Sprites(),
		Face:    face,
		images:  make(map[string]*ebiten.Image),
	}
	imgs.Each(func(key string, img image.Image) {
		l.images[key] = ebiten.NewImageFromImage(img)
	})
	return l
}

// Image returns the image for a sprite key, or nil
func (l *Library) Image(key string) *ebiten.Image {
	return l.images[key]
}

// Load builds the library described by cfg. An empty cfg.Dir selects the
// procedural images and the built-in font. A missing font file falls back
// to the built-in font; missing images are an error.
func Load(cfg config.AssetsConfig, explosionFrames int) (*Library, error) {
	if cfg.Dir == "" {
		face, err := DefaultFont(cfg.FontSize)
		if err != nil {
			return nil, err
		}
		log.Printf("[Assets] Using procedural sprites (%d explosion frames)", explosionFrames)
		return NewLibrary(Procedural(explosionFrames), face), nil
	}

	fsys := os.DirFS(cfg.Dir)
	imgs, err := LoadImages(fsys, explosionFrames)
	if err != nil {
		return nil, fmt.Errorf("failed to load images from %s: %w", cfg.Dir, err)
	}

	face, err := LoadFont(fsys, cfg.Font, cfg.FontSize)
	if errors.Is(err, ErrMissingAsset) {
		log.Printf("[Assets] Warning: %v, using built-in font", err)
		face, err = DefaultFont(cfg.FontSize)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[Assets] Loaded sprites from %s", cfg.Dir)
	return NewLibrary(imgs, face), nil
}

// LoadFont reads a TrueType/OpenType font from fsys
func LoadFont(fsys fs.FS, name string, size float64) (*text.GoTextFace, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: no font configured", ErrMissingAsset)
	}
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", name, err)
	}
	return newFace(name, data, size)
}

// DefaultFont returns Go Regular at the given size
func DefaultFont(size float64) (*text.GoTextFace, error) {
	return newFace("goregular", goregular.TTF, size)
}

func newFace(name string, data []byte, size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
	}
	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}
