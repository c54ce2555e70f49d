package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// Clip is decoded PCM plus how to play it
type Clip struct {
	Data   []byte
	Volume float64 // 0.0 ~ 1.0
	Loop   bool
}

// Bank maps sound ids to clips at one sample rate
type Bank struct {
	rate  int
	clips map[entity.SoundID]Clip
}

// NewBank creates an empty bank
func NewBank(rate int) *Bank {
	return &Bank{rate: rate, clips: make(map[entity.SoundID]Clip)}
}

// Put stores a clip
func (b *Bank) Put(id entity.SoundID, c Clip) {
	b.clips[id] = c
}

// Get returns the clip for id
func (b *Bank) Get(id entity.SoundID) (Clip, bool) {
	c, ok := b.clips[id]
	return c, ok
}

// SampleRate returns the rate every clip is encoded at
func (b *Bank) SampleRate() int { return b.rate }

type clipSpec struct {
	id     entity.SoundID
	volume float64
	loop   bool
	synth  func(rate int) []byte
}

func clipSpecs(cfg config.AudioConfig) []clipSpec {
	return []clipSpec{
		{entity.SoundLaser, cfg.LaserVolume, false, SynthLaser},
		{entity.SoundExplosion, cfg.ExplosionVolume, false, SynthExplosion},
		{entity.MusicGame, cfg.MusicVolume, true, SynthMusic},
	}
}

// SynthBank fills a bank with synthesized clips only
func SynthBank(cfg config.AudioConfig) *Bank {
	b := NewBank(cfg.SampleRate)
	for _, s := range clipSpecs(cfg) {
		b.Put(s.id, Clip{Data: s.synth(cfg.SampleRate), Volume: s.volume, Loop: s.loop})
	}
	return b
}

// supported extensions in lookup order
var clipExts = []string{".wav", ".ogg", ".mp3"}

// LoadBank decodes audio/<name>.{wav,ogg,mp3} from fsys for every sound.
// Sounds without a file are synthesized; a file that fails to decode is an error.
func LoadBank(fsys fs.FS, cfg config.AudioConfig) (*Bank, error) {
	b := NewBank(cfg.SampleRate)
	for _, s := range clipSpecs(cfg) {
		data, name, err := readClip(fsys, s.id.String())
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Audio] No file for %s, using synthesized clip", s.id)
			b.Put(s.id, Clip{Data: s.synth(cfg.SampleRate), Volume: s.volume, Loop: s.loop})
			continue
		}
		if err != nil {
			return nil, err
		}

		pcm, err := Decode(name, data, cfg.SampleRate)
		if err != nil {
			return nil, err
		}
		b.Put(s.id, Clip{Data: pcm, Volume: s.volume, Loop: s.loop})
	}
	return b, nil
}

func readClip(fsys fs.FS, base string) ([]byte, string, error) {
	for _, ext := range clipExts {
		name := path.Join("audio", base+ext)
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, name, fmt.Errorf("failed to read audio file %s: %w", name, err)
		}
		return data, name, nil
	}
	return nil, "", fs.ErrNotExist
}

// Decode converts a wav/ogg/mp3 file into 16-bit stereo PCM at rate
func Decode(name string, data []byte, rate int) ([]byte, error) {
	r := bytes.NewReader(data)

	var stream io.Reader
	var err error
	switch ext := path.Ext(name); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(rate, r)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(rate, r)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(rate, r)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", name, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio %s: %w", name, err)
	}
	return pcm, nil
}
