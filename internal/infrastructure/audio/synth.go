// Package audio plays the game's sound effects and music through ebiten's
// audio context. Clips come from files in an asset directory or are
// synthesized when no file is available.
package audio

import (
	"encoding/binary"
	"math"
)

// Clip format: 16-bit signed little endian stereo PCM
const (
	channels       = 2
	bytesPerSample = 2
	frameSize      = channels * bytesPerSample
)

// pcm accumulates mono samples in [-1, 1] and encodes them as stereo frames
type pcm struct {
	rate    int
	samples []float64
}

func newPCM(rate int, d float64) *pcm {
	return &pcm{rate: rate, samples: make([]float64, int(float64(rate)*d))}
}

func (p *pcm) bytes() []byte {
	out := make([]byte, len(p.samples)*frameSize)
	for i, s := range p.samples {
		v := int16(math.Round(math.Max(-1, math.Min(1, s)) * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*frameSize:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*frameSize+bytesPerSample:], uint16(v))
	}
	return out
}

// SynthLaser is a short descending square-ish zap
func SynthLaser(rate int) []byte {
	const d = 0.18
	p := newPCM(rate, d)
	phase := 0.0
	for i := range p.samples {
		t := float64(i) / float64(rate)
		freq := 1400 - 1100*t/d
		phase += 2 * math.Pi * freq / float64(rate)
		env := 1 - t/d
		p.samples[i] = 0.5 * env * math.Tanh(3*math.Sin(phase))
	}
	return p.bytes()
}

// SynthExplosion is filtered noise with an exponential decay.
// The noise generator is seeded so every call returns the same clip.
func SynthExplosion(rate int) []byte {
	const d = 0.6
	p := newPCM(rate, d)
	seed := uint32(0x2545f491)
	low := 0.0
	for i := range p.samples {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		noise := float64(seed)/math.MaxUint32*2 - 1
		low += (noise - low) * 0.08
		t := float64(i) / float64(rate)
		p.samples[i] = 0.9 * math.Exp(-6*t) * low * 4
	}
	return p.bytes()
}

// musicNotes is a minor arpeggio, one note per step (Hz)
var musicNotes = []float64{220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94}

// SynthMusic is a seamless arpeggio loop
func SynthMusic(rate int) []byte {
	const step = 0.25
	p := newPCM(rate, step*float64(len(musicNotes)))
	perNote := int(float64(rate) * step)
	for i := range p.samples {
		n := i / perNote
		if n >= len(musicNotes) {
			n = len(musicNotes) - 1
		}
		t := float64(i%perNote) / float64(rate)
		env := math.Min(1, t*40) * math.Exp(-4*t)
		freq := musicNotes[n]
		p.samples[i] = 0.35 * env * (math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t))
	}
	return p.bytes()
}

// Duration returns the play time of a clip in seconds
func Duration(clip []byte, rate int) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(len(clip)/frameSize) / float64(rate)
}
