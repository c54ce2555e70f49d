package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = 44100

func TestSynthClips_Format(t *testing.T) {
	tests := []struct {
		name     string
		synth    func(int) []byte
		duration float64
	}{
		{"laser", SynthLaser, 0.18},
		{"explosion", SynthExplosion, 0.6},
		{"music", SynthMusic, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := tt.synth(testRate)

			require.NotEmpty(t, clip)
			assert.Zero(t, len(clip)%frameSize, "whole stereo frames")
			assert.InDelta(t, tt.duration, Duration(clip, testRate), 0.001)
		})
	}
}

func TestSynthClips_StereoChannelsMatch(t *testing.T) {
	clip := SynthLaser(testRate)

	for i := 0; i+frameSize <= len(clip); i += frameSize * 97 {
		left := binary.LittleEndian.Uint16(clip[i:])
		right := binary.LittleEndian.Uint16(clip[i+bytesPerSample:])
		assert.Equal(t, left, right)
	}
}

func TestSynthClips_NotSilent(t *testing.T) {
	peak := func(clip []byte) int16 {
		var m int16
		for i := 0; i+frameSize <= len(clip); i += frameSize {
			v := int16(binary.LittleEndian.Uint16(clip[i:]))
			if v < 0 {
				v = -v
			}
			if v > m {
				m = v
			}
		}
		return m
	}

	assert.Greater(t, peak(SynthLaser(testRate)), int16(1000))
	assert.Greater(t, peak(SynthExplosion(testRate)), int16(1000))
	assert.Greater(t, peak(SynthMusic(testRate)), int16(1000))
}

func TestSynthExplosion_Deterministic(t *testing.T) {
	assert.Equal(t, SynthExplosion(testRate), SynthExplosion(testRate))
}

func TestDuration_InvalidRate(t *testing.T) {
	assert.Equal(t, 0.0, Duration(make([]byte, 400), 0))
}
