package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// Playback needs an audio device, so these cover the paths that must not
// touch one.

func TestManager_HeadlessIsSilent(t *testing.T) {
	m := NewManager(nil, SynthBank(testAudioConfig()), false)

	assert.NotPanics(t, func() {
		m.Play(entity.SoundLaser)
		m.StopMusic()
	})
	assert.False(t, m.PlayMusic(entity.MusicGame))
}

func TestManager_ImplementsSoundPlayer(t *testing.T) {
	var _ entity.SoundPlayer = NewManager(nil, nil, true)
}

func TestManager_Mute(t *testing.T) {
	m := NewManager(nil, SynthBank(testAudioConfig()), false)
	assert.False(t, m.Muted())

	m.SetMuted(true)

	assert.True(t, m.Muted())
	assert.False(t, m.PlayMusic(entity.MusicGame))
}

func TestManager_NilIsSafe(t *testing.T) {
	var m *Manager

	assert.NotPanics(t, func() {
		m.Play(entity.SoundExplosion)
		m.StopMusic()
	})
}
