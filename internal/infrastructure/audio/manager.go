package audio

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// maxVoices caps simultaneous copies of one sound effect
const maxVoices = 8

// Manager plays clips from a bank.
// A Manager without an audio context, or a muted one, plays nothing.
type Manager struct {
	ctx    *audio.Context
	bank   *Bank
	muted  bool
	voices map[entity.SoundID][]*audio.Player

	music   *audio.Player
	musicID entity.SoundID
}

// NewManager creates a manager. ctx may be nil (headless).
func NewManager(ctx *audio.Context, bank *Bank, muted bool) *Manager {
	return &Manager{
		ctx:     ctx,
		bank:    bank,
		muted:   muted,
		voices:  make(map[entity.SoundID][]*audio.Player),
		musicID: -1,
	}
}

func (m *Manager) enabled() bool {
	return m != nil && m.ctx != nil && m.bank != nil && !m.muted
}

// Play starts a sound effect (implements entity.SoundPlayer).
// Overlapping calls layer up to maxVoices copies.
func (m *Manager) Play(id entity.SoundID) {
	if !m.enabled() {
		return
	}
	clip, ok := m.bank.Get(id)
	if !ok {
		log.Printf("[Audio] Warning: no clip for %s", id)
		return
	}

	player := m.voice(id, clip)
	if player == nil {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("[Audio] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
}

// voice returns an idle player for id, creating one while under the cap.
// When every voice is busy the oldest one is restarted.
func (m *Manager) voice(id entity.SoundID, clip Clip) *audio.Player {
	voices := m.voices[id]
	for _, p := range voices {
		if !p.IsPlaying() {
			return p
		}
	}
	if len(voices) >= maxVoices {
		if len(voices) == 0 {
			return nil
		}
		return voices[0]
	}

	p := m.ctx.NewPlayerFromBytes(clip.Data)
	p.SetVolume(clip.Volume)
	m.voices[id] = append(voices, p)
	return p
}

// PlayMusic loops a music clip. Only one track plays at a time.
func (m *Manager) PlayMusic(id entity.SoundID) bool {
	if !m.enabled() {
		return false
	}
	if m.musicID == id && m.music != nil && m.music.IsPlaying() {
		return true
	}
	m.StopMusic()

	clip, ok := m.bank.Get(id)
	if !ok {
		log.Printf("[Audio] Warning: no clip for %s", id)
		return false
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(clip.Data), int64(len(clip.Data)))
	player, err := m.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("[Audio] Warning: Failed to create music player %s: %v", id, err)
		return false
	}
	player.SetVolume(clip.Volume)
	player.Play()

	m.music = player
	m.musicID = id
	log.Printf("[Audio] Playing music: %s (volume: %.2f)", id, clip.Volume)
	return true
}

// StopMusic stops the current track
func (m *Manager) StopMusic() {
	if m == nil || m.music == nil {
		return
	}
	m.music.Pause()
	m.music = nil
	m.musicID = -1
}

// SetMuted mutes or unmutes. Muting also stops the music.
func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	if muted {
		m.StopMusic()
	}
}

// Muted reports whether the manager is muted
func (m *Manager) Muted() bool { return m.muted }
