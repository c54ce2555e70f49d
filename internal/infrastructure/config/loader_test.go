package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
	assert.Equal(t, 720, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.TPS)
	assert.Equal(t, 300.0, cfg.Player.Speed)
	assert.Equal(t, 400, cfg.Player.CooldownMs)
	assert.Equal(t, 3000, cfg.Meteor.LifetimeMs)
	assert.Equal(t, 21, cfg.Explosion.Frames)
	assert.Equal(t, ScoreModeFrame, cfg.Scoring.Mode)
	assert.Equal(t, 200.0, cfg.Scoring.HitBonus)
}

func TestLoader_EmbeddedMatchesDefault(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte("player:\n  speed: 450\nscoring:\n  mode: time\n")},
	}
	loader := NewFSLoader(fsys, "configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 450.0, cfg.Player.Speed)
	assert.Equal(t, 400, cfg.Player.CooldownMs, "unset keys keep defaults")
	assert.Equal(t, ScoreModeTime, cfg.Scoring.Mode)
	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "configs")

	_, err := loader.Load("nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoader_MalformedYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte("player: [not, a, map")},
	}

	_, err := NewFSLoader(fsys, "configs").LoadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoader_InvalidValues(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte("spawn:\n  intervalMs: 0\n")},
	}

	_, err := NewFSLoader(fsys, "configs").LoadAll()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewFileLoader(t *testing.T) {
	loader, name := NewFileLoader("../../../cmd/game/configs/game.yaml")

	cfg, err := loader.Load(name)
	require.NoError(t, err)
	assert.Equal(t, "game.yaml", name)
	assert.Equal(t, "Space Shooter", cfg.Display.Title)
}
