package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
	assert.Equal(t, 720, cfg.Display.ScreenHeight)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  title: Custom\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Custom", cfg.Display.Title)
	assert.Equal(t, config.Default().Display.ScreenWidth, cfg.Display.ScreenWidth, "unset keys keep defaults")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(42), resolveSeed(42))
	assert.NotZero(t, resolveSeed(0))
}

func TestLoadSounds_Synthesized(t *testing.T) {
	cfg := config.Default()

	bank, err := loadSounds(cfg)
	require.NoError(t, err)

	clip, ok := bank.Get(entity.SoundLaser)
	require.True(t, ok)
	assert.NotEmpty(t, clip.Data)
}
