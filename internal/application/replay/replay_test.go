package replay

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/spaceshooter/internal/application/system"
)

func TestFrameInput_RoundTripsInputState(t *testing.T) {
	in := system.InputState{
		Left:        true,
		Up:          true,
		Fire:        true,
		FirePressed: true,
		Confirm:     true,
		Quit:        true, // not recorded
		Debug:       true, // not recorded
	}

	fi := NewFrameInput(7, 250*time.Millisecond, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, 250*time.Millisecond, fi.Time())
	got := fi.Input()
	assert.True(t, got.Left)
	assert.True(t, got.Up)
	assert.True(t, got.Fire)
	assert.True(t, got.FirePressed)
	assert.True(t, got.Confirm)
	assert.False(t, got.Quit)
	assert.False(t, got.Debug)
}

func TestFrameInput_JSONOmitsIdleKeys(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, T: 50, R: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"t":50,"r":true}`, string(data))
}

func TestReplayer_Next(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    1,
		StartAt: int64(10 * time.Millisecond),
		Frames: []FrameInput{
			{F: 0, T: int64(26 * time.Millisecond), R: true},
			{F: 1, T: int64(43 * time.Millisecond), FP: true, Fi: true},
		},
	}
	replayer := NewReplayer(data)
	assert.Equal(t, 10*time.Millisecond, replayer.Clock().Now())

	in, ok := replayer.Next()
	require.True(t, ok)
	assert.True(t, in.Right)
	assert.Equal(t, 26*time.Millisecond, replayer.Clock().Now())

	in, ok = replayer.Next()
	require.True(t, ok)
	assert.True(t, in.FirePressed)
	assert.Equal(t, 43*time.Millisecond, replayer.Clock().Now())
	assert.True(t, replayer.Done())

	_, ok = replayer.Next()
	assert.False(t, ok, "Should be at end of replay")
	assert.Equal(t, system.InputState{}, replayer.GetInput())
}

func TestReplayer_DrivesFrameClock(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3))
	fc := system.NewFrameClock(replayer.Clock())
	fc.Tick()

	for i := 0; i < 3; i++ {
		replayer.GetInput()
		_, dt := fc.Tick()
		assert.InDelta(t, 1.0/60, dt, 1e-6)
	}
}

func TestReplayer_CurrentFrameAndReset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(10))
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, int64(12345), replayer.Seed())

	for i := 0; i < 5; i++ {
		replayer.GetInput()
	}
	assert.Equal(t, 5, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.Equal(t, time.Duration(0), replayer.Clock().Now())
}

func TestReplayer_ImplementsInputSource(t *testing.T) {
	var _ system.InputSource = NewReplayer(CreateTestReplayData(1))
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(CreateTestReplayData(4)))

	data, err := Decode(&buf)

	require.NoError(t, err)
	assert.Len(t, data.Frames, 4)
	assert.Equal(t, Version, data.Version)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "malformed",
			input: "{",
			check: func(t *testing.T, err error) { assert.Contains(t, err.Error(), "failed to decode") },
		},
		{
			name:  "old version",
			input: `{"version":"1.0","frames":[{"f":0}]}`,
			check: func(t *testing.T, err error) { assert.Contains(t, err.Error(), "unsupported") },
		},
		{
			name:  "empty",
			input: `{"version":"2.0","frames":[]}`,
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNoFrames) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	raw, err := json.Marshal(CreateTestReplayData(2))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 2)

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")

	require.NoError(t, Save(path, CreateTestReplayData(3)))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file left behind")
}

func TestSave_NoFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	err := Save(path, ReplayData{Version: Version})

	assert.ErrorIs(t, err, ErrNoFrames)
	assert.NoFileExists(t, path)
}
