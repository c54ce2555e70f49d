package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/younwookim/spaceshooter/internal/application/system"
)

// ErrNoFrames is returned for replays without recorded frames
var ErrNoFrames = errors.New("replay has no frames")

// Replayer handles input playback from recorded data.
// It drives its own clock so timers fire on the recorded frames.
type Replayer struct {
	data  ReplayData
	frame int
	clock *system.ManualClock
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
		clock: system.NewManualClock(time.Duration(data.StartAt)),
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads and checks replay data
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q (want %q)", data.Version, Version)
	}
	if len(data.Frames) == 0 {
		return nil, ErrNoFrames
	}
	return &data, nil
}

// Encode writes data as indented JSON
func Encode(w io.Writer, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes data to filename through a temporary file in the same
// directory, so an interrupted save never leaves a truncated replay.
func Save(filename string, data ReplayData) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".replay-*.json")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Encode(tmp, data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// Next returns the input for the current frame and advances.
// The replay clock jumps to the frame's recorded timestamp.
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	r.clock.Set(fi.Time())

	return fi.Input(), true
}

// GetInput implements system.InputSource. Past the end it returns idle input.
func (r *Replayer) GetInput() system.InputState {
	in, _ := r.Next()
	return in
}

// Clock returns the clock driven by the recorded timestamps
func (r *Replayer) Clock() *system.ManualClock {
	return r.clock
}

// Done reports whether every frame was played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.clock = system.NewManualClock(time.Duration(r.data.StartAt))
}

// CreateTestReplayData creates replay data for testing (idle player at 60 fps)
func CreateTestReplayData(frames int) ReplayData {
	const step = time.Second / 60
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F: i,
			T: int64(time.Duration(i+1) * step),
		}
	}

	return data
}
