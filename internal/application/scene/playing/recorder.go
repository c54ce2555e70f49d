package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/spaceshooter/internal/application/replay"
	"github.com/younwookim/spaceshooter/internal/application/system"
)

// framesPerMinute sizes the initial frame buffer
const framesPerMinute = 60 * 60

// Recorder collects the gameplay input of one run, restarts included
type Recorder struct {
	data    replay.ReplayData
	stopped bool
}

// NewRecorder creates a recorder. seed and startAt must be the values the
// session was created and started with.
func NewRecorder(seed int64, startAt time.Duration) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Seed:      seed,
			StartAt:   int64(startAt),
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, framesPerMinute),
		},
	}
}

// RecordFrame appends the input and clock reading of the next frame
func (r *Recorder) RecordFrame(now time.Duration, input system.InputState) {
	if r.stopped {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.NewFrameInput(len(r.data.Frames), now, input))
}

// Save writes everything recorded so far. Recording continues afterwards.
func (r *Recorder) Save(filename string) error {
	return replay.Save(filename, r.data)
}

// Stop ends recording; frames already recorded can still be saved
func (r *Recorder) Stop() {
	r.stopped = true
}

// IsRecording reports whether frames are still appended
func (r *Recorder) IsRecording() bool {
	return !r.stopped
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the recorded data
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename names a replay after the current local time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
