package replay

import (
	"time"

	"github.com/younwookim/spaceshooter/internal/application/system"
)

// Version is the replay file format version
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int   `json:"f"`            // Frame number
	T  int64 `json:"t"`            // Session clock (ns)
	L  bool  `json:"l,omitempty"`  // Left
	R  bool  `json:"r,omitempty"`  // Right
	U  bool  `json:"u,omitempty"`  // Up
	D  bool  `json:"d,omitempty"`  // Down
	Fi bool  `json:"fi,omitempty"` // Fire held
	FP bool  `json:"fp,omitempty"` // FirePressed
	C  bool  `json:"c,omitempty"`  // Confirm
}

// NewFrameInput captures the gameplay part of an input state
func NewFrameInput(frame int, now time.Duration, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		T:  int64(now),
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		Fi: in.Fire,
		FP: in.FirePressed,
		C:  in.Confirm,
	}
}

// Input converts the record back into an input state
func (f FrameInput) Input() system.InputState {
	return system.InputState{
		Left:        f.L,
		Right:       f.R,
		Up:          f.U,
		Down:        f.D,
		Fire:        f.Fi,
		FirePressed: f.FP,
		Confirm:     f.C,
	}
}

// Time returns the recorded session timestamp
func (f FrameInput) Time() time.Duration {
	return time.Duration(f.T)
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartAt   int64        `json:"startAt"` // Session clock at start (ns)
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
