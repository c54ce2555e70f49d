package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// InputState holds the input of one frame
type InputState struct {
	Left        bool
	Right       bool
	Up          bool
	Down        bool
	Fire        bool // fire key held
	FirePressed bool // fire key went down this frame
	Confirm     bool // restart prompt accepted this frame
	Quit        bool
	Debug       bool // toggle the bounds overlay
	Save        bool // save the current recording
}

// Controls projects the state onto what entities react to
func (s InputState) Controls() entity.Controls {
	return entity.Controls{
		Left:        s.Left,
		Right:       s.Right,
		Up:          s.Up,
		Down:        s.Down,
		FirePressed: s.FirePressed,
	}
}

// InputSource produces one InputState per frame
type InputSource interface {
	GetInput() InputState
}

// InputSystem reads the keyboard through ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	firePressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	return InputState{
		Left:        anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:       anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:          anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:        anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Fire:        ebiten.IsKeyPressed(ebiten.KeySpace),
		FirePressed: firePressed,
		Confirm:     firePressed || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed(),
		Debug:       inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Save:        inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
