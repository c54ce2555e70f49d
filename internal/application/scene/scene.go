// Package scene defines the Scene interface for game screens.
//
// The shooter has a single gameplay scene whose Playing/GameOver modes
// live inside the session; further screens would implement Scene too.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick.
	// dt is the nominal tick length in seconds (1/TPS); scenes that keep
	// their own clock may ignore it.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returning ebiten.Termination ends the game without an error.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including on shutdown.
	OnExit()
}
