// Package scene defines the Scene interface for game screens.
//
// The playing field is the only screen today; the interface keeps the frame
// driver independent of it so other screens can be added without touching
// the driver.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen driven by the game loop.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick.
	// dt is the delta time in seconds (1/TPS).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup such as flushing a recording.
	OnExit()

	// Halted reports that the scene has stopped simulating for good. The
	// driver stops calling Update and keeps drawing the last frame.
	Halted() bool
}
