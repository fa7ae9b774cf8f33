// Package scene defines the Scene interface for the sandbox screens.
//
// A screen owns its simulation and its rendering; the game loop only
// forwards ticks and draws to whichever scene is current.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the program cleanly
var ErrQuit = errors.New("quit requested")

// Scene represents a screen of the sandbox.
//
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Returns the next scene to switch to, or nil to stay.
	// Returning ErrQuit ends the program; any other error is fatal.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced.
	OnExit()
}
