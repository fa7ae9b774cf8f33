// Package game provides the ebiten loop that hosts the current scene.
package game

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/locomotion/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   int
	logger  *slog.Logger
}

// New creates a new Game with the given initial scene ticking at tps.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int, logger *slog.Logger) *Game {
	dt := 1.0 / 60.0
	if tps > 0 {
		dt = 1.0 / float64(tps)
	}

	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      dt,
		logger:  logger,
	}
	g.current.OnEnter()
	return g
}

// Update ticks the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	g.ticks++
	if errors.Is(err, scene.ErrQuit) {
		g.logger.Info("quit", "ticks", g.ticks)
		g.current.OnExit()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.logger.Debug("scene transition", "tick", g.ticks)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen size.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the fixed tick length in seconds
func (g *Game) DT() float64 {
	return g.dt
}

// Ticks returns how many updates have run
func (g *Game) Ticks() int {
	return g.ticks
}
