// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/stride/internal/application/scene"
)

// maxStepsPerFrame bounds the physics catch-up after a stall.
const maxStepsPerFrame = 8

// Game implements ebiten.Game and manages Scene transitions.
// Each frame it runs as many fixed physics steps as the accumulated frame
// time allows, then the scene's frame update.
type Game struct {
	current   scene.Scene
	screenW   int
	screenH   int
	dt        float64
	fixedStep float64
	acc       float64
}

// New creates a new Game with the given initial scene and physics step.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, fixedStep float64) *Game {
	if fixedStep <= 0 {
		fixedStep = 1.0 / 50.0
	}
	g := &Game{
		current:   initialScene,
		screenW:   screenW,
		screenH:   screenH,
		dt:        1.0 / 60.0, // Default to 60 FPS
		fixedStep: fixedStep,
	}
	g.current.OnEnter()
	return g
}

// Update runs the physics steps and the frame update for the current scene
// and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.acc += g.dt
	steps := 0
	for g.acc >= g.fixedStep && steps < maxStepsPerFrame {
		g.current.FixedUpdate(g.fixedStep)
		g.acc -= g.fixedStep
		steps++
	}
	if steps == maxStepsPerFrame {
		g.acc = 0
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		g.acc = 0
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
