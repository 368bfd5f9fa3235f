package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the input sampled for one frame.
// Axes are in [-1, 1]; Horizontal is strafe and Vertical is forward.
type InputState struct {
	Horizontal float64
	Vertical   float64
	Turn       float64 // yaw input, -1 left .. 1 right

	Jump           bool // held
	JumpPressed    bool
	Sprint         bool // held
	Crouch         bool // held
	CrouchPressed  bool
	CrouchReleased bool

	// Ability inputs; the controller itself never reads these.
	Dash    bool // pressed
	Slide   bool // held
	WallRun bool // held
}

// KeyBindings maps actions to keys.
type KeyBindings struct {
	Forward, Back, Left, Right ebiten.Key
	TurnLeft, TurnRight        ebiten.Key
	Jump, Sprint, Crouch       ebiten.Key
	Dash, Slide, WallRun       ebiten.Key
}

// DefaultKeyBindings returns WASD movement with arrow-key turning.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward:   ebiten.KeyW,
		Back:      ebiten.KeyS,
		Left:      ebiten.KeyA,
		Right:     ebiten.KeyD,
		TurnLeft:  ebiten.KeyArrowLeft,
		TurnRight: ebiten.KeyArrowRight,
		Jump:      ebiten.KeySpace,
		Sprint:    ebiten.KeyShiftLeft,
		Crouch:    ebiten.KeyControlLeft,
		Dash:      ebiten.KeyE,
		Slide:     ebiten.KeyQ,
		WallRun:   ebiten.KeyR,
	}
}

// InputSystem polls ebiten for player input
type InputSystem struct {
	keys KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(keys KeyBindings) *InputSystem {
	return &InputSystem{keys: keys}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	k := s.keys
	return InputState{
		Horizontal:     axis(ebiten.IsKeyPressed(k.Left), ebiten.IsKeyPressed(k.Right)),
		Vertical:       axis(ebiten.IsKeyPressed(k.Back), ebiten.IsKeyPressed(k.Forward)),
		Turn:           axis(ebiten.IsKeyPressed(k.TurnLeft), ebiten.IsKeyPressed(k.TurnRight)),
		Jump:           ebiten.IsKeyPressed(k.Jump),
		JumpPressed:    inpututil.IsKeyJustPressed(k.Jump),
		Sprint:         ebiten.IsKeyPressed(k.Sprint),
		Crouch:         ebiten.IsKeyPressed(k.Crouch),
		CrouchPressed:  inpututil.IsKeyJustPressed(k.Crouch),
		CrouchReleased: inpututil.IsKeyJustReleased(k.Crouch),
		Dash:           inpututil.IsKeyJustPressed(k.Dash),
		Slide:          ebiten.IsKeyPressed(k.Slide),
		WallRun:        ebiten.IsKeyPressed(k.WallRun),
	}
}

// axis folds a negative/positive key pair into -1, 0 or 1.
func axis(negative, positive bool) float64 {
	v := 0.0
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}
