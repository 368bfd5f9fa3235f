package state

// MovementMode is the movement classification reported each frame.
// It is derived from flags and ground facts; nothing reads it back as input.
type MovementMode int

const (
	ModeWalking MovementMode = iota
	ModeSprinting
	ModeWallRunning
	ModeCrouching
	ModeSliding
	ModeDashing
	ModeAirborne
)

// String returns the string representation of the movement mode
func (m MovementMode) String() string {
	switch m {
	case ModeWalking:
		return "Walking"
	case ModeSprinting:
		return "Sprinting"
	case ModeWallRunning:
		return "WallRunning"
	case ModeCrouching:
		return "Crouching"
	case ModeSliding:
		return "Sliding"
	case ModeDashing:
		return "Dashing"
	case ModeAirborne:
		return "Airborne"
	default:
		return "Unknown"
	}
}

// Grounded reports whether the mode can only be produced while touching ground.
func (m MovementMode) Grounded() bool {
	return m == ModeWalking || m == ModeSprinting
}
