package entity

import "github.com/go-gl/mathgl/mgl64"

// LayerMask is a bitset of collision layers.
type LayerMask uint32

const (
	LayerDefault LayerMask = 1 << iota
	LayerGround
	LayerProp

	// AllLayers matches every layer.
	AllLayers LayerMask = ^LayerMask(0)
)

// Has reports whether m shares any layer with other.
func (m LayerMask) Has(other LayerMask) bool {
	return m&other != 0
}

// ParseLayer maps a layer name from config to its mask.
// Unknown names fall back to LayerDefault.
func ParseLayer(name string) LayerMask {
	switch name {
	case "ground":
		return LayerGround
	case "prop":
		return LayerProp
	default:
		return LayerDefault
	}
}

// RaycastHit describes a ray intersection.
type RaycastHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Layer    LayerMask
}

// ModeFlags are the booleans the classifier reads. The ability flags are
// written by ability collaborators; CrouchHeld and SprintHeld are polled input.
type ModeFlags struct {
	IsDashing     bool
	IsWallRunning bool
	IsSliding     bool
	CrouchHeld    bool
	SprintHeld    bool
}

// KinematicSample holds per-tick facts about the body and the ground below it.
// SlopeNormal and SlopeAngle are only meaningful when OnSlope is true.
type KinematicSample struct {
	IsGrounded  bool
	OnSlope     bool
	SlopeNormal mgl64.Vec3
	SlopeAngle  float64 // degrees
	Velocity    mgl64.Vec3
}
