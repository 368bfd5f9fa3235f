package entity

import "github.com/go-gl/mathgl/mgl64"

// Up and Down are the world vertical axis directions.
var (
	Up   = mgl64.Vec3{0, 1, 0}
	Down = mgl64.Vec3{0, -1, 0}
)

// ForceMode selects how AddForce changes a body's velocity.
type ForceMode int

const (
	// ForceContinuous is a force applied over the next physics step (dv = F/m * dt).
	ForceContinuous ForceMode = iota
	// ForceImpulse is an instantaneous change of momentum (dv = F/m).
	ForceImpulse
)

// String returns the string representation of the force mode
func (m ForceMode) String() string {
	switch m {
	case ForceContinuous:
		return "Force"
	case ForceImpulse:
		return "Impulse"
	default:
		return "Unknown"
	}
}

// RigidBody is a point-mass body with a vertical capsule extent.
// Position is the body center. Forces queued with AddForce are consumed
// by the next physics step; impulses change velocity immediately.
type RigidBody struct {
	Pos  mgl64.Vec3
	Vel  mgl64.Vec3
	Scl  mgl64.Vec3
	Mass float64
	Drag float64

	// Height is the unscaled body height; the effective height is Height * Scl.Y().
	Height     float64
	UseGravity bool
	Grounded   bool // contact flag written by the physics step

	pendingForce mgl64.Vec3
}

// NewRigidBody creates a body standing at pos with unit scale and gravity enabled.
func NewRigidBody(pos mgl64.Vec3, height, mass float64) *RigidBody {
	if mass <= 0 {
		mass = 1
	}
	return &RigidBody{
		Pos:        pos,
		Scl:        mgl64.Vec3{1, 1, 1},
		Mass:       mass,
		Height:     height,
		UseGravity: true,
	}
}

// Position returns the body center.
func (b *RigidBody) Position() mgl64.Vec3 { return b.Pos }

// Velocity returns the current linear velocity.
func (b *RigidBody) Velocity() mgl64.Vec3 { return b.Vel }

// SetVelocity overwrites the linear velocity.
func (b *RigidBody) SetVelocity(v mgl64.Vec3) { b.Vel = v }

// Scale returns the local scale.
func (b *RigidBody) Scale() mgl64.Vec3 { return b.Scl }

// SetScale overwrites the local scale.
func (b *RigidBody) SetScale(s mgl64.Vec3) { b.Scl = s }

// SetUseGravity toggles gravity for subsequent steps.
func (b *RigidBody) SetUseGravity(on bool) { b.UseGravity = on }

// SetDrag sets the linear drag coefficient.
func (b *RigidBody) SetDrag(drag float64) { b.Drag = drag }

// AddForce applies f according to mode.
func (b *RigidBody) AddForce(f mgl64.Vec3, mode ForceMode) {
	switch mode {
	case ForceImpulse:
		b.Vel = b.Vel.Add(f.Mul(1 / b.Mass))
	default:
		b.pendingForce = b.pendingForce.Add(f)
	}
}

// PendingForce returns the force accumulated since the last step.
func (b *RigidBody) PendingForce() mgl64.Vec3 { return b.pendingForce }

// ConsumeForce returns the accumulated force and clears it.
func (b *RigidBody) ConsumeForce() mgl64.Vec3 {
	f := b.pendingForce
	b.pendingForce = mgl64.Vec3{}
	return f
}

// HalfExtent returns half of the scaled body height.
func (b *RigidBody) HalfExtent() float64 {
	return b.Height * b.Scl.Y() * 0.5
}

// Feet returns the lowest point of the body.
func (b *RigidBody) Feet() mgl64.Vec3 {
	return b.Pos.Sub(mgl64.Vec3{0, b.HalfExtent(), 0})
}
