package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// Force factors applied to the effective speed.
const (
	slopeForceFactor   = 20.0
	flatForceFactor    = 10.0
	slopeAdhesionForce = 80.0
	crouchDownImpulse  = 5.0
)

// Body is the rigid body the controller drives.
type Body interface {
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	AddForce(f mgl64.Vec3, mode entity.ForceMode)
	SetUseGravity(on bool)
	SetDrag(drag float64)
	Scale() mgl64.Vec3
	SetScale(s mgl64.Vec3)
}

// Orientation is the reference facing for input, usually the camera yaw.
type Orientation interface {
	Forward() mgl64.Vec3
	Right() mgl64.Vec3
}

// LocomotionIntegrator turns input and speed into forces on the body.
// It also owns the jump gate and the crouch scale.
type LocomotionIntegrator struct {
	cfg       *config.ControllerConfig
	body      Body
	orient    Orientation
	probe     *EnvironmentProbe
	scheduler Scheduler

	readyToJump  bool
	exitingSlope bool
	startYScale  float64
}

// NewLocomotionIntegrator creates an integrator ready to jump.
func NewLocomotionIntegrator(cfg *config.ControllerConfig, body Body, orient Orientation, probe *EnvironmentProbe, scheduler Scheduler) *LocomotionIntegrator {
	return &LocomotionIntegrator{
		cfg:         cfg,
		body:        body,
		orient:      orient,
		probe:       probe,
		scheduler:   scheduler,
		readyToJump: true,
		startYScale: body.Scale().Y(),
	}
}

// MoveDirection blends the facing axes by input. The result is not normalized.
func (li *LocomotionIntegrator) MoveDirection(horizontal, vertical float64) mgl64.Vec3 {
	return li.orient.Forward().Mul(vertical).Add(li.orient.Right().Mul(horizontal))
}

// ApplyMovement adds this physics step's movement forces.
// The slope and ground branches are independent and can both fire.
func (li *LocomotionIntegrator) ApplyMovement(horizontal, vertical, speed float64, grounded bool) {
	dir := li.MoveDirection(horizontal, vertical)
	slope, onSlope := li.probe.ProbeSlope(li.body.Position())

	if onSlope && !li.exitingSlope {
		li.body.AddForce(ProjectOnPlane(dir, slope.Normal).Mul(speed*slopeForceFactor), entity.ForceContinuous)

		if li.body.Velocity().Y() > 0 {
			li.body.AddForce(entity.Down.Mul(slopeAdhesionForce), entity.ForceContinuous)
		}
	}

	if grounded {
		li.body.AddForce(NormalizeOrZero(dir).Mul(speed*flatForceFactor), entity.ForceContinuous)
	} else {
		li.body.AddForce(NormalizeOrZero(dir).Mul(speed*flatForceFactor*li.cfg.Movement.AirMultiplier), entity.ForceContinuous)
	}

	li.body.SetUseGravity(!onSlope)
}

// ClampSpeed limits the current velocity to speed. On a slope the full
// velocity is limited; elsewhere only the planar part is, and the vertical
// component is kept.
func (li *LocomotionIntegrator) ClampSpeed(speed float64) {
	vel := li.body.Velocity()

	if _, onSlope := li.probe.ProbeSlope(li.body.Position()); onSlope && !li.exitingSlope {
		if vel.Len() > speed {
			li.body.SetVelocity(NormalizeOrZero(vel).Mul(speed))
		}
		return
	}

	flat := mgl64.Vec3{vel.X(), 0, vel.Z()}
	if flat.Len() > speed {
		limited := NormalizeOrZero(flat).Mul(speed)
		li.body.SetVelocity(mgl64.Vec3{limited.X(), vel.Y(), limited.Z()})
	}
}

// TryJump jumps when jump is held, the cooldown has expired and the body is
// grounded. It reports whether a jump happened.
func (li *LocomotionIntegrator) TryJump(held, grounded bool) bool {
	if !held || !li.readyToJump || !grounded {
		return false
	}

	li.readyToJump = false
	li.exitingSlope = true

	vel := li.body.Velocity()
	li.body.SetVelocity(mgl64.Vec3{vel.X(), 0, vel.Z()})
	li.body.AddForce(entity.Up.Mul(li.cfg.Jump.Force), entity.ForceImpulse)

	li.scheduler.ScheduleOnce(li.cfg.Jump.Cooldown, li.resetJump)
	return true
}

func (li *LocomotionIntegrator) resetJump() {
	li.readyToJump = true
	li.exitingSlope = false
}

// HandleCrouch shrinks the body on press and restores it on release.
func (li *LocomotionIntegrator) HandleCrouch(pressed, released bool) {
	if pressed {
		s := li.body.Scale()
		li.body.SetScale(mgl64.Vec3{s.X(), li.cfg.Crouch.Scale, s.Z()})
		li.body.AddForce(entity.Down.Mul(crouchDownImpulse), entity.ForceImpulse)
	}

	if released {
		s := li.body.Scale()
		li.body.SetScale(mgl64.Vec3{s.X(), li.startYScale, s.Z()})
	}
}

// ReadyToJump reports whether the jump cooldown has expired.
func (li *LocomotionIntegrator) ReadyToJump() bool { return li.readyToJump }

// ExitingSlope reports whether slope handling is suppressed after a jump.
func (li *LocomotionIntegrator) ExitingSlope() bool { return li.exitingSlope }

// ProjectOnPlane removes the component of v along the plane normal n.
func ProjectOnPlane(v, n mgl64.Vec3) mgl64.Vec3 {
	nn := n.Dot(n)
	if nn < 1e-15 {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n) / nn))
}

// NormalizeOrZero returns the unit vector of v, or zero for tiny vectors.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-5 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
