package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

type forceCall struct {
	F    mgl64.Vec3
	Mode entity.ForceMode
}

// recordingBody is a test double for Body. Impulses change velocity
// immediately (unit mass); continuous forces are only recorded.
type recordingBody struct {
	pos        mgl64.Vec3
	vel        mgl64.Vec3
	scale      mgl64.Vec3
	useGravity bool
	drag       float64

	forces      []forceCall
	setVelCalls []mgl64.Vec3
}

func newRecordingBody() *recordingBody {
	return &recordingBody{
		pos:        mgl64.Vec3{0, 1, 0},
		scale:      mgl64.Vec3{1, 1, 1},
		useGravity: true,
	}
}

func (b *recordingBody) Position() mgl64.Vec3 { return b.pos }
func (b *recordingBody) Velocity() mgl64.Vec3 { return b.vel }
func (b *recordingBody) SetVelocity(v mgl64.Vec3) {
	b.setVelCalls = append(b.setVelCalls, v)
	b.vel = v
}
func (b *recordingBody) AddForce(f mgl64.Vec3, mode entity.ForceMode) {
	b.forces = append(b.forces, forceCall{F: f, Mode: mode})
	if mode == entity.ForceImpulse {
		b.vel = b.vel.Add(f)
	}
}
func (b *recordingBody) SetUseGravity(on bool) { b.useGravity = on }
func (b *recordingBody) SetDrag(drag float64) { b.drag = drag }
func (b *recordingBody) Scale() mgl64.Vec3 { return b.scale }
func (b *recordingBody) SetScale(s mgl64.Vec3) { b.scale = s }

// scriptedCaster returns the same hit for every ray that can reach it.
type scriptedCaster struct {
	hit *entity.RaycastHit
}

func (c *scriptedCaster) RaycastDown(_ mgl64.Vec3, maxDistance float64, mask entity.LayerMask) (entity.RaycastHit, bool) {
	if c.hit == nil || c.hit.Distance > maxDistance || !mask.Has(c.hit.Layer) {
		return entity.RaycastHit{}, false
	}
	return *c.hit, true
}

func groundHit(distance float64) *entity.RaycastHit {
	return &entity.RaycastHit{Normal: entity.Up, Distance: distance, Layer: entity.LayerGround}
}

// slopeHit returns a ground hit whose normal is tilted by deg degrees about Z.
func slopeHit(distance, deg float64) *entity.RaycastHit {
	rad := mgl64.DegToRad(deg)
	return &entity.RaycastHit{
		Normal:   mgl64.Vec3{math.Sin(rad), math.Cos(rad), 0},
		Distance: distance,
		Layer:    entity.LayerGround,
	}
}

func createTestControllerConfig() *config.ControllerConfig {
	return &config.ControllerConfig{
		Movement: config.MovementConfig{
			WalkSpeed:     7,
			SprintSpeed:   10,
			CrouchSpeed:   3.5,
			SlideSpeed:    30,
			WallRunSpeed:  8.5,
			DashSpeed:     20,
			AirMultiplier: 0.4,
		},
		Jump:   config.JumpConfig{Force: 12, Cooldown: 0.25},
		Crouch: config.CrouchConfig{Scale: 0.5},
		Slope:  config.SlopeConfig{MaxAngle: 40},
		Smoothing: config.SmoothingConfig{
			SpeedIncreaseMultiplier: 1.5,
			SlopeIncreaseMultiplier: 2.5,
		},
		Body: config.BodyConfig{
			Height:      2,
			Mass:        1,
			GroundDrag:  5,
			GroundLayer: "ground",
		},
		Physics: config.PhysicsSettings{Gravity: 9.81, FixedStep: 0.02},
		Dash:    config.DashConfig{Duration: 0.25, Cooldown: 1},
	}
}

func createTestFlatCourse() *entity.Course {
	return &entity.Course{
		Name: "flat",
		Surfaces: []entity.Surface{
			{Name: "floor", MinX: -50, MinZ: -50, MaxX: 50, MaxZ: 50, Layer: entity.LayerGround},
		},
		Spawn: mgl64.Vec3{0, 1, 0},
		KillY: -10,
	}
}

func planar(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}
