package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// stepUpHeight is how far below the feet a surface may be entered and still
// be stood on. It lets bodies walk up ramps and small ledges.
const stepUpHeight = 0.3

// PhysicsSystem steps rigid bodies over a course. It is the sandbox backend
// the controller drives; any engine providing Body and Raycaster can replace it.
type PhysicsSystem struct {
	config config.PhysicsSettings
	course *entity.Course
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg config.PhysicsSettings, course *entity.Course) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		course: course,
	}
}

// Course returns the course bodies collide with.
func (s *PhysicsSystem) Course() *entity.Course { return s.course }

// Step advances body by dt. It returns true if the body fell below the
// course and was respawned.
func (s *PhysicsSystem) Step(body *entity.RigidBody, dt float64) bool {
	// Queued forces, gravity, then drag
	accel := body.ConsumeForce().Mul(1 / body.Mass)
	body.Vel = body.Vel.Add(accel.Mul(dt))

	if body.UseGravity {
		body.Vel[1] -= s.config.Gravity * dt
	}

	body.Vel = body.Vel.Mul(math.Max(0, 1-body.Drag*dt))

	body.Pos = body.Pos.Add(body.Vel.Mul(dt))

	s.resolveContact(body)

	if body.Pos.Y() < s.course.KillY {
		s.respawn(body)
		return true
	}
	return false
}

// resolveContact pushes the body out of the surface under it and removes
// the velocity component going into that surface.
func (s *PhysicsSystem) resolveContact(body *entity.RigidBody) {
	feet := body.Feet()
	surface, h, ok := s.course.SurfaceBelow(feet.X(), feet.Y()+stepUpHeight, feet.Z(), entity.AllLayers)
	if !ok || feet.Y() > h {
		body.Grounded = false
		return
	}

	body.Pos[1] = h + body.HalfExtent()
	body.Grounded = true

	n := surface.Normal()
	if into := body.Vel.Dot(n); into < 0 {
		body.Vel = body.Vel.Sub(n.Mul(into))
	}
}

func (s *PhysicsSystem) respawn(body *entity.RigidBody) {
	body.Pos = s.course.Spawn
	body.Vel = mgl64.Vec3{}
	body.ConsumeForce()
}
