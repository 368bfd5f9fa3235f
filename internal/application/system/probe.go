package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/stride/internal/domain/entity"
)

// Probe ray margins past half the body height.
const (
	groundProbeMargin = 0.2
	slopeProbeMargin  = 0.3
)

// Raycaster answers vertical ray queries against the world.
type Raycaster interface {
	RaycastDown(origin mgl64.Vec3, maxDistance float64, mask entity.LayerMask) (entity.RaycastHit, bool)
}

// SlopeHit is the ground under the body when it is a traversable slope.
type SlopeHit struct {
	Normal mgl64.Vec3
	Angle  float64 // degrees between world up and Normal
}

// EnvironmentProbe answers "am I grounded" and "am I on a slope".
// A miss is a normal negative answer, never an error.
type EnvironmentProbe struct {
	caster      Raycaster
	height      float64
	groundLayer entity.LayerMask
	maxSlope    float64
}

// NewEnvironmentProbe creates a probe for a body of the given height.
func NewEnvironmentProbe(caster Raycaster, height float64, groundLayer entity.LayerMask, maxSlopeAngle float64) *EnvironmentProbe {
	return &EnvironmentProbe{
		caster:      caster,
		height:      height,
		groundLayer: groundLayer,
		maxSlope:    maxSlopeAngle,
	}
}

// ProbeGround reports whether ground on the ground layer is within
// height/2 + 0.2 below origin.
func (p *EnvironmentProbe) ProbeGround(origin mgl64.Vec3) bool {
	_, ok := p.caster.RaycastDown(origin, p.height*0.5+groundProbeMargin, p.groundLayer)
	return ok
}

// ProbeSlope reports the slope under origin. Any layer counts. Flat ground
// (angle exactly 0) and surfaces at or past the max angle are not slopes.
func (p *EnvironmentProbe) ProbeSlope(origin mgl64.Vec3) (SlopeHit, bool) {
	hit, ok := p.caster.RaycastDown(origin, p.height*0.5+slopeProbeMargin, entity.AllLayers)
	if !ok {
		return SlopeHit{}, false
	}

	angle := AngleBetween(entity.Up, hit.Normal)
	if angle == 0 || angle >= p.maxSlope {
		return SlopeHit{}, false
	}
	return SlopeHit{Normal: hit.Normal, Angle: angle}, true
}

// Sample gathers the per-tick kinematic facts for a body at origin.
func (p *EnvironmentProbe) Sample(origin, velocity mgl64.Vec3) entity.KinematicSample {
	slope, onSlope := p.ProbeSlope(origin)
	return entity.KinematicSample{
		IsGrounded:  p.ProbeGround(origin),
		OnSlope:     onSlope,
		SlopeNormal: slope.Normal,
		SlopeAngle:  slope.Angle,
		Velocity:    velocity,
	}
}

// AngleBetween returns the unsigned angle between a and b in degrees.
// Degenerate (zero-length) inputs give 0.
func AngleBetween(a, b mgl64.Vec3) float64 {
	denom := math.Sqrt(a.Dot(a) * b.Dot(b))
	if denom < 1e-15 {
		return 0
	}
	cos := mgl64.Clamp(a.Dot(b)/denom, -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}
