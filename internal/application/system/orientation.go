package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// YawOrientation is a level facing rotated by Yaw radians about world up.
// Yaw 0 faces +Z with +X to the right.
type YawOrientation struct {
	Yaw float64
}

// Forward returns the horizontal facing direction.
func (o *YawOrientation) Forward() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(o.Yaw), 0, math.Cos(o.Yaw)}
}

// Right returns the horizontal direction to the right of Forward.
func (o *YawOrientation) Right() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(o.Yaw), 0, -math.Sin(o.Yaw)}
}

// Turn rotates the facing by delta radians, keeping Yaw in [-pi, pi).
func (o *YawOrientation) Turn(delta float64) {
	o.Yaw = math.Mod(o.Yaw+delta+math.Pi, 2*math.Pi)
	if o.Yaw < 0 {
		o.Yaw += 2 * math.Pi
	}
	o.Yaw -= math.Pi
}
