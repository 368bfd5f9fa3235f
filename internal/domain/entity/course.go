package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Surface is a walkable patch covering an axis-aligned XZ rectangle.
// Its height is a plane: Base at (MinX, MinZ), rising GradeX per unit of X
// and GradeZ per unit of Z. A zero grade is flat ground.
type Surface struct {
	Name       string
	MinX, MinZ float64
	MaxX, MaxZ float64
	Base       float64
	GradeX     float64
	GradeZ     float64
	Layer      LayerMask
}

// Contains reports whether (x, z) lies inside the surface footprint.
func (s Surface) Contains(x, z float64) bool {
	return x >= s.MinX && x <= s.MaxX && z >= s.MinZ && z <= s.MaxZ
}

// HeightAt returns the surface height at (x, z).
func (s Surface) HeightAt(x, z float64) float64 {
	return s.Base + s.GradeX*(x-s.MinX) + s.GradeZ*(z-s.MinZ)
}

// Normal returns the unit surface normal.
func (s Surface) Normal() mgl64.Vec3 {
	if s.GradeX == 0 && s.GradeZ == 0 {
		return Up
	}
	return mgl64.Vec3{-s.GradeX, 1, -s.GradeZ}.Normalize()
}

// Course is the set of surfaces a body can stand on.
type Course struct {
	Name     string
	Surfaces []Surface
	Spawn    mgl64.Vec3
	KillY    float64 // bodies falling below this height are respawned
}

// SurfaceBelow returns the highest surface at (x, z) whose top is at or
// below y. ok is false when nothing is underneath.
func (c *Course) SurfaceBelow(x, y, z float64, mask LayerMask) (s Surface, h float64, ok bool) {
	h = math.Inf(-1)
	for _, cand := range c.Surfaces {
		if !mask.Has(cand.Layer) || !cand.Contains(x, z) {
			continue
		}
		ch := cand.HeightAt(x, z)
		if ch > y || ch <= h {
			continue
		}
		s, h, ok = cand, ch, true
	}
	return s, h, ok
}

// RaycastDown casts a vertical ray from origin and returns the nearest hit
// within maxDistance on a layer in mask.
func (c *Course) RaycastDown(origin mgl64.Vec3, maxDistance float64, mask LayerMask) (RaycastHit, bool) {
	s, h, ok := c.SurfaceBelow(origin.X(), origin.Y(), origin.Z(), mask)
	if !ok {
		return RaycastHit{}, false
	}
	dist := origin.Y() - h
	if dist > maxDistance {
		return RaycastHit{}, false
	}
	return RaycastHit{
		Point:    mgl64.Vec3{origin.X(), h, origin.Z()},
		Normal:   s.Normal(),
		Distance: dist,
		Layer:    s.Layer,
	}, true
}
