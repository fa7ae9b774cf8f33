package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotator is a rotation in degrees. Yaw turns around +Z, pitch tilts the
// forward axis up, roll is unused by locomotion but kept for completeness.
type Rotator struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

// Forward returns the planar unit forward axis for the yaw, ignoring pitch/roll.
func (r Rotator) Forward() mgl64.Vec3 {
	rad := mgl64.DegToRad(r.Yaw)
	return mgl64.Vec3{math.Cos(rad), math.Sin(rad), 0}
}

// Right returns the planar unit right axis for the yaw.
func (r Rotator) Right() mgl64.Vec3 {
	rad := mgl64.DegToRad(r.Yaw)
	return mgl64.Vec3{-math.Sin(rad), math.Cos(rad), 0}
}

// NormalizeAxis wraps an angle into (-180, 180].
func NormalizeAxis(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// ClampAngle clamps an angle into the window [min, max], measuring distance
// around the circle so a window straddling the ±180 seam still works.
func ClampAngle(deg, min, max float64) float64 {
	halfRange := mgl64.Clamp(max-min, 0, 360) / 2
	center := min + halfRange
	delta := NormalizeAxis(deg - center)

	if delta > halfRange {
		return NormalizeAxis(center + halfRange)
	}
	if delta < -halfRange {
		return NormalizeAxis(center - halfRange)
	}
	return NormalizeAxis(deg)
}

// YawOf returns the heading of a planar direction in degrees.
func YawOf(dir mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(dir.Y(), dir.X()))
}

// InterpYaw moves current toward target along the shortest arc.
// A non-positive speed snaps to the target.
func InterpYaw(current, target, dt, speed float64) float64 {
	if speed <= 0 {
		return NormalizeAxis(target)
	}
	delta := NormalizeAxis(target - current)
	if math.Abs(delta) < 1e-4 {
		return NormalizeAxis(target)
	}
	alpha := mgl64.Clamp(dt*speed, 0, 1)
	return NormalizeAxis(current + delta*alpha)
}
