package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// Mover is the movement integrator that displaces the body. The locomotion
// systems query and steer it but never integrate motion themselves.
type Mover interface {
	IsGrounded() bool
	// IsFalling is true while airborne and descending
	IsFalling() bool
	SetMaxSpeed(speed float64)
	// AddMovementInput requests movement along dir, scaled by scale in [0,1]
	AddMovementInput(dir mgl64.Vec3, scale float64)
	// ApplyImpulse launches the body; a vertical component replaces the current vertical velocity
	ApplyImpulse(impulse mgl64.Vec3)
	SetCapsuleHalfHeight(halfHeight float64, sweep bool)
	// AddWorldOffset moves the body; with sweep it stops at the first blocking hit
	AddWorldOffset(offset mgl64.Vec3, sweep bool)
	Location() mgl64.Vec3
	CapsuleRadius() float64
	ElapsedTickSeconds() float64
}

// Sweeper answers overhead-clearance queries against the collision world
type Sweeper interface {
	// SweepTest reports whether a sphere of radius moving from -> to is blocked
	SweepTest(radius float64, from, to mgl64.Vec3) bool
}

// ViewController is the possessing player controller and its camera
type ViewController interface {
	CameraRotation() entity.Rotator
	ControlRotation() entity.Rotator
	SetControlRotation(rot entity.Rotator)
}
