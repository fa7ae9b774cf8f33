package entity

import "github.com/go-gl/mathgl/mgl64"

// Stance is the character's posture. Exactly one is active at a time.
type Stance int

const (
	StanceStanding Stance = iota
	StanceCrouching
	StanceProning
)

// String returns the string representation of the stance
func (s Stance) String() string {
	switch s {
	case StanceStanding:
		return "Standing"
	case StanceCrouching:
		return "Crouching"
	case StanceProning:
		return "Proning"
	default:
		return "Unknown"
	}
}

// AnimEvent is a notify fired by the animation system at a timeline anchor.
type AnimEvent int

const (
	// AnimJumpLiftoff fires when the jump animation leaves the ground
	AnimJumpLiftoff AnimEvent = iota
	// AnimFlipStart fires at the start of the flip animation
	AnimFlipStart
	// AnimFlipEnd fires at the end of the flip animation
	AnimFlipEnd
	// AnimProneTransitionStart brackets the crouch/prone capsule animation
	AnimProneTransitionStart
	// AnimProneTransitionEnd closes the crouch/prone capsule animation
	AnimProneTransitionEnd
)

// String returns the string representation of the event
func (e AnimEvent) String() string {
	switch e {
	case AnimJumpLiftoff:
		return "JumpLiftoff"
	case AnimFlipStart:
		return "FlipStart"
	case AnimFlipEnd:
		return "FlipEnd"
	case AnimProneTransitionStart:
		return "ProneTransitionStart"
	case AnimProneTransitionEnd:
		return "ProneTransitionEnd"
	default:
		return "Unknown"
	}
}

// Obstacle is an axis-aligned box hovering over (or resting on) the floor.
// Low ceilings are obstacles whose Bottom is above the floor.
type Obstacle struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Contains reports whether p lies inside the box grown by radius on every side
func (o Obstacle) Contains(p mgl64.Vec3, radius float64) bool {
	return p.X() >= o.Min.X()-radius && p.X() <= o.Max.X()+radius &&
		p.Y() >= o.Min.Y()-radius && p.Y() <= o.Max.Y()+radius &&
		p.Z() >= o.Min.Z()-radius && p.Z() <= o.Max.Z()+radius
}

// Arena is the play space: a flat floor at FloorZ with box obstacles.
type Arena struct {
	Width     float64
	Depth     float64
	FloorZ    float64
	Obstacles []Obstacle
	Spawn     mgl64.Vec3
}

// InBounds reports whether the XY position lies over the floor
func (a *Arena) InBounds(p mgl64.Vec3) bool {
	return p.X() >= 0 && p.X() <= a.Width && p.Y() >= 0 && p.Y() <= a.Depth
}
