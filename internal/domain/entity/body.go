package entity

import "github.com/go-gl/mathgl/mgl64"

// NearlyZeroTolerance is the per-component threshold below which an input
// axis or a direction is treated as zero.
const NearlyZeroTolerance = 1e-4

// NearlyZero2 reports whether every component of v is within tolerance of zero
func NearlyZero2(v mgl64.Vec2) bool {
	return abs(v.X()) <= NearlyZeroTolerance && abs(v.Y()) <= NearlyZeroTolerance
}

// NearlyZero3 reports whether every component of v is within tolerance of zero
func NearlyZero3(v mgl64.Vec3) bool {
	return abs(v.X()) <= NearlyZeroTolerance && abs(v.Y()) <= NearlyZeroTolerance &&
		abs(v.Z()) <= NearlyZeroTolerance
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// Capsule is the character's collision capsule
type Capsule struct {
	HalfHeight float64
	Radius     float64
}

// MovementIntent is the result of the latest move event.
// Axis.X is strafe (right positive), Axis.Y is forward.
type MovementIntent struct {
	Axis      mgl64.Vec2
	Direction mgl64.Vec3 // unit vector, or zero when nothing moved
	TargetYaw float64
}

// JumpState is the aerial action bookkeeping
type JumpState struct {
	Jumping  bool
	Flipping bool
	Pending  bool // armed jump/flip waiting for its impulse
	Count    int  // 0..2
}

// JumpBuffer remembers a jump press for a short window
type JumpBuffer struct {
	Queued    bool
	Remaining float64 // seconds
}

// Arm queues a jump press with a fresh timer. Arming twice only refreshes the timer.
func (b *JumpBuffer) Arm(duration float64) {
	b.Queued = true
	b.Remaining = duration
}

// Tick counts the timer down and drops the press once it expires
func (b *JumpBuffer) Tick(dt float64) {
	if !b.Queued {
		return
	}
	b.Remaining -= dt
	if b.Remaining <= 0 {
		b.Queued = false
	}
}

// Consume clears the queued press, returning whether one was queued
func (b *JumpBuffer) Consume() bool {
	queued := b.Queued
	b.Queued = false
	return queued
}

// SlideState is the run-and-crouch slide. A slide is not a stance: the
// character keeps standing while the capsule is lowered.
type SlideState struct {
	Active    bool
	Velocity  mgl64.Vec3 // planar
	FallTimer float64    // seconds spent airborne during the slide
	Held      bool       // slide button held
}

// Speed returns the planar slide speed
func (s SlideState) Speed() float64 {
	return s.Velocity.Len()
}

// Character holds the locomotion state of one player character.
// It is owned by a single controller and is not safe for concurrent use.
type Character struct {
	Running             bool
	Dancing             bool
	StanceTransitioning bool

	Jump   JumpState
	Buffer JumpBuffer
	Slide  SlideState

	Intent    MovementIntent
	FacingYaw float64

	Capsule     Capsule
	MeshOffsetZ float64 // mesh sits at -HalfHeight so the feet stay on the floor

	// WasGrounded is the ground contact seen by the last unsuspended tick
	WasGrounded bool

	stance Stance
}

// NewCharacter creates a standing character with the given capsule.
func NewCharacter(capsule Capsule, facingYaw float64) *Character {
	return &Character{
		Capsule:     capsule,
		MeshOffsetZ: -capsule.HalfHeight,
		FacingYaw:   facingYaw,
		stance:      StanceStanding,
	}
}

// Stance returns the current stance
func (c *Character) Stance() Stance {
	return c.stance
}

// IsCrouching returns true while crouched (not prone)
func (c *Character) IsCrouching() bool {
	return c.stance == StanceCrouching
}

// IsProning returns true while prone
func (c *Character) IsProning() bool {
	return c.stance == StanceProning
}

// Crouch moves Standing -> Crouching. Returns false from any other stance.
func (c *Character) Crouch() bool {
	if c.stance != StanceStanding {
		return false
	}
	c.stance = StanceCrouching
	return true
}

// Stand moves Crouching -> Standing. Returns false from any other stance.
func (c *Character) Stand() bool {
	if c.stance != StanceCrouching {
		return false
	}
	c.stance = StanceStanding
	return true
}

// Prone moves Crouching -> Proning. Returns false from any other stance.
func (c *Character) Prone() bool {
	if c.stance != StanceCrouching {
		return false
	}
	c.stance = StanceProning
	return true
}

// RiseToCrouch moves Proning -> Crouching. Returns false from any other stance.
func (c *Character) RiseToCrouch() bool {
	if c.stance != StanceProning {
		return false
	}
	c.stance = StanceCrouching
	return true
}

// FallToCrouch degrades a prone character that lost ground contact to a
// crouch and cancels its capsule transition.
func (c *Character) FallToCrouch() bool {
	if !c.RiseToCrouch() {
		return false
	}
	c.StanceTransitioning = false
	return true
}

// ForwardInput returns the forward axis of the latest move event
func (c *Character) ForwardInput() float64 {
	return c.Intent.Axis.Y()
}

// Snapshot is a read-only view of the character for animation blending, UI and AI.
type Snapshot struct {
	Stance              Stance
	Running             bool
	Dancing             bool
	Jumping             bool
	Flipping            bool
	Crouching           bool
	Proning             bool
	StanceTransitioning bool
	Sliding             bool
	SlideSpeed          float64
	JumpPending         bool
	JumpQueued          bool
	JumpCount           int
	ForwardInput        float64
	FacingYaw           float64
	CapsuleHalfHeight   float64
}

// Snapshot copies the queryable state
func (c *Character) Snapshot() Snapshot {
	return Snapshot{
		Stance:              c.stance,
		Running:             c.Running,
		Dancing:             c.Dancing,
		Jumping:             c.Jump.Jumping,
		Flipping:            c.Jump.Flipping,
		Crouching:           c.IsCrouching(),
		Proning:             c.IsProning(),
		StanceTransitioning: c.StanceTransitioning,
		Sliding:             c.Slide.Active,
		SlideSpeed:          c.Slide.Speed(),
		JumpPending:         c.Jump.Pending,
		JumpQueued:          c.Buffer.Queued,
		JumpCount:           c.Jump.Count,
		ForwardInput:        c.ForwardInput(),
		FacingYaw:           c.FacingYaw,
		CapsuleHalfHeight:   c.Capsule.HalfHeight,
	}
}
