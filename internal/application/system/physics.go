package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

const (
	// substepSize is the longest distance moved before a collision check
	substepSize = 4.0
	// groundTolerance is how far below the capsule a floor still counts as ground
	groundTolerance = 0.5
)

// KinematicMover is a small capsule integrator over an Arena. It implements
// Mover and Sweeper for the demo host, replays and tests.
type KinematicMover struct {
	config *config.LocomotionConfig
	arena  *entity.Arena

	pos        mgl64.Vec3 // capsule center
	vel        mgl64.Vec3
	halfHeight float64
	radius     float64
	maxSpeed   float64
	grounded   bool
	lastDT     float64

	input mgl64.Vec3 // accumulated movement input, consumed by Step
}

// NewKinematicMover creates a mover resting on the arena floor at its spawn
func NewKinematicMover(cfg *config.LocomotionConfig, arena *entity.Arena) *KinematicMover {
	m := &KinematicMover{
		config:     cfg,
		arena:      arena,
		halfHeight: cfg.Crouch.StandHalfHeight,
		radius:     cfg.Physics.CapsuleRadius,
		maxSpeed:   cfg.Movement.WalkSpeed,
	}
	m.pos = mgl64.Vec3{arena.Spawn.X(), arena.Spawn.Y(), arena.FloorZ + m.halfHeight}
	m.grounded = true
	return m
}

// BeginTick publishes the tick's dt to the input handlers that run before Step
func (m *KinematicMover) BeginTick(dt float64) {
	m.lastDT = dt
}

// Step integrates one tick: gravity, input acceleration, then collision
func (m *KinematicMover) Step(dt float64) {
	m.lastDT = dt
	if dt <= 0 {
		return
	}

	m.applyGravity(dt)
	m.applyInput(dt)

	m.moveAxis(0, m.vel.X()*dt)
	m.moveAxis(1, m.vel.Y()*dt)
	m.moveAxis(2, m.vel.Z()*dt)

	m.grounded = m.vel.Z() <= 0 && m.onGround()
	if m.grounded {
		m.vel[2] = 0
		if m.pos.Z()-m.halfHeight <= m.arena.FloorZ+groundTolerance {
			m.pos[2] = m.arena.FloorZ + m.halfHeight
		}
	}
}

// applyGravity pulls the body down while airborne
func (m *KinematicMover) applyGravity(dt float64) {
	if m.grounded && m.vel.Z() <= 0 {
		m.vel[2] = 0
		return
	}

	gravity := m.config.Physics.Gravity * m.config.Physics.GravityScale
	m.vel[2] -= gravity * dt

	if m.vel.Z() < -m.config.Physics.MaxFallSpeed {
		m.vel[2] = -m.config.Physics.MaxFallSpeed
	}
}

// applyInput accelerates the planar velocity toward the requested direction,
// or brakes it when there is no input on the ground
func (m *KinematicMover) applyInput(dt float64) {
	phys := m.config.Physics
	planar := mgl64.Vec2{m.vel.X(), m.vel.Y()}

	input := mgl64.Vec2{m.input.X(), m.input.Y()}
	m.input = mgl64.Vec3{}
	if input.Len() > 1 {
		input = input.Normalize()
	}

	if entity.NearlyZero2(input) {
		if m.grounded {
			planar = approach(planar, mgl64.Vec2{}, phys.BrakingDeceleration*dt)
		}
	} else {
		accel := phys.Acceleration
		if !m.grounded {
			accel *= phys.AirControl
		}
		planar = approach(planar, input.Mul(m.maxSpeed), accel*dt)
	}

	// Over the cap (after a stance change) the ground brakes back down to it
	if m.grounded && planar.Len() > m.maxSpeed {
		planar = planar.Normalize().Mul(m.maxSpeed)
	}

	m.vel[0], m.vel[1] = planar.X(), planar.Y()
}

// moveAxis moves along one axis in substeps, stopping at the first blocked one
func (m *KinematicMover) moveAxis(axis int, d float64) {
	if d == 0 {
		return
	}

	steps := int(math.Ceil(math.Abs(d) / substepSize))
	step := d / float64(steps)
	for i := 0; i < steps; i++ {
		next := m.pos
		next[axis] += step
		if m.blocked(next, m.halfHeight) {
			m.vel[axis] = 0
			if axis == 2 && step < 0 {
				m.grounded = true
				if next.Z()-m.halfHeight < m.arena.FloorZ {
					m.pos[2] = m.arena.FloorZ + m.halfHeight
				}
			}
			return
		}
		m.pos = next
	}

	if axis == 2 && m.pos.Z()-m.halfHeight < m.arena.FloorZ {
		m.pos[2] = m.arena.FloorZ + m.halfHeight
		m.vel[2] = 0
		m.grounded = true
	}
}

// blocked reports whether a capsule centered at p overlaps the floor, the
// arena edges or any obstacle
func (m *KinematicMover) blocked(p mgl64.Vec3, halfHeight float64) bool {
	bottom := p.Z() - halfHeight
	top := p.Z() + halfHeight
	if bottom < m.arena.FloorZ-groundTolerance {
		return true
	}
	if p.X() < m.radius || p.X() > m.arena.Width-m.radius ||
		p.Y() < m.radius || p.Y() > m.arena.Depth-m.radius {
		return true
	}

	for _, o := range m.arena.Obstacles {
		if top <= o.Min.Z() || bottom >= o.Max.Z() {
			continue
		}
		if p.X() >= o.Min.X()-m.radius && p.X() <= o.Max.X()+m.radius &&
			p.Y() >= o.Min.Y()-m.radius && p.Y() <= o.Max.Y()+m.radius {
			return true
		}
	}
	return false
}

// onGround checks just below the capsule
func (m *KinematicMover) onGround() bool {
	if m.pos.Z()-m.halfHeight <= m.arena.FloorZ+groundTolerance {
		return true
	}
	return m.blocked(m.pos.Sub(mgl64.Vec3{0, 0, groundTolerance}), m.halfHeight)
}

// IsGrounded implements Mover
func (m *KinematicMover) IsGrounded() bool {
	return m.grounded
}

// IsFalling implements Mover
func (m *KinematicMover) IsFalling() bool {
	return !m.grounded && m.vel.Z() < 0
}

// SetMaxSpeed implements Mover
func (m *KinematicMover) SetMaxSpeed(speed float64) {
	m.maxSpeed = speed
}

// MaxSpeed returns the current cap
func (m *KinematicMover) MaxSpeed() float64 {
	return m.maxSpeed
}

// AddMovementInput implements Mover
func (m *KinematicMover) AddMovementInput(dir mgl64.Vec3, scale float64) {
	m.input = m.input.Add(dir.Mul(scale))
}

// ApplyImpulse implements Mover
func (m *KinematicMover) ApplyImpulse(impulse mgl64.Vec3) {
	m.vel[0] += impulse.X()
	m.vel[1] += impulse.Y()
	if impulse.Z() != 0 {
		m.vel[2] = impulse.Z()
	}
	if m.vel.Z() > 0 {
		m.grounded = false
	}
}

// SetCapsuleHalfHeight implements Mover. On the ground the base stays put and
// the center moves with the new height. With sweep, a capsule left overlapping
// the floor is pushed back above it.
func (m *KinematicMover) SetCapsuleHalfHeight(halfHeight float64, sweep bool) {
	if m.grounded {
		m.pos[2] += halfHeight - m.halfHeight
	}
	m.halfHeight = halfHeight

	if sweep && m.pos.Z()-m.halfHeight < m.arena.FloorZ {
		m.pos[2] = m.arena.FloorZ + m.halfHeight
	}
}

// HalfHeight returns the capsule half height
func (m *KinematicMover) HalfHeight() float64 {
	return m.halfHeight
}

// AddWorldOffset implements Mover
func (m *KinematicMover) AddWorldOffset(offset mgl64.Vec3, sweep bool) {
	if !sweep {
		m.pos = m.pos.Add(offset)
		return
	}

	length := offset.Len()
	if length == 0 {
		return
	}
	steps := int(math.Ceil(length / substepSize))
	step := offset.Mul(1 / float64(steps))
	for i := 0; i < steps; i++ {
		next := m.pos.Add(step)
		if m.blocked(next, m.halfHeight) {
			return
		}
		m.pos = next
	}
}

// Location implements Mover
func (m *KinematicMover) Location() mgl64.Vec3 {
	return m.pos
}

// SetLocation teleports the capsule center
func (m *KinematicMover) SetLocation(p mgl64.Vec3) {
	m.pos = p
	m.grounded = m.onGround()
}

// Velocity returns the current velocity
func (m *KinematicMover) Velocity() mgl64.Vec3 {
	return m.vel
}

// CapsuleRadius implements Mover
func (m *KinematicMover) CapsuleRadius() float64 {
	return m.radius
}

// ElapsedTickSeconds implements Mover
func (m *KinematicMover) ElapsedTickSeconds() float64 {
	return m.lastDT
}

// GroundNormal implements GroundSensor. The arena floor is flat.
func (m *KinematicMover) GroundNormal() mgl64.Vec3 {
	return mgl64.Vec3{0, 0, 1}
}

// SweepTest implements Sweeper: it samples the segment and reports a hit when
// any sample comes within radius of an obstacle
func (m *KinematicMover) SweepTest(radius float64, from, to mgl64.Vec3) bool {
	seg := to.Sub(from)
	spacing := radius / 2
	if spacing <= 0 {
		spacing = substepSize
	}
	steps := int(math.Ceil(seg.Len() / spacing))
	if steps < 1 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		p := from.Add(seg.Mul(float64(i) / float64(steps)))
		for _, o := range m.arena.Obstacles {
			if o.Contains(p, radius) {
				return true
			}
		}
	}
	return false
}

// approach moves v toward target by at most maxDelta
func approach(v, target mgl64.Vec2, maxDelta float64) mgl64.Vec2 {
	diff := target.Sub(v)
	dist := diff.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return v.Add(diff.Mul(maxDelta / dist))
}
