package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// GroundSensor is implemented by movers that know the floor under the body.
// Without it the floor is treated as flat.
type GroundSensor interface {
	GroundNormal() mgl64.Vec3
}

// SetSlideHeld records the slide button. Releasing it ends a running slide
// on the next tick.
func (s *StanceSystem) SetSlideHeld(char *entity.Character, held bool) {
	char.Slide.Held = held
}

func (s *StanceSystem) canSlide(char *entity.Character, grounded, falling bool) bool {
	return s.config.Slide.Enabled && char.Slide.Held && char.Running &&
		char.Stance() == entity.StanceStanding && !char.StanceTransitioning &&
		!entity.NearlyZero3(char.Intent.Direction) &&
		(grounded || falling)
}

// AdvanceSlide starts a slide when running with the slide button held and a
// move direction, on the ground or while descending. A running slide gains
// speed down slopes and along the move input, loses it to friction, and ends
// when the button is released, below the minimum speed, or after the fall
// grace time in the air.
func (s *StanceSystem) AdvanceSlide(char *entity.Character, dt float64, grounded, falling bool) {
	if !char.Slide.Active {
		if !s.canSlide(char, grounded, falling) {
			return
		}
		s.startSlide(char)
	}

	cfg := s.config.Slide
	v := char.Slide.Velocity
	v = v.Add(s.slopeDirection().Mul(cfg.SlopeBoost * dt))
	v = v.Add(char.Intent.Direction.Mul(cfg.FlatBoost * dt))
	v = v.Mul(1 - math.Min(1, cfg.Friction*dt))
	v[2] = 0
	char.Slide.Velocity = v

	if grounded {
		char.Slide.FallTimer = 0
	} else {
		char.Slide.FallTimer += dt
	}

	if !char.Slide.Held || char.Slide.Speed() < cfg.MinSpeed ||
		(!grounded && char.Slide.FallTimer > cfg.FallGraceTime) {
		s.endSlide(char)
		return
	}

	s.mover.AddMovementInput(v.Normalize(), 1.0)
}

func (s *StanceSystem) startSlide(char *entity.Character) {
	char.Slide.Active = true
	char.Slide.Velocity = char.Intent.Direction.Mul(s.config.Movement.SprintSpeed)
	char.Slide.FallTimer = 0
	char.Dancing = false
	s.resizeCapsule(char, s.config.Slide.HalfHeight)
	s.mover.ApplyImpulse(char.Slide.Velocity)

	s.logger.Debug("slide started", "speed", char.Slide.Speed())
}

// endSlide settles into the tallest stance with headroom: standing, else
// crouching, else prone. The press is spent, so holding the button does not
// start another slide.
func (s *StanceSystem) endSlide(char *entity.Character) {
	char.Slide = entity.SlideState{}

	switch {
	case s.CanStandUp() && s.CanCrouchUpFromProne():
		s.resizeCapsule(char, s.config.Crouch.StandHalfHeight)
	case s.CanCrouchUpFromProne():
		s.resizeCapsule(char, s.config.Crouch.CrouchHalfHeight)
		char.Crouch()
	default:
		s.resizeCapsule(char, s.config.Prone.HalfHeight)
		char.Crouch()
		char.Prone()
	}

	s.logger.Debug("slide ended", "to", char.Stance())
	pushSpeedCap(s.config, s.mover, char)
}

// slopeDirection is the downhill direction along the floor, zero on flat ground
func (s *StanceSystem) slopeDirection() mgl64.Vec3 {
	sensor, ok := s.mover.(GroundSensor)
	if !ok {
		return mgl64.Vec3{}
	}
	n := sensor.GroundNormal()
	down := mgl64.Vec3{0, 0, -1}
	dir := down.Sub(n.Mul(down.Dot(n)))
	if entity.NearlyZero3(dir) {
		return mgl64.Vec3{}
	}
	return dir.Normalize()
}
