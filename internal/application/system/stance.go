package system

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// StanceSystem sequences crouch and prone capsule changes
type StanceSystem struct {
	config  *config.LocomotionConfig
	mover   Mover
	sweeper Sweeper
	logger  *slog.Logger
}

// NewStanceSystem creates a new stance system. A nil sweeper reports every
// overhead check as clear.
func NewStanceSystem(cfg *config.LocomotionConfig, mover Mover, sweeper Sweeper, logger *slog.Logger) *StanceSystem {
	return &StanceSystem{config: cfg, mover: mover, sweeper: sweeper, logger: logger}
}

// busy reports whether a stance toggle must be ignored right now
func (s *StanceSystem) busy(char *entity.Character) bool {
	return char.StanceTransitioning || char.Running || char.Slide.Active ||
		char.Jump.Jumping || char.Jump.Flipping ||
		s.mover.IsFalling() || !s.mover.IsGrounded()
}

// ToggleCrouch crouches a standing character or stands a crouched one when
// there is headroom. Ignored while proning or busy.
func (s *StanceSystem) ToggleCrouch(char *entity.Character) {
	if char.IsProning() || s.busy(char) {
		return
	}

	switch char.Stance() {
	case entity.StanceCrouching:
		if !s.CanStandUp() {
			return
		}
		s.resizeCapsule(char, s.config.Crouch.StandHalfHeight)
		char.Stand()
	case entity.StanceStanding:
		s.resizeCapsule(char, s.config.Crouch.CrouchHalfHeight)
		char.Crouch()
	}

	s.logger.Debug("stance changed", "to", char.Stance())
	pushSpeedCap(s.config, s.mover, char)
}

// ToggleProne lies a crouched character down, or rises a prone one back to
// a crouch when there is headroom. Ignored while standing or busy.
func (s *StanceSystem) ToggleProne(char *entity.Character) {
	if s.busy(char) {
		return
	}

	prone := s.config.Prone
	oldHeight := char.Capsule.HalfHeight

	switch char.Stance() {
	case entity.StanceProning:
		if !s.CanCrouchUpFromProne() {
			return
		}
		newHeight := s.config.Crouch.CrouchHalfHeight
		delta := newHeight - oldHeight

		// Lift off the floor before growing so the capsule does not start inside it
		s.mover.AddWorldOffset(mgl64.Vec3{0, 0, prone.RiseNudge}, true)
		s.mover.AddWorldOffset(mgl64.Vec3{0, 0, -delta*prone.SettleFactor + s.config.Crouch.CapsuleOffset}, true)
		s.resizeCapsule(char, newHeight)
		char.RiseToCrouch()
	case entity.StanceCrouching:
		newHeight := prone.HalfHeight
		delta := oldHeight - newHeight

		s.mover.AddWorldOffset(mgl64.Vec3{0, 0, delta*prone.SettleFactor + prone.CapsuleOffset}, true)
		s.resizeCapsule(char, newHeight)
		char.Prone()
	default:
		return
	}

	char.StanceTransitioning = true
	s.logger.Debug("stance changed", "to", char.Stance(), "transitioning", true)
	pushSpeedCap(s.config, s.mover, char)
}

// CanStandUp sweeps from crouch height up to standing height
func (s *StanceSystem) CanStandUp() bool {
	return s.clearAbove(s.config.Crouch.CrouchHalfHeight, s.config.Crouch.StandHalfHeight)
}

// CanCrouchUpFromProne sweeps from prone height up to crouch height
func (s *StanceSystem) CanCrouchUpFromProne() bool {
	return s.clearAbove(s.config.Prone.HalfHeight, s.config.Crouch.CrouchHalfHeight)
}

func (s *StanceSystem) clearAbove(fromHalfHeight, toHalfHeight float64) bool {
	if s.sweeper == nil {
		return true
	}
	start := s.mover.Location().Add(mgl64.Vec3{0, 0, fromHalfHeight})
	distance := (toHalfHeight - fromHalfHeight) - s.config.Crouch.CeilingMargin
	end := start.Add(mgl64.Vec3{0, 0, distance})

	return !s.sweeper.SweepTest(s.mover.CapsuleRadius(), start, end)
}

func (s *StanceSystem) resizeCapsule(char *entity.Character, halfHeight float64) {
	s.mover.SetCapsuleHalfHeight(halfHeight, true)
	char.Capsule.HalfHeight = halfHeight
	char.MeshOffsetZ = -halfHeight
}

// StartProneTransition marks the capsule animation as running
func (s *StanceSystem) StartProneTransition(char *entity.Character) {
	char.StanceTransitioning = true
}

// EndProneTransition marks the capsule animation as finished
func (s *StanceSystem) EndProneTransition(char *entity.Character) {
	char.StanceTransitioning = false
}
