package system

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// maxJumps is the ground jump plus one flip
const maxJumps = 2

// JumpSystem owns the jump buffer and the jump/flip bookkeeping
type JumpSystem struct {
	config *config.LocomotionConfig
	mover  Mover
	logger *slog.Logger
}

// NewJumpSystem creates a new jump system
func NewJumpSystem(cfg *config.LocomotionConfig, mover Mover, logger *slog.Logger) *JumpSystem {
	return &JumpSystem{config: cfg, mover: mover, logger: logger}
}

// QueueJumpInput buffers a jump press. Ignored while dancing or sliding, and
// while crouched or prone unless the config allows it.
func (s *JumpSystem) QueueJumpInput(char *entity.Character) {
	if char.Dancing || char.Slide.Active {
		return
	}
	if !s.config.Jump.AllowJumpWhileCrouched && char.Stance() != entity.StanceStanding {
		return
	}
	char.Buffer.Arm(s.config.Jump.BufferTime)
}

// Advance runs one tick of the aerial state machine. It must run before
// movement input is handled so speed caps read the current stance.
func (s *JumpSystem) Advance(char *entity.Character, dt float64, grounded, falling bool) {
	// Falling keeps a crouch and degrades a prone to a crouch
	if char.IsCrouching() && falling {
		return
	}
	if char.IsProning() && falling {
		char.FallToCrouch()
		s.logger.Debug("fell out of prone", "to", char.Stance())
		return
	}
	// Jump bookkeeping is suspended while crouched or prone
	if char.Stance() != entity.StanceStanding {
		return
	}

	char.Buffer.Tick(dt)

	if grounded && !char.WasGrounded {
		char.Jump.Count = 0
		char.Jump.Pending = false
		char.Jump.Flipping = false
	}
	char.WasGrounded = grounded

	switch {
	case grounded && char.Buffer.Queued && !char.Jump.Pending:
		char.Buffer.Consume()
		char.Jump.Pending = true
		char.Jump.Count++
		char.Jump.Jumping = true
		s.logger.Debug("jump armed", "count", char.Jump.Count)
	case !grounded && s.config.Jump.AllowDoubleJump && char.Jump.Count < maxJumps &&
		char.Buffer.Queued && !char.Jump.Pending:
		char.Buffer.Consume()
		s.TriggerFlip(char)
	}

	if char.Jump.Jumping && falling {
		char.Jump.Jumping = false
	}
}

// ApplyJumpForce launches the ground jump. Fired by the jump liftoff notify.
func (s *JumpSystem) ApplyJumpForce(char *entity.Character) {
	s.mover.ApplyImpulse(mgl64.Vec3{0, 0, s.config.Jump.Force})
	char.Jump.Pending = false
}

// TriggerFlip starts the double jump and launches it immediately
func (s *JumpSystem) TriggerFlip(char *entity.Character) {
	char.Jump.Flipping = true
	char.Jump.Jumping = true
	char.Jump.Pending = true
	char.Jump.Count++
	s.mover.ApplyImpulse(mgl64.Vec3{0, 0, s.config.Jump.FlipForce})
	s.logger.Debug("flip triggered", "count", char.Jump.Count)
}

// EndFlip clears the flip when its animation ends
func (s *JumpSystem) EndFlip(char *entity.Character) {
	char.Jump.Flipping = false
	char.Jump.Jumping = false
}
