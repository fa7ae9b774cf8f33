package system

import (
	"log/slog"

	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// Controller is the host-facing locomotion core of one character. The host
// calls Advance once per tick, dispatches input through the bound action map
// between ticks, and forwards animation notifies to Notify.
type Controller struct {
	config *config.LocomotionConfig
	char   *entity.Character
	mover  Mover
	logger *slog.Logger

	Stance     *StanceSystem
	Jump       *JumpSystem
	Locomotion *LocomotionSystem
}

// NewController creates a controller for a standing character.
func NewController(cfg *config.LocomotionConfig, mover Mover, sweeper Sweeper, view ViewController, logger *slog.Logger) *Controller {
	char := entity.NewCharacter(entity.Capsule{
		HalfHeight: cfg.Crouch.StandHalfHeight,
		Radius:     mover.CapsuleRadius(),
	}, 0)

	c := &Controller{
		config:     cfg,
		char:       char,
		mover:      mover,
		logger:     logger,
		Stance:     NewStanceSystem(cfg, mover, sweeper, logger),
		Jump:       NewJumpSystem(cfg, mover, logger),
		Locomotion: NewLocomotionSystem(cfg, mover, view),
	}

	mover.SetCapsuleHalfHeight(char.Capsule.HalfHeight, false)
	pushSpeedCap(cfg, mover, char)
	if view != nil {
		rot := view.ControlRotation()
		rot.Pitch = cfg.Camera.SpawnPitch
		view.SetControlRotation(rot)
		char.FacingYaw = rot.Yaw
	}

	return c
}

// Character returns the controlled character
func (c *Controller) Character() *entity.Character {
	return c.char
}

// Advance runs the state machine for this tick and refreshes the speed cap
func (c *Controller) Advance(dt float64) {
	grounded, falling := c.mover.IsGrounded(), c.mover.IsFalling()
	c.Jump.Advance(c.char, dt, grounded, falling)
	c.Stance.AdvanceSlide(c.char, dt, grounded, falling)
	pushSpeedCap(c.config, c.mover, c.char)
}

// BindHandlers registers every locomotion action on the map
func (c *Controller) BindHandlers(m *ActionMap) {
	m.Bind(ActionMove, func(i Intent) {
		c.Locomotion.OnMoveInput(c.char, i.(MoveIntent).Axis)
	})
	m.Bind(ActionLook, func(i Intent) {
		c.Locomotion.OnLookInput(i.(LookIntent).Axis)
	})
	m.Bind(ActionRun, func(i Intent) {
		if i.(RunIntent).Pressed {
			c.Locomotion.RunPressed(c.char)
		} else {
			c.Locomotion.RunReleased(c.char)
		}
	})
	m.Bind(ActionDance, func(Intent) { c.Locomotion.Dance(c.char) })
	m.Bind(ActionJump, func(Intent) { c.Jump.QueueJumpInput(c.char) })
	m.Bind(ActionCrouch, func(Intent) { c.Stance.ToggleCrouch(c.char) })
	m.Bind(ActionProne, func(Intent) { c.Stance.ToggleProne(c.char) })
	m.Bind(ActionSlide, func(i Intent) {
		c.Stance.SetSlideHeld(c.char, i.(SlideIntent).Pressed)
	})
}

// Notify handles an animation notify
func (c *Controller) Notify(ev entity.AnimEvent) {
	switch ev {
	case entity.AnimJumpLiftoff:
		c.Jump.ApplyJumpForce(c.char)
	case entity.AnimFlipStart:
		c.Jump.TriggerFlip(c.char)
	case entity.AnimFlipEnd:
		c.Jump.EndFlip(c.char)
	case entity.AnimProneTransitionStart:
		c.Stance.StartProneTransition(c.char)
	case entity.AnimProneTransitionEnd:
		c.Stance.EndProneTransition(c.char)
	default:
		c.logger.Warn("unknown animation event", "event", ev)
	}
}

// Snapshot returns the read-only state
func (c *Controller) Snapshot() entity.Snapshot {
	return c.char.Snapshot()
}

// SpeedCap returns the cap for the current state
func (c *Controller) SpeedCap() float64 {
	return speedCapOf(c.config, c.char)
}
