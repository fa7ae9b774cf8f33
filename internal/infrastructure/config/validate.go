package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid locomotion config")

// Validate checks the values the state machine relies on.
func (c *LocomotionConfig) Validate() error {
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: display.framerate must be positive, got %d", ErrInvalidConfig, c.Display.Framerate)
	}
	if c.Prone.HalfHeight <= 0 {
		return fmt.Errorf("%w: prone.halfHeight must be positive, got %v", ErrInvalidConfig, c.Prone.HalfHeight)
	}
	if c.Crouch.CrouchHalfHeight < c.Prone.HalfHeight {
		return fmt.Errorf("%w: crouch.crouchHalfHeight (%v) is below prone.halfHeight (%v)",
			ErrInvalidConfig, c.Crouch.CrouchHalfHeight, c.Prone.HalfHeight)
	}
	if c.Crouch.StandHalfHeight < c.Crouch.CrouchHalfHeight {
		return fmt.Errorf("%w: crouch.standHalfHeight (%v) is below crouch.crouchHalfHeight (%v)",
			ErrInvalidConfig, c.Crouch.StandHalfHeight, c.Crouch.CrouchHalfHeight)
	}
	if c.Jump.BufferTime < 0 {
		return fmt.Errorf("%w: jump.bufferTime must not be negative, got %v", ErrInvalidConfig, c.Jump.BufferTime)
	}
	if c.Camera.PitchMin > c.Camera.PitchMax {
		return fmt.Errorf("%w: camera.pitchMin (%v) exceeds camera.pitchMax (%v)",
			ErrInvalidConfig, c.Camera.PitchMin, c.Camera.PitchMax)
	}
	if c.Slide.Enabled {
		if c.Slide.HalfHeight <= 0 || c.Slide.HalfHeight > c.Crouch.CrouchHalfHeight {
			return fmt.Errorf("%w: slide.halfHeight must be in (0, %v], got %v",
				ErrInvalidConfig, c.Crouch.CrouchHalfHeight, c.Slide.HalfHeight)
		}
		if c.Slide.Friction < 0 || c.Slide.MinSpeed < 0 {
			return fmt.Errorf("%w: slide.friction and slide.minSpeed must not be negative", ErrInvalidConfig)
		}
	}
	if c.Physics.CapsuleRadius <= 0 {
		return fmt.Errorf("%w: physics.capsuleRadius must be positive, got %v", ErrInvalidConfig, c.Physics.CapsuleRadius)
	}
	return nil
}
