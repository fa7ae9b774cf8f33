package system

import (
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// AnimationSystem stands in for an animation graph: it watches the
// character's state and fires notifies at fixed offsets into each clip.
type AnimationSystem struct {
	config *config.AnimationConfig

	liftoffTimer float64
	liftoffArmed bool

	flipTimer  float64
	flipActive bool

	proneTimer  float64
	proneActive bool
}

// NewAnimationSystem creates a new animation timeline
func NewAnimationSystem(cfg *config.AnimationConfig) *AnimationSystem {
	return &AnimationSystem{config: cfg}
}

// Update advances the clips by dt and returns the notifies that fired, in order
func (s *AnimationSystem) Update(snap entity.Snapshot, dt float64) []entity.AnimEvent {
	var events []entity.AnimEvent

	// Jump clip: liftoff a short while after the ground jump is armed
	groundJump := snap.JumpPending && snap.Jumping && !snap.Flipping
	if groundJump && !s.liftoffArmed {
		s.liftoffArmed = true
		s.liftoffTimer = s.config.JumpLiftoffDelay
	}
	if s.liftoffArmed {
		s.liftoffTimer -= dt
		switch {
		case !snap.JumpPending:
			s.liftoffArmed = false
		case s.liftoffTimer <= 0:
			s.liftoffArmed = false
			events = append(events, entity.AnimJumpLiftoff)
		}
	}

	// Flip clip
	if snap.Flipping && !s.flipActive {
		s.flipActive = true
		s.flipTimer = s.config.FlipDuration
	}
	if s.flipActive {
		s.flipTimer -= dt
		if s.flipTimer <= 0 || !snap.Flipping {
			s.flipActive = false
			if snap.Flipping {
				events = append(events, entity.AnimFlipEnd)
			}
		}
	}

	// Crouch <-> prone capsule clip
	if snap.StanceTransitioning && !s.proneActive {
		s.proneActive = true
		s.proneTimer = s.config.ProneTransitionDuration
	}
	if s.proneActive {
		s.proneTimer -= dt
		if s.proneTimer <= 0 || !snap.StanceTransitioning {
			s.proneActive = false
			if snap.StanceTransitioning {
				events = append(events, entity.AnimProneTransitionEnd)
			}
		}
	}

	return events
}

// Reset stops every clip
func (s *AnimationSystem) Reset() {
	*s = AnimationSystem{config: s.config}
}
