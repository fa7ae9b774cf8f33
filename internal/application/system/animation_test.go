package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

func newTestAnimation() *AnimationSystem {
	return NewAnimationSystem(&config.AnimationConfig{
		JumpLiftoffDelay:        0.1,
		FlipDuration:            0.5,
		ProneTransitionDuration: 0.8,
	})
}

// run feeds the same snapshot for n ticks of 0.05s and collects the events
func run(s *AnimationSystem, snap entity.Snapshot, n int) []entity.AnimEvent {
	var events []entity.AnimEvent
	for i := 0; i < n; i++ {
		events = append(events, s.Update(snap, 0.05)...)
	}
	return events
}

func TestAnimationSystem_Liftoff(t *testing.T) {
	s := newTestAnimation()
	snap := entity.Snapshot{Jumping: true, JumpPending: true}

	assert.Empty(t, run(s, snap, 1))
	assert.Equal(t, []entity.AnimEvent{entity.AnimJumpLiftoff}, run(s, snap, 1))

	// The notify cleared the pending jump
	assert.Empty(t, run(s, entity.Snapshot{Jumping: true}, 5))
}

func TestAnimationSystem_LiftoffCancelled(t *testing.T) {
	s := newTestAnimation()
	run(s, entity.Snapshot{Jumping: true, JumpPending: true}, 1)

	// Landing reset the pending jump before liftoff
	assert.Empty(t, run(s, entity.Snapshot{}, 5))
}

func TestAnimationSystem_NoLiftoffForFlip(t *testing.T) {
	s := newTestAnimation()
	snap := entity.Snapshot{Jumping: true, JumpPending: true, Flipping: true}

	events := run(s, snap, 5)

	assert.NotContains(t, events, entity.AnimJumpLiftoff)
}

func TestAnimationSystem_FlipEnd(t *testing.T) {
	tests := []struct {
		name  string
		ticks int
		want  []entity.AnimEvent
	}{
		{"mid clip", 5, nil},
		{"clip done", 11, []entity.AnimEvent{entity.AnimFlipEnd}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestAnimation()
			snap := entity.Snapshot{Flipping: true, Jumping: true}

			assert.Equal(t, tt.want, run(s, snap, tt.ticks))
		})
	}
}

func TestAnimationSystem_FlipInterrupted(t *testing.T) {
	s := newTestAnimation()
	run(s, entity.Snapshot{Flipping: true}, 3)

	// Landing cleared the flip before the clip finished
	assert.Empty(t, run(s, entity.Snapshot{}, 20))
}

func TestAnimationSystem_ProneTransitionEnd(t *testing.T) {
	s := newTestAnimation()
	snap := entity.Snapshot{StanceTransitioning: true, Proning: true}

	assert.Empty(t, run(s, snap, 15))
	assert.Equal(t, []entity.AnimEvent{entity.AnimProneTransitionEnd}, run(s, snap, 2))
}

func TestAnimationSystem_Reset(t *testing.T) {
	s := newTestAnimation()
	run(s, entity.Snapshot{StanceTransitioning: true}, 10)

	s.Reset()

	assert.False(t, s.proneActive)
	assert.Equal(t, 0.8, s.config.ProneTransitionDuration)
}
