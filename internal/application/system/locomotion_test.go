package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

func TestSpeedCap(t *testing.T) {
	cfg := config.DefaultLocomotionConfig()

	tests := []struct {
		name    string
		stance  entity.Stance
		running bool
		forward float64
		want    float64
	}{
		{"walking", entity.StanceStanding, false, 1, 300},
		{"sprinting forward", entity.StanceStanding, true, 1, 600},
		{"sprinting strafe", entity.StanceStanding, true, 0, 600},
		{"running backward walks", entity.StanceStanding, true, -1, 300},
		{"crouching", entity.StanceCrouching, false, 1, 200},
		{"crouching overrides running", entity.StanceCrouching, true, 1, 200},
		{"prone", entity.StanceProning, false, 1, 125},
		{"prone overrides running", entity.StanceProning, true, 1, 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpeedCap(cfg, tt.stance, tt.running, tt.forward))
		})
	}
}

func TestSpeedCap_BackwardSpeeds(t *testing.T) {
	cfg := config.DefaultLocomotionConfig()
	cfg.Crouch.BackwardSpeed = 180
	cfg.Prone.BackwardSpeed = 100

	tests := []struct {
		name    string
		stance  entity.Stance
		forward float64
		want    float64
	}{
		{"crouch forward", entity.StanceCrouching, 1, 200},
		{"crouch strafe", entity.StanceCrouching, 0, 200},
		{"crouch backward", entity.StanceCrouching, -1, 180},
		{"prone forward", entity.StanceProning, 1, 125},
		{"prone backward", entity.StanceProning, -0.5, 100},
		{"standing ignores them", entity.StanceStanding, -1, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpeedCap(cfg, tt.stance, false, tt.forward))
		})
	}

	t.Run("unset falls back to the forward speed", func(t *testing.T) {
		assert.Equal(t, 200.0, SpeedCap(config.DefaultLocomotionConfig(), entity.StanceCrouching, false, -1))
	})
}

func TestLocomotionSystem_OnMoveInput(t *testing.T) {
	t.Run("moves along camera forward", func(t *testing.T) {
		r := newTestRig()

		r.send(MoveIntent{Axis: mgl64.Vec2{0, 1}})

		require.Len(t, r.mover.inputs, 1)
		assert.InDelta(t, 1.0, r.mover.inputs[0].X(), 1e-9)
		assert.InDelta(t, 0.0, r.mover.inputs[0].Y(), 1e-9)
		assert.Equal(t, mgl64.Vec2{0, 1}, r.char().Intent.Axis)
		assert.InDelta(t, 0.0, r.char().Intent.TargetYaw, 1e-9)
	})

	t.Run("camera yaw rotates the move direction", func(t *testing.T) {
		r := newTestRig()
		r.view.control.Yaw = 90

		r.send(MoveIntent{Axis: mgl64.Vec2{0, 1}})

		require.Len(t, r.mover.inputs, 1)
		assert.InDelta(t, 0.0, r.mover.inputs[0].X(), 1e-9)
		assert.InDelta(t, 1.0, r.mover.inputs[0].Y(), 1e-9)
	})

	t.Run("backpedal keeps facing the camera", func(t *testing.T) {
		r := newTestRig()

		r.send(MoveIntent{Axis: mgl64.Vec2{0, -1}})

		require.Len(t, r.mover.inputs, 1)
		assert.InDelta(t, -1.0, r.mover.inputs[0].X(), 1e-9)
		assert.InDelta(t, 0.0, r.char().Intent.TargetYaw, 1e-9)
		assert.InDelta(t, 0.0, r.char().FacingYaw, 1e-9)
	})

	t.Run("diagonal backward turns toward the motion", func(t *testing.T) {
		r := newTestRig()

		r.send(MoveIntent{Axis: mgl64.Vec2{1, -1}})

		assert.InDelta(t, 135.0, r.char().Intent.TargetYaw, 1e-9)
	})

	t.Run("facing interpolates by tick and rotation speed", func(t *testing.T) {
		r := newTestRig()

		r.send(MoveIntent{Axis: mgl64.Vec2{1, 0}})

		// alpha = 1/60 * 10
		assert.InDelta(t, 90.0, r.char().Intent.TargetYaw, 1e-9)
		assert.InDelta(t, 15.0, r.char().FacingYaw, 1e-9)
	})

	t.Run("zero axis records intent but does not move", func(t *testing.T) {
		r := newTestRig()

		r.send(MoveIntent{Axis: mgl64.Vec2{}})

		assert.Empty(t, r.mover.inputs)
		assert.Equal(t, mgl64.Vec2{}, r.char().Intent.Axis)
	})

	t.Run("blocked while a stance transition runs", func(t *testing.T) {
		r := newTestRig()
		r.char().StanceTransitioning = true

		r.send(MoveIntent{Axis: mgl64.Vec2{0, 1}})

		assert.Empty(t, r.mover.inputs)
		assert.Equal(t, mgl64.Vec2{0, 1}, r.char().Intent.Axis)
	})

	t.Run("allowed while crouched", func(t *testing.T) {
		r := newTestRig()
		r.send(CrouchIntent{})
		require.True(t, r.char().IsCrouching())

		r.send(MoveIntent{Axis: mgl64.Vec2{0, 1}})

		assert.Len(t, r.mover.inputs, 1)
		assert.Equal(t, 200.0, r.mover.maxSpeed)
	})

	t.Run("no controller means no movement", func(t *testing.T) {
		r := newTestRig()
		r.ctrl.Locomotion.SetView(nil)

		r.send(MoveIntent{Axis: mgl64.Vec2{0, 1}})

		assert.Empty(t, r.mover.inputs)
	})
}

func TestLocomotionSystem_Dance(t *testing.T) {
	r := newTestRig()

	r.send(DanceIntent{})
	require.True(t, r.char().Dancing)

	// Idle input keeps dancing
	r.send(MoveIntent{Axis: mgl64.Vec2{}})
	assert.True(t, r.char().Dancing)
	assert.Empty(t, r.mover.inputs)

	// Any real input cancels the dance and moves this same tick
	r.send(MoveIntent{Axis: mgl64.Vec2{0, 1}})
	assert.False(t, r.char().Dancing)
	assert.Len(t, r.mover.inputs, 1)
}

func TestLocomotionSystem_OnLookInput(t *testing.T) {
	tests := []struct {
		name      string
		axis      mgl64.Vec2
		wantYaw   float64
		wantPitch float64
	}{
		{"small look", mgl64.Vec2{4, 4}, 3, -17},
		{"pitch clamps at the top", mgl64.Vec2{0, 80}, 0, 25},
		{"pitch clamps at the bottom", mgl64.Vec2{0, -80}, 0, -35},
		{"yaw wraps", mgl64.Vec2{400, 0}, -60, -20},
		{"zero is ignored", mgl64.Vec2{}, 0, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig()
			require.Equal(t, -20.0, r.view.control.Pitch)

			r.send(LookIntent{Axis: tt.axis})

			assert.InDelta(t, tt.wantYaw, r.view.control.Yaw, 1e-9)
			assert.InDelta(t, tt.wantPitch, r.view.control.Pitch, 1e-9)
		})
	}
}

func TestLocomotionSystem_Run(t *testing.T) {
	r := newTestRig()
	assert.Equal(t, 300.0, r.mover.maxSpeed)

	r.send(RunIntent{Pressed: true})
	assert.True(t, r.char().Running)
	assert.Equal(t, 600.0, r.mover.maxSpeed)

	// Running backward drops to walk speed
	r.send(MoveIntent{Axis: mgl64.Vec2{0, -1}})
	assert.Equal(t, 300.0, r.mover.maxSpeed)

	r.send(MoveIntent{Axis: mgl64.Vec2{0, 1}})
	assert.Equal(t, 600.0, r.mover.maxSpeed)

	r.send(RunIntent{Pressed: false})
	assert.False(t, r.char().Running)
	assert.Equal(t, 300.0, r.mover.maxSpeed)
}
