package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
	"github.com/younwookim/locomotion/internal/infrastructure/logger"
)

const testDT = 1.0 / 60

// createTestArena has a wall at X 400..500 and a low ceiling over X 200..300
func createTestArena() *entity.Arena {
	return &entity.Arena{
		Width: 1000,
		Depth: 1000,
		Spawn: mgl64.Vec3{100, 500, 0},
		Obstacles: []entity.Obstacle{
			{Min: mgl64.Vec3{400, 0, 0}, Max: mgl64.Vec3{500, 1000, 400}},
			{Min: mgl64.Vec3{200, 400, 120}, Max: mgl64.Vec3{300, 600, 160}},
		},
	}
}

func createTestMover() *KinematicMover {
	return NewKinematicMover(config.DefaultLocomotionConfig(), createTestArena())
}

func stepN(m *KinematicMover, n int, dir mgl64.Vec3) {
	for i := 0; i < n; i++ {
		if dir != (mgl64.Vec3{}) {
			m.AddMovementInput(dir, 1)
		}
		m.Step(testDT)
	}
}

func TestNewKinematicMover(t *testing.T) {
	m := createTestMover()

	assert.Equal(t, mgl64.Vec3{100, 500, 88}, m.Location())
	assert.True(t, m.IsGrounded())
	assert.False(t, m.IsFalling())
	assert.Equal(t, 88.0, m.HalfHeight())
	assert.Equal(t, 34.0, m.CapsuleRadius())
	assert.Equal(t, 300.0, m.MaxSpeed())
}

func TestKinematicMover_Acceleration(t *testing.T) {
	m := createTestMover()

	stepN(m, 60, mgl64.Vec3{0, 1, 0})

	assert.InDelta(t, 300.0, m.Velocity().Len(), 1e-6)
	assert.Greater(t, m.Location().Y(), 700.0)
	assert.True(t, m.IsGrounded())
	assert.Equal(t, testDT, m.ElapsedTickSeconds())
}

func TestKinematicMover_Braking(t *testing.T) {
	m := createTestMover()
	stepN(m, 30, mgl64.Vec3{0, 1, 0})
	require.Greater(t, m.Velocity().Len(), 0.0)

	stepN(m, 30, mgl64.Vec3{})

	assert.InDelta(t, 0.0, m.Velocity().Len(), 1e-9)
}

func TestKinematicMover_LowerCapClamps(t *testing.T) {
	m := createTestMover()
	m.SetLocation(mgl64.Vec3{600, 40, 88})
	m.SetMaxSpeed(600)
	stepN(m, 60, mgl64.Vec3{0, 1, 0})
	require.InDelta(t, 600.0, m.Velocity().Len(), 1e-6)

	m.SetMaxSpeed(125)
	stepN(m, 1, mgl64.Vec3{0, 1, 0})

	assert.LessOrEqual(t, m.Velocity().Len(), 125.0+1e-9)
}

func TestKinematicMover_JumpArc(t *testing.T) {
	m := createTestMover()

	m.ApplyImpulse(mgl64.Vec3{0, 0, 1000})
	assert.False(t, m.IsGrounded())
	assert.False(t, m.IsFalling())

	sawFalling := false
	peak := 0.0
	for i := 0; i < 120; i++ {
		m.Step(testDT)
		if m.IsFalling() {
			sawFalling = true
		}
		if z := m.Location().Z(); z > peak {
			peak = z
		}
	}

	assert.True(t, sawFalling)
	// v^2 / 2g with g = 980 * 2
	assert.InDelta(t, 88+1000.0*1000/(2*1960), peak, 20)
	assert.True(t, m.IsGrounded())
	assert.InDelta(t, 88.0, m.Location().Z(), 1e-9)
}

func TestKinematicMover_Walls(t *testing.T) {
	t.Run("wall stops the capsule", func(t *testing.T) {
		m := createTestMover()
		m.SetLocation(mgl64.Vec3{340, 200, 88})

		stepN(m, 60, mgl64.Vec3{1, 0, 0})

		assert.LessOrEqual(t, m.Location().X(), 400-34.0)
		assert.Greater(t, m.Location().X(), 350.0)
	})

	t.Run("standing capsule is stopped by a low ceiling", func(t *testing.T) {
		m := createTestMover()

		stepN(m, 60, mgl64.Vec3{1, 0, 0})

		assert.LessOrEqual(t, m.Location().X(), 200-34.0)
	})

	t.Run("crouched capsule passes under a low ceiling", func(t *testing.T) {
		m := createTestMover()
		m.SetCapsuleHalfHeight(44, true)
		require.Equal(t, 44.0, m.Location().Z())

		stepN(m, 60, mgl64.Vec3{1, 0, 0})

		assert.Greater(t, m.Location().X(), 300.0)
	})

	t.Run("arena edge", func(t *testing.T) {
		m := createTestMover()

		stepN(m, 60, mgl64.Vec3{-1, 0, 0})

		assert.GreaterOrEqual(t, m.Location().X(), 34.0)
	})
}

func TestKinematicMover_SetCapsuleHalfHeight(t *testing.T) {
	m := createTestMover()

	m.SetCapsuleHalfHeight(40, true)

	assert.Equal(t, 40.0, m.HalfHeight())
	assert.Equal(t, 40.0, m.Location().Z(), "the base stays on the floor")
}

func TestKinematicMover_AddWorldOffset(t *testing.T) {
	t.Run("sweep stops at the floor", func(t *testing.T) {
		m := createTestMover()

		m.AddWorldOffset(mgl64.Vec3{0, 0, -20}, true)

		assert.Equal(t, 88.0, m.Location().Z())
	})

	t.Run("sweep moves while clear", func(t *testing.T) {
		m := createTestMover()

		m.AddWorldOffset(mgl64.Vec3{0, 0, 2}, true)

		assert.InDelta(t, 90.0, m.Location().Z(), 1e-9)
	})

	t.Run("teleport ignores collision", func(t *testing.T) {
		m := createTestMover()

		m.AddWorldOffset(mgl64.Vec3{0, 0, -20}, false)

		assert.Equal(t, 68.0, m.Location().Z())
	})
}

func TestKinematicMover_SweepTest(t *testing.T) {
	m := createTestMover()

	tests := []struct {
		name string
		from mgl64.Vec3
		to   mgl64.Vec3
		want bool
	}{
		{"open floor", mgl64.Vec3{100, 500, 88}, mgl64.Vec3{100, 500, 127}, false},
		{"under the ceiling", mgl64.Vec3{250, 500, 88}, mgl64.Vec3{250, 500, 127}, true},
		{"beside the ceiling", mgl64.Vec3{250, 300, 88}, mgl64.Vec3{250, 300, 127}, false},
		{"prone under the ceiling", mgl64.Vec3{250, 500, 40}, mgl64.Vec3{250, 500, 39}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.SweepTest(34, tt.from, tt.to))
		})
	}
}

// The controller on a real mover keeps a crouch under a low ceiling
func TestKinematicMover_ControllerStandUpBlocked(t *testing.T) {
	cfg := config.DefaultLocomotionConfig()
	m := NewKinematicMover(cfg, createTestArena())
	ctrl := NewController(cfg, m, m, &fakeView{}, logger.Nop())
	actions := NewActionMap()
	ctrl.BindHandlers(actions)

	actions.Dispatch(CrouchIntent{})
	require.True(t, ctrl.Character().IsCrouching())
	assert.Equal(t, 44.0, m.Location().Z())

	m.SetLocation(mgl64.Vec3{250, 500, 44})
	actions.Dispatch(CrouchIntent{})
	assert.True(t, ctrl.Character().IsCrouching())
	assert.Equal(t, 44.0, m.HalfHeight())

	m.SetLocation(mgl64.Vec3{100, 500, 44})
	actions.Dispatch(CrouchIntent{})
	assert.Equal(t, entity.StanceStanding, ctrl.Character().Stance())
	assert.Equal(t, 88.0, m.Location().Z())
}

func TestKinematicMover_BeginTick(t *testing.T) {
	m := createTestMover()
	require.Zero(t, m.ElapsedTickSeconds())

	m.BeginTick(testDT)

	assert.Equal(t, testDT, m.ElapsedTickSeconds(), "visible before the tick is integrated")
	assert.Equal(t, mgl64.Vec3{100, 500, 88}, m.Location())
}

func TestKinematicMover_GroundNormal(t *testing.T) {
	var sensor GroundSensor = createTestMover()

	assert.Equal(t, mgl64.Vec3{0, 0, 1}, sensor.GroundNormal())
}

// A slide ending under the low ceiling settles into a crouch
func TestKinematicMover_SlideEndsUnderCeiling(t *testing.T) {
	cfg := config.DefaultLocomotionConfig()
	m := NewKinematicMover(cfg, createTestArena())
	ctrl := NewController(cfg, m, m, &fakeView{}, logger.Nop())
	actions := NewActionMap()
	ctrl.BindHandlers(actions)

	actions.Dispatch(RunIntent{Pressed: true})
	actions.Dispatch(SlideIntent{Pressed: true})
	actions.Dispatch(MoveIntent{Axis: mgl64.Vec2{0, 1}})
	ctrl.Advance(testDT)

	require.True(t, ctrl.Snapshot().Sliding)
	assert.Equal(t, 40.0, m.HalfHeight())
	assert.Equal(t, 40.0, m.Location().Z())
	assert.Equal(t, 600.0, m.Velocity().X())

	m.SetLocation(mgl64.Vec3{250, 500, 40})
	actions.Dispatch(SlideIntent{Pressed: false})
	ctrl.Advance(testDT)

	assert.False(t, ctrl.Snapshot().Sliding)
	assert.Equal(t, entity.StanceCrouching, ctrl.Character().Stance())
	assert.Equal(t, 44.0, m.HalfHeight())
	assert.Equal(t, 44.0, m.Location().Z())
}
