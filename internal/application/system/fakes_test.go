package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
	"github.com/younwookim/locomotion/internal/infrastructure/logger"
)

// fakeMover records every call the systems make
type fakeMover struct {
	grounded   bool
	falling    bool
	maxSpeed   float64
	location   mgl64.Vec3
	radius     float64
	halfHeight float64
	tick       float64

	inputs   []mgl64.Vec3
	impulses []mgl64.Vec3
	offsets  []mgl64.Vec3
	resizes  []float64
}

func newFakeMover() *fakeMover {
	return &fakeMover{grounded: true, radius: 34, tick: 1.0 / 60}
}

func (m *fakeMover) IsGrounded() bool { return m.grounded }
func (m *fakeMover) IsFalling() bool { return m.falling }
func (m *fakeMover) SetMaxSpeed(speed float64) { m.maxSpeed = speed }
func (m *fakeMover) Location() mgl64.Vec3 { return m.location }
func (m *fakeMover) CapsuleRadius() float64 { return m.radius }
func (m *fakeMover) ElapsedTickSeconds() float64 { return m.tick }

func (m *fakeMover) AddMovementInput(dir mgl64.Vec3, scale float64) {
	m.inputs = append(m.inputs, dir.Mul(scale))
}

func (m *fakeMover) ApplyImpulse(impulse mgl64.Vec3) {
	m.impulses = append(m.impulses, impulse)
}

func (m *fakeMover) SetCapsuleHalfHeight(halfHeight float64, sweep bool) {
	m.halfHeight = halfHeight
	m.resizes = append(m.resizes, halfHeight)
}

func (m *fakeMover) AddWorldOffset(offset mgl64.Vec3, sweep bool) {
	m.offsets = append(m.offsets, offset)
	m.location = m.location.Add(offset)
}

// airborne puts the mover in the air, rising or falling
func (m *fakeMover) airborne(falling bool) {
	m.grounded = false
	m.falling = falling
}

func (m *fakeMover) land() {
	m.grounded = true
	m.falling = false
}

// fakeSweeper reports every sweep as blocked or clear. A non-zero ceiling
// blocks only sweeps that end above it.
type fakeSweeper struct {
	blocked bool
	ceiling float64
	calls   int
	from    mgl64.Vec3
	to      mgl64.Vec3
}

func (s *fakeSweeper) SweepTest(radius float64, from, to mgl64.Vec3) bool {
	s.calls++
	s.from, s.to = from, to
	if s.ceiling != 0 && to.Z() > s.ceiling {
		return true
	}
	return s.blocked
}

// fakeView is a controller whose camera follows the control rotation
type fakeView struct {
	control entity.Rotator
}

func (v *fakeView) CameraRotation() entity.Rotator { return v.control }
func (v *fakeView) ControlRotation() entity.Rotator { return v.control }
func (v *fakeView) SetControlRotation(rot entity.Rotator) {
	v.control = rot
}

type testRig struct {
	cfg     *config.LocomotionConfig
	mover   *fakeMover
	sweeper *fakeSweeper
	view    *fakeView
	ctrl    *Controller
	actions *ActionMap
}

func newTestRig() *testRig {
	cfg := config.DefaultLocomotionConfig()
	mover := newFakeMover()
	sweeper := &fakeSweeper{}
	view := &fakeView{}

	ctrl := NewController(cfg, mover, sweeper, view, logger.Nop())
	actions := NewActionMap()
	ctrl.BindHandlers(actions)

	return &testRig{cfg: cfg, mover: mover, sweeper: sweeper, view: view, ctrl: ctrl, actions: actions}
}

func (r *testRig) char() *entity.Character {
	return r.ctrl.Character()
}

func (r *testRig) send(intents ...Intent) {
	for _, i := range intents {
		r.actions.Dispatch(i)
	}
}

func (r *testRig) tick() {
	r.ctrl.Advance(1.0 / 60)
}
