package playing

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/system"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// Session is one character in one arena, stepped a tick at a time. It has no
// rendering so replays can run it headless.
type Session struct {
	config  *config.LocomotionConfig
	arena   *entity.Arena
	mover   *system.KinematicMover
	camera  *Camera
	ctrl    *system.Controller
	actions *system.ActionMap
	anim    *system.AnimationSystem
	logger  *slog.Logger
	frame   int
}

// NewSession builds the arena from the stage and spawns the character
func NewSession(cfg *config.GameConfig, logger *slog.Logger) *Session {
	arena := system.LoadArena(cfg.Stage)
	mover := system.NewKinematicMover(cfg.Locomotion, arena)
	camera := NewCamera(cfg.Stage.SpawnYaw)

	ctrl := system.NewController(cfg.Locomotion, mover, mover, camera, logger)
	actions := system.NewActionMap()
	ctrl.BindHandlers(actions)

	logger.Info("session started",
		"stage", cfg.Stage.ID,
		"obstacles", len(arena.Obstacles),
		"spawn", arena.Spawn)

	return &Session{
		config:  cfg.Locomotion,
		arena:   arena,
		mover:   mover,
		camera:  camera,
		ctrl:    ctrl,
		actions: actions,
		anim:    system.NewAnimationSystem(&cfg.Locomotion.Animation),
		logger:  logger,
	}
}

// Step runs one tick: the state machine, then input, then motion, then the
// animation notifies the new state produced
func (s *Session) Step(input system.InputState, dt float64) {
	// Move handlers interpolate facing with this tick's dt
	s.mover.BeginTick(dt)
	s.ctrl.Advance(dt)

	for _, intent := range input.Intents() {
		s.actions.Dispatch(intent)
	}

	s.mover.Step(dt)

	for _, ev := range s.anim.Update(s.ctrl.Snapshot(), dt) {
		s.logger.Debug("anim notify", "frame", s.frame, "event", ev)
		s.ctrl.Notify(ev)
	}

	s.frame++
}

// Snapshot returns the character state
func (s *Session) Snapshot() entity.Snapshot {
	return s.ctrl.Snapshot()
}

// Location returns the capsule center
func (s *Session) Location() mgl64.Vec3 {
	return s.mover.Location()
}

// Velocity returns the mover velocity
func (s *Session) Velocity() mgl64.Vec3 {
	return s.mover.Velocity()
}

// MaxSpeed returns the speed cap the mover is using
func (s *Session) MaxSpeed() float64 {
	return s.mover.MaxSpeed()
}

// Grounded reports whether the character stands on something
func (s *Session) Grounded() bool {
	return s.mover.IsGrounded()
}

// ControlRotation returns the view rotation
func (s *Session) ControlRotation() entity.Rotator {
	return s.camera.ControlRotation()
}

// Arena returns the play space
func (s *Session) Arena() *entity.Arena {
	return s.arena
}

// Frame returns how many ticks have run
func (s *Session) Frame() int {
	return s.frame
}

// InputFromReplay converts a recorded frame back into live input
func InputFromReplay(in replay.ReplayInput) system.InputState {
	return system.InputState{
		Move:          in.Move,
		Look:          in.Look,
		RunPressed:    in.RunPressed,
		RunReleased:   in.RunReleased,
		Dance:         in.Dance,
		Jump:          in.Jump,
		Crouch:        in.Crouch,
		Prone:         in.Prone,
		SlidePressed:  in.SlidePressed,
		SlideReleased: in.SlideReleased,
	}
}
