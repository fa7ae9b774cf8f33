package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// SpeedCap selects the max speed: Proning > Crouching > Running > Walking.
// Running only sprints while the forward axis is not negative; a negative
// forward axis uses the crouch and prone backward speeds when they are set.
func SpeedCap(cfg *config.LocomotionConfig, stance entity.Stance, running bool, forwardAxis float64) float64 {
	backward := forwardAxis < 0
	switch {
	case stance == entity.StanceProning:
		if backward && cfg.Prone.BackwardSpeed > 0 {
			return cfg.Prone.BackwardSpeed
		}
		return cfg.Prone.Speed
	case stance == entity.StanceCrouching:
		if backward && cfg.Crouch.BackwardSpeed > 0 {
			return cfg.Crouch.BackwardSpeed
		}
		return cfg.Crouch.Speed
	case running && !backward:
		return cfg.Movement.SprintSpeed
	default:
		return cfg.Movement.WalkSpeed
	}
}

// speedCapOf is the cap for char; a slide overrides the stance cap with its own speed
func speedCapOf(cfg *config.LocomotionConfig, char *entity.Character) float64 {
	if char.Slide.Active {
		return char.Slide.Speed()
	}
	return SpeedCap(cfg, char.Stance(), char.Running, char.ForwardInput())
}

// pushSpeedCap recomputes the cap for char and hands it to the mover
func pushSpeedCap(cfg *config.LocomotionConfig, mover Mover, char *entity.Character) {
	mover.SetMaxSpeed(speedCapOf(cfg, char))
}

// LocomotionSystem turns move/look input into movement, facing and speed
type LocomotionSystem struct {
	config *config.LocomotionConfig
	mover  Mover
	view   ViewController
}

// NewLocomotionSystem creates a new locomotion system.
// view may be nil until a controller possesses the character.
func NewLocomotionSystem(cfg *config.LocomotionConfig, mover Mover, view ViewController) *LocomotionSystem {
	return &LocomotionSystem{config: cfg, mover: mover, view: view}
}

// SetView attaches or detaches the possessing controller
func (s *LocomotionSystem) SetView(view ViewController) {
	s.view = view
}

// OnMoveInput handles a move event. axis.X is strafe, axis.Y is forward.
func (s *LocomotionSystem) OnMoveInput(char *entity.Character, axis mgl64.Vec2) {
	// Recorded even when movement is suppressed below
	char.Intent = entity.MovementIntent{Axis: axis}

	if s.view == nil || char.StanceTransitioning {
		return
	}

	if char.Dancing {
		if entity.NearlyZero2(axis) {
			return
		}
		char.Dancing = false
	}

	cam := s.view.CameraRotation()
	cam.Pitch, cam.Roll = 0, 0

	move := cam.Forward().Mul(axis.Y()).Add(cam.Right().Mul(axis.X()))
	if entity.NearlyZero3(move) {
		return
	}

	dir := move.Normalize()
	// A slide carries its own velocity; the input only steers it
	if !char.Slide.Active {
		s.mover.AddMovementInput(dir, 1.0)
	}

	targetYaw := entity.YawOf(dir)
	if axis.X() == 0 && axis.Y() < 0 {
		// Backpedal: keep facing the camera-forward direction
		targetYaw += 180
	}
	targetYaw = entity.NormalizeAxis(targetYaw)

	char.Intent.Direction = dir
	char.Intent.TargetYaw = targetYaw
	char.FacingYaw = entity.InterpYaw(char.FacingYaw, targetYaw, s.mover.ElapsedTickSeconds(), s.config.Movement.RotationSpeed)

	pushSpeedCap(s.config, s.mover, char)
}

// OnLookInput accumulates look input into the control rotation and clamps pitch
// to the window around the spawn pitch.
func (s *LocomotionSystem) OnLookInput(axis mgl64.Vec2) {
	if s.view == nil || entity.NearlyZero2(axis) {
		return
	}

	cam := s.config.Camera
	rot := s.view.ControlRotation()
	rot.Yaw = entity.NormalizeAxis(rot.Yaw + axis.X()*cam.Sensitivity)
	rot.Pitch += axis.Y() * cam.VerticalSensitivity
	rot.Pitch = entity.ClampAngle(rot.Pitch, cam.SpawnPitch+cam.PitchMin, cam.SpawnPitch+cam.PitchMax)

	s.view.SetControlRotation(rot)
}

// RunPressed starts running
func (s *LocomotionSystem) RunPressed(char *entity.Character) {
	char.Running = true
	pushSpeedCap(s.config, s.mover, char)
}

// RunReleased stops running
func (s *LocomotionSystem) RunReleased(char *entity.Character) {
	char.Running = false
	pushSpeedCap(s.config, s.mover, char)
}

// Dance starts the dance; the next non-zero move input cancels it
func (s *LocomotionSystem) Dance(char *entity.Character) {
	char.Dancing = true
}
