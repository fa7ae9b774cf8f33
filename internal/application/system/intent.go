package system

import "github.com/go-gl/mathgl/mgl64"

// Action names an input action a handler can be bound to
type Action int

const (
	ActionMove Action = iota
	ActionLook
	ActionRun
	ActionDance
	ActionJump
	ActionCrouch
	ActionProne
	ActionSlide
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionLook:
		return "Look"
	case ActionRun:
		return "Run"
	case ActionDance:
		return "Dance"
	case ActionJump:
		return "Jump"
	case ActionCrouch:
		return "Crouch"
	case ActionProne:
		return "Prone"
	case ActionSlide:
		return "Slide"
	default:
		return "Unknown"
	}
}

// Intent represents an input event the character should react to
type Intent interface {
	Action() Action
}

// MoveIntent carries the move axis (X strafe, Y forward)
type MoveIntent struct {
	Axis mgl64.Vec2
}

func (MoveIntent) Action() Action { return ActionMove }

// LookIntent carries the look axis (X yaw, Y pitch)
type LookIntent struct {
	Axis mgl64.Vec2
}

func (LookIntent) Action() Action { return ActionLook }

// RunIntent is a run press (Pressed) or release
type RunIntent struct {
	Pressed bool
}

func (RunIntent) Action() Action { return ActionRun }

// DanceIntent starts the dance
type DanceIntent struct{}

func (DanceIntent) Action() Action { return ActionDance }

// JumpIntent is a jump press
type JumpIntent struct{}

func (JumpIntent) Action() Action { return ActionJump }

// CrouchIntent toggles crouch
type CrouchIntent struct{}

func (CrouchIntent) Action() Action { return ActionCrouch }

// ProneIntent toggles prone
type ProneIntent struct{}

func (ProneIntent) Action() Action { return ActionProne }

// SlideIntent is a slide button press (Pressed) or release
type SlideIntent struct {
	Pressed bool
}

func (SlideIntent) Action() Action { return ActionSlide }

// ActionMap routes intents to the handler bound to their action
type ActionMap struct {
	handlers map[Action]func(Intent)
}

// NewActionMap creates an empty action map
func NewActionMap() *ActionMap {
	return &ActionMap{handlers: make(map[Action]func(Intent))}
}

// Bind sets the handler for an action, replacing any previous one
func (m *ActionMap) Bind(action Action, handler func(Intent)) {
	m.handlers[action] = handler
}

// Dispatch calls the handler bound to the intent's action.
// Returns false when nothing is bound.
func (m *ActionMap) Dispatch(intent Intent) bool {
	h, ok := m.handlers[intent.Action()]
	if !ok {
		return false
	}
	h(intent)
	return true
}
