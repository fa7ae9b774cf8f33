package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyLookRate is the look axis produced per tick by a held arrow key
const keyLookRate = 2.0

// InputSystem polls keyboard and mouse
type InputSystem struct {
	lastCursorX int
	lastCursorY int
	hasCursor   bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds one tick of input
type InputState struct {
	Move        mgl64.Vec2 // X strafe, Y forward
	Look        mgl64.Vec2 // X yaw, Y pitch
	RunPressed  bool
	RunReleased bool
	Dance       bool
	Jump        bool
	Crouch      bool
	Prone       bool

	// The crouch key doubles as the slide button
	SlidePressed  bool
	SlideReleased bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	var move mgl64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		move[1]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		move[1]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move[0]--
	}

	return InputState{
		Move:        move,
		Look:        s.lookAxis(),
		RunPressed:  inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft),
		RunReleased: inpututil.IsKeyJustReleased(ebiten.KeyShiftLeft),
		Dance:       inpututil.IsKeyJustPressed(ebiten.KeyG),
		Jump:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Crouch:      inpututil.IsKeyJustPressed(ebiten.KeyC),
		Prone:       inpututil.IsKeyJustPressed(ebiten.KeyZ),

		SlidePressed:  inpututil.IsKeyJustPressed(ebiten.KeyC),
		SlideReleased: inpututil.IsKeyJustReleased(ebiten.KeyC),
	}
}

// lookAxis combines the cursor delta while the right button is held with the arrow keys
func (s *InputSystem) lookAxis() mgl64.Vec2 {
	var look mgl64.Vec2

	mx, my := ebiten.CursorPosition()
	if s.hasCursor && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		look[0] += float64(mx - s.lastCursorX)
		// Screen Y grows downward; pitch grows upward
		look[1] -= float64(my - s.lastCursorY)
	}
	s.lastCursorX, s.lastCursorY, s.hasCursor = mx, my, true

	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		look[0] += keyLookRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		look[0] -= keyLookRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		look[1] += keyLookRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		look[1] -= keyLookRate
	}

	return look
}

// Intents converts the state into intents in dispatch order. Run comes
// before Move so the move handler reads the new cap; Move is always sent so
// the recorded intent follows the axis back to zero.
func (in InputState) Intents() []Intent {
	intents := make([]Intent, 0, 10)

	if in.Look != (mgl64.Vec2{}) {
		intents = append(intents, LookIntent{Axis: in.Look})
	}
	if in.RunPressed {
		intents = append(intents, RunIntent{Pressed: true})
	}
	if in.RunReleased {
		intents = append(intents, RunIntent{Pressed: false})
	}
	if in.SlidePressed {
		intents = append(intents, SlideIntent{Pressed: true})
	}
	if in.SlideReleased {
		intents = append(intents, SlideIntent{Pressed: false})
	}
	if in.Dance {
		intents = append(intents, DanceIntent{})
	}
	if in.Crouch {
		intents = append(intents, CrouchIntent{})
	}
	if in.Prone {
		intents = append(intents, ProneIntent{})
	}
	if in.Jump {
		intents = append(intents, JumpIntent{})
	}
	intents = append(intents, MoveIntent{Axis: in.Move})

	return intents
}
