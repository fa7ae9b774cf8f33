// Package playing provides the locomotion sandbox scene.
package playing

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/scene"
	"github.com/younwookim/locomotion/internal/application/state"
	"github.com/younwookim/locomotion/internal/application/system"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorCeiling   = color.RGBA{120, 90, 160, 160}
	colorStanding  = color.RGBA{100, 200, 100, 255}
	colorCrouching = color.RGBA{220, 200, 80, 255}
	colorProning   = color.RGBA{230, 130, 60, 255}
	colorAirborne  = color.RGBA{120, 180, 255, 255}
	colorSliding   = color.RGBA{240, 90, 200, 255}
	colorFacing    = color.RGBA{255, 255, 255, 255}
	colorView      = color.RGBA{255, 255, 255, 90}
	colorOverlay   = color.RGBA{0, 0, 0, 150}
)

// Playing is the sandbox scene: one character on a stage, driven by the
// keyboard or by a replay
type Playing struct {
	config      *config.GameConfig
	session     *Session
	inputSystem *system.InputSystem
	state       state.GameState
	logger      *slog.Logger
	screenW     int
	screenH     int
	scale       float64 // screen pixels per cm
	tps         int

	// Input recording
	recorder       *Recorder
	recordFilename string

	// Playback, nil when live
	replayer *replay.Replayer
}

// New creates a new live Playing scene.
// If recordPath is not empty, input will be recorded.
func New(cfg *config.GameConfig, recordPath string, logger *slog.Logger) *Playing {
	p := newPlaying(cfg, logger)
	p.state = state.StatePlaying
	p.recordFilename = recordPath

	if recordPath != "" {
		p.recorder = NewRecorder(p.tps, cfg.Stage.ID)
		logger.Info("recording enabled", "path", recordPath)
	}

	return p
}

// NewReplay creates a Playing scene that plays back recorded input
func NewReplay(cfg *config.GameConfig, replayer *replay.Replayer, logger *slog.Logger) *Playing {
	p := newPlaying(cfg, logger)
	p.state = state.StateReplaying
	p.replayer = replayer
	logger.Info("replay loaded", "frames", replayer.TotalFrames(), "stage", replayer.Stage())
	return p
}

func newPlaying(cfg *config.GameConfig, logger *slog.Logger) *Playing {
	display := cfg.Locomotion.Display
	return &Playing{
		config:      cfg,
		session:     NewSession(cfg, logger),
		inputSystem: system.NewInputSystem(),
		logger:      logger,
		screenW:     display.ScreenWidth,
		screenH:     display.ScreenHeight,
		scale:       display.PixelsPerCm,
		tps:         display.Framerate,
	}
}

// Update proceeds the scene (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return nil, scene.ErrQuit
	}

	switch p.state {
	case state.StatePlaying, state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = p.state.TogglePause()
			p.logger.Debug("pause toggled", "state", p.state)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			p.restart()
		}
	case state.StateReplayDone:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return nil, scene.ErrQuit
		}
	}

	if !p.state.Simulating() {
		return nil, nil
	}

	input, ok := p.nextInput()
	if !ok {
		p.state = state.StateReplayDone
		p.logger.Info("replay finished", "frames", p.session.Frame(), "stance", p.session.Snapshot().Stance)
		return nil, nil
	}
	p.session.Step(input, dt)

	return nil, nil // nil = stay on this scene
}

// nextInput reads the keyboard (recording it) or the next replay frame
func (p *Playing) nextInput() (system.InputState, bool) {
	if p.replayer != nil {
		in, ok := p.replayer.GetInput()
		if !ok {
			return system.InputState{}, false
		}
		return InputFromReplay(in), true
	}

	input := p.inputSystem.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	return input, true
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "error", err)
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

func (p *Playing) restart() {
	p.session = NewSession(p.config, p.logger)
	p.state = state.StatePlaying

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.tps, p.config.Stage.ID)
		p.logger.Info("recording restarted")
	}
}

// Draw renders a top-down view of the arena
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.cameraOffset()

	p.drawArena(screen, camX, camY)
	p.drawCharacter(screen, camX, camY)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nESC: resume\nQ: quit")
	case state.StateReplayDone:
		p.drawOverlay(screen, "REPLAY DONE\n\nESC: quit")
	}
}

// cameraOffset centers the character, clamped to the arena
func (p *Playing) cameraOffset() (float64, float64) {
	loc := p.session.Location()
	arena := p.session.Arena()

	camX := loc.X()*p.scale - float64(p.screenW)/2
	camY := loc.Y()*p.scale - float64(p.screenH)/2

	maxCamX := arena.Width*p.scale - float64(p.screenW)
	maxCamY := arena.Depth*p.scale - float64(p.screenH)
	camX = math.Max(0, math.Min(camX, maxCamX))
	camY = math.Max(0, math.Min(camY, maxCamY))

	return camX, camY
}

func (p *Playing) drawArena(screen *ebiten.Image, camX, camY float64) {
	arena := p.session.Arena()
	for _, o := range arena.Obstacles {
		c := colorWall
		if o.Min.Z() > arena.FloorZ {
			c = colorCeiling
		}
		x := o.Min.X()*p.scale - camX
		y := o.Min.Y()*p.scale - camY
		w := (o.Max.X() - o.Min.X()) * p.scale
		h := (o.Max.Y() - o.Min.Y()) * p.scale
		ebitenutil.DrawRect(screen, x, y, w, h, c)
	}
}

func (p *Playing) drawCharacter(screen *ebiten.Image, camX, camY float64) {
	snap := p.session.Snapshot()
	loc := p.session.Location()
	cx := loc.X()*p.scale - camX
	cy := loc.Y()*p.scale - camY
	r := p.config.Locomotion.Physics.CapsuleRadius * p.scale

	ebitenutil.DrawRect(screen, cx-r, cy-r, 2*r, 2*r, stanceColor(snap, p.session.Grounded()))

	// Facing
	facing := entity.Rotator{Yaw: snap.FacingYaw}.Forward()
	ebitenutil.DrawLine(screen, cx, cy, cx+facing.X()*r*2, cy+facing.Y()*r*2, colorFacing)

	// View direction
	view := p.session.ControlRotation().Forward()
	ebitenutil.DrawLine(screen, cx, cy, cx+view.X()*r*4, cy+view.Y()*r*4, colorView)
}

func stanceColor(snap entity.Snapshot, grounded bool) color.Color {
	if snap.Sliding {
		return colorSliding
	}
	if !grounded {
		return colorAirborne
	}
	switch snap.Stance {
	case entity.StanceCrouching:
		return colorCrouching
	case entity.StanceProning:
		return colorProning
	default:
		return colorStanding
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	snap := p.session.Snapshot()
	vel := p.session.Velocity()
	rot := p.session.ControlRotation()

	text := fmt.Sprintf("%s  frame %d\n", p.state, p.session.Frame())
	text += fmt.Sprintf("stance %s", snap.Stance)
	if snap.StanceTransitioning {
		text += " (transition)"
	}
	if snap.Sliding {
		text += fmt.Sprintf(" sliding %.0f", snap.SlideSpeed)
	}
	text += fmt.Sprintf("\nspeed %.0f / %.0f  z %.0f\n", math.Hypot(vel.X(), vel.Y()), p.session.MaxSpeed(), p.session.Location().Z())
	text += fmt.Sprintf("jumps %d  jump %t  flip %t  pending %t\n", snap.JumpCount, snap.Jumping, snap.Flipping, snap.JumpPending)
	text += fmt.Sprintf("run %t  dance %t  yaw %.0f  pitch %.0f", snap.Running, snap.Dancing, rot.Yaw, rot.Pitch)
	if p.recorder != nil {
		text += fmt.Sprintf("\nREC %d", p.recorder.FrameCount())
	}
	if p.replayer != nil {
		text += fmt.Sprintf("\nREPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-30)
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Session returns the simulation behind the scene
func (p *Playing) Session() *Session {
	return p.session
}

// OnEnter is called when the scene becomes active
func (p *Playing) OnEnter() {
	p.logger.Debug("playing scene entered", "state", p.state)
}

// OnExit saves any recording in progress
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.FrameCount() > 0 {
		p.saveRecording()
		p.recorder.Stop()
	}
}
