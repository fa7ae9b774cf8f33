package main

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/scene/playing"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// SimulationResult is where a replay left the character
type SimulationResult struct {
	Frames   int
	Location mgl64.Vec3
	Velocity mgl64.Vec3
	Grounded bool
	Snapshot entity.Snapshot
}

func (r SimulationResult) String() string {
	s := r.Snapshot
	return fmt.Sprintf("frames=%d pos=(%.1f, %.1f, %.1f) grounded=%t stance=%s transitioning=%t running=%t dancing=%t jumping=%t flipping=%t jumps=%d facing=%.1f",
		r.Frames, r.Location.X(), r.Location.Y(), r.Location.Z(), r.Grounded,
		s.Stance, s.StanceTransitioning, s.Running, s.Dancing, s.Jumping, s.Flipping, s.JumpCount, s.FacingYaw)
}

// RunHeadless steps a fresh session through every recorded frame
func RunHeadless(cfg *config.GameConfig, data *replay.ReplayData, log *slog.Logger) SimulationResult {
	tps := data.TPS
	if tps <= 0 {
		tps = cfg.Locomotion.Display.Framerate
	}
	dt := 1.0 / float64(tps)

	session := playing.NewSession(cfg, log)
	replayer := replay.NewReplayer(*data)
	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		session.Step(playing.InputFromReplay(in), dt)
	}

	log.Info("replay finished", "frames", session.Frame())

	return SimulationResult{
		Frames:   session.Frame(),
		Location: session.Location(),
		Velocity: session.Velocity(),
		Grounded: session.Grounded(),
		Snapshot: session.Snapshot(),
	}
}
