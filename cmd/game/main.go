package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/locomotion/internal/application/game"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/scene"
	"github.com/younwookim/locomotion/internal/application/scene/playing"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
	"github.com/younwookim/locomotion/internal/infrastructure/logger"
)

func main() {
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	stageFlag := flag.String("stage", "demo", "Stage to load")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headless := flag.Bool("headless", false, "Run the replay without a window and print the final state")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "console", "Log format: console, text, json")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: *logFormat, Output: os.Stderr})
	log := logger.L()

	if err := run(log, *configDir, *stageFlag, *recordFlag, *replayFlag, *headless); err != nil {
		log.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, configDir, stage, recordPath, replayPath string, headless bool) error {
	var data *replay.ReplayData
	if replayPath != "" {
		var err error
		data, err = replay.LoadReplay(replayPath)
		if err != nil {
			return fmt.Errorf("failed to load replay: %w", err)
		}
		if data.Stage != "" {
			stage = data.Stage
		}
	}

	cfg, err := loadConfig(configDir, stage)
	if err != nil {
		return err
	}
	log.Info("config loaded", "stage", cfg.Stage.Name, "tps", cfg.Locomotion.Display.Framerate)

	if headless {
		if data == nil {
			return fmt.Errorf("-headless needs -replay")
		}
		result := RunHeadless(cfg, data, log)
		fmt.Println(result)
		return nil
	}

	var initial scene.Scene
	if data != nil {
		initial = playing.NewReplay(cfg, replay.NewReplayer(*data), log)
	} else {
		initial = playing.New(cfg, recordPath, log)
	}

	display := cfg.Locomotion.Display
	g := game.New(initial, display.ScreenWidth, display.ScreenHeight, display.Framerate, log)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Locomotion Sandbox - " + cfg.Stage.Name)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// loadConfig reads from dir, or from the embedded configs when dir is empty
func loadConfig(dir, stage string) (*config.GameConfig, error) {
	var loader *config.Loader
	if dir != "" {
		loader = config.NewLoader(dir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded configs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.LoadAll(stage)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
